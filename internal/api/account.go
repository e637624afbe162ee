package api

import (
	"context"  // Context for Redis operations
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"mybudget/internal/cache"  // Redis cache helpers
	"mybudget/internal/domain" // Importing domain models
	"mybudget/internal/store"  // Persistence gateway

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// listTTL is how long cached list responses live; every write deletes
// the affected keys anyway, so the TTL only bounds staleness from
// out-of-band database changes.
const listTTL = 60 * time.Second

// AccountRequest is the payload accepted for account creation and update
type AccountRequest struct {
	Name     string `json:"name"`     // Display label
	Bank     string `json:"bank"`     // Issuing institution
	ClientID uint   `json:"clientId"` // Owning client
}

// invalidateAccountCache drops the cached list responses an account
// write may have changed. Redis faults are ignored: the keys expire.
func invalidateAccountCache(rdb *redis.Client, clientID uint) {
	ctx := context.Background() // Context for Redis operations
	_ = cache.Delete(ctx, rdb, cache.AccountsKey())
	_ = cache.Delete(ctx, rdb, cache.ClientAccountsKey(strconv.Itoa(int(clientID))))
}

// ListClientAccountsHandler returns the accounts owned by the client in
// the path. The route is behind the bearer gate: the middleware has
// already rejected absent and invalid tokens with a bodiless 401.
func ListClientAccountsHandler(accounts *store.AccountStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, err := strconv.Atoi(c.Param("id")) // Parse clientId from path
		if err != nil {
			// Non-numeric path parameter
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client id"})
			return
		}
		// TODO: compare the token's client_id claim (set by the bearer gate)
		// against the path parameter once the frontend issues per-client tokens.
		ctx := context.Background() // Context for Redis operations
		// The key is built from the parsed id so it always matches the key
		// the write paths delete; the raw path string may be zero-padded.
		cacheKey := cache.ClientAccountsKey(strconv.Itoa(clientID))
		var cached []domain.Account
		// If cached data found, return it
		found, err := cache.Get(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, cached) // Return cached list
			return
		}
		result, err := accounts.FindByClientID(uint(clientID)) // Fetch from DB
		if err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch accounts"})
			return
		}
		_ = cache.Set(ctx, rdb, cacheKey, result, listTTL) // Cache the list
		c.JSON(http.StatusOK, result)                      // Return the list
	}
}

// ListAccountsHandler returns every account, unfiltered and ungated
func ListAccountsHandler(accounts *store.AccountStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()    // Context for Redis operations
		cacheKey := cache.AccountsKey() // Cache key for the full list
		var cached []domain.Account
		// If cached data found, return it
		found, err := cache.Get(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, cached) // Return cached list
			return
		}
		result, err := accounts.FindAll() // Fetch from DB
		if err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch accounts"})
			return
		}
		_ = cache.Set(ctx, rdb, cacheKey, result, listTTL) // Cache the list
		c.JSON(http.StatusOK, result)                      // Return the list
	}
}

// GetAccountHandler returns one account by id. A missing account answers
// 200 with a null body, not 404: the two entity types deliberately
// diverge in not-found signaling.
func GetAccountHandler(accounts *store.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse id from path
		if err != nil {
			// Non-numeric path parameter
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account id"})
			return
		}
		account, err := accounts.FindByID(uint(id)) // Fetch from DB
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, nil) // Missing account: 200 with null body
			return
		}
		if err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch account"})
			return
		}
		c.JSON(http.StatusOK, account) // Return the account
	}
}

// CreateAccountHandler persists a new account and returns it with its
// generated id. The payload carries no validation rules of its own.
func CreateAccountHandler(accounts *store.AccountStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AccountRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Build the account from the payload; the id is generated on save
		account := domain.Account{Name: req.Name, Bank: req.Bank, ClientID: req.ClientID}
		if err := accounts.Save(&account); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"client_id": req.ClientID, // Owning client
				"error":     err.Error(),  // Error message
			}).Error("Failed to create account") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,       // Generated account ID
			"client_id":  account.ClientID, // Owning client
		}).Info("Account created")
		invalidateAccountCache(rdb, account.ClientID) // Invalidate cached lists
		c.JSON(http.StatusCreated, account)           // Return the created account
	}
}

// UpdateAccountHandler overwrites name, bank and clientId in place and
// leaves the id untouched. A missing account answers 200 with a null
// body, matching the read path.
func UpdateAccountHandler(accounts *store.AccountStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse id from path
		if err != nil {
			// Non-numeric path parameter
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account id"})
			return
		}
		var req AccountRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		account, err := accounts.FindByID(uint(id)) // Fetch the account to update
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, nil) // Missing account: 200 with null body
			return
		}
		if err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch account"})
			return
		}
		previousClientID := account.ClientID // Ownership may move to another client
		// Full overwrite of the mutable fields
		account.Name = req.Name
		account.Bank = req.Bank
		account.ClientID = req.ClientID
		if err := accounts.Save(account); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,  // Account ID
				"error":      err.Error(), // Error message
			}).Error("Failed to update account") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account"})
			return
		}
		invalidateAccountCache(rdb, previousClientID) // Invalidate the previous owner's list
		invalidateAccountCache(rdb, account.ClientID) // Invalidate the new owner's list
		c.JSON(http.StatusOK, account)                // Return the updated account
	}
}

// DeleteAccountHandler removes an account by id. Its transactions are
// left in place: the accountId reference is weak and never cascaded.
func DeleteAccountHandler(accounts *store.AccountStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse id from path
		if err != nil {
			// Non-numeric path parameter
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account id"})
			return
		}
		account, err := accounts.FindByID(uint(id)) // Fetch the account to delete
		if errors.Is(err, store.ErrNotFound) {
			c.Status(http.StatusNotFound) // Missing account: bodiless 404 on delete
			return
		}
		if err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch account"})
			return
		}
		if err := accounts.Delete(account); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,  // Account ID
				"error":      err.Error(), // Error message
			}).Error("Failed to delete account") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,       // Account ID
			"client_id":  account.ClientID, // Owning client
		}).Info("Account deleted")
		invalidateAccountCache(rdb, account.ClientID) // Invalidate cached lists
		c.Status(http.StatusNoContent)                // Deletion ok: 204
	}
}
