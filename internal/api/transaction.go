package api

import (
	"context"  // Context for Redis operations
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"mybudget/internal/cache"      // Redis cache helpers
	"mybudget/internal/domain"     // Importing domain models
	"mybudget/internal/store"      // Persistence gateway
	"mybudget/internal/validation" // Transaction validation engine

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// TransactionRequest is the payload accepted for transaction creation
// and update
type TransactionRequest struct {
	Subject   string  `json:"subject"`   // Short description
	Note      string  `json:"note"`      // Optional free text
	Category  string  `json:"category"`  // Classification label
	Amount    float64 `json:"amount"`    // Signed amount
	AccountID uint    `json:"accountId"` // Referenced account
}

// invalidateTransactionCache drops the cached transaction list for one
// account. Redis faults are ignored: the key expires.
func invalidateTransactionCache(rdb *redis.Client, accountID uint) {
	ctx := context.Background() // Context for Redis operations
	_ = cache.Delete(ctx, rdb, cache.AccountTransactionsKey(strconv.Itoa(int(accountID))))
}

// ListAccountTransactionsHandler returns the transactions referencing
// the account in the path. The result may be non-empty for an account
// that no longer exists: dangling references are allowed.
func ListAccountTransactionsHandler(transactions *store.TransactionStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, err := strconv.Atoi(c.Param("id")) // Parse accountId from path
		if err != nil {
			// Non-numeric path parameter
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account id"})
			return
		}
		ctx := context.Background() // Context for Redis operations
		// The key is built from the parsed id so it always matches the key
		// the write paths delete; the raw path string may be zero-padded.
		cacheKey := cache.AccountTransactionsKey(strconv.Itoa(accountID))
		var cached []domain.Transaction
		// If cached data found, return it
		found, err := cache.Get(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, cached) // Return cached list
			return
		}
		result, err := transactions.FindByAccountID(uint(accountID)) // Fetch from DB
		if err != nil {
			// Persistence fault on the filtered lookup: fixed diagnostic, 500
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server failed (transactions by accountId fetch)"})
			return
		}
		_ = cache.Set(ctx, rdb, cacheKey, result, listTTL) // Cache the list
		c.JSON(http.StatusOK, result)                      // Return the list
	}
}

// GetTransactionHandler returns one transaction by id. Unlike accounts,
// a missing transaction answers 404 with a contextual message.
func GetTransactionHandler(transactions *store.TransactionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse id from path
		if err != nil {
			// Non-numeric path parameter
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
			return
		}
		transaction, err := transactions.FindByID(uint(id)) // Fetch from DB
		if errors.Is(err, store.ErrNotFound) {
			// Missing transaction: 404 with message
			c.JSON(http.StatusNotFound, gin.H{"error": "No Transaction with id " + c.Param("id")})
			return
		}
		if err != nil {
			// Persistence fault: fixed diagnostic, 500
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server failed (transaction fetch)"})
			return
		}
		c.JSON(http.StatusOK, transaction) // Return the transaction
	}
}

// CreateTransactionHandler runs the validation engine, then persists the
// transaction and returns it with its generated id. The referenced
// account is never checked for existence.
func CreateTransactionHandler(transactions *store.TransactionStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TransactionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validation failures answer 401, not 400; the rule message is the body
		if err := validation.TransactionCreation(req.Subject, req.Category, req.Amount); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		// Build the transaction from the payload; the id is generated on save
		transaction := domain.Transaction{
			Subject:   req.Subject,   // Short description
			Note:      req.Note,      // Optional free text
			Category:  req.Category,  // Classification label
			Amount:    req.Amount,    // Signed amount
			AccountID: req.AccountID, // Referenced account
		}
		if err := transactions.Save(&transaction); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"account_id": req.AccountID, // Referenced account
				"error":      err.Error(),   // Error message
			}).Error("Failed to create transaction") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"transaction_id": transaction.ID,        // Generated transaction ID
			"account_id":     transaction.AccountID, // Referenced account
			"category":       transaction.Category,  // Classification label
			"amount":         transaction.Amount,    // Signed amount
		}).Info("Transaction created")
		invalidateTransactionCache(rdb, transaction.AccountID) // Invalidate the cached list
		c.JSON(http.StatusCreated, transaction)                // Return the created transaction
	}
}

// UpdateTransactionHandler overwrites every mutable field with the
// caller-supplied values. The validation engine is not re-applied on
// this path: a zero-amount or blank-subject update goes through.
func UpdateTransactionHandler(transactions *store.TransactionStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse id from path
		if err != nil {
			// Non-numeric path parameter
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
			return
		}
		var req TransactionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		transaction, err := transactions.FindByID(uint(id)) // Fetch the transaction to update
		if errors.Is(err, store.ErrNotFound) {
			// Missing transaction: 404 with message
			c.JSON(http.StatusNotFound, gin.H{"error": "No Transaction with id " + c.Param("id")})
			return
		}
		if err != nil {
			// Persistence fault: fixed diagnostic, 500
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server failed (transaction edit)"})
			return
		}
		previousAccountID := transaction.AccountID // The reference may move to another account
		// Full overwrite of the mutable fields
		transaction.Subject = req.Subject
		transaction.Note = req.Note
		transaction.Category = req.Category
		transaction.Amount = req.Amount
		transaction.AccountID = req.AccountID
		if err := transactions.Save(transaction); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"transaction_id": transaction.ID, // Transaction ID
				"error":          err.Error(),    // Error message
			}).Error("Failed to update transaction") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server failed (transaction edit)"})
			return
		}
		invalidateTransactionCache(rdb, previousAccountID)     // Invalidate the previous account's list
		invalidateTransactionCache(rdb, transaction.AccountID) // Invalidate the new account's list
		c.JSON(http.StatusOK, transaction)                     // Return the updated transaction
	}
}

// DeleteTransactionHandler removes a transaction by id
func DeleteTransactionHandler(transactions *store.TransactionStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse id from path
		if err != nil {
			// Non-numeric path parameter
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
			return
		}
		transaction, err := transactions.FindByID(uint(id)) // Fetch the transaction to delete
		if errors.Is(err, store.ErrNotFound) {
			// Missing transaction: 404 with message
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found with id: " + c.Param("id")})
			return
		}
		if err != nil {
			// Persistence fault: fixed diagnostic, 500
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server failed (transaction delete)"})
			return
		}
		if err := transactions.Delete(transaction); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"transaction_id": transaction.ID, // Transaction ID
				"error":          err.Error(),    // Error message
			}).Error("Failed to delete transaction") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server failed (transaction delete)"})
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"transaction_id": transaction.ID,        // Transaction ID
			"account_id":     transaction.AccountID, // Referenced account
		}).Info("Transaction deleted")
		invalidateTransactionCache(rdb, transaction.AccountID) // Invalidate the cached list
		c.Status(http.StatusNoContent)                         // Deletion ok: 204
	}
}
