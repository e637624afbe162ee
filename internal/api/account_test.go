package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"mybudget/internal/auth"
	"mybudget/internal/domain"
	"mybudget/internal/middleware"
	"mybudget/internal/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "account-test-secret"

// newAccountRouter wires the account routes the way cmd/server does
func newAccountRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	rdb := newTestRedis()
	accounts := store.NewAccountStore(db)
	r := gin.New()
	r.GET("/accounts", ListAccountsHandler(accounts, rdb))
	r.GET("/account/:id", GetAccountHandler(accounts))
	r.POST("/account", CreateAccountHandler(accounts, rdb))
	r.PATCH("/account/:id", UpdateAccountHandler(accounts, rdb))
	r.DELETE("/account/:id", DeleteAccountHandler(accounts, rdb))
	r.GET("/:id/accounts", middleware.BearerAuth(testSecret), ListClientAccountsHandler(accounts, rdb))
	return r, mock
}

func TestListAccounts(t *testing.T) {
	r, mock := newAccountRouter(t)
	mock.ExpectQuery("SELECT (.+) FROM `accounts`").
		WillReturnRows(accountRows().
			AddRow(1, "Main", "ACME", 7).
			AddRow(2, "Savings", "Globex", 8))

	w := doRequest(r, "GET", "/accounts", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []domain.Account
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestListClientAccountsAuthorized(t *testing.T) {
	r, mock := newAccountRouter(t)
	mock.ExpectQuery("SELECT (.+) FROM `accounts` WHERE client_id = (.+)").
		WillReturnRows(accountRows().
			AddRow(1, "Main", "ACME", 7).
			AddRow(3, "Savings", "ACME", 7))

	token, err := auth.GenerateToken(7, testSecret)
	require.NoError(t, err)

	w := doRequest(r, "GET", "/7/accounts", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var got []domain.Account
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	for _, a := range got {
		assert.Equal(t, uint(7), a.ClientID)
	}
}

func TestListClientAccountsNoToken(t *testing.T) {
	r, mock := newAccountRouter(t)

	w := doRequest(r, "GET", "/7/accounts", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	// The gate answers with no body at all
	assert.Zero(t, w.Body.Len())
	// The database is never reached
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListClientAccountsInvalidToken(t *testing.T) {
	r, mock := newAccountRouter(t)

	w := doRequest(r, "GET", "/7/accounts", nil, "not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, w.Body.Len())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListClientAccountsWrongSecretToken(t *testing.T) {
	r, mock := newAccountRouter(t)

	token, err := auth.GenerateToken(7, "some-other-secret")
	require.NoError(t, err)

	w := doRequest(r, "GET", "/7/accounts", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, w.Body.Len())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAccountFound(t *testing.T) {
	r, mock := newAccountRouter(t)
	mock.ExpectQuery("SELECT (.+) FROM `accounts` WHERE (.+)").
		WillReturnRows(accountRows().AddRow(1, "Main", "ACME", 7))

	w := doRequest(r, "GET", "/account/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.Account
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, uint(1), got.ID)
	assert.Equal(t, "Main", got.Name)
}

func TestGetAccountMissing(t *testing.T) {
	r, mock := newAccountRouter(t)
	mock.ExpectQuery("SELECT (.+) FROM `accounts` WHERE (.+)").
		WillReturnRows(accountRows())

	// A missing account answers 200 with a null body, not 404
	w := doRequest(r, "GET", "/account/9999999", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestCreateAccount(t *testing.T) {
	r, mock := newAccountRouter(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `accounts`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	body := map[string]any{"name": "Main", "bank": "ACME", "clientId": 7}
	w := doRequest(r, "POST", "/account", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var got domain.Account
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, uint(1), got.ID)
	assert.Equal(t, "Main", got.Name)
	assert.Equal(t, "ACME", got.Bank)
	assert.Equal(t, uint(7), got.ClientID)
}

func TestCreateAccountMalformedBody(t *testing.T) {
	r, mock := newAccountRouter(t)

	w := doRequest(r, "POST", "/account", "not-an-object", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAccountOverwrite(t *testing.T) {
	r, mock := newAccountRouter(t)
	mock.ExpectQuery("SELECT (.+) FROM `accounts` WHERE (.+)").
		WillReturnRows(accountRows().AddRow(3, "Old", "OldBank", 7))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `accounts` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// The balance field is not part of the schema and must be ignored
	body := map[string]any{"name": "New", "bank": "NewBank", "clientId": 9, "balance": 99}
	w := doRequest(r, "PATCH", "/account/3", body, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.Account
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, uint(3), got.ID) // id never changes
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "NewBank", got.Bank)
	assert.Equal(t, uint(9), got.ClientID)
}

func TestUpdateAccountMissing(t *testing.T) {
	r, mock := newAccountRouter(t)
	mock.ExpectQuery("SELECT (.+) FROM `accounts` WHERE (.+)").
		WillReturnRows(accountRows())

	body := map[string]any{"name": "New", "bank": "NewBank", "clientId": 9}
	w := doRequest(r, "PATCH", "/account/404", body, "")
	// Same null-body signaling as the read path
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestDeleteAccountTwice(t *testing.T) {
	r, mock := newAccountRouter(t)

	// First delete finds the row and removes it
	mock.ExpectQuery("SELECT (.+) FROM `accounts` WHERE (.+)").
		WillReturnRows(accountRows().AddRow(1, "Main", "ACME", 7))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `accounts`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := doRequest(r, "DELETE", "/account/1", nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Second delete finds nothing
	mock.ExpectQuery("SELECT (.+) FROM `accounts` WHERE (.+)").
		WillReturnRows(accountRows())

	w = doRequest(r, "DELETE", "/account/1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
