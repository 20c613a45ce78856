package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finledger/database"
	"finledger/middleware"
	"finledger/security"
	"finledger/services"
)

// testEnv bundles a fresh database with the services and handlers under test.
type testEnv struct {
	db              *database.DB
	users           *services.UserService
	transactions    *services.TransactionService
	budgets         *services.BudgetService
	categoryBudgets *services.CategoryBudgetService

	auth           *AuthHandler
	user           *UserHandler
	transaction    *TransactionHandler
	budget         *BudgetHandler
	categoryBudget *CategoryBudgetHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Error opening test database: %v", err)
	}
	// A single connection keeps the in-memory database alive for the test.
	db.SetMaxOpenConns(1)
	if err := database.CreateSchema(db); err != nil {
		t.Fatalf("Error creating schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	tokens := security.NewTokenManager("test-secret", time.Hour)
	users := services.NewUserService(db, tokens)
	transactions := services.NewTransactionService(db)
	budgets := services.NewBudgetService(db)
	categoryBudgets := services.NewCategoryBudgetService(db)

	return &testEnv{
		db:              db,
		users:           users,
		transactions:    transactions,
		budgets:         budgets,
		categoryBudgets: categoryBudgets,
		auth:            NewAuthHandler(users, 6),
		user:            NewUserHandler(users),
		transaction:     NewTransactionHandler(transactions),
		budget:          NewBudgetHandler(budgets),
		categoryBudget:  NewCategoryBudgetHandler(categoryBudgets),
	}
}

func (e *testEnv) registerUser(t *testing.T, email string) int64 {
	t.Helper()

	user, err := e.users.Register(email, "password123", "Test", "User")
	if err != nil {
		t.Fatalf("Error registering test user: %v", err)
	}
	return user.ID
}

// jsonRequest builds a request with a JSON body.
func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// authedRequest builds a request already carrying an authenticated user id,
// the way the auth middleware would attach it.
func authedRequest(t *testing.T, method, target string, body interface{}, userID int64) *http.Request {
	t.Helper()

	req := jsonRequest(t, method, target, body)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("Error decoding response body: %v", err)
	}
}
