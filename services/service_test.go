package services

import (
	"testing"
	"time"

	"finledger/database"
	"finledger/security"
)

func newTestDB(t *testing.T) *database.DB {
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
	return db
}

func newTestTokens() *security.TokenManager {
	return security.NewTokenManager("test-secret", time.Hour)
}

func registerTestUser(t *testing.T, db *database.DB, email string) int64 {
	t.Helper()

	users := NewUserService(db, newTestTokens())
	user, err := users.Register(email, "password123", "Test", "User")
	if err != nil {
		t.Fatalf("Error registering test user: %v", err)
	}
	return user.ID
}
