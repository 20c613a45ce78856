package services

import (
	"errors"
	"testing"

	"finledger/models"

	"github.com/shopspring/decimal"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestCreateTransactionExactAmounts(t *testing.T) {
	db := newTestDB(t)
	userID := registerTestUser(t, db, "amounts@example.com")
	transactions := NewTransactionService(db)

	for _, amount := range []string{"0.1", "0.2", "19.99", "1234567.89"} {
		created, err := transactions.Create(userID, CreateTransactionInput{
			Amount:   mustDecimal(t, amount),
			Type:     models.TransactionExpense,
			Category: models.CategoryGroceries,
		})
		if err != nil {
			t.Fatalf("Error creating transaction: %v", err)
		}

		stored, err := transactions.GetByID(userID, created.ID)
		if err != nil {
			t.Fatalf("Error fetching transaction: %v", err)
		}
		if !stored.Amount.Equal(mustDecimal(t, amount)) {
			t.Errorf("Expected amount %s, got %s", amount, stored.Amount)
		}
	}
}

func TestCreateTransactionDefaultsDate(t *testing.T) {
	db := newTestDB(t)
	userID := registerTestUser(t, db, "dates@example.com")
	transactions := NewTransactionService(db)

	created, err := transactions.Create(userID, CreateTransactionInput{
		Amount:   mustDecimal(t, "5.00"),
		Type:     models.TransactionExpense,
		Category: models.CategoryDiningOut,
	})
	if err != nil {
		t.Fatalf("Error creating transaction: %v", err)
	}

	if created.TransactionDate.String() != models.Today().String() {
		t.Errorf("Expected transaction date %s, got %s", models.Today(), created.TransactionDate)
	}
}

func TestListTransactionsOrder(t *testing.T) {
	db := newTestDB(t)
	userID := registerTestUser(t, db, "order@example.com")
	transactions := NewTransactionService(db)

	// Insert out of order; two share a date so the id tiebreak matters.
	dates := []string{"2026-01-10", "2026-03-05", "2026-03-05", "2026-02-01"}
	ids := make([]int64, len(dates))
	for i, date := range dates {
		created, err := transactions.Create(userID, CreateTransactionInput{
			Amount:          mustDecimal(t, "10.00"),
			Type:            models.TransactionExpense,
			Category:        models.CategoryGroceries,
			TransactionDate: mustDate(t, date),
		})
		if err != nil {
			t.Fatal(err)
		}
		ids[i] = created.ID
	}

	listed, err := transactions.ListByUser(userID)
	if err != nil {
		t.Fatalf("Error listing transactions: %v", err)
	}
	if len(listed) != 4 {
		t.Fatalf("Expected 4 transactions, got %d", len(listed))
	}

	// Newest date first; for the shared date the later insert wins.
	wantIDs := []int64{ids[2], ids[1], ids[3], ids[0]}
	for i, want := range wantIDs {
		if listed[i].ID != want {
			t.Errorf("Position %d: expected id %d, got %d", i, want, listed[i].ID)
		}
	}
}

func TestTransactionOwnershipOpacity(t *testing.T) {
	db := newTestDB(t)
	owner := registerTestUser(t, db, "owner@example.com")
	other := registerTestUser(t, db, "other@example.com")
	transactions := NewTransactionService(db)

	created, err := transactions.Create(owner, CreateTransactionInput{
		Amount:   mustDecimal(t, "42.00"),
		Type:     models.TransactionExpense,
		Category: models.CategoryShopping,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := transactions.GetByID(other, created.ID); !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("Expected ErrTransactionNotFound on get, got %v", err)
	}

	desc := "sneaky"
	if _, err := transactions.Update(other, created.ID, UpdateTransactionInput{Description: &desc}); !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("Expected ErrTransactionNotFound on update, got %v", err)
	}

	if err := transactions.Delete(other, created.ID); !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("Expected ErrTransactionNotFound on delete, got %v", err)
	}

	// The row is untouched for its owner.
	stored, err := transactions.GetByID(owner, created.ID)
	if err != nil {
		t.Fatalf("Owner could not fetch transaction: %v", err)
	}
	if stored.Description != "" {
		t.Errorf("Expected untouched description, got %q", stored.Description)
	}
}

func TestUpdateTransactionPartial(t *testing.T) {
	db := newTestDB(t)
	userID := registerTestUser(t, db, "partial@example.com")
	transactions := NewTransactionService(db)

	created, err := transactions.Create(userID, CreateTransactionInput{
		Amount:          mustDecimal(t, "67.50"),
		Type:            models.TransactionExpense,
		Category:        models.CategoryGroceries,
		Description:     "Weekly groceries",
		TransactionDate: mustDate(t, "2026-01-14"),
	})
	if err != nil {
		t.Fatal(err)
	}

	newAmount := mustDecimal(t, "23.75")
	newDesc := "Snacks"
	updated, err := transactions.Update(userID, created.ID, UpdateTransactionInput{
		Amount:      &newAmount,
		Description: &newDesc,
	})
	if err != nil {
		t.Fatalf("Error updating transaction: %v", err)
	}

	if !updated.Amount.Equal(newAmount) {
		t.Errorf("Expected amount 23.75, got %s", updated.Amount)
	}
	if updated.Description != "Snacks" {
		t.Errorf("Expected description 'Snacks', got '%s'", updated.Description)
	}
	// Unset fields keep their prior values.
	if updated.Category != models.CategoryGroceries {
		t.Errorf("Expected category GROCERIES, got %s", updated.Category)
	}
	if updated.TransactionDate.String() != "2026-01-14" {
		t.Errorf("Expected date 2026-01-14, got %s", updated.TransactionDate)
	}
}

func TestDeleteTransaction(t *testing.T) {
	db := newTestDB(t)
	userID := registerTestUser(t, db, "delete@example.com")
	transactions := NewTransactionService(db)

	created, err := transactions.Create(userID, CreateTransactionInput{
		Amount:   mustDecimal(t, "9.99"),
		Type:     models.TransactionExpense,
		Category: models.CategorySubscriptions,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := transactions.Delete(userID, created.ID); err != nil {
		t.Fatalf("Error deleting transaction: %v", err)
	}
	if err := transactions.Delete(userID, created.ID); !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("Expected ErrTransactionNotFound on second delete, got %v", err)
	}
}
