package services

import (
	"testing"

	"finledger/models"
)

func TestCategoryBudgetUpsert(t *testing.T) {
	db := newTestDB(t)
	userID := registerTestUser(t, db, "cb@example.com")
	categoryBudgets := NewCategoryBudgetService(db)

	first, err := categoryBudgets.Set(userID, 1, 2026, models.CategoryGroceries, mustDecimal(t, "400.00"))
	if err != nil {
		t.Fatalf("Error setting category budget: %v", err)
	}
	second, err := categoryBudgets.Set(userID, 1, 2026, models.CategoryGroceries, mustDecimal(t, "450.00"))
	if err != nil {
		t.Fatalf("Error upserting category budget: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("Expected the same row, got ids %d and %d", first.ID, second.ID)
	}
	if !second.Amount.Equal(mustDecimal(t, "450.00")) {
		t.Errorf("Expected amount 450.00, got %s", second.Amount)
	}
}

func TestCategoryBudgetList(t *testing.T) {
	db := newTestDB(t)
	userID := registerTestUser(t, db, "cblist@example.com")
	other := registerTestUser(t, db, "cbother@example.com")
	categoryBudgets := NewCategoryBudgetService(db)

	if _, err := categoryBudgets.Set(userID, 1, 2026, models.CategoryGroceries, mustDecimal(t, "400.00")); err != nil {
		t.Fatal(err)
	}
	if _, err := categoryBudgets.Set(userID, 1, 2026, models.CategoryDiningOut, mustDecimal(t, "200.00")); err != nil {
		t.Fatal(err)
	}
	// Different month and different user must not show up.
	if _, err := categoryBudgets.Set(userID, 2, 2026, models.CategoryTravel, mustDecimal(t, "900.00")); err != nil {
		t.Fatal(err)
	}
	if _, err := categoryBudgets.Set(other, 1, 2026, models.CategoryGroceries, mustDecimal(t, "123.00")); err != nil {
		t.Fatal(err)
	}

	listed, err := categoryBudgets.List(userID, 1, 2026)
	if err != nil {
		t.Fatalf("Error listing category budgets: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("Expected 2 category budgets, got %d", len(listed))
	}
	for _, cb := range listed {
		if cb.UserID != userID {
			t.Errorf("Expected owner %d, got %d", userID, cb.UserID)
		}
	}
}

func TestCategoryBudgetDeleteIdempotent(t *testing.T) {
	db := newTestDB(t)
	userID := registerTestUser(t, db, "cbdelete@example.com")
	categoryBudgets := NewCategoryBudgetService(db)

	if _, err := categoryBudgets.Set(userID, 1, 2026, models.CategoryGas, mustDecimal(t, "80.00")); err != nil {
		t.Fatal(err)
	}
	if err := categoryBudgets.Delete(userID, 1, 2026, models.CategoryGas); err != nil {
		t.Fatalf("Error deleting category budget: %v", err)
	}
	if err := categoryBudgets.Delete(userID, 1, 2026, models.CategoryGas); err != nil {
		t.Errorf("Expected no error deleting absent category budget, got %v", err)
	}

	listed, err := categoryBudgets.List(userID, 1, 2026)
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 0 {
		t.Errorf("Expected no category budgets, got %d", len(listed))
	}
}
