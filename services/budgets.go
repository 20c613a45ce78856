package services

import (
	"database/sql"
	"errors"
	"time"

	"finledger/database"
	"finledger/models"

	"github.com/shopspring/decimal"
)

// BudgetService handles the monthly budget and its effective-amount
// derivation.
type BudgetService struct {
	db *database.DB
}

func NewBudgetService(db *database.DB) *BudgetService {
	return &BudgetService{db: db}
}

// Get returns the user's budget for the month, or nil when none is set.
func (s *BudgetService) Get(userID int64, month, year int) (*models.Budget, error) {
	var b models.Budget
	err := s.db.QueryRow(s.db.Rebind(`
		SELECT id, user_id, month, year, budget_type, amount, created_at, updated_at
		FROM budgets
		WHERE user_id = ? AND month = ? AND year = ?
	`), userID, month, year).Scan(&b.ID, &b.UserID, &b.Month, &b.Year,
		&b.BudgetType, &b.Amount, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.fillEffectiveAmount(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Set upserts the budget keyed by (user, month, year). GENERAL budgets store
// the given amount; CATEGORY_SUM budgets store a zero placeholder and derive
// their effective amount from the month's category budgets. The upsert is a
// single atomic statement so concurrent calls serialize on the unique key.
func (s *BudgetService) Set(userID int64, month, year int, budgetType models.BudgetType, amount decimal.Decimal) (*models.Budget, error) {
	if budgetType == models.BudgetCategorySum {
		amount = decimal.Zero
	}

	now := time.Now().UTC()
	_, err := s.db.Exec(s.db.Rebind(`
		INSERT INTO budgets (user_id, month, year, budget_type, amount, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, month, year) DO UPDATE SET
			budget_type = excluded.budget_type,
			amount = excluded.amount,
			updated_at = excluded.updated_at
	`), userID, month, year, budgetType, amount, now, now)
	if err != nil {
		return nil, err
	}

	return s.Get(userID, month, year)
}

// Delete removes the budget for the month; deleting an absent budget is a
// no-op.
func (s *BudgetService) Delete(userID int64, month, year int) error {
	_, err := s.db.Exec(s.db.Rebind(
		"DELETE FROM budgets WHERE user_id = ? AND month = ? AND year = ?"),
		userID, month, year)
	return err
}

func (s *BudgetService) fillEffectiveAmount(b *models.Budget) error {
	if b.BudgetType != models.BudgetCategorySum {
		b.EffectiveAmount = b.Amount
		return nil
	}

	sum, err := s.sumCategoryBudgets(b.UserID, b.Month, b.Year)
	if err != nil {
		return err
	}
	b.EffectiveAmount = sum
	return nil
}

// sumCategoryBudgets adds the month's category budget amounts in decimal
// arithmetic. The sum is done here rather than with SQL SUM() so sqlite never
// coerces the amounts through floats.
func (s *BudgetService) sumCategoryBudgets(userID int64, month, year int) (decimal.Decimal, error) {
	rows, err := s.db.Query(s.db.Rebind(`
		SELECT amount FROM category_budgets
		WHERE user_id = ? AND month = ? AND year = ?
	`), userID, month, year)
	if err != nil {
		return decimal.Zero, err
	}
	defer rows.Close()

	sum := decimal.Zero
	for rows.Next() {
		var amount decimal.Decimal
		if err := rows.Scan(&amount); err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(amount)
	}
	return sum, rows.Err()
}
