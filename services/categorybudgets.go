package services

import (
	"time"

	"finledger/database"
	"finledger/models"

	"github.com/shopspring/decimal"
)

// CategoryBudgetService handles the per-category budgets that feed
// CATEGORY_SUM budgets.
type CategoryBudgetService struct {
	db *database.DB
}

func NewCategoryBudgetService(db *database.DB) *CategoryBudgetService {
	return &CategoryBudgetService{db: db}
}

// List returns the user's category budgets for the month, one row per
// category present.
func (s *CategoryBudgetService) List(userID int64, month, year int) ([]models.CategoryBudget, error) {
	rows, err := s.db.Query(s.db.Rebind(`
		SELECT id, user_id, month, year, category, amount, created_at, updated_at
		FROM category_budgets
		WHERE user_id = ? AND month = ? AND year = ?
		ORDER BY category
	`), userID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := []models.CategoryBudget{}
	for rows.Next() {
		var cb models.CategoryBudget
		err := rows.Scan(&cb.ID, &cb.UserID, &cb.Month, &cb.Year,
			&cb.Category, &cb.Amount, &cb.CreatedAt, &cb.UpdatedAt)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, cb)
	}
	return budgets, rows.Err()
}

// Set upserts the category budget keyed by (user, month, year, category).
func (s *CategoryBudgetService) Set(userID int64, month, year int, category models.Category, amount decimal.Decimal) (*models.CategoryBudget, error) {
	now := time.Now().UTC()
	_, err := s.db.Exec(s.db.Rebind(`
		INSERT INTO category_budgets (user_id, month, year, category, amount, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, month, year, category) DO UPDATE SET
			amount = excluded.amount,
			updated_at = excluded.updated_at
	`), userID, month, year, category, amount, now, now)
	if err != nil {
		return nil, err
	}

	var cb models.CategoryBudget
	err = s.db.QueryRow(s.db.Rebind(`
		SELECT id, user_id, month, year, category, amount, created_at, updated_at
		FROM category_budgets
		WHERE user_id = ? AND month = ? AND year = ? AND category = ?
	`), userID, month, year, category).Scan(&cb.ID, &cb.UserID, &cb.Month, &cb.Year,
		&cb.Category, &cb.Amount, &cb.CreatedAt, &cb.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &cb, nil
}

// Delete removes one category budget; deleting an absent one is a no-op.
func (s *CategoryBudgetService) Delete(userID int64, month, year int, category models.Category) error {
	_, err := s.db.Exec(s.db.Rebind(
		"DELETE FROM category_budgets WHERE user_id = ? AND month = ? AND year = ? AND category = ?"),
		userID, month, year, category)
	return err
}
