package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetType controls how a monthly budget's effective amount is determined.
// GENERAL budgets store the amount directly; CATEGORY_SUM budgets derive it
// from the user's category budgets for the same month.
type BudgetType string

const (
	BudgetGeneral     BudgetType = "GENERAL"
	BudgetCategorySum BudgetType = "CATEGORY_SUM"
)

func (t BudgetType) Valid() bool {
	return t == BudgetGeneral || t == BudgetCategorySum
}

type Budget struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"userId"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	BudgetType BudgetType      `json:"budgetType"`
	Amount     decimal.Decimal `json:"amount"`
	// EffectiveAmount equals Amount for GENERAL budgets and the sum of the
	// month's category budgets for CATEGORY_SUM budgets.
	EffectiveAmount decimal.Decimal `json:"effectiveAmount"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type CategoryBudget struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	Category  Category        `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
