package handlers

import (
	"fmt"
	"net/http"
	"net/mail"
	"strconv"

	"finledger/models"

	"github.com/shopspring/decimal"
)

// Year bounds applied uniformly to budgets and category budgets.
const (
	minYear = 2000
	maxYear = 2100
)

const maxDescriptionLength = 500

var minAmount = decimal.RequireFromString("0.01")

func validateMonthYear(month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}
	if year < minYear || year > maxYear {
		return fmt.Errorf("year must be between %d and %d", minYear, maxYear)
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThan(minAmount) {
		return fmt.Errorf("amount must be at least 0.01")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("must be a valid email address")
	}
	return nil
}

func validateCategory(category models.Category) error {
	if !category.Valid() {
		return fmt.Errorf("unknown category %q", category)
	}
	return nil
}

// queryMonthYear parses and validates the month/year query parameters.
func queryMonthYear(r *http.Request) (int, int, error) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, fmt.Errorf("month is required and must be a number")
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, fmt.Errorf("year is required and must be a number")
	}
	if err := validateMonthYear(month, year); err != nil {
		return 0, 0, err
	}
	return month, year, nil
}
