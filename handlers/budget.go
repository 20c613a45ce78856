package handlers

import (
	"encoding/json"
	"net/http"

	"finledger/middleware"
	"finledger/models"
	"finledger/services"

	"github.com/shopspring/decimal"
)

type BudgetHandler struct {
	budgets *services.BudgetService
}

func NewBudgetHandler(budgets *services.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

type budgetRequest struct {
	Month      int               `json:"month"`
	Year       int               `json:"year"`
	BudgetType models.BudgetType `json:"budgetType"`
	Amount     *decimal.Decimal  `json:"amount"`
}

// Get handles GET /api/budgets?month=&year=. Returns 204 when no budget is
// set for the month.
func (h *BudgetHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)
	month, year, err := queryMonthYear(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	budget, err := h.budgets.Get(userID, month, year)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if budget == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, budget)
}

// Set handles PUT /api/budgets. The amount is required for GENERAL budgets
// and ignored for CATEGORY_SUM budgets, whose stored amount is always zero.
func (h *BudgetHandler) Set(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)

	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateMonthYear(req.Month, req.Year); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.BudgetType == "" {
		req.BudgetType = models.BudgetGeneral
	}
	if !req.BudgetType.Valid() {
		writeError(w, http.StatusBadRequest, "budgetType must be GENERAL or CATEGORY_SUM")
		return
	}

	amount := decimal.Zero
	if req.BudgetType == models.BudgetGeneral {
		if req.Amount == nil {
			writeError(w, http.StatusBadRequest, "amount is required for GENERAL budgets")
			return
		}
		if err := validateAmount(*req.Amount); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		amount = *req.Amount
	}

	budget, err := h.budgets.Set(userID, req.Month, req.Year, req.BudgetType, amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, budget)
}

// Delete handles DELETE /api/budgets?month=&year=. Deleting an absent budget
// still returns 204.
func (h *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)
	month, year, err := queryMonthYear(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.budgets.Delete(userID, month, year); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
