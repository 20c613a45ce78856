package handlers

import (
	"encoding/json"
	"net/http"

	"finledger/middleware"
	"finledger/models"
	"finledger/services"

	"github.com/shopspring/decimal"
)

type CategoryBudgetHandler struct {
	categoryBudgets *services.CategoryBudgetService
}

func NewCategoryBudgetHandler(categoryBudgets *services.CategoryBudgetService) *CategoryBudgetHandler {
	return &CategoryBudgetHandler{categoryBudgets: categoryBudgets}
}

type categoryBudgetRequest struct {
	Month    int              `json:"month"`
	Year     int              `json:"year"`
	Category models.Category  `json:"category"`
	Amount   *decimal.Decimal `json:"amount"`
}

// List handles GET /api/budgets/categories?month=&year=.
func (h *CategoryBudgetHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)
	month, year, err := queryMonthYear(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	budgets, err := h.categoryBudgets.List(userID, month, year)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, budgets)
}

// Set handles PUT /api/budgets/categories.
func (h *CategoryBudgetHandler) Set(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)

	var req categoryBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateMonthYear(req.Month, req.Year); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateCategory(req.Category); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Amount == nil {
		writeError(w, http.StatusBadRequest, "amount is required")
		return
	}
	if err := validateAmount(*req.Amount); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	budget, err := h.categoryBudgets.Set(userID, req.Month, req.Year, req.Category, *req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, budget)
}

// Delete handles DELETE /api/budgets/categories?month=&year=&category=.
// Deleting an absent category budget still returns 204.
func (h *CategoryBudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)
	month, year, err := queryMonthYear(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	category := models.Category(r.URL.Query().Get("category"))
	if err := validateCategory(category); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.categoryBudgets.Delete(userID, month, year, category); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
