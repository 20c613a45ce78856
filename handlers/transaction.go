package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"finledger/middleware"
	"finledger/models"
	"finledger/services"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	transactions *services.TransactionService
}

func NewTransactionHandler(transactions *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

type createTransactionRequest struct {
	Amount          *decimal.Decimal       `json:"amount"`
	Type            models.TransactionType `json:"type"`
	Category        models.Category        `json:"category"`
	Description     string                 `json:"description"`
	TransactionDate models.Date            `json:"transactionDate"`
}

// updateTransactionRequest is a partial update; absent fields stay nil and
// keep their stored values.
type updateTransactionRequest struct {
	Amount          *decimal.Decimal        `json:"amount"`
	Type            *models.TransactionType `json:"type"`
	Category        *models.Category        `json:"category"`
	Description     *string                 `json:"description"`
	TransactionDate *models.Date            `json:"transactionDate"`
}

// Create handles POST /api/transactions.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)

	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
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
	if !req.Type.Valid() {
		writeError(w, http.StatusBadRequest, "type must be INCOME or EXPENSE")
		return
	}
	if err := validateCategory(req.Category); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Description) > maxDescriptionLength {
		writeError(w, http.StatusBadRequest, "description must be at most 500 characters")
		return
	}

	t, err := h.transactions.Create(userID, services.CreateTransactionInput{
		Amount:          *req.Amount,
		Type:            req.Type,
		Category:        req.Category,
		Description:     req.Description,
		TransactionDate: req.TransactionDate,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, t)
}

// List handles GET /api/transactions, newest first.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)

	transactions, err := h.transactions.ListByUser(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, transactions)
}

// Get handles GET /api/transactions/{id}.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	t, err := h.transactions.GetByID(userID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

// Update handles PUT /api/transactions/{id} as a partial update.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Amount != nil {
		if err := validateAmount(*req.Amount); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Type != nil && !req.Type.Valid() {
		writeError(w, http.StatusBadRequest, "type must be INCOME or EXPENSE")
		return
	}
	if req.Category != nil {
		if err := validateCategory(*req.Category); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Description != nil && len(*req.Description) > maxDescriptionLength {
		writeError(w, http.StatusBadRequest, "description must be at most 500 characters")
		return
	}

	t, err := h.transactions.Update(userID, id, services.UpdateTransactionInput{
		Amount:          req.Amount,
		Type:            req.Type,
		Category:        req.Category,
		Description:     req.Description,
		TransactionDate: req.TransactionDate,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

// Delete handles DELETE /api/transactions/{id}.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	if err := h.transactions.Delete(userID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
