package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"finledger/database"
	"finledger/models"

	"github.com/shopspring/decimal"
)

// TransactionService handles CRUD over a user's ledger entries. Every lookup
// filters by owner; a row owned by someone else reads as absent.
type TransactionService struct {
	db *database.DB
}

func NewTransactionService(db *database.DB) *TransactionService {
	return &TransactionService{db: db}
}

type CreateTransactionInput struct {
	Amount          decimal.Decimal
	Type            models.TransactionType
	Category        models.Category
	Description     string
	TransactionDate models.Date // zero value defaults to today
}

// UpdateTransactionInput carries a partial update; nil fields keep their
// prior values.
type UpdateTransactionInput struct {
	Amount          *decimal.Decimal
	Type            *models.TransactionType
	Category        *models.Category
	Description     *string
	TransactionDate *models.Date
}

func (s *TransactionService) Create(userID int64, in CreateTransactionInput) (*models.Transaction, error) {
	t := models.Transaction{
		UserID:          userID,
		Amount:          in.Amount,
		Type:            in.Type,
		Category:        in.Category,
		Description:     in.Description,
		TransactionDate: in.TransactionDate,
		CreatedAt:       time.Now().UTC(),
	}
	if t.TransactionDate.IsZero() {
		t.TransactionDate = models.Today()
	}

	id, err := s.db.InsertReturningID(s.db.Rebind(`
		INSERT INTO transactions (user_id, amount, type, category, description, transaction_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`), t.UserID, t.Amount, t.Type, t.Category, t.Description, t.TransactionDate, t.CreatedAt)
	if err != nil {
		return nil, err
	}

	t.ID = id
	return &t, nil
}

// ListByUser returns all of the user's transactions, newest first by
// transaction date with id as the tiebreak.
func (s *TransactionService) ListByUser(userID int64) ([]models.Transaction, error) {
	rows, err := s.db.Query(s.db.Rebind(`
		SELECT id, user_id, amount, type, category, description, transaction_date, created_at
		FROM transactions
		WHERE user_id = ?
		ORDER BY transaction_date DESC, id DESC
	`), userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Type, &t.Category,
			&t.Description, &t.TransactionDate, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (s *TransactionService) GetByID(userID, id int64) (*models.Transaction, error) {
	var t models.Transaction
	err := s.db.QueryRow(s.db.Rebind(`
		SELECT id, user_id, amount, type, category, description, transaction_date, created_at
		FROM transactions
		WHERE id = ? AND user_id = ?
	`), id, userID).Scan(&t.ID, &t.UserID, &t.Amount, &t.Type, &t.Category,
		&t.Description, &t.TransactionDate, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrTransactionNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update applies the non-nil fields of in to the transaction and returns the
// updated row.
func (s *TransactionService) Update(userID, id int64, in UpdateTransactionInput) (*models.Transaction, error) {
	t, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	if in.Amount != nil {
		t.Amount = *in.Amount
	}
	if in.Type != nil {
		t.Type = *in.Type
	}
	if in.Category != nil {
		t.Category = *in.Category
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.TransactionDate != nil {
		t.TransactionDate = *in.TransactionDate
	}

	_, err = s.db.Exec(s.db.Rebind(`
		UPDATE transactions
		SET amount = ?, type = ?, category = ?, description = ?, transaction_date = ?
		WHERE id = ? AND user_id = ?
	`), t.Amount, t.Type, t.Category, t.Description, t.TransactionDate, id, userID)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TransactionService) Delete(userID, id int64) error {
	res, err := s.db.Exec(s.db.Rebind("DELETE FROM transactions WHERE id = ? AND user_id = ?"), id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %d", ErrTransactionNotFound, id)
	}
	return nil
}
