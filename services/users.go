package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"finledger/database"
	"finledger/models"
	"finledger/security"
)

// UserService handles registration, login and user lookups.
type UserService struct {
	db     *database.DB
	tokens *security.TokenManager
}

func NewUserService(db *database.DB, tokens *security.TokenManager) *UserService {
	return &UserService{db: db, tokens: tokens}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *UserService) Register(email, password, firstName, lastName string) (*models.User, error) {
	var exists bool
	err := s.db.QueryRow(s.db.Rebind("SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)"), email).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, email)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	id, err := s.db.InsertReturningID(s.db.Rebind(`
		INSERT INTO users (email, password_hash, first_name, last_name, created_at)
		VALUES (?, ?, ?, ?, ?)
	`), email, hash, firstName, lastName, now)
	if err != nil {
		// The unique constraint backstops the existence check under
		// concurrent registrations.
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrEmailTaken, email)
		}
		return nil, err
	}

	return &models.User{
		ID:        id,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: now,
	}, nil
}

// Login verifies the credentials and returns a signed session token. Unknown
// email and wrong password produce the identical error.
func (s *UserService) Login(email, password string) (string, error) {
	var (
		id   int64
		hash string
	)
	err := s.db.QueryRow(s.db.Rebind("SELECT id, password_hash FROM users WHERE email = ?"), email).Scan(&id, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if !security.CheckPassword(hash, password) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(id, email)
}

func (s *UserService) FindByID(id int64) (*models.User, error) {
	var u models.User
	err := s.db.QueryRow(s.db.Rebind(`
		SELECT id, email, password_hash, first_name, last_name, created_at
		FROM users WHERE id = ?
	`), id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite3
		strings.Contains(msg, "duplicate key value") // postgres
}
