package sqlstore

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"chatline/internal/models"
	"chatline/internal/store"
)

func (s *SQLStore) CreateUser(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	query := s.rebind("INSERT INTO users (id, name, email, password, pic) VALUES (?, ?, ?, ?, ?)")
	_, err := s.db.Exec(query, user.ID, user.Name, user.Email, user.Password, user.Pic)
	if err != nil && isUniqueViolation(err) {
		return store.ErrDuplicateEmail
	}
	return err
}

func (s *SQLStore) GetUserByEmail(email string) (*models.User, error) {
	query := s.rebind("SELECT id, name, email, password, pic, created_at FROM users WHERE email = ?")
	return s.scanUser(s.db.QueryRow(query, email))
}

func (s *SQLStore) GetUserByID(id string) (*models.User, error) {
	query := s.rebind("SELECT id, name, email, password, pic, created_at FROM users WHERE id = ?")
	return s.scanUser(s.db.QueryRow(query, id))
}

func (s *SQLStore) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Pic, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SearchUsers matches keyword as a case-insensitive substring of name or
// email. An empty keyword matches every user except excludeID.
func (s *SQLStore) SearchUsers(keyword, excludeID string) ([]models.User, error) {
	query := s.rebind(`
		SELECT id, name, email, pic, created_at FROM users
		WHERE id != ? AND (LOWER(name) LIKE ? OR LOWER(email) LIKE ?)
	`)
	pattern := "%" + strings.ToLower(keyword) + "%"
	rows, err := s.db.Query(query, excludeID, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Pic, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *SQLStore) DeleteUser(id string) error {
	query := s.rebind("DELETE FROM users WHERE id = ?")
	result, err := s.db.Exec(query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	return nil
}
