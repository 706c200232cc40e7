package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"blogserver/internal/models"

	"github.com/google/uuid"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (id, username, email, password) VALUES (?, ?, ?, ?)`
	selectUserByIDSQL       = `SELECT id, username, email, password FROM users WHERE id = ?`
	selectUserByUsernameSQL = `SELECT id, username, email, password FROM users WHERE username = ?`
	existsUserSQL           = `SELECT COUNT(1) FROM users WHERE username = ? OR email = ?`
	updateUserSQL           = `UPDATE users SET username = ?, email = ? WHERE id = ?`
)

// Create inserts a new user with a generated id and returns it.
func (r *UserRepository) Create(ctx context.Context, u models.User) (string, error) {
	id := u.ID
	if id == "" {
		id = uuid.NewString()
	}
	if _, err := r.db.ExecContext(ctx, insertUserSQL, id, u.Username, u.Email, u.Password); err != nil {
		return "", fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return id, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByIDSQL, id).
		Scan(&u.ID, &u.Username, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user id %q: %w", id, err)
	}
	return &u, nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username).
		Scan(&u.ID, &u.Username, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// ExistsByUsernameOrEmail reports whether any user already holds the given
// username or email. Used as the registration duplicate pre-check.
func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, existsUserSQL, username, email).Scan(&n); err != nil {
		return false, fmt.Errorf("count users by username/email: %w", err)
	}
	return n > 0, nil
}

// Update overwrites username and email for the given id. The bool result
// reports whether a row matched.
func (r *UserRepository) Update(ctx context.Context, id, username, email string) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateUserSQL, username, email, id)
	if err != nil {
		return false, fmt.Errorf("update user id %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for user id %q: %w", id, err)
	}
	return n > 0, nil
}

// UsernamesByIDs resolves user ids to usernames in one query.
// Missing ids are absent from the result map.
func (r *UserRepository) UsernamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username FROM users WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("select usernames by ids: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id, username string
		if err := rows.Scan(&id, &username); err != nil {
			return nil, fmt.Errorf("scan username row: %w", err)
		}
		out[id] = username
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate username rows: %w", err)
	}
	return out, nil
}
