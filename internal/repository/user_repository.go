package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/model"
	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/utils"
)

// UserRepo provides access to the 'users' table.  It is the only
// persistent store in the service: seat and hold state is in-memory
// by design and does not survive restarts.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user with a bcrypt-hashed password and returns its ID.
func (r *UserRepo) Create(ctx context.Context, username, email, password string, cost int) (uint64, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash) VALUES (?,?,?)",
		username, email, hash)
	if err != nil {
		// 1062 = MySQL duplicate entry on the unique username/email keys
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUserExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByLogin fetches a user by username or normalized email, so
// clients may log in with either.
func (r *UserRepo) GetByLogin(ctx context.Context, login string) (model.User, error) {
	login = strings.TrimSpace(login)
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,email,password_hash,created_at FROM users WHERE username=? OR email=? LIMIT 1",
		login, strings.ToLower(login)).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}
