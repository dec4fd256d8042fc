package repository

import (
	"context"
	"fmt"

	"github.com/jasimjamil/course-feedbig-system/internal/model"
	"github.com/jasimjamil/course-feedbig-system/internal/sqlerr"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user and returns the assigned id. passwordHash must
// already be hashed.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash, role string) (int64, error) {
	const query = `
		INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	if err := r.db.QueryRow(ctx, query, username, passwordHash, role).Scan(&id); err != nil {
		return 0, sqlerr.HandleError(err)
	}
	return id, nil
}

// GetByUsername returns the user including the password hash.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `
		SELECT id, username, password, role
		FROM users
		WHERE username = $1
	`

	var u model.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Role,
	)
	if err != nil {
		return nil, sqlerr.HandleError(fmt.Errorf("%susers: %w", sqlerr.TablePrefix, err))
	}
	return &u, nil
}
