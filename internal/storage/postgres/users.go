// internal/storage/postgres/users.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobtrack/internal/models"
	"jobtrack/internal/storage"
	"jobtrack/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = "id, name, email, password_hash, created_at, updated_at"

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

// Create saves a new user. The password is hashed by the caller.
func (r *UserRepo) Create(ctx context.Context, req *dto.CreateUserRequest, passwordHash string) (*models.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + userColumns

	var user models.User
	err := r.db.QueryRow(ctx, query, req.Name, req.Email, passwordHash).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			log.Printf("Error creating user: email %s already registered\n", req.Email)
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error creating user: %v\n", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User created successfully with ID: %d", user.ID)
	return &user, nil
}

// GetByID retrieves a specific user by id.
func (r *UserRepo) GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = $1"

	var user models.User
	err := r.db.QueryRow(ctx, query, req.ID).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with ID: %d\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by ID %d: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get user by ID %d: %w", req.ID, err)
	}

	return &user, nil
}

// GetByEmail retrieves a specific user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE email = $1"

	var user models.User
	err := r.db.QueryRow(ctx, query, req.Email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}
