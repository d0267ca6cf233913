package repository

import (
	"context"
	"errors"

	"github.com/harivola/medbot-api/internal/models"
)

var (
	// ErrNotFound is returned when no document matches the query.
	ErrNotFound = errors.New("repository: not found")
	// ErrDuplicate is returned when a unique index rejects a write.
	ErrDuplicate = errors.New("repository: duplicate key")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type CapsuleRepository interface {
	List(ctx context.Context) ([]models.Capsule, error)
	FindByBusinessID(ctx context.Context, id string) (models.Capsule, error)
	// Upsert merges fields into the capsule with the given business id,
	// creating it when absent. Reports whether a new document was created.
	Upsert(ctx context.Context, id string, fields models.Capsule) (models.Capsule, bool, error)
}

type PatientRepository interface {
	List(ctx context.Context) ([]models.Patient, error)
	FindByBusinessID(ctx context.Context, id string) (*models.Patient, error)
	Create(ctx context.Context, patient *models.Patient) error
	DeleteByBusinessID(ctx context.Context, id string) error
}
