package repository

import (
	"context"

	"clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail returns (nil, nil) when no user has the given email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByID returns (nil, nil) when the id is unknown.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
