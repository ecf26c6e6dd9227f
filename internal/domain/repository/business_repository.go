package repository

import (
	"context"

	"tucomercio/internal/domain/entity"
)

type BusinessRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Business, error)
	List(ctx context.Context) ([]*entity.Business, error)
}

type PlanRepository interface {
	List(ctx context.Context) ([]*entity.Plan, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
}
