package repository

import (
	"context"

	"TabiMap-App/internal/domain/model"
)

type LocationsRepository interface {
	GetByID(ctx context.Context, id string) (*model.Location, error)
	GetByTripID(ctx context.Context, tripID string) ([]*model.Location, error)
	GetNearbyLocations(ctx context.Context, lat, lng float64, radiusMeters int) ([]*model.Location, error)
	CountByTripID(ctx context.Context, tripID string) (int, error)
	Create(ctx context.Context, location *model.Location) error
}
