package repository

import (
	"context"

	"TabiMap-App/internal/domain/model"
)

type TripsRepository interface {
	Create(ctx context.Context, trip *model.Trip, locations []*model.Location) error
	GetByID(ctx context.Context, id string) (*model.Trip, error)
	GetTripsByBoundingBox(ctx context.Context, minLng, minLat, maxLng, maxLat float64) ([]model.TripSummary, error)
	GetAll(ctx context.Context) ([]model.Trip, error)
}
