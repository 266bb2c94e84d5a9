package application_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"TabiMap-App/internal/application"
	"TabiMap-App/internal/domain/model"
)

// fakeTripsRepository TripsRepositoryのインメモリ実装
type fakeTripsRepository struct {
	trips map[string]*model.Trip
}

func newFakeTripsRepository() *fakeTripsRepository {
	return &fakeTripsRepository{trips: make(map[string]*model.Trip)}
}

func (r *fakeTripsRepository) Create(ctx context.Context, trip *model.Trip, locations []*model.Location) error {
	trip.CreatedAt = time.Now()
	r.trips[trip.ID] = trip
	return nil
}

func (r *fakeTripsRepository) GetByID(ctx context.Context, id string) (*model.Trip, error) {
	trip, ok := r.trips[id]
	if !ok {
		return nil, fmt.Errorf("旅程が見つかりません: %s", id)
	}
	return trip, nil
}

func (r *fakeTripsRepository) GetTripsByBoundingBox(ctx context.Context, minLng, minLat, maxLng, maxLat float64) ([]model.TripSummary, error) {
	summaries := make([]model.TripSummary, 0, len(r.trips))
	for _, trip := range r.trips {
		summaries = append(summaries, model.TripSummary{ID: trip.ID, Title: trip.Title})
	}
	return summaries, nil
}

func (r *fakeTripsRepository) GetAll(ctx context.Context) ([]model.Trip, error) {
	all := make([]model.Trip, 0, len(r.trips))
	for _, trip := range r.trips {
		all = append(all, *trip)
	}
	return all, nil
}

// fakeLocationsRepository LocationsRepositoryのインメモリ実装
type fakeLocationsRepository struct {
	locations []*model.Location
}

func (r *fakeLocationsRepository) GetByID(ctx context.Context, id string) (*model.Location, error) {
	for _, loc := range r.locations {
		if loc.ID == id {
			return loc, nil
		}
	}
	return nil, fmt.Errorf("地点が見つかりません: %s", id)
}

func (r *fakeLocationsRepository) GetByTripID(ctx context.Context, tripID string) ([]*model.Location, error) {
	result := []*model.Location{}
	for _, loc := range r.locations {
		if loc.TripID == tripID {
			result = append(result, loc)
		}
	}
	return result, nil
}

func (r *fakeLocationsRepository) GetNearbyLocations(ctx context.Context, lat, lng float64, radiusMeters int) ([]*model.Location, error) {
	return r.locations, nil
}

func (r *fakeLocationsRepository) CountByTripID(ctx context.Context, tripID string) (int, error) {
	count := 0
	for _, loc := range r.locations {
		if loc.TripID == tripID {
			count++
		}
	}
	return count, nil
}

func (r *fakeLocationsRepository) Create(ctx context.Context, location *model.Location) error {
	r.locations = append(r.locations, location)
	return nil
}

func newTestTripsService() (application.TripsService, *fakeTripsRepository, *fakeLocationsRepository) {
	tripsRepo := newFakeTripsRepository()
	locationsRepo := &fakeLocationsRepository{}
	return application.NewTripsService(tripsRepo, locationsRepo), tripsRepo, locationsRepo
}

func TestCreateTrip(t *testing.T) {
	ctx := context.Background()

	t.Run("旅程と地点マーカーが保存される", func(t *testing.T) {
		svc, tripsRepo, locationsRepo := newTestTripsService()

		req := &model.CreateTripRequest{
			Title: "京都週末旅行",
			Area:  "京都",
			Locations: []*model.Location{
				{Name: "金閣寺", Latitude: 35.0394, Longitude: 135.7292},
				{Name: "清水寺", Latitude: 34.9949, Longitude: 135.7850},
			},
		}

		resp, err := svc.CreateTrip(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "success", resp.Status)

		// 生成されたTrip IDは有効なUUID
		_, err = uuid.Parse(resp.TripID)
		assert.NoError(t, err)

		assert.Contains(t, tripsRepo.trips, resp.TripID)
		assert.Len(t, locationsRepo.locations, 2)
		for _, loc := range locationsRepo.locations {
			assert.Equal(t, resp.TripID, loc.TripID)
			assert.NotEmpty(t, loc.ID)
		}
	})

	t.Run("タイトルが無いと検証エラー", func(t *testing.T) {
		svc, _, _ := newTestTripsService()

		_, err := svc.CreateTrip(ctx, &model.CreateTripRequest{Title: ""})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "検証失敗")
	})

	t.Run("地点の緯度が範囲外だと検証エラー", func(t *testing.T) {
		svc, _, _ := newTestTripsService()

		req := &model.CreateTripRequest{
			Title: "不正な旅程",
			Locations: []*model.Location{
				{Name: "どこか", Latitude: 95.0, Longitude: 135.0},
			},
		}
		_, err := svc.CreateTrip(ctx, req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "検証失敗")
	})
}

func TestGetTripDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("地点マーカー込みで詳細を返す", func(t *testing.T) {
		svc, _, _ := newTestTripsService()

		resp, err := svc.CreateTrip(ctx, &model.CreateTripRequest{
			Title: "大阪日帰り",
			Locations: []*model.Location{
				{Name: "大阪城", Latitude: 34.6873, Longitude: 135.5262},
			},
		})
		assert.NoError(t, err)

		detail, err := svc.GetTripDetail(ctx, resp.TripID)
		assert.NoError(t, err)
		assert.Equal(t, "大阪日帰り", detail.Title)
		assert.Len(t, detail.Locations, 1)
		assert.Equal(t, "大阪城", detail.Locations[0].Name)
	})

	t.Run("不正なID形式はエラー", func(t *testing.T) {
		svc, _, _ := newTestTripsService()

		_, err := svc.GetTripDetail(ctx, "not-a-uuid")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "無効なTrip ID")
	})

	t.Run("存在しないIDは見つからないエラー", func(t *testing.T) {
		svc, _, _ := newTestTripsService()

		_, err := svc.GetTripDetail(ctx, uuid.New().String())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "見つかりません")
	})
}

func TestGetTripsByBoundingBox(t *testing.T) {
	ctx := context.Background()

	t.Run("範囲内の旅程一覧を地点数付きで返す", func(t *testing.T) {
		svc, _, _ := newTestTripsService()

		_, err := svc.CreateTrip(ctx, &model.CreateTripRequest{
			Title: "京都週末旅行",
			Locations: []*model.Location{
				{Name: "金閣寺", Latitude: 35.0394, Longitude: 135.7292},
				{Name: "清水寺", Latitude: 34.9949, Longitude: 135.7850},
			},
		})
		assert.NoError(t, err)

		trips, err := svc.GetTripsByBoundingBox(ctx, 135.0, 34.0, 136.0, 36.0)
		assert.NoError(t, err)
		assert.Len(t, trips, 1)
		assert.Equal(t, 2, trips[0].LocationCount)
	})

	t.Run("最小値が最大値以上だと検証エラー", func(t *testing.T) {
		svc, _, _ := newTestTripsService()

		_, err := svc.GetTripsByBoundingBox(ctx, 136.0, 34.0, 135.0, 36.0)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "検証失敗")
	})

	t.Run("範囲外の座標だと検証エラー", func(t *testing.T) {
		svc, _, _ := newTestTripsService()

		_, err := svc.GetTripsByBoundingBox(ctx, -200.0, 34.0, 135.0, 36.0)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "検証失敗")
	})
}

func TestGetAllTrips(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTripsService()

	first, err := svc.CreateTrip(ctx, &model.CreateTripRequest{
		Title: "京都週末旅行",
		Locations: []*model.Location{
			{Name: "金閣寺", Latitude: 35.0394, Longitude: 135.7292},
			{Name: "清水寺", Latitude: 34.9949, Longitude: 135.7850},
		},
	})
	assert.NoError(t, err)

	second, err := svc.CreateTrip(ctx, &model.CreateTripRequest{
		Title: "大阪日帰り",
		Locations: []*model.Location{
			{Name: "大阪城", Latitude: 34.6873, Longitude: 135.5262},
		},
	})
	assert.NoError(t, err)

	trips, err := svc.GetAllTrips(ctx)
	assert.NoError(t, err)
	assert.Len(t, trips, 2)

	// 各概要に登録済みの地点数が設定される
	countByID := make(map[string]int)
	for _, trip := range trips {
		countByID[trip.ID] = trip.LocationCount
		assert.NotEmpty(t, trip.Date)
	}
	assert.Equal(t, 2, countByID[first.TripID])
	assert.Equal(t, 1, countByID[second.TripID])
}

func TestGetNearbyLocations(t *testing.T) {
	ctx := context.Background()

	t.Run("周辺の登録地点を返す", func(t *testing.T) {
		svc, _, _ := newTestTripsService()

		_, err := svc.CreateTrip(ctx, &model.CreateTripRequest{
			Title: "京都週末旅行",
			Locations: []*model.Location{
				{Name: "金閣寺", Latitude: 35.0394, Longitude: 135.7292},
			},
		})
		assert.NoError(t, err)

		locations, err := svc.GetNearbyLocations(ctx, 35.04, 135.73, 1000)
		assert.NoError(t, err)
		assert.Len(t, locations, 1)
		assert.Equal(t, "金閣寺", locations[0].Name)
	})

	t.Run("緯度が範囲外だと検証エラー", func(t *testing.T) {
		svc, _, _ := newTestTripsService()

		_, err := svc.GetNearbyLocations(ctx, 95.0, 135.73, 1000)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "検証失敗")
	})

	t.Run("半径0以下だと検証エラー", func(t *testing.T) {
		svc, _, _ := newTestTripsService()

		_, err := svc.GetNearbyLocations(ctx, 35.04, 135.73, 0)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "検証失敗")
	})
}
