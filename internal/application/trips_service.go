package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"TabiMap-App/internal/domain/model"
	"TabiMap-App/internal/domain/repository"
)

// TripsService 旅程に関するビジネスロジックを提供するサービス
type TripsService interface {
	// CreateTrip 旅程を地点マーカーごと新規作成
	CreateTrip(ctx context.Context, req *model.CreateTripRequest) (*model.CreateTripResponse, error)

	// GetTripsByBoundingBox 境界ボックス内の旅程一覧を取得
	GetTripsByBoundingBox(ctx context.Context, minLng, minLat, maxLng, maxLat float64) ([]model.TripSummary, error)

	// GetAllTrips 全旅程の一覧を取得（bbox指定なしの検索用）
	GetAllTrips(ctx context.Context) ([]model.TripSummary, error)

	// GetTripDetail 旅程の詳細を地点マーカー込みで取得
	GetTripDetail(ctx context.Context, id string) (*model.TripDetail, error)

	// GetNearbyLocations 指定座標の周辺に登録された地点マーカーを検索（旅程編集用）
	GetNearbyLocations(ctx context.Context, lat, lng float64, radiusMeters int) ([]*model.Location, error)
}

// tripsServiceImpl TripsServiceの実装
type tripsServiceImpl struct {
	tripsRepo     repository.TripsRepository
	locationsRepo repository.LocationsRepository
}

// NewTripsService TripsServiceの新しいインスタンスを作成
func NewTripsService(tripsRepo repository.TripsRepository, locationsRepo repository.LocationsRepository) TripsService {
	return &tripsServiceImpl{
		tripsRepo:     tripsRepo,
		locationsRepo: locationsRepo,
	}
}

// CreateTrip 旅程を作成
func (s *tripsServiceImpl) CreateTrip(ctx context.Context, req *model.CreateTripRequest) (*model.CreateTripResponse, error) {
	// 入力バリデーション
	if err := s.validateCreateTripRequest(req); err != nil {
		return nil, fmt.Errorf("リクエストの検証失敗: %w", err)
	}

	// UUIDを生成
	tripID := uuid.New().String()

	// 地点マーカーにIDと旅程IDを割り当てる
	for _, loc := range req.Locations {
		if loc == nil {
			continue
		}
		if loc.ID == "" {
			loc.ID = uuid.New().String()
		}
		loc.TripID = tripID
	}

	// Tripモデルを作成
	trip := &model.Trip{
		ID:          tripID,
		Title:       req.Title,
		Area:        req.Area,
		Description: req.Description,
		Tags:        req.Tags,
	}

	// 旅程本体を保存（境界ボックスはマーカーから計算される）
	if err := s.tripsRepo.Create(ctx, trip, req.Locations); err != nil {
		return nil, fmt.Errorf("旅程の保存失敗: %w", err)
	}

	// 地点マーカーを保存
	for _, loc := range req.Locations {
		if loc == nil {
			continue
		}
		if err := s.locationsRepo.Create(ctx, loc); err != nil {
			return nil, fmt.Errorf("地点マーカーの保存失敗: %w", err)
		}
	}

	return &model.CreateTripResponse{
		Status:  "success",
		Message: fmt.Sprintf("%d件の地点を含む旅程を作成しました", len(req.Locations)),
		TripID:  tripID,
	}, nil
}

// GetTripsByBoundingBox 境界ボックス内の旅程一覧を取得
func (s *tripsServiceImpl) GetTripsByBoundingBox(ctx context.Context, minLng, minLat, maxLng, maxLat float64) ([]model.TripSummary, error) {
	// 境界ボックスのバリデーション
	if err := s.validateBoundingBox(minLng, minLat, maxLng, maxLat); err != nil {
		return nil, fmt.Errorf("境界ボックスの検証失敗: %w", err)
	}

	trips, err := s.tripsRepo.GetTripsByBoundingBox(ctx, minLng, minLat, maxLng, maxLat)
	if err != nil {
		return nil, fmt.Errorf("旅程の取得失敗: %w", err)
	}

	if err := s.fillLocationCounts(ctx, trips); err != nil {
		return nil, err
	}

	return trips, nil
}

// GetAllTrips 全旅程の一覧を取得
func (s *tripsServiceImpl) GetAllTrips(ctx context.Context) ([]model.TripSummary, error) {
	trips, err := s.tripsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("旅程の取得失敗: %w", err)
	}

	summaries := make([]model.TripSummary, 0, len(trips))
	for _, trip := range trips {
		summaries = append(summaries, model.TripSummary{
			ID:       trip.ID,
			Title:    trip.Title,
			AreaName: trip.Area,
			Date:     trip.CreatedAt.Format("2006年1月2日"),
			Summary:  trip.Description,
			Tags:     trip.Tags,
		})
	}

	if err := s.fillLocationCounts(ctx, summaries); err != nil {
		return nil, err
	}

	return summaries, nil
}

// GetNearbyLocations 指定座標の周辺に登録された地点マーカーを検索
func (s *tripsServiceImpl) GetNearbyLocations(ctx context.Context, lat, lng float64, radiusMeters int) ([]*model.Location, error) {
	if err := s.validateNearbyQuery(lat, lng, radiusMeters); err != nil {
		return nil, fmt.Errorf("周辺検索の検証失敗: %w", err)
	}

	locations, err := s.locationsRepo.GetNearbyLocations(ctx, lat, lng, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("周辺地点の取得失敗: %w", err)
	}

	return locations, nil
}

// fillLocationCounts 各旅程概要に登録済みの地点数を設定する
func (s *tripsServiceImpl) fillLocationCounts(ctx context.Context, summaries []model.TripSummary) error {
	for i := range summaries {
		count, err := s.locationsRepo.CountByTripID(ctx, summaries[i].ID)
		if err != nil {
			return fmt.Errorf("旅程 %s の地点数取得失敗: %w", summaries[i].ID, err)
		}
		summaries[i].LocationCount = count
	}
	return nil
}

// GetTripDetail 旅程の詳細を取得
func (s *tripsServiceImpl) GetTripDetail(ctx context.Context, id string) (*model.TripDetail, error) {
	// IDの形式チェック
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("無効なTrip ID形式: %s", id)
	}

	trip, err := s.tripsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("旅程詳細の取得失敗: %w", err)
	}

	// 地点マーカーを登録順で取得
	locations, err := s.locationsRepo.GetByTripID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("旅程の地点取得失敗: %w", err)
	}

	detail := &model.TripDetail{
		ID:          trip.ID,
		Title:       trip.Title,
		AreaName:    trip.Area,
		Date:        trip.CreatedAt.Format("2006年1月2日"),
		Description: trip.Description,
		Tags:        trip.Tags,
		Locations:   locations,
	}

	return detail, nil
}

// validateCreateTripRequest リクエストのバリデーション
func (s *tripsServiceImpl) validateCreateTripRequest(req *model.CreateTripRequest) error {
	if req.Title == "" {
		return fmt.Errorf("タイトルは必須です")
	}
	for i, loc := range req.Locations {
		if loc == nil {
			continue
		}
		if loc.Name == "" {
			return fmt.Errorf("地点%dの名前は必須です", i+1)
		}
		if loc.Latitude < -90 || loc.Latitude > 90 {
			return fmt.Errorf("地点%dの緯度は-90から90の範囲内である必要があります", i+1)
		}
		if loc.Longitude < -180 || loc.Longitude > 180 {
			return fmt.Errorf("地点%dの経度は-180から180の範囲内である必要があります", i+1)
		}
	}
	return nil
}

// validateNearbyQuery 周辺検索パラメータのバリデーション
func (s *tripsServiceImpl) validateNearbyQuery(lat, lng float64, radiusMeters int) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("緯度は-90から90の範囲内である必要があります")
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("経度は-180から180の範囲内である必要があります")
	}
	if radiusMeters <= 0 {
		return fmt.Errorf("検索半径は1メートル以上である必要があります")
	}
	return nil
}

// validateBoundingBox 境界ボックスのバリデーション
func (s *tripsServiceImpl) validateBoundingBox(minLng, minLat, maxLng, maxLat float64) error {
	if minLng >= maxLng {
		return fmt.Errorf("経度の最小値は最大値より小さい必要があります")
	}
	if minLat >= maxLat {
		return fmt.Errorf("緯度の最小値は最大値より小さい必要があります")
	}
	if minLng < -180 || maxLng > 180 {
		return fmt.Errorf("経度は-180から180の範囲内である必要があります")
	}
	if minLat < -90 || maxLat > 90 {
		return fmt.Errorf("緯度は-90から90の範囲内である必要があります")
	}
	return nil
}
