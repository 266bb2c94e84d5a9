package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"TabiMap-App/internal/database"
	"TabiMap-App/internal/domain/model"
	"TabiMap-App/internal/domain/repository"
)

type SupabaseTripsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseTripsRepository(client *database.SupabaseClient) repository.TripsRepository {
	return &SupabaseTripsRepository{
		client: client,
	}
}

func (r *SupabaseTripsRepository) Create(ctx context.Context, trip *model.Trip, locations []*model.Location) error {
	// Trip を DB 保存用の形式に変換（境界ボックスを含む）
	tripDB := TripToTripDB(trip, locations)

	data, err := json.Marshal(tripDB)
	if err != nil {
		return fmt.Errorf("旅程データのJSONマーシャル失敗: %w", err)
	}

	_, _, err = r.client.GetClient().From("trips").Insert(string(data), false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("旅程データの作成失敗: %w", err)
	}

	return nil
}

func (r *SupabaseTripsRepository) GetByID(ctx context.Context, id string) (*model.Trip, error) {
	var trips []model.Trip
	data, count, err := r.client.GetClient().From("trips").Select("*", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("旅程データの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &trips); err != nil {
		return nil, fmt.Errorf("旅程データのJSONアンマーシャル失敗: %w", err)
	}

	if len(trips) == 0 {
		return nil, fmt.Errorf("旅程ID %s が見つかりません", id)
	}

	return &trips[0], nil
}

func (r *SupabaseTripsRepository) GetTripsByBoundingBox(ctx context.Context, minLng, minLat, maxLng, maxLat float64) ([]model.TripSummary, error) {
	// 入力値の検証
	if minLng >= maxLng || minLat >= maxLat {
		return nil, fmt.Errorf("無効な境界ボックス: min値がmax値以上です")
	}

	// 座標値の範囲チェック（経度: -180〜180, 緯度: -90〜90）
	if minLng < -180 || maxLng > 180 || minLat < -90 || maxLat > 90 {
		return nil, fmt.Errorf("座標値が有効範囲外です")
	}

	// orb.Bound を使用して境界ボックスを作成
	bound := orb.Bound{
		Min: orb.Point{minLng, minLat},
		Max: orb.Point{maxLng, maxLat},
	}

	// WKT文字列として出力（orb使用）
	wktString := wkt.MarshalString(bound.ToPolygon())

	// PostGIS ST_Intersects関数を使用して境界ボックス内のtripsを検索
	var trips []model.Trip
	data, count, err := r.client.GetClient().From("trips").
		Select("id,title,area,description,tags,created_at", "exact", false).
		Filter("trip_bounds", "st_intersects", fmt.Sprintf("ST_GeomFromText('%s', 4326)", wktString)).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("境界ボックス検索エラー: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &trips); err != nil {
		return nil, fmt.Errorf("旅程データのJSONアンマーシャル失敗: %w", err)
	}

	// Trip から TripSummary に変換
	var summaries []model.TripSummary
	for _, trip := range trips {
		summary := model.TripSummary{
			ID:       trip.ID,
			Title:    trip.Title,
			AreaName: trip.Area,
			Date:     trip.CreatedAt.Format("2006年1月2日"),
			Summary:  trip.Description,
			Tags:     trip.Tags,
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (r *SupabaseTripsRepository) GetAll(ctx context.Context) ([]model.Trip, error) {
	var trips []model.Trip
	data, count, err := r.client.GetClient().From("trips").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("全旅程データの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &trips); err != nil {
		return nil, fmt.Errorf("旅程データのJSONアンマーシャル失敗: %w", err)
	}

	return trips, nil
}
