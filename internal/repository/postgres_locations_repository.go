package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"TabiMap-App/internal/domain/model"
	"TabiMap-App/internal/domain/repository"
	"TabiMap-App/internal/infrastructure/database"
)

type PostgresLocationsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresLocationsRepository(client *database.PostgreSQLClient) repository.LocationsRepository {
	return &PostgresLocationsRepository{
		client: client,
	}
}

// LocationResult PostGIS関数の結果を受け取るための構造体
type LocationResult struct {
	ID         string
	TripID     string
	Name       string
	Location   string
	ColorIndex sql.NullInt64
	PhotoName  sql.NullString
}

// ToLocation LocationResultをmodel.Locationに変換
func (lr *LocationResult) ToLocation() (*model.Location, error) {
	var geometry model.Geometry
	if err := json.Unmarshal([]byte(lr.Location), &geometry); err != nil {
		return nil, fmt.Errorf("location JSONBパースエラー: %w", err)
	}
	if len(geometry.Coordinates) < 2 {
		return nil, fmt.Errorf("location座標が不正です: %s", lr.Location)
	}

	location := &model.Location{
		ID:        lr.ID,
		TripID:    lr.TripID,
		Name:      lr.Name,
		Latitude:  geometry.Coordinates[1],
		Longitude: geometry.Coordinates[0],
	}

	if lr.ColorIndex.Valid {
		colorIndex := int(lr.ColorIndex.Int64)
		location.ColorIndex = &colorIndex
	}
	if lr.PhotoName.Valid {
		location.PhotoName = &lr.PhotoName.String
	}

	return location, nil
}

func (r *PostgresLocationsRepository) GetByID(ctx context.Context, id string) (*model.Location, error) {
	query := `SELECT id, trip_id, name, ST_AsGeoJSON(location)::jsonb as location, color_index, photo_name FROM trip_locations WHERE id = $1`

	row := r.client.DB.QueryRowContext(ctx, query, id)

	var result LocationResult
	err := row.Scan(&result.ID, &result.TripID, &result.Name, &result.Location,
		&result.ColorIndex, &result.PhotoName)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("地点ID %s が見つかりません", id)
		}
		return nil, fmt.Errorf("地点データの取得失敗: %w", err)
	}

	return result.ToLocation()
}

func (r *PostgresLocationsRepository) GetByTripID(ctx context.Context, tripID string) ([]*model.Location, error) {
	// 登録順で返す: ラベル割り当ての先着順と色の既定インデックスが作成順に固定される
	query := `SELECT id, trip_id, name, ST_AsGeoJSON(location)::jsonb as location, color_index, photo_name
		FROM trip_locations WHERE trip_id = $1 ORDER BY created_at, id`

	rows, err := r.client.DB.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("旅程 %s の地点データ取得失敗: %w", tripID, err)
	}
	defer rows.Close()

	var locations []*model.Location
	for rows.Next() {
		var result LocationResult
		err := rows.Scan(&result.ID, &result.TripID, &result.Name, &result.Location,
			&result.ColorIndex, &result.PhotoName)
		if err != nil {
			return nil, fmt.Errorf("地点データスキャンエラー: %w", err)
		}

		location, err := result.ToLocation()
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	return locations, nil
}

func (r *PostgresLocationsRepository) GetNearbyLocations(ctx context.Context, lat, lng float64, radiusMeters int) ([]*model.Location, error) {
	// 直接SQLでPostGIS関数を使用した効率的な検索
	query := `
		SELECT
			l.id, l.trip_id, l.name,
			ST_AsGeoJSON(l.location)::jsonb as location,
			l.color_index, l.photo_name
		FROM trip_locations l
		WHERE ST_DWithin(
			ST_GeogFromText('POINT(' || $2 || ' ' || $1 || ')'),
			l.location::geography,
			$3
		)
		ORDER BY ST_Distance(
			ST_GeogFromText('POINT(' || $2 || ' ' || $1 || ')'),
			l.location::geography
		)
		LIMIT 50
	`

	rows, err := r.client.DB.QueryContext(ctx, query, lat, lng, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("周辺地点データの取得失敗: %w", err)
	}
	defer rows.Close()

	var locations []*model.Location
	for rows.Next() {
		var result LocationResult
		err := rows.Scan(&result.ID, &result.TripID, &result.Name, &result.Location,
			&result.ColorIndex, &result.PhotoName)
		if err != nil {
			return nil, fmt.Errorf("地点データスキャンエラー: %w", err)
		}

		location, err := result.ToLocation()
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	return locations, nil
}

func (r *PostgresLocationsRepository) CountByTripID(ctx context.Context, tripID string) (int, error) {
	query := `SELECT COUNT(*) FROM trip_locations WHERE trip_id = $1`

	var count int
	if err := r.client.DB.QueryRowContext(ctx, query, tripID).Scan(&count); err != nil {
		return 0, fmt.Errorf("旅程 %s の地点数取得失敗: %w", tripID, err)
	}

	return count, nil
}

func (r *PostgresLocationsRepository) Create(ctx context.Context, location *model.Location) error {
	query := `
		INSERT INTO trip_locations (id, trip_id, name, location, color_index, photo_name)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7)
	`

	var colorIndex sql.NullInt64
	if location.ColorIndex != nil {
		colorIndex = sql.NullInt64{Int64: int64(*location.ColorIndex), Valid: true}
	}
	var photoName sql.NullString
	if location.PhotoName != nil {
		photoName = sql.NullString{String: *location.PhotoName, Valid: true}
	}

	_, err := r.client.DB.ExecContext(ctx, query,
		location.ID, location.TripID, location.Name,
		location.Longitude, location.Latitude, colorIndex, photoName)
	if err != nil {
		return fmt.Errorf("地点データの作成失敗: %w", err)
	}

	return nil
}
