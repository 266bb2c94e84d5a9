package repository

import (
	"github.com/paulmach/orb"

	"TabiMap-App/internal/domain/model"
)

// CreateTripBoundsPolygon 旅程の全マーカーを覆う境界ボックスポリゴンを作成
// bbox検索（st_intersects）用にtripsテーブルへ保存する
func CreateTripBoundsPolygon(locations []*model.Location) *model.GeoPolygon {
	if len(locations) == 0 {
		return nil
	}

	// orb.Bound を全マーカーで拡張する
	first := orb.Point{locations[0].Longitude, locations[0].Latitude}
	bound := orb.Bound{Min: first, Max: first}
	for _, loc := range locations {
		if loc == nil {
			continue
		}
		bound = bound.Extend(orb.Point{loc.Longitude, loc.Latitude})
	}

	// 少し余裕を持たせる（約100m程度）
	padding := 0.001 // 約111m
	bound = bound.Pad(padding)

	minLng := bound.Min.Lon()
	minLat := bound.Min.Lat()
	maxLng := bound.Max.Lon()
	maxLat := bound.Max.Lat()

	coordinates := [][][]float64{
		{
			{minLng, minLat}, // 左下
			{maxLng, minLat}, // 右下
			{maxLng, maxLat}, // 右上
			{minLng, maxLat}, // 左上
			{minLng, minLat}, // 閉じる
		},
	}

	return &model.GeoPolygon{
		Type:        "Polygon",
		Coordinates: coordinates,
	}
}

// TripDB Trip を DB 保存用の構造体に変換したもの
type TripDB struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Area        string            `json:"area"`
	Description string            `json:"description"`
	Tags        []string          `json:"tags"`
	TripBounds  *model.GeoPolygon `json:"trip_bounds"`
}

// TripToTripDB model.Trip を DB 保存用に変換
// 境界ボックスはマーカー一覧から計算する
func TripToTripDB(trip *model.Trip, locations []*model.Location) *TripDB {
	return &TripDB{
		ID:          trip.ID,
		Title:       trip.Title,
		Area:        trip.Area,
		Description: trip.Description,
		Tags:        trip.Tags,
		TripBounds:  CreateTripBoundsPolygon(locations),
	}
}
