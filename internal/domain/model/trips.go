package model

import (
	"time"
)

// Trip 1つの旅程を表すモデル
type Trip struct {
	ID          string    `json:"id" db:"id"`                   // ユニークな旅程ID
	Title       string    `json:"title" db:"title"`             // 旅程のタイトル
	Area        string    `json:"area" db:"area"`               // エリア名
	Description string    `json:"description" db:"description"` // 旅程の説明
	Tags        []string  `json:"tags" db:"tags"`               // タグ
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // 作成日時
}

// CreateTripRequest 旅程作成リクエスト
type CreateTripRequest struct {
	Title       string      `json:"title" validate:"required"`
	Area        string      `json:"area"`
	Description string      `json:"description"`
	Tags        []string    `json:"tags"`
	Locations   []*Location `json:"locations"` // 旅程に含める地点マーカー
}

// CreateTripResponse 旅程作成レスポンス
type CreateTripResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	TripID  string `json:"trip_id"`
}

// TripSummary 境界ボックス検索で返す旅程の概要
type TripSummary struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	AreaName      string   `json:"area_name"`
	Date          string   `json:"date"`
	Summary       string   `json:"summary"`
	Tags          []string `json:"tags"`
	LocationCount int      `json:"location_count"`
}

// TripDetail 旅程の詳細（地点マーカー込み）
type TripDetail struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	AreaName    string      `json:"area_name"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Tags        []string    `json:"tags"`
	Locations   []*Location `json:"locations"`
}
