package model

import "time"

// HexagonalLabelRequest ラベル計算APIのリクエスト
// Locationsを直接渡すか、TripIDでDBに保存済みの地点を指定する
type HexagonalLabelRequest struct {
	TripID           string        `json:"trip_id,omitempty"`
	Locations        []*Location   `json:"locations"`
	Bounds           *LatLngBounds `json:"bounds" validate:"required"`
	Zoom             float64       `json:"zoom"`
	ViewportHeightPx int           `json:"viewport_height_px"`
	MarkerColors     []string      `json:"marker_colors"` // 省略時はDefaultMarkerColors
}

// LabelPlacement 保存されたラベル配置スナップショット
type LabelPlacement struct {
	PlacementID string             `json:"placement_id"` // 一時ID
	TripID      string             `json:"trip_id,omitempty"`
	Labels      []*LabelAssignment `json:"labels"`
	HexSizeKm   float64            `json:"hex_size_km"`
	Zoom        float64            `json:"zoom"`
	Bounds      *LatLngBounds      `json:"bounds"`
}

// FirestoreLabelPlacement Firestore保存用のラベル配置ドキュメント
type FirestoreLabelPlacement struct {
	TripID    string             `firestore:"trip_id"`
	Labels    []*LabelAssignment `firestore:"labels"`
	HexSizeKm float64            `firestore:"hex_size_km"`
	Zoom      float64            `firestore:"zoom"`
	Bounds    *LatLngBounds      `firestore:"bounds"`
	ExpireAt  time.Time          `firestore:"expireAt"`
}

// ToFirestoreLabelPlacement TTL付きのFirestoreドキュメントに変換
func (lp *LabelPlacement) ToFirestoreLabelPlacement(ttlHours int) *FirestoreLabelPlacement {
	return &FirestoreLabelPlacement{
		TripID:    lp.TripID,
		Labels:    lp.Labels,
		HexSizeKm: lp.HexSizeKm,
		Zoom:      lp.Zoom,
		Bounds:    lp.Bounds,
		ExpireAt:  time.Now().Add(time.Duration(ttlHours) * time.Hour),
	}
}

// ToLabelPlacement FirestoreドキュメントからLabelPlacementに変換
func (flp *FirestoreLabelPlacement) ToLabelPlacement(placementID string) *LabelPlacement {
	return &LabelPlacement{
		PlacementID: placementID,
		TripID:      flp.TripID,
		Labels:      flp.Labels,
		HexSizeKm:   flp.HexSizeKm,
		Zoom:        flp.Zoom,
		Bounds:      flp.Bounds,
	}
}
