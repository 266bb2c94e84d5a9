package model

// LatLng 緯度経度を表す基本的な型（距離計算などで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location 旅程に登録された地点マーカーを表すモデル
// エンジンへの入力であり、計算中に変更されることはない
type Location struct {
	ID         string  `json:"id" db:"id"`                           // ユニークな地点ID
	TripID     string  `json:"trip_id,omitempty" db:"trip_id"`       // 所属する旅程ID
	Name       string  `json:"name" db:"name"`                       // 地点名（ラベルに表示）
	Latitude   float64 `json:"latitude" db:"latitude"`               // 緯度
	Longitude  float64 `json:"longitude" db:"longitude"`             // 経度
	ColorIndex *int    `json:"color_index,omitempty" db:"color_index"` // パレット内の色番号（NULLABLE）
	PhotoName  *string `json:"photo_name,omitempty" db:"photo_name"`   // サムネイル写真名（NULLABLE）
}

// ToLatLng Locationの位置情報をLatLng型に変換
func (l *Location) ToLatLng() LatLng {
	return LatLng{
		Lat: l.Latitude,
		Lng: l.Longitude,
	}
}

// Geometry PostGIS GEOMETRY(Point)型に対応する構造体
// ST_AsGeoJSONの結果をパースするために使用する
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
}

// GeoPolygon PostGIS GEOMETRY(Polygon)型に対応する構造体
type GeoPolygon struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}
