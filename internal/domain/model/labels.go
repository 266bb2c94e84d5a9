package model

// LatLngBounds 地図ビューポートの境界ボックス（度単位）
type LatLngBounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Center 境界ボックスの中心座標を返す
func (b LatLngBounds) Center() LatLng {
	return LatLng{
		Lat: (b.North + b.South) / 2,
		Lng: (b.East + b.West) / 2,
	}
}

// IsDegenerate 縦または横の広がりを持たない境界ボックスかチェック
func (b LatLngBounds) IsDegenerate() bool {
	return b.North <= b.South || b.East <= b.West
}

// Hexagon ラベル配置候補の六角形グリッドセル
// グリッドは呼び出しごとに再生成され、永続化されない
type Hexagon struct {
	ID        string      `json:"id"`         // 決定的なセルID（例: "hex-3-12"）
	CenterLat float64     `json:"center_lat"` // セル中心の緯度
	CenterLng float64     `json:"center_lng"` // セル中心の経度
	Boundary  *GeoPolygon `json:"boundary,omitempty"` // 描画用の六角形頂点（フラットトップ）
}

// Center 六角形の中心座標をLatLng型で返す
func (h *Hexagon) Center() LatLng {
	return LatLng{Lat: h.CenterLat, Lng: h.CenterLng}
}

// LabelAssignment 1つの地点マーカーと1つの六角形セルの割り当て結果
// 元のマーカー座標も保持し、レンダラーが引き出し線を描画できるようにする
type LabelAssignment struct {
	LocationID  string  `json:"location_id"`
	Name        string  `json:"name"`
	LabelLat    float64 `json:"label_lat"`
	LabelLng    float64 `json:"label_lng"`
	HexagonID   string  `json:"hexagon_id"`
	OriginalLat float64 `json:"original_lat"`
	OriginalLng float64 `json:"original_lng"`
	Color       string  `json:"color"`
	PhotoName   *string `json:"photo_name,omitempty"`
}

// HexagonalLabelResult ラベル計算の結果（レンダラー診断用のグリッドデータ込み）
type HexagonalLabelResult struct {
	Labels            []*LabelAssignment `json:"labels"`
	Hexagons          []*Hexagon         `json:"hexagons"`
	HexSizeKm         float64            `json:"hex_size_km"`
	AvailableHexagons []*Hexagon         `json:"available_hexagons"`
	UsedHexagonIDs    map[string]bool    `json:"used_hexagon_ids"`
}
