package service

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"TabiMap-App/internal/domain/model"
)

const (
	// worldVerticalExtentKm 地球の縦方向のおおよその周長 (km)
	worldVerticalExtentKm = 40000.0
	// targetVerticalHexes ビューポートの縦方向に積む六角形の目標数
	targetVerticalHexes = 8.0
	// 六角形半径のクランプ範囲 (km)
	minHexSizeKm = 1.0
	maxHexSizeKm = 500.0
	// kmPerDegreeLat 緯度1度あたりのkm（赤道上の経度1度も同じ）
	kmPerDegreeLat = 111.0
	// gridPaddingCells 境界ボックスの外側に追加するセル数（各辺）
	// ビューポート端付近のマーカーにも候補セルを確保する
	gridPaddingCells = 2
)

// CalculateHexSizeKm ズームレベルから六角形の半径(km)を導出する
// ズームレベルzで見える縦方向の範囲は 40000 / 2^z km であり、
// そこに8個の六角形を積むと仮定して半径を決める
// viewportHeightPxはインターフェース互換のために受け取るが数値としては使わない
func CalculateHexSizeKm(zoom float64, viewportHeightPx int) float64 {
	visibleExtentKm := worldVerticalExtentKm / math.Pow(2, zoom)
	hexSizeKm := visibleExtentKm / targetVerticalHexes / 2
	return math.Min(maxHexSizeKm, math.Max(minHexSizeKm, hexSizeKm))
}

// GenerateHexGrid 境界ボックスをフラットトップ六角形の格子で敷き詰める
// 格子は正距円筒近似で計算する: 緯度1度 ≈ 111km、経度1度 ≈ 111·cos(φ) km
// 高緯度（|lat| > 85°程度）では経度換算が数値的に不安定になる既知の近似限界がある
// 退化した境界ボックス（north <= south / east <= west）は空のグリッドを返す
func GenerateHexGrid(bounds model.LatLngBounds, hexSizeKm float64) []*model.Hexagon {
	if bounds.IsDegenerate() || hexSizeKm <= 0 {
		return []*model.Hexagon{}
	}

	centerLat := bounds.Center().Lat
	latPerKm := 1.0 / kmPerDegreeLat
	lngPerKm := 1.0 / (kmPerDegreeLat * math.Cos(centerLat*math.Pi/180))

	// フラットトップ格子の間隔: 横 √3·r、縦 1.5·r（レンガ状の行オフセット前提）
	horizSpacingDeg := math.Sqrt(3) * hexSizeKm * lngPerKm
	vertSpacingDeg := 1.5 * hexSizeKm * latPerKm

	rows := int(math.Ceil((bounds.North-bounds.South)/vertSpacingDeg)) + gridPaddingCells*2
	cols := int(math.Ceil((bounds.East-bounds.West)/horizSpacingDeg)) + gridPaddingCells*2

	startLat := bounds.South - float64(gridPaddingCells)*vertSpacingDeg
	startLng := bounds.West - float64(gridPaddingCells)*horizSpacingDeg

	hexagons := make([]*model.Hexagon, 0, rows*cols)
	for row := 0; row < rows; row++ {
		lat := startLat + float64(row)*vertSpacingDeg

		// 奇数行を半セルずらしてレンガ状に並べ、真の六角形隣接を作る
		offsetDeg := 0.0
		if row%2 == 1 {
			offsetDeg = horizSpacingDeg / 2
		}

		for col := 0; col < cols; col++ {
			lng := startLng + float64(col)*horizSpacingDeg + offsetDeg
			hexagons = append(hexagons, &model.Hexagon{
				ID:        fmt.Sprintf("hex-%d-%d", row, col),
				CenterLat: lat,
				CenterLng: lng,
				Boundary:  hexagonBoundary(lat, lng, hexSizeKm, latPerKm, lngPerKm),
			})
		}
	}

	return hexagons
}

// hexagonBoundary フラットトップ六角形の頂点ポリゴンを生成する（描画用）
// 頂点は0°から60°刻みで6点、GeoJSONの慣例に従い始点を終点として閉じる
func hexagonBoundary(centerLat, centerLng, hexSizeKm, latPerKm, lngPerKm float64) *model.GeoPolygon {
	ring := make(orb.Ring, 0, 7)
	for i := 0; i < 6; i++ {
		angle := float64(i) * math.Pi / 3
		vertex := orb.Point{
			centerLng + math.Cos(angle)*hexSizeKm*lngPerKm,
			centerLat + math.Sin(angle)*hexSizeKm*latPerKm,
		}
		ring = append(ring, vertex)
	}
	ring = append(ring, ring[0])

	coordinates := make([][]float64, 0, len(ring))
	for _, p := range ring {
		coordinates = append(coordinates, []float64{p.Lon(), p.Lat()})
	}

	return &model.GeoPolygon{
		Type:        "Polygon",
		Coordinates: [][][]float64{coordinates},
	}
}
