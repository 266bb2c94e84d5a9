package service

import (
	"math"

	"TabiMap-App/internal/domain/helper"
	"TabiMap-App/internal/domain/model"
)

// exclusionRadiusFactor マーカー周辺の除外半径の係数
// 六角形半径の1.2倍（20%の安全マージン）でラベルがマーカーに重ならないようにする
const exclusionRadiusFactor = 1.2

// HexagonalLabelService は地図マーカーのラベル配置計算を行う単一のサービス
// 計算は純粋関数であり、呼び出し間で状態を共有しない
type HexagonalLabelService interface {
	CalculateHexagonalLabels(locations []*model.Location, bounds model.LatLngBounds, zoom float64, viewportHeightPx int, markerColors []string) *model.HexagonalLabelResult
}

type hexagonalLabelService struct{}

// NewHexagonalLabelService 新しいHexagonalLabelServiceインスタンスを作成
func NewHexagonalLabelService() HexagonalLabelService {
	return &hexagonalLabelService{}
}

// CalculateHexagonalLabels は各マーカーに重ならない六角形グリッド上のラベル位置を計算する
// パイプライン: サイズ導出 → グリッド生成 → 除外フィルタ → 最近傍割り当て
func (s *hexagonalLabelService) CalculateHexagonalLabels(
	locations []*model.Location,
	bounds model.LatLngBounds,
	zoom float64,
	viewportHeightPx int,
	markerColors []string,
) *model.HexagonalLabelResult {
	// 地点が空の場合は空の結果を返す（エラーにしない）
	if len(locations) == 0 {
		return &model.HexagonalLabelResult{
			Labels:            []*model.LabelAssignment{},
			Hexagons:          []*model.Hexagon{},
			HexSizeKm:         0,
			AvailableHexagons: []*model.Hexagon{},
			UsedHexagonIDs:    map[string]bool{},
		}
	}

	if len(markerColors) == 0 {
		markerColors = model.DefaultMarkerColors
	}

	hexSizeKm := CalculateHexSizeKm(zoom, viewportHeightPx)
	hexagons := GenerateHexGrid(bounds, hexSizeKm)
	availableHexagons := filterAvailableHexagons(hexagons, locations, hexSizeKm*exclusionRadiusFactor)
	labels, usedHexagonIDs := assignNearestHexagons(availableHexagons, locations, markerColors)

	return &model.HexagonalLabelResult{
		Labels:            labels,
		Hexagons:          hexagons,
		HexSizeKm:         hexSizeKm,
		AvailableHexagons: availableHexagons,
		UsedHexagonIDs:    usedHexagonIDs,
	}
}

// filterAvailableHexagons すべてのマーカーから除外半径より遠いセルだけを残す
// 割り当て対象のマーカーだけでなく、全マーカーとの距離を確認する
func filterAvailableHexagons(hexagons []*model.Hexagon, locations []*model.Location, exclusionRadiusKm float64) []*model.Hexagon {
	available := make([]*model.Hexagon, 0, len(hexagons))
	for _, hex := range hexagons {
		if helper.MinDistanceToLocations(hex.Center(), locations) > exclusionRadiusKm {
			available = append(available, hex)
		}
	}
	return available
}

// assignNearestHexagons 各地点を最も近い未使用セルに貪欲に割り当てる
// 地点は入力順に処理する: セルの競合は先着順で解決される
// 候補が尽きた地点はラベルなしで省略される（エラーにしない）
func assignNearestHexagons(availableHexagons []*model.Hexagon, locations []*model.Location, markerColors []string) ([]*model.LabelAssignment, map[string]bool) {
	labels := make([]*model.LabelAssignment, 0, len(locations))
	usedHexagonIDs := make(map[string]bool)

	for i, loc := range locations {
		if loc == nil {
			continue
		}

		var nearest *model.Hexagon
		nearestDist := math.MaxFloat64
		for _, hex := range availableHexagons {
			if usedHexagonIDs[hex.ID] {
				continue
			}
			// 同距離のセルは候補リストの列挙順で先のものが勝つ（決定的）
			if d := helper.HaversineDistance(loc.ToLatLng(), hex.Center()); d < nearestDist {
				nearestDist = d
				nearest = hex
			}
		}

		if nearest == nil {
			continue
		}
		usedHexagonIDs[nearest.ID] = true

		colorIndex := i
		if loc.ColorIndex != nil {
			colorIndex = *loc.ColorIndex
		}

		labels = append(labels, &model.LabelAssignment{
			LocationID:  loc.ID,
			Name:        loc.Name,
			LabelLat:    nearest.CenterLat,
			LabelLng:    nearest.CenterLng,
			HexagonID:   nearest.ID,
			OriginalLat: loc.Latitude,
			OriginalLng: loc.Longitude,
			Color:       model.GetMarkerColor(markerColors, colorIndex),
			PhotoName:   loc.PhotoName,
		})
	}

	return labels, usedHexagonIDs
}
