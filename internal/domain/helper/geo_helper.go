package helper

import (
	"math"

	"TabiMap-App/internal/domain/model"
)

const earthRadiusKm = 6371.0

// HaversineDistance は2地点間の大円距離を計算する (km)
// 対称（d(a,b) == d(b,a)）であり、同一地点のとき0を返す
func HaversineDistance(p1, p2 model.LatLng) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lng1 := p1.Lng * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lng2 := p2.Lng * math.Pi / 180
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// MinDistanceToLocations は基準座標から地点リストへの最短距離を返す (km)
// 地点リストが空の場合はmath.MaxFloat64を返す
func MinDistanceToLocations(origin model.LatLng, locations []*model.Location) float64 {
	minDist := math.MaxFloat64
	for _, loc := range locations {
		if loc == nil {
			continue
		}
		if d := HaversineDistance(origin, loc.ToLatLng()); d < minDist {
			minDist = d
		}
	}
	return minDist
}
