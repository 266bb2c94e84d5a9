package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"TabiMap-App/internal/domain/model"
)

func TestHaversineDistance(t *testing.T) {
	kyoto := model.LatLng{Lat: 35.0116, Lng: 135.7681}
	osaka := model.LatLng{Lat: 34.6937, Lng: 135.5023}

	t.Run("同一地点の距離は0", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineDistance(kyoto, kyoto))
	})

	t.Run("距離は対称", func(t *testing.T) {
		assert.Equal(t, HaversineDistance(kyoto, osaka), HaversineDistance(osaka, kyoto))
	})

	t.Run("京都-大阪はおよそ43km", func(t *testing.T) {
		d := HaversineDistance(kyoto, osaka)
		assert.InDelta(t, 43.0, d, 2.0)
	})

	t.Run("パリ-バルセロナはおよそ830km", func(t *testing.T) {
		paris := model.LatLng{Lat: 48.8566, Lng: 2.3522}
		barcelona := model.LatLng{Lat: 41.3874, Lng: 2.1686}
		d := HaversineDistance(paris, barcelona)
		assert.InDelta(t, 830.0, d, 10.0)
	})
}

func TestMinDistanceToLocations(t *testing.T) {
	origin := model.LatLng{Lat: 35.0, Lng: 135.0}
	locations := []*model.Location{
		{ID: "far", Latitude: 36.0, Longitude: 136.0},
		{ID: "near", Latitude: 35.01, Longitude: 135.01},
	}

	t.Run("最も近い地点までの距離を返す", func(t *testing.T) {
		minDist := MinDistanceToLocations(origin, locations)
		near := HaversineDistance(origin, model.LatLng{Lat: 35.01, Lng: 135.01})
		assert.Equal(t, near, minDist)
	})

	t.Run("空のリストでは上限値を返す", func(t *testing.T) {
		minDist := MinDistanceToLocations(origin, nil)
		assert.Greater(t, minDist, 1e18)
	})

	t.Run("nil地点は無視する", func(t *testing.T) {
		withNil := []*model.Location{nil, {ID: "only", Latitude: 35.1, Longitude: 135.1}}
		minDist := MinDistanceToLocations(origin, withNil)
		assert.InDelta(t, HaversineDistance(origin, model.LatLng{Lat: 35.1, Lng: 135.1}), minDist, 1e-9)
	})
}

