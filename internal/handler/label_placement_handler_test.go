package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"TabiMap-App/internal/domain/model"
	"TabiMap-App/internal/domain/service"
	"TabiMap-App/internal/usecase"
)

func setupLabelRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	placementUseCase := usecase.NewLabelPlacementUseCase(service.NewHexagonalLabelService(), nil, nil)
	labelHandler := NewLabelPlacementHandler(placementUseCase)

	router := gin.New()
	router.POST("/labels/hexagonal", labelHandler.PostHexagonalLabels)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPostHexagonalLabels_Success(t *testing.T) {
	router := setupLabelRouter()

	reqBody := model.HexagonalLabelRequest{
		Locations: []*model.Location{
			{ID: "loc-1", Name: "金閣寺", Latitude: 35.0394, Longitude: 135.7292},
			{ID: "loc-2", Name: "清水寺", Latitude: 34.9949, Longitude: 135.7850},
		},
		Bounds: &model.LatLngBounds{North: 35.10, South: 34.90, East: 135.85, West: 135.60},
		Zoom:   12,
	}

	w := postJSON(router, "/labels/hexagonal", reqBody)

	assert.Equal(t, http.StatusOK, w.Code)

	var result model.HexagonalLabelResult
	err := json.Unmarshal(w.Body.Bytes(), &result)
	assert.NoError(t, err)
	assert.Len(t, result.Labels, 2)
	assert.Greater(t, result.HexSizeKm, 0.0)
	assert.NotEqual(t, result.Labels[0].HexagonID, result.Labels[1].HexagonID)
}

func TestPostHexagonalLabels_EmptyLocations(t *testing.T) {
	router := setupLabelRouter()

	// 地点もtrip_idも無ければ空の結果（エラーにしない）
	reqBody := model.HexagonalLabelRequest{
		Bounds: &model.LatLngBounds{North: 35.10, South: 34.90, East: 135.85, West: 135.60},
		Zoom:   12,
	}

	w := postJSON(router, "/labels/hexagonal", reqBody)

	assert.Equal(t, http.StatusOK, w.Code)

	var result model.HexagonalLabelResult
	err := json.Unmarshal(w.Body.Bytes(), &result)
	assert.NoError(t, err)
	assert.Empty(t, result.Labels)
	assert.Equal(t, 0.0, result.HexSizeKm)
}

func TestPostHexagonalLabels_MissingBounds(t *testing.T) {
	router := setupLabelRouter()

	reqBody := model.HexagonalLabelRequest{
		Locations: []*model.Location{
			{ID: "loc-1", Name: "金閣寺", Latitude: 35.0394, Longitude: 135.7292},
		},
		Zoom: 12,
	}

	w := postJSON(router, "/labels/hexagonal", reqBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bounds")
}

func TestPostHexagonalLabels_ZoomOutOfRange(t *testing.T) {
	router := setupLabelRouter()

	reqBody := model.HexagonalLabelRequest{
		Bounds: &model.LatLngBounds{North: 35.10, South: 34.90, East: 135.85, West: 135.60},
		Zoom:   23,
	}

	w := postJSON(router, "/labels/hexagonal", reqBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "zoom")
}

func TestPostHexagonalLabels_LocationOutOfRange(t *testing.T) {
	router := setupLabelRouter()

	reqBody := model.HexagonalLabelRequest{
		Locations: []*model.Location{
			{ID: "loc-1", Name: "不正地点", Latitude: 95.0, Longitude: 135.7},
		},
		Bounds: &model.LatLngBounds{North: 35.10, South: 34.90, East: 135.85, West: 135.60},
		Zoom:   12,
	}

	w := postJSON(router, "/labels/hexagonal", reqBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "locations")
}

func TestPostHexagonalLabels_InvalidJSON(t *testing.T) {
	router := setupLabelRouter()

	req := httptest.NewRequest(http.MethodPost, "/labels/hexagonal", bytes.NewReader([]byte("{invalid")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
