package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"TabiMap-App/internal/application"
	"TabiMap-App/internal/domain/model"
)

// TripsHandler 旅程に関するHTTPハンドラー
type TripsHandler struct {
	tripsService application.TripsService
}

// NewTripsHandler TripsHandlerの新しいインスタンスを作成
func NewTripsHandler(tripsService application.TripsService) *TripsHandler {
	return &TripsHandler{
		tripsService: tripsService,
	}
}

// CreateTrip POST /trips - 旅程の作成
func (h *TripsHandler) CreateTrip(c *gin.Context) {
	var req model.CreateTripRequest

	// リクエストボディの解析（Ginが自動でContent-Type確認）
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	// サービス層で処理
	response, err := h.tripsService.CreateTrip(c.Request.Context(), &req)
	if err != nil {
		if strings.Contains(err.Error(), "検証失敗") {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation_error",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to create trip: " + err.Error(),
		})
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusCreated, response)
}

// GetTripsByBoundingBox GET /trips - 旅程一覧を取得
// bboxクエリパラメータ指定時はその範囲と交差する旅程だけを返す
func (h *TripsHandler) GetTripsByBoundingBox(c *gin.Context) {
	// bbox省略時は全旅程の一覧を返す
	bbox := c.Query("bbox")
	if bbox == "" {
		trips, err := h.tripsService.GetAllTrips(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "internal_error",
				"message": "Failed to get trips: " + err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"trips": trips,
		})
		return
	}

	// bbox の解析
	coords := strings.Split(bbox, ",")
	if len(coords) != 4 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "bbox must contain 4 coordinates: min_lng,min_lat,max_lng,max_lat",
		})
		return
	}

	values := make([]float64, 4)
	names := []string{"min_lng", "min_lat", "max_lng", "max_lat"}
	for i, coord := range coords {
		value, err := strconv.ParseFloat(coord, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "Invalid " + names[i] + " value",
			})
			return
		}
		values[i] = value
	}

	// サービス層で処理
	trips, err := h.tripsService.GetTripsByBoundingBox(c.Request.Context(), values[0], values[1], values[2], values[3])
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get trips: " + err.Error(),
		})
		return
	}

	// レスポンスの作成
	c.JSON(http.StatusOK, gin.H{
		"trips": trips,
	})
}

// GetNearbyLocations GET /locations/nearby - 指定座標の周辺地点マーカーを検索
// 旅程編集時に既存の登録地点を再利用するための検索
func (h *TripsHandler) GetNearbyLocations(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "lat parameter is required and must be a number",
		})
		return
	}

	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "lng parameter is required and must be a number",
		})
		return
	}

	// 半径は省略時1km
	radiusMeters, err := strconv.Atoi(c.DefaultQuery("radius", "1000"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "radius must be an integer (meters)",
		})
		return
	}

	locations, err := h.tripsService.GetNearbyLocations(c.Request.Context(), lat, lng, radiusMeters)
	if err != nil {
		if strings.Contains(err.Error(), "検証失敗") {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation_error",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get nearby locations: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"locations": locations,
	})
}

// GetTripDetail GET /trips/:id - 旅程の詳細を取得
func (h *TripsHandler) GetTripDetail(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "trip id is required",
		})
		return
	}

	detail, err := h.tripsService.GetTripDetail(c.Request.Context(), tripID)
	if err != nil {
		if strings.Contains(err.Error(), "見つかりません") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "Trip not found: " + tripID,
			})
			return
		}
		if strings.Contains(err.Error(), "無効なTrip ID") {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get trip detail: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, detail)
}
