package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"TabiMap-App/internal/domain/model"
	"TabiMap-App/internal/usecase"
)

// LabelPlacementHandler はラベル配置APIのハンドラー
type LabelPlacementHandler struct {
	placementUseCase usecase.LabelPlacementUseCase
}

// NewLabelPlacementHandler は新しいLabelPlacementHandlerインスタンスを作成
func NewLabelPlacementHandler(placementUseCase usecase.LabelPlacementUseCase) *LabelPlacementHandler {
	return &LabelPlacementHandler{
		placementUseCase: placementUseCase,
	}
}

// PostHexagonalLabels はラベル配置を計算するエンドポイント
// POST /labels/hexagonal
// レンダラーは地図の移動・ズーム・マーカー変更のたびに再呼び出しする
func (h *LabelPlacementHandler) PostHexagonalLabels(c *gin.Context) {
	var req model.HexagonalLabelRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// バリデーション
	if err := h.validateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	// UseCase呼び出し
	result, err := h.placementUseCase.CalculateLabels(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "ラベル配置の計算に失敗しました",
			"details": err.Error(),
		})
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusOK, result)
}

// PostLabelPlacement はラベル配置を計算して保存するエンドポイント
// POST /labels/placements
func (h *LabelPlacementHandler) PostLabelPlacement(c *gin.Context) {
	var req model.HexagonalLabelRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	if err := h.validateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	placement, err := h.placementUseCase.SavePlacement(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "ラベル配置の保存に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, placement)
}

// GetLabelPlacement は保存済みのラベル配置を取得するエンドポイント
// GET /labels/placements/:id
func (h *LabelPlacementHandler) GetLabelPlacement(c *gin.Context) {
	placementID := c.Param("id")
	if placementID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "placement_idが指定されていません",
		})
		return
	}

	placement, err := h.placementUseCase.GetPlacement(c.Request.Context(), placementID)
	if err != nil {
		// エラーメッセージから404か500かを判定
		if strings.Contains(err.Error(), "見つかりません") || strings.Contains(err.Error(), "有効期限切れ") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "ラベル配置が見つかりません",
				"details": err.Error(),
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "ラベル配置の取得に失敗しました",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, placement)
}

// validateRequest はリクエストの詳細バリデーションを行う
func (h *LabelPlacementHandler) validateRequest(req *model.HexagonalLabelRequest) error {
	// Boundsは必須
	if req.Bounds == nil {
		return &ValidationError{Field: "bounds", Message: "境界ボックスは必須です"}
	}

	// 緯度経度の範囲チェック
	if req.Bounds.North < -90 || req.Bounds.North > 90 || req.Bounds.South < -90 || req.Bounds.South > 90 {
		return &ValidationError{Field: "bounds", Message: "緯度は-90から90の範囲で指定してください"}
	}
	if req.Bounds.East < -180 || req.Bounds.East > 180 || req.Bounds.West < -180 || req.Bounds.West > 180 {
		return &ValidationError{Field: "bounds", Message: "経度は-180から180の範囲で指定してください"}
	}

	// ズームレベルのチェック
	if req.Zoom < model.MinZoomLevel || req.Zoom > model.MaxZoomLevel {
		return &ValidationError{Field: "zoom", Message: "zoomは0から22の範囲で指定してください"}
	}

	// ビューポート高さのチェック
	if req.ViewportHeightPx < 0 {
		return &ValidationError{Field: "viewport_height_px", Message: "viewport_height_pxは0以上で指定してください"}
	}

	// 地点の緯度経度チェック
	for i, loc := range req.Locations {
		if loc == nil {
			continue
		}
		if loc.Latitude < -90 || loc.Latitude > 90 {
			return &ValidationError{Field: "locations", Message: "地点の緯度が有効範囲外です (index: " + strconv.Itoa(i) + ")"}
		}
		if loc.Longitude < -180 || loc.Longitude > 180 {
			return &ValidationError{Field: "locations", Message: "地点の経度が有効範囲外です (index: " + strconv.Itoa(i) + ")"}
		}
	}

	return nil
}

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
