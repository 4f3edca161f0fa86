package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"DriveSpot-App/internal/domain/model"
	"DriveSpot-App/internal/usecase"
)

// SpotsHandler はスポット検索・絞り込みAPIのハンドラー
type SpotsHandler struct {
	spotSearchUseCase usecase.SpotSearchUseCase
}

// NewSpotsHandler は新しいSpotsHandlerインスタンスを作成
func NewSpotsHandler(spotSearchUseCase usecase.SpotSearchUseCase) *SpotsHandler {
	return &SpotsHandler{
		spotSearchUseCase: spotSearchUseCase,
	}
}

// GetSpots GET /spots - エリア名とタグでスポットを絞り込む
// area未指定または未登録のエリア名の場合は全カタログを返す
func (h *SpotsHandler) GetSpots(c *gin.Context) {
	areaName := c.Query("area")
	tag := c.Query("tag")

	spots, err := h.spotSearchUseCase.GetSpotsByArea(c.Request.Context(), areaName, tag)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "スポット一覧の取得に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"spots": spots})
}

// GetSpotsByTier GET /spots/tiers - ドライブ時間ティアでスポットを絞り込む
func (h *SpotsHandler) GetSpotsByTier(c *gin.Context) {
	origin, ok := h.parseOrigin(c)
	if !ok {
		return
	}

	tierID := c.Query("tier")
	if tierID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": (&ValidationError{Field: "tier", Message: "ティアは必須です (short, day, overnight)"}).Error(),
		})
		return
	}

	spots, err := h.spotSearchUseCase.GetSpotsByTier(c.Request.Context(), origin, tierID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	tier, _ := model.GetTier(tierID)
	c.JSON(http.StatusOK, gin.H{
		"tier":            tier,
		"tier_name":       model.GetTierJapaneseName(tierID),
		"estimated_hours": tier.EstimatedHours,
		"spots":           spots,
	})
}

// GetCategorizedSpots GET /spots/categorized - 全ティアの分類を一度に返す
func (h *SpotsHandler) GetCategorizedSpots(c *gin.Context) {
	origin, ok := h.parseOrigin(c)
	if !ok {
		return
	}

	tiered, err := h.spotSearchUseCase.CategorizeSpots(c.Request.Context(), origin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "スポットの分類に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tiers":       model.GetAllTiers(),
		"categorized": tiered,
	})
}

// SearchSpots GET /spots/search - 外部の場所検索結果をSpot型で返す
func (h *SpotsHandler) SearchSpots(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": (&ValidationError{Field: "query", Message: "検索キーワードは必須です"}).Error(),
		})
		return
	}

	spots, err := h.spotSearchUseCase.SearchSpots(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "場所検索に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"spots": spots})
}

// parseOrigin はクエリパラメータのlat/lngを解析する
func (h *SpotsHandler) parseOrigin(c *gin.Context) (model.LatLng, bool) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr == "" || lngStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": (&ValidationError{Field: "lat,lng", Message: "緯度と経度は必須です"}).Error(),
		})
		return model.LatLng{}, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": (&ValidationError{Field: "lat", Message: "緯度は-90から90の範囲で指定してください"}).Error(),
		})
		return model.LatLng{}, false
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": (&ValidationError{Field: "lng", Message: "経度は-180から180の範囲で指定してください"}).Error(),
		})
		return model.LatLng{}, false
	}

	return model.LatLng{Lat: lat, Lng: lng}, true
}
