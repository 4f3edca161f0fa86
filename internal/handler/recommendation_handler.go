package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"DriveSpot-App/internal/domain/model"
	"DriveSpot-App/internal/usecase"
)

// RecommendationHandler はおすすめスポットAPIのハンドラー
type RecommendationHandler struct {
	recommendationUseCase usecase.RecommendationUseCase
}

// NewRecommendationHandler は新しいRecommendationHandlerインスタンスを作成
func NewRecommendationHandler(recommendationUseCase usecase.RecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUseCase: recommendationUseCase,
	}
}

// PostRecommendations はおすすめスポット一覧を返すエンドポイント
// POST /recommendations
func (h *RecommendationHandler) PostRecommendations(c *gin.Context) {
	var req model.RecommendationRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// バリデーション
	if req.SpotID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": (&ValidationError{Field: "spot_id", Message: "基準スポットIDは必須です"}).Error(),
		})
		return
	}

	// UseCase呼び出し
	response, err := h.recommendationUseCase.GetRecommendations(c.Request.Context(), &req)
	if err != nil {
		// 基準スポットの取得ミスはクライアント入力の問題として404を返す
		if strings.Contains(err.Error(), "見つかりません") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "スポットが見つかりません",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "おすすめスポットの取得に失敗しました",
			"details": err.Error(),
		})
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusOK, response)
}

// GetExplain はスコア計算の内訳を返すデバッグ用エンドポイント
// GET /recommendations/explain?spot_id=xxx&candidate_id=yyy
func (h *RecommendationHandler) GetExplain(c *gin.Context) {
	spotID := c.Query("spot_id")
	candidateID := c.Query("candidate_id")
	if spotID == "" || candidateID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": (&ValidationError{Field: "spot_id,candidate_id", Message: "比較する2つのスポットIDは必須です"}).Error(),
		})
		return
	}

	breakdown, err := h.recommendationUseCase.ExplainRecommendation(c.Request.Context(), spotID, candidateID)
	if err != nil {
		// どちらかのスポットが存在しない場合は404を返す
		if strings.Contains(err.Error(), "見つかりません") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "スポットが見つかりません",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "スコア内訳の計算に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
