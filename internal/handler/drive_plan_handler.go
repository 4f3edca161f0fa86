package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"DriveSpot-App/internal/domain/model"
	"DriveSpot-App/internal/usecase"
)

// DrivePlanHandler はドライブプランAPIのハンドラー
type DrivePlanHandler struct {
	drivePlanUseCase usecase.DrivePlanUseCase
}

// NewDrivePlanHandler は新しいDrivePlanHandlerインスタンスを作成
func NewDrivePlanHandler(drivePlanUseCase usecase.DrivePlanUseCase) *DrivePlanHandler {
	return &DrivePlanHandler{
		drivePlanUseCase: drivePlanUseCase,
	}
}

// PostPlan はドライブプランを作成するエンドポイント
// POST /plans
func (h *DrivePlanHandler) PostPlan(c *gin.Context) {
	var req model.DrivePlanRequest

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
	response, err := h.drivePlanUseCase.CreatePlan(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "ドライブプランの作成に失敗しました",
			"details": err.Error(),
		})
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusCreated, response)
}

// GetPlan はドライブプランを取得するエンドポイント
// GET /plans/:id
func (h *DrivePlanHandler) GetPlan(c *gin.Context) {
	planID := c.Param("id")
	if planID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "plan_idが指定されていません",
		})
		return
	}

	response, err := h.drivePlanUseCase.GetPlan(c.Request.Context(), planID)
	if err != nil {
		// エラーメッセージから404か500かを判定
		if strings.Contains(err.Error(), "見つかりません") || strings.Contains(err.Error(), "有効期限切れ") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "ドライブプランが見つかりません",
				"details": err.Error(),
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "ドライブプランの取得に失敗しました",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// validateRequest はリクエストの詳細バリデーションを行う
func (h *DrivePlanHandler) validateRequest(req *model.DrivePlanRequest) error {
	// Originは必須
	if req.Origin == nil {
		return &ValidationError{Field: "origin", Message: "出発地点は必須です"}
	}

	// 緯度経度の範囲チェック
	if req.Origin.Latitude < -90 || req.Origin.Latitude > 90 {
		return &ValidationError{Field: "origin.latitude", Message: "緯度は-90から90の範囲で指定してください"}
	}
	if req.Origin.Longitude < -180 || req.Origin.Longitude > 180 {
		return &ValidationError{Field: "origin.longitude", Message: "経度は-180から180の範囲で指定してください"}
	}

	// 立ち寄りスポットのチェック
	if len(req.SpotIDs) == 0 {
		return &ValidationError{Field: "spot_ids", Message: "1箇所以上のスポットを指定してください"}
	}

	return nil
}
