package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DriveSpot-App/internal/domain/model"
	"DriveSpot-App/internal/domain/service"
	"DriveSpot-App/internal/repository"
	"DriveSpot-App/internal/usecase"
)

func newRecommendationTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	spotsRepo := repository.NewMemorySpotsRepository(newHandlerTestCatalog())
	engine, err := service.NewRecommendEngine(service.DefaultScoringConfig())
	require.NoError(t, err)
	h := NewRecommendationHandler(usecase.NewRecommendationUseCase(spotsRepo, engine))

	r := gin.New()
	r.POST("/recommendations", h.PostRecommendations)
	r.GET("/recommendations/explain", h.GetExplain)
	return r
}

func TestPostRecommendationsEndpoint(t *testing.T) {
	r := newRecommendationTestRouter(t)

	t.Run("おすすめ一覧を返す", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/recommendations", strings.NewReader(`{"spot_id":"spot-enoshima"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body model.RecommendationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Recommendations, 2)
	})

	t.Run("存在しないスポットIDは404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/recommendations", strings.NewReader(`{"spot_id":"spot-unknown"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "スポットが見つかりません", body["error"])
		assert.Contains(t, body["details"], "spot-unknown")
	})

	t.Run("spot_id未指定はバリデーションエラー", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/recommendations", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "バリデーションエラー", body["error"])
	})
}

func TestGetExplainEndpoint(t *testing.T) {
	r := newRecommendationTestRouter(t)

	t.Run("スコア内訳を返す", func(t *testing.T) {
		w := doRequest(r, "GET", "/recommendations/explain?spot_id=spot-enoshima&candidate_id=spot-fuji")
		require.Equal(t, http.StatusOK, w.Code)

		var body model.ScoreBreakdown
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Greater(t, body.DistanceKm, 0.0)
		assert.Greater(t, body.TotalScore, 0.0)
	})

	t.Run("存在しないスポットIDは404", func(t *testing.T) {
		w := doRequest(r, "GET", "/recommendations/explain?spot_id=spot-unknown&candidate_id=spot-fuji")
		require.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "スポットが見つかりません", body["error"])
	})

	t.Run("パラメータ未指定はバリデーションエラー", func(t *testing.T) {
		w := doRequest(r, "GET", "/recommendations/explain?spot_id=spot-enoshima")
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "バリデーションエラー", body["error"])
		assert.NotEmpty(t, body["details"])
	})
}
