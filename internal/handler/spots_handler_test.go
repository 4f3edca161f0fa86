package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DriveSpot-App/internal/domain/model"
	"DriveSpot-App/internal/repository"
	"DriveSpot-App/internal/usecase"
)

func newHandlerTestCatalog() []*model.Spot {
	return []*model.Spot{
		{
			ID:       "spot-enoshima",
			Name:     "江の島シーキャンドル",
			Location: model.NewSpotLocation(35.2990, 139.4802),
			Tags:     []string{"絶景", "夕日"},
			Vibes:    []string{"ロマンチック"},
			Rating:   4.8,
			Duration: "1時間",
		},
		{
			ID:       "spot-shonan-beach",
			Name:     "湘南海岸",
			Location: model.NewSpotLocation(35.3090, 139.4700),
			Tags:     []string{"海"},
			Rating:   4.3,
			Duration: "1時間",
		},
		{
			ID:       "spot-fuji",
			Name:     "本栖湖",
			Location: model.NewSpotLocation(35.4667, 138.5856),
			Tags:     []string{"絶景", "自然"},
			Rating:   4.9,
			Duration: "1時間",
		},
	}
}

func newSpotsTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	spotsRepo := repository.NewMemorySpotsRepository(newHandlerTestCatalog())
	spotSearchUseCase := usecase.NewSpotSearchUseCase(spotsRepo, nil)
	h := NewSpotsHandler(spotSearchUseCase)

	r := gin.New()
	r.GET("/spots", h.GetSpots)
	r.GET("/spots/tiers", h.GetSpotsByTier)
	r.GET("/spots/categorized", h.GetCategorizedSpots)
	r.GET("/spots/search", h.SearchSpots)
	return r
}

func doRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetSpotsEndpoint(t *testing.T) {
	r := newSpotsTestRouter()

	t.Run("エリアとタグで絞り込める", func(t *testing.T) {
		w := doRequest(r, "GET", "/spots?area=湘南&tag=海")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Spots []*model.Spot `json:"spots"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Spots, 1)
		assert.Equal(t, "spot-shonan-beach", body.Spots[0].ID)
	})

	t.Run("パラメータ未指定は全カタログを返す", func(t *testing.T) {
		w := doRequest(r, "GET", "/spots")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Spots []*model.Spot `json:"spots"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Spots, 3)
	})
}

func TestGetCategorizedSpotsEndpoint(t *testing.T) {
	r := newSpotsTestRouter()

	t.Run("ティア定義と分類結果を一緒に返す", func(t *testing.T) {
		w := doRequest(r, "GET", "/spots/categorized?lat=35.3100&lng=139.4850")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Tiers       []model.DistanceTier `json:"tiers"`
			Categorized model.TieredSpots    `json:"categorized"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Tiers, 3)
		assert.Equal(t, model.TierShort, body.Tiers[0].ID)
		assert.NotEmpty(t, body.Categorized.Short)
	})

	t.Run("座標未指定はバリデーションエラー", func(t *testing.T) {
		w := doRequest(r, "GET", "/spots/categorized")
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "バリデーションエラー", body["error"])
		assert.NotEmpty(t, body["details"])
	})
}

func TestGetSpotsByTierEndpoint(t *testing.T) {
	r := newSpotsTestRouter()

	t.Run("エラーレスポンスはerrorとdetailsを持つ", func(t *testing.T) {
		w := doRequest(r, "GET", "/spots/tiers?lat=35.31&lng=139.48&tier=world-tour")
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "バリデーションエラー", body["error"])
		assert.Contains(t, body["details"], "対応していないティア")
	})

	t.Run("緯度が範囲外はバリデーションエラー", func(t *testing.T) {
		w := doRequest(r, "GET", "/spots/tiers?lat=95.0&lng=139.48&tier=short")
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "バリデーションエラー", body["error"])
	})
}
