package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DriveSpot-App/internal/domain/model"
	"DriveSpot-App/internal/repository"
)

func newSpotSearchUseCaseForTest() SpotSearchUseCase {
	spots := []*model.Spot{
		newUsecaseTestSpot("spot-enoshima", "江の島シーキャンドル", 35.2990, 139.4802, []string{"絶景"}, nil, 4.8),
		newUsecaseTestSpot("spot-shonan-beach", "湘南海岸", 35.3090, 139.4700, []string{"海"}, nil, 4.3),
		newUsecaseTestSpot("spot-fuji", "本栖湖", 35.4667, 138.5856, []string{"絶景", "自然"}, nil, 4.9),
		newUsecaseTestSpot("spot-aomori", "奥入瀬渓流", 40.5500, 141.0000, []string{"自然"}, nil, 4.8),
	}
	return NewSpotSearchUseCase(repository.NewMemorySpotsRepository(spots), nil)
}

func TestGetSpotsByArea(t *testing.T) {
	ctx := context.Background()
	uc := newSpotSearchUseCaseForTest()

	t.Run("登録済みエリアは範囲内のスポットだけを返す", func(t *testing.T) {
		spots, err := uc.GetSpotsByArea(ctx, "湘南", "")
		require.NoError(t, err)
		ids := make([]string, 0, len(spots))
		for _, s := range spots {
			ids = append(ids, s.ID)
		}
		assert.ElementsMatch(t, []string{"spot-enoshima", "spot-shonan-beach"}, ids)
	})

	t.Run("未登録エリアは全カタログを返す", func(t *testing.T) {
		spots, err := uc.GetSpotsByArea(ctx, "未知のエリア", "")
		require.NoError(t, err)
		assert.Len(t, spots, 4)
	})

	t.Run("タグ指定でさらに絞り込む", func(t *testing.T) {
		spots, err := uc.GetSpotsByArea(ctx, "湘南", "海")
		require.NoError(t, err)
		require.Len(t, spots, 1)
		assert.Equal(t, "spot-shonan-beach", spots[0].ID)
	})

	t.Run("エリア未指定でもタグで絞り込める", func(t *testing.T) {
		spots, err := uc.GetSpotsByArea(ctx, "", "自然")
		require.NoError(t, err)
		ids := make([]string, 0, len(spots))
		for _, s := range spots {
			ids = append(ids, s.ID)
		}
		assert.ElementsMatch(t, []string{"spot-fuji", "spot-aomori"}, ids)
	})
}

func TestGetSpotsByTier(t *testing.T) {
	ctx := context.Background()
	uc := newSpotSearchUseCaseForTest()
	tokyoStation := model.LatLng{Lat: 35.6812, Lng: 139.7671}

	t.Run("ティアの距離内のスポットが近い順で返る", func(t *testing.T) {
		spots, err := uc.GetSpotsByTier(ctx, tokyoStation, model.TierShort)
		require.NoError(t, err)
		require.Len(t, spots, 2) // 江の島・湘南海岸（〜50km）のみ
		for _, s := range spots {
			assert.NotEqual(t, "spot-fuji", s.ID)
			assert.NotEqual(t, "spot-aomori", s.ID)
		}
	})

	t.Run("未対応のティアIDはエラー", func(t *testing.T) {
		_, err := uc.GetSpotsByTier(ctx, tokyoStation, "world-tour")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "対応していないティア")
	})
}

func TestCategorizeSpots(t *testing.T) {
	ctx := context.Background()
	uc := newSpotSearchUseCaseForTest()
	tokyoStation := model.LatLng{Lat: 35.6812, Lng: 139.7671}

	result, err := uc.CategorizeSpots(ctx, tokyoStation)
	require.NoError(t, err)

	assert.Len(t, result.Short, 2)     // 〜100km: 江の島・湘南海岸
	assert.Len(t, result.Day, 3)       // 〜200km: ＋本栖湖
	assert.Len(t, result.Overnight, 3) // 〜500km: 奥入瀬（約550km）は入らない
}

func TestSearchSpots(t *testing.T) {
	ctx := context.Background()
	uc := newSpotSearchUseCaseForTest()

	t.Run("検索プロバイダ未設定の場合はエラー", func(t *testing.T) {
		_, err := uc.SearchSpots(ctx, "夜景")
		assert.Error(t, err)
	})
}
