package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpotToLatLng(t *testing.T) {
	t.Run("座標が正しく変換される", func(t *testing.T) {
		spot := &Spot{Location: NewSpotLocation(35.30, 139.48)}
		latLng := spot.ToLatLng()
		assert.Equal(t, 35.30, latLng.Lat)
		assert.Equal(t, 139.48, latLng.Lng)
	})

	t.Run("位置情報がない場合はゼロ値", func(t *testing.T) {
		spot := &Spot{}
		assert.Equal(t, LatLng{}, spot.ToLatLng())
	})
}

func TestSpotVisitHours(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		expected int
	}{
		{"1時間", "1時間", 1},
		{"3時間", "3時間", 3},
		{"2時間半", "2時間半", 2},
		{"パース不能な表記は1時間扱い", "半日", 1},
		{"空文字列は1時間扱い", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spot := &Spot{Duration: tt.duration}
			assert.Equal(t, tt.expected, spot.VisitHours())
		})
	}
}

func TestSpotHasTag(t *testing.T) {
	spot := &Spot{Tags: []string{"絶景", "夕日"}}
	assert.True(t, spot.HasTag("絶景"))
	assert.False(t, spot.HasTag("歴史"))
}

func TestSpotMainImage(t *testing.T) {
	t.Run("先頭の画像を返す", func(t *testing.T) {
		spot := &Spot{Images: []string{"https://example.com/1.jpg", "https://example.com/2.jpg"}}
		assert.Equal(t, "https://example.com/1.jpg", spot.MainImage())
	})

	t.Run("画像がない場合は空文字列", func(t *testing.T) {
		assert.Equal(t, "", (&Spot{}).MainImage())
	})
}

func TestLocationConversions(t *testing.T) {
	t.Run("LocationとGeometryの相互変換", func(t *testing.T) {
		loc := &Location{Latitude: 35.30, Longitude: 139.48}
		geo := loc.ToGeometry()
		assert.Equal(t, "Point", geo.Type)
		assert.Equal(t, []float64{139.48, 35.30}, geo.Coordinates)

		var restored Location
		restored.FromGeometry(geo)
		assert.Equal(t, *loc, restored)
	})

	t.Run("nil Geometryからの変換は何もしない", func(t *testing.T) {
		var loc Location
		loc.FromGeometry(nil)
		assert.Equal(t, Location{}, loc)
	})
}

func TestGetTier(t *testing.T) {
	t.Run("登録済みティアを取得できる", func(t *testing.T) {
		tier, ok := GetTier(TierDay)
		assert.True(t, ok)
		assert.Equal(t, 200.0, tier.MaxDistanceKm)
		assert.Equal(t, "〜8時間", tier.EstimatedHours)
	})

	t.Run("未登録ティアはfalse", func(t *testing.T) {
		_, ok := GetTier("weekend")
		assert.False(t, ok)
	})
}

func TestGetTierJapaneseName(t *testing.T) {
	assert.Equal(t, "日帰りドライブ", GetTierJapaneseName(TierDay))
	assert.Equal(t, "unknown", GetTierJapaneseName("unknown"))
}

func TestGetAllTiers(t *testing.T) {
	tiers := GetAllTiers()
	assert.Len(t, tiers, 3)
	// 近い順に並んでいる
	assert.Equal(t, TierShort, tiers[0].ID)
	assert.Equal(t, TierDay, tiers[1].ID)
	assert.Equal(t, TierOvernight, tiers[2].ID)
}

func TestAreaDefinitionContainsSpot(t *testing.T) {
	t.Run("ID指定のエリア", func(t *testing.T) {
		area := AreaTable["江の島周辺"]
		assert.True(t, area.ContainsSpot(&Spot{ID: "spot-enoshima"}))
		assert.False(t, area.ContainsSpot(&Spot{ID: "spot-hakone"}))
	})

	t.Run("境界ボックスのエリア", func(t *testing.T) {
		area := AreaTable["湘南"]
		inside := &Spot{ID: "a", Location: NewSpotLocation(35.30, 139.48)}
		outside := &Spot{ID: "b", Location: NewSpotLocation(36.00, 140.00)}
		assert.True(t, area.ContainsSpot(inside))
		assert.False(t, area.ContainsSpot(outside))
	})

	t.Run("境界値はエリアに含まれる", func(t *testing.T) {
		area := AreaTable["湘南"]
		onBoundary := &Spot{ID: "c", Location: NewSpotLocation(35.25, 139.30)}
		assert.True(t, area.ContainsSpot(onBoundary))
	})
}
