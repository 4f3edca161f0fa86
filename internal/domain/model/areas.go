package model

import "github.com/paulmach/orb"

// AreaDefinition 名前付きエリアの定義
// SpotIDsが設定されている場合はIDの明示的な集合、
// Boundsが設定されている場合は境界ボックス（境界値を含む）で判定する
type AreaDefinition struct {
	SpotIDs []string
	Bounds  *orb.Bound
}

// ContainsSpot スポットがこのエリアに含まれるかを判定する
func (a *AreaDefinition) ContainsSpot(spot *Spot) bool {
	if len(a.SpotIDs) > 0 {
		for _, id := range a.SpotIDs {
			if spot.ID == id {
				return true
			}
		}
		return false
	}
	if a.Bounds != nil {
		loc := spot.ToLatLng()
		return a.Bounds.Contains(orb.Point{loc.Lng, loc.Lat})
	}
	return false
}

// newBound 緯度経度の範囲からorb.Boundを作成する
func newBound(minLat, maxLat, minLng, maxLng float64) *orb.Bound {
	bound := orb.Bound{
		Min: orb.Point{minLng, minLat},
		Max: orb.Point{maxLng, maxLat},
	}
	return &bound
}

// AreaTable はエリア名からエリア定義へのマッピング
// エリア名が見つからない場合、呼び出し側は全カタログを返す（FilterByAreaName参照）
var AreaTable = map[string]AreaDefinition{
	"江の島周辺": {
		SpotIDs: []string{"spot-enoshima", "spot-inamuragasaki", "spot-shonan-beach"},
	},
	"湘南": {
		Bounds: newBound(35.25, 35.40, 139.30, 139.60),
	},
	"三浦半島": {
		Bounds: newBound(35.13, 35.30, 139.57, 139.75),
	},
	"箱根": {
		Bounds: newBound(35.18, 35.28, 138.95, 139.12),
	},
	"伊豆": {
		Bounds: newBound(34.60, 35.15, 138.70, 139.20),
	},
	"富士五湖": {
		Bounds: newBound(35.40, 35.60, 138.55, 138.85),
	},
	"房総": {
		Bounds: newBound(34.90, 35.45, 139.75, 140.45),
	},
}
