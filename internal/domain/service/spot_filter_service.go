package service

import (
	"DriveSpot-App/internal/domain/helper"
	"DriveSpot-App/internal/domain/model"
	"sort"
)

// FilterByAreaName は指定されたエリア名に含まれるスポットのみを抽出する
// エリア名がエリアテーブルに存在しない場合は全カタログをそのまま返す
// （「該当なし＝全件表示」の寛容なフォールバック。エラーにはしない）
func FilterByAreaName(spots []*model.Spot, areaName string) []*model.Spot {
	area, ok := model.AreaTable[areaName]
	if !ok {
		return spots
	}
	var filtered []*model.Spot
	for _, s := range spots {
		if area.ContainsSpot(s) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// FilterByTag は指定されたタグを持つスポットのみを抽出する
// タグが空文字列の場合は絞り込みを行わず全件をそのまま返す
func FilterByTag(spots []*model.Spot, tag string) []*model.Spot {
	if tag == "" {
		return spots
	}
	var filtered []*model.Spot
	for _, s := range spots {
		if s.HasTag(tag) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// FilterByDriveTimeTier は基準座標からティアの上限距離内にあるスポットを
// 近い順に並べて返す
func FilterByDriveTimeTier(spots []*model.Spot, origin model.LatLng, tier model.DistanceTier) []*model.Spot {
	var filtered []*model.Spot
	for _, s := range spots {
		if helper.HaversineDistance(origin, s.ToLatLng()) <= tier.MaxDistanceKm {
			filtered = append(filtered, s)
		}
	}
	helper.SortByDistanceFromLocation(origin, filtered)
	return filtered
}

// CategorizeByAllTiers は全スポットを3つのティアに分類する
// 距離計算はスポットごとに1回だけ行い、全ティアで使い回す
func CategorizeByAllTiers(spots []*model.Spot, origin model.LatLng) *model.TieredSpots {
	type spotDistance struct {
		spot       *model.Spot
		distanceKm float64
	}

	distances := make([]spotDistance, 0, len(spots))
	for _, s := range spots {
		distances = append(distances, spotDistance{
			spot:       s,
			distanceKm: helper.HaversineDistance(origin, s.ToLatLng()),
		})
	}

	// 先に近い順へ並べておけば、各ティアのリストも自然と近い順になる
	sort.SliceStable(distances, func(i, j int) bool {
		return distances[i].distanceKm < distances[j].distanceKm
	})

	result := &model.TieredSpots{}
	shortTier := model.TierTable[model.TierShort]
	dayTier := model.TierTable[model.TierDay]
	overnightTier := model.TierTable[model.TierOvernight]

	for _, sd := range distances {
		if sd.distanceKm <= shortTier.MaxDistanceKm {
			result.Short = append(result.Short, sd.spot)
		}
		if sd.distanceKm <= dayTier.MaxDistanceKm {
			result.Day = append(result.Day, sd.spot)
		}
		if sd.distanceKm <= overnightTier.MaxDistanceKm {
			result.Overnight = append(result.Overnight, sd.spot)
		}
	}

	return result
}
