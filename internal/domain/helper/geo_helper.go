package helper

import (
	"DriveSpot-App/internal/domain/model"
	"fmt"
	"math"
	"sort"
)

const earthRadiusKm = 6371.0

// 平均時速の定数
// 一般道と高速道路で異なる想定値を使い分ける（用途を混同しないこと）
const (
	// GeneralRoadSpeedKmh 一般道の平均時速。カード表示などの所要時間見積もりに使用する
	GeneralRoadSpeedKmh = 40.0
	// ExpresswaySpeedKmh 高速道路利用を想定した平均時速。長距離区間の見積もりに使用する
	ExpresswaySpeedKmh = 60.0
)

// HaversineDistance は2地点間の距離を計算する (km)
func HaversineDistance(p1, p2 model.LatLng) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lng1 := p1.Lng * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lng2 := p2.Lng * math.Pi / 180
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// HaversineDistanceSpot は2つのスポット間の距離を計算する (km)
func HaversineDistanceSpot(s1, s2 *model.Spot) float64 {
	return HaversineDistance(s1.ToLatLng(), s2.ToLatLng())
}

// EstimateDriveMinutes は距離から一般道での運転時間を見積もる (分)
func EstimateDriveMinutes(distanceKm float64) float64 {
	return distanceKm / GeneralRoadSpeedKmh * 60
}

// EstimateExpresswayDriveMinutes は距離から高速道路利用での運転時間を見積もる (分)
func EstimateExpresswayDriveMinutes(distanceKm float64) float64 {
	return distanceKm / ExpresswaySpeedKmh * 60
}

// FormatDriveDuration は距離から運転時間の表示文字列を作成する
// 60分未満は "N分"、60分以上は "H時間M分"（Mが0の場合は "H時間"）
func FormatDriveDuration(distanceKm float64) string {
	return FormatMinutes(EstimateDriveMinutes(distanceKm))
}

// FormatMinutes は分数を日本語の所要時間表記に変換する
func FormatMinutes(minutes float64) string {
	total := int(math.Round(minutes))
	if total < 60 {
		return fmt.Sprintf("%d分", total)
	}
	hours := total / 60
	mins := total % 60
	if mins == 0 {
		return fmt.Sprintf("%d時間", hours)
	}
	return fmt.Sprintf("%d時間%d分", hours, mins)
}

// RoundDistanceKm は表示用に距離を小数第1位へ丸める
func RoundDistanceKm(distanceKm float64) float64 {
	return math.Round(distanceKm*10) / 10
}

// SortByDistanceFromLocation は基準座標からの距離でスポットスライスをソートする
func SortByDistanceFromLocation(origin model.LatLng, targets []*model.Spot) {
	sort.SliceStable(targets, func(i, j int) bool {
		distI := HaversineDistance(origin, targets[i].ToLatLng())
		distJ := HaversineDistance(origin, targets[j].ToLatLng())
		return distI < distJ
	})
}

// JaccardSimilarity は2つのタグ集合のJaccard係数を計算する
// 両方が空集合の場合は0を返す（0除算を避ける）
func JaccardSimilarity(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	setA := make(map[string]struct{}, len(a))
	for _, v := range a {
		setA[v] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, v := range b {
		setB[v] = struct{}{}
	}
	intersection := 0
	for v := range setA {
		if _, ok := setB[v]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
