package repository

import (
	"github.com/paulmach/orb"

	"DriveSpot-App/internal/domain/model"
)

// CreatePlanBounds 出発地点と全立ち寄りスポットを含む境界ボックスを作成する
// クライアント側の地図のfit-boundsにそのまま使える形で返す
func CreatePlanBounds(origin *model.Location, stops []model.PlanStop) *model.GeoPolygon {
	if origin == nil {
		return nil
	}

	start := orb.Point{origin.Longitude, origin.Latitude}
	bound := orb.Bound{Min: start, Max: start}
	for _, stop := range stops {
		bound = bound.Extend(orb.Point{stop.Longitude, stop.Latitude})
	}

	// 少し余裕を持たせる（約100m程度）
	padding := 0.001 // 約111m
	bound = bound.Pad(padding)

	minLng := bound.Min.Lon()
	minLat := bound.Min.Lat()
	maxLng := bound.Max.Lon()
	maxLat := bound.Max.Lat()

	coordinates := [][][]float64{
		{
			{minLng, minLat}, // 左下
			{maxLng, minLat}, // 右下
			{maxLng, maxLat}, // 右上
			{minLng, maxLat}, // 左上
			{minLng, minLat}, // 閉じる
		},
	}

	return &model.GeoPolygon{
		Type:        "Polygon",
		Coordinates: coordinates,
	}
}
