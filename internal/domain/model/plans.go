package model

import "time"

// DrivePlanRequest ドライブプラン作成のリクエスト
type DrivePlanRequest struct {
	Title   string    `json:"title"`
	Origin  *Location `json:"origin" validate:"required"`         // 出発地点
	SpotIDs []string  `json:"spot_ids" validate:"required,min=1"` // 訪問順のスポットID
}

// DrivePlan ユーザーが組み立てたドライブプラン
type DrivePlan struct {
	PlanID               string      `json:"plan_id"`
	Title                string      `json:"title"`
	Origin               *Location   `json:"origin"`
	Stops                []PlanStop  `json:"stops"`
	TotalDistanceKm      float64     `json:"total_distance_km"`
	TotalDurationMinutes int         `json:"total_duration_minutes"` // 運転時間＋滞在時間の合計
	Bounds               *GeoPolygon `json:"bounds,omitempty"`       // 地図表示用の境界ボックス
}

// PlanStop プラン内の1つの立ち寄りスポット
type PlanStop struct {
	SpotID               string  `json:"spot_id"`
	Name                 string  `json:"name"`
	ImageURL             string  `json:"image_url"` // メイン画像（画像がない場合は空文字列）
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	DistanceFromPrevKm   float64 `json:"distance_from_prev_km"`   // 直前の地点からの直線距離
	DriveMinutesFromPrev int     `json:"drive_minutes_from_prev"` // 直前の地点からの運転時間目安
	VisitHours           int     `json:"visit_hours"`             // 滞在時間の目安
}

// FirestoreDrivePlan Firestoreに保存するドライブプランのドキュメント
type FirestoreDrivePlan struct {
	Title                string      `firestore:"title"`
	Origin               *Location   `firestore:"origin"`
	Stops                []PlanStop  `firestore:"stops"`
	TotalDistanceKm      float64     `firestore:"total_distance_km"`
	TotalDurationMinutes int         `firestore:"total_duration_minutes"`
	Bounds               *GeoPolygon `firestore:"bounds"`
	ExpireAt             time.Time   `firestore:"expireAt"`
}

func (dp *DrivePlan) ToFirestoreDrivePlan(ttlHours int) *FirestoreDrivePlan {
	return &FirestoreDrivePlan{
		Title:                dp.Title,
		Origin:               dp.Origin,
		Stops:                dp.Stops,
		TotalDistanceKm:      dp.TotalDistanceKm,
		TotalDurationMinutes: dp.TotalDurationMinutes,
		Bounds:               dp.Bounds,
		ExpireAt:             time.Now().Add(time.Duration(ttlHours) * time.Hour),
	}
}

// Expired は保存されたプランが有効期限を過ぎているかを判定する
// FirestoreのTTLによる削除は遅延することがあるため、読み取り時にも必ず確認する
func (fdp *FirestoreDrivePlan) Expired(now time.Time) bool {
	return now.After(fdp.ExpireAt)
}

func (fdp *FirestoreDrivePlan) ToDrivePlan(planID string) *DrivePlan {
	return &DrivePlan{
		PlanID:               planID,
		Title:                fdp.Title,
		Origin:               fdp.Origin,
		Stops:                fdp.Stops,
		TotalDistanceKm:      fdp.TotalDistanceKm,
		TotalDurationMinutes: fdp.TotalDurationMinutes,
		Bounds:               fdp.Bounds,
	}
}

// DrivePlanResponse ドライブプラン作成・取得のレスポンス
type DrivePlanResponse struct {
	Plan *DrivePlan `json:"plan"`
}
