package model

import "strconv"

// LatLng 緯度経度を表す基本的な型（距離計算などで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Spot ドライブで訪れる絶景スポットを表すモデル
type Spot struct {
	ID          string    `json:"id" db:"id"`                   // ユニークなスポットID
	Name        string    `json:"name" db:"name"`               // スポット名
	Description string    `json:"description" db:"description"` // スポットの説明文
	Address     string    `json:"address" db:"address"`         // 住所（表示用）
	Images      []string  `json:"images" db:"images"`           // 画像URL（先頭がメイン画像）
	Location    *Geometry `json:"location" db:"location"`       // 位置情報（PostGIS GEOMETRY型）
	Tags        []string  `json:"tags" db:"tags"`               // カテゴリタグ（複数対応）
	Vibes       []string  `json:"vibes" db:"vibes"`             // 雰囲気タグ（複数対応）
	Rating      float64   `json:"rating" db:"rating"`           // 評価値（0〜5）
	Reviews     int       `json:"reviews" db:"reviews"`         // レビュー件数
	Duration    string    `json:"duration" db:"duration"`       // 滞在時間の目安（例: "1時間"）
	BestTime    string    `json:"best_time" db:"best_time"`     // おすすめの時間帯
}

// ToLatLng Spotの位置情報をLatLng型に変換
func (s *Spot) ToLatLng() LatLng {
	if s.Location != nil && len(s.Location.Coordinates) >= 2 {
		return LatLng{
			Lat: s.Location.Coordinates[1], // latitude
			Lng: s.Location.Coordinates[0], // longitude
		}
	}
	return LatLng{}
}

// VisitHours 滞在時間の目安文字列から先頭の時間数を抽出する
// "1時間"や"2時間半"のような表記を想定し、パースできない場合は1時間とみなす
func (s *Spot) VisitHours() int {
	digits := ""
	for _, r := range s.Duration {
		if r < '0' || r > '9' {
			break
		}
		digits += string(r)
	}
	if digits == "" {
		return 1
	}
	hours, err := strconv.Atoi(digits)
	if err != nil || hours <= 0 {
		return 1
	}
	return hours
}

// HasTag 指定されたタグを持つかチェック
func (s *Spot) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MainImage メイン画像のURLを返す（画像がない場合は空文字列）
func (s *Spot) MainImage() string {
	if len(s.Images) > 0 {
		return s.Images[0]
	}
	return ""
}

// Geometry PostGIS GEOMETRY型に対応する構造体
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
}

// GeoPolygon GeoJSONのPolygonに対応する構造体（地図のfit-bounds用）
type GeoPolygon struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

type Location struct {
	Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// ToLatLng Location を LatLng 型に変換
func (l *Location) ToLatLng() LatLng {
	return LatLng{Lat: l.Latitude, Lng: l.Longitude}
}

// ToGeometry Location を PostGIS GEOMETRY 型に変換
func (l *Location) ToGeometry() *Geometry {
	return &Geometry{
		Type:        "Point",
		Coordinates: []float64{l.Longitude, l.Latitude},
	}
}

// FromGeometry PostGIS GEOMETRY 型から Location に変換
func (l *Location) FromGeometry(g *Geometry) {
	if g != nil && len(g.Coordinates) >= 2 {
		l.Longitude = g.Coordinates[0]
		l.Latitude = g.Coordinates[1]
	}
}

// NewSpotLocation 緯度経度からGeometryを生成する便利関数
func NewSpotLocation(lat, lng float64) *Geometry {
	return &Geometry{
		Type:        "Point",
		Coordinates: []float64{lng, lat},
	}
}
