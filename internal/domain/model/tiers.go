package model

// TierConstants はアプリケーションで使用するドライブ時間ティアの定数
const (
	TierShort     = "short"     // ちょっとそこまで
	TierDay       = "day"       // 日帰りドライブ
	TierOvernight = "overnight" // 泊まりがけドライブ
)

// DistanceTier ドライブ時間カテゴリに対応する距離ティアの設定
// EstimatedHoursは製品上の目安表示であり、平均時速から計算される値ではない
type DistanceTier struct {
	ID             string  `json:"id"`
	MaxDistanceKm  float64 `json:"max_distance_km"`
	EstimatedHours string  `json:"estimated_hours"`
}

// TierTable はティアIDから距離ティア設定へのマッピング
var TierTable = map[string]DistanceTier{
	TierShort:     {ID: TierShort, MaxDistanceKm: 100, EstimatedHours: "2〜3時間"},
	TierDay:       {ID: TierDay, MaxDistanceKm: 200, EstimatedHours: "〜8時間"},
	TierOvernight: {ID: TierOvernight, MaxDistanceKm: 500, EstimatedHours: "〜16時間"},
}

// TierNameMap はティアIDから日本語名へのマッピング
var TierNameMap = map[string]string{
	TierShort:     "ちょっとそこまで",
	TierDay:       "日帰りドライブ",
	TierOvernight: "泊まりがけドライブ",
}

// GetTier はティアIDから距離ティア設定を取得する
func GetTier(tierID string) (DistanceTier, bool) {
	tier, ok := TierTable[tierID]
	return tier, ok
}

// GetTierJapaneseName はティアIDから日本語名を取得する
func GetTierJapaneseName(tierID string) string {
	if name, ok := TierNameMap[tierID]; ok {
		return name
	}
	return tierID // デフォルトはそのまま返す
}

// GetAllTiers は全ティアの一覧を近い順で取得する
func GetAllTiers() []DistanceTier {
	return []DistanceTier{
		TierTable[TierShort],
		TierTable[TierDay],
		TierTable[TierOvernight],
	}
}

// TieredSpots はティアごとに分類されたスポットのリスト
type TieredSpots struct {
	Short     []*Spot `json:"short"`
	Day       []*Spot `json:"day"`
	Overnight []*Spot `json:"overnight"`
}
