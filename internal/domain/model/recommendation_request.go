package model

// RecommendationRequest は「このスポットに似たおすすめ」取得に必要な条件を保持する
type RecommendationRequest struct {
	SpotID     string   `json:"spot_id" validate:"required"` // 必須：基準となるスポットID
	ExcludeIDs []string `json:"exclude_ids,omitempty"`       // オプション：除外するスポットID（選択済みなど）
	MaxResults int      `json:"max_results"`                 // オプション：0以下の場合はデフォルト件数
}

// ExcludeSet 除外IDリストをセットに変換する
func (r *RecommendationRequest) ExcludeSet() map[string]struct{} {
	set := make(map[string]struct{}, len(r.ExcludeIDs))
	for _, id := range r.ExcludeIDs {
		set[id] = struct{}{}
	}
	return set
}

// RecommendationResponse おすすめスポット一覧のレスポンス
type RecommendationResponse struct {
	Recommendations []RecommendedSpot `json:"recommendations"`
}

// RecommendedSpot おすすめ結果の1件分（表示用の距離・所要時間つき）
type RecommendedSpot struct {
	Spot          *Spot   `json:"spot"`
	DistanceKm    float64 `json:"distance_km"`    // 小数第1位に丸めた表示用距離
	DriveDuration string  `json:"drive_duration"` // 車での所要時間の表示文字列
}

// ScoreBreakdown 1組のスポットペアに対するスコア計算の内訳（デバッグ用）
type ScoreBreakdown struct {
	DistanceKm     float64 `json:"distance_km"`
	DistanceScore  float64 `json:"distance_score"`
	TagSimilarity  float64 `json:"tag_similarity"`
	VibeSimilarity float64 `json:"vibe_similarity"`
	RatingScore    float64 `json:"rating_score"`
	TotalScore     float64 `json:"total_score"`
}
