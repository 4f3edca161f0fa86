package service

import (
	"DriveSpot-App/internal/domain/helper"
	"DriveSpot-App/internal/domain/model"
	"errors"
	"fmt"
	"math"
	"sort"
)

// スコアリングのデフォルト設定値
const (
	DefaultWeightDistance = 0.40
	DefaultWeightTag      = 0.25
	DefaultWeightVibe     = 0.20
	DefaultWeightRating   = 0.15
	DefaultMaxDistanceKm  = 100.0
	DefaultMaxResults     = 10
)

// ScoringConfig はおすすめスコアリングの設定
// 重みの合計は1.0でなければならない
type ScoringConfig struct {
	WeightDistance float64 // 距離スコアの重み
	WeightTag      float64 // タグ類似度の重み
	WeightVibe     float64 // 雰囲気類似度の重み
	WeightRating   float64 // 評価スコアの重み
	MaxDistanceKm  float64 // 距離スコアが0になる距離
	MaxResults     int     // maxResults未指定時のデフォルト件数
}

// DefaultScoringConfig はデフォルトのスコアリング設定を返す
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		WeightDistance: DefaultWeightDistance,
		WeightTag:      DefaultWeightTag,
		WeightVibe:     DefaultWeightVibe,
		WeightRating:   DefaultWeightRating,
		MaxDistanceKm:  DefaultMaxDistanceKm,
		MaxResults:     DefaultMaxResults,
	}
}

// Validate は設定値の妥当性をチェックする
func (c ScoringConfig) Validate() error {
	sum := c.WeightDistance + c.WeightTag + c.WeightVibe + c.WeightRating
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("スコアの重みの合計が1.0ではありません: %f", sum)
	}
	if c.MaxDistanceKm <= 0 {
		return fmt.Errorf("MaxDistanceKmは正の値である必要があります: %f", c.MaxDistanceKm)
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("MaxResultsは正の値である必要があります: %d", c.MaxResults)
	}
	return nil
}

// RecommendEngine は基準スポットに対するおすすめスポットの並び順を計算する
// 呼び出し間で状態を持たないため、複数goroutineから同時に呼び出しても安全
type RecommendEngine struct {
	config ScoringConfig
}

// NewRecommendEngine は新しいRecommendEngineを作成する
func NewRecommendEngine(config ScoringConfig) (*RecommendEngine, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("スコアリング設定が不正です: %w", err)
	}
	return &RecommendEngine{config: config}, nil
}

// scoredSpot はスコア計算中の候補スポット（呼び出し内でのみ使用）
type scoredSpot struct {
	spot       *model.Spot
	score      float64
	distanceKm float64
}

// Recommend は基準スポットに似たおすすめスポットをスコア降順で返す
// 基準スポット自身と除外IDに含まれるスポットは候補から外れる
// 候補が尽きた場合は空スライスを返す（エラーではない）
func (e *RecommendEngine) Recommend(reference *model.Spot, catalog []*model.Spot, excludeIDs map[string]struct{}, maxResults int) ([]*model.Spot, error) {
	if reference == nil {
		return nil, errors.New("基準スポットが指定されていません")
	}
	if maxResults <= 0 {
		maxResults = e.config.MaxResults
	}

	candidates := make([]scoredSpot, 0, len(catalog))
	for _, candidate := range catalog {
		if candidate == nil || candidate.ID == reference.ID {
			continue
		}
		if _, excluded := excludeIDs[candidate.ID]; excluded {
			continue
		}
		breakdown := e.scorePair(reference, candidate)
		candidates = append(candidates, scoredSpot{
			spot:       candidate,
			score:      breakdown.TotalScore,
			distanceKm: breakdown.DistanceKm,
		})
	}

	// スコア降順。同点の場合は距離の近い順で決定的な並びにする
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].distanceKm < candidates[j].distanceKm
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	result := make([]*model.Spot, len(candidates))
	for i, c := range candidates {
		result[i] = c.spot
	}
	return result, nil
}

// Explain は1組のスポットペアに対するスコア計算の内訳を返す（デバッグ用）
// Recommendと完全に同じ計算式を使用する
func (e *RecommendEngine) Explain(reference, candidate *model.Spot) (*model.ScoreBreakdown, error) {
	if reference == nil {
		return nil, errors.New("基準スポットが指定されていません")
	}
	if candidate == nil {
		return nil, errors.New("比較対象のスポットが指定されていません")
	}
	breakdown := e.scorePair(reference, candidate)
	return &breakdown, nil
}

// scorePair は4つの要素スコア（各0〜1）と加重合計を計算する
func (e *RecommendEngine) scorePair(reference, candidate *model.Spot) model.ScoreBreakdown {
	distanceKm := helper.HaversineDistanceSpot(reference, candidate)

	// 遠いスポットも候補から除外はしない。距離スコアが0になるだけで、
	// 他の要素によって上位に来る余地を残す
	distanceScore := math.Max(0, 1-distanceKm/e.config.MaxDistanceKm)
	tagSimilarity := helper.JaccardSimilarity(reference.Tags, candidate.Tags)
	vibeSimilarity := helper.JaccardSimilarity(reference.Vibes, candidate.Vibes)
	ratingScore := candidate.Rating / 5.0

	totalScore := e.config.WeightDistance*distanceScore +
		e.config.WeightTag*tagSimilarity +
		e.config.WeightVibe*vibeSimilarity +
		e.config.WeightRating*ratingScore

	return model.ScoreBreakdown{
		DistanceKm:     distanceKm,
		DistanceScore:  distanceScore,
		TagSimilarity:  tagSimilarity,
		VibeSimilarity: vibeSimilarity,
		RatingScore:    ratingScore,
		TotalScore:     totalScore,
	}
}
