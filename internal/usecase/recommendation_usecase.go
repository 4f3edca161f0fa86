package usecase

import (
	"context"
	"fmt"
	"log"

	"DriveSpot-App/internal/domain/helper"
	"DriveSpot-App/internal/domain/model"
	"DriveSpot-App/internal/domain/repository"
	"DriveSpot-App/internal/domain/service"
)

type RecommendationUseCase interface {
	// GetRecommendations は基準スポットに似たおすすめスポットの一覧を返す
	GetRecommendations(ctx context.Context, req *model.RecommendationRequest) (*model.RecommendationResponse, error)

	// ExplainRecommendation は1組のスポットペアのスコア内訳を返す（デバッグ用）
	ExplainRecommendation(ctx context.Context, spotID, candidateID string) (*model.ScoreBreakdown, error)
}

// recommendationUseCaseImpl はRecommendationUseCaseの実装
type recommendationUseCaseImpl struct {
	spotsRepo repository.SpotsRepository
	engine    *service.RecommendEngine
}

// NewRecommendationUseCase は新しいRecommendationUseCaseインスタンスを作成
func NewRecommendationUseCase(spotsRepo repository.SpotsRepository, engine *service.RecommendEngine) RecommendationUseCase {
	return &recommendationUseCaseImpl{
		spotsRepo: spotsRepo,
		engine:    engine,
	}
}

// GetRecommendations は基準スポットに似たおすすめスポットの一覧を返す
func (u *recommendationUseCaseImpl) GetRecommendations(ctx context.Context, req *model.RecommendationRequest) (*model.RecommendationResponse, error) {
	reference, err := u.spotsRepo.GetByID(ctx, req.SpotID)
	if err != nil {
		return nil, fmt.Errorf("基準スポットの取得に失敗: %w", err)
	}

	catalog, err := u.spotsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("スポットカタログの取得に失敗: %w", err)
	}

	recommended, err := u.engine.Recommend(reference, catalog, req.ExcludeSet(), req.MaxResults)
	if err != nil {
		return nil, fmt.Errorf("おすすめ計算に失敗: %w", err)
	}

	log.Printf("✅ %d件のおすすめスポットを生成 (基準: %s)", len(recommended), reference.Name)

	// 表示用の距離・所要時間を付与する（丸めはここで行い、エンジンは全精度のまま）
	referenceLatLng := reference.ToLatLng()
	results := make([]model.RecommendedSpot, len(recommended))
	for i, spot := range recommended {
		distanceKm := helper.HaversineDistance(referenceLatLng, spot.ToLatLng())
		results[i] = model.RecommendedSpot{
			Spot:          spot,
			DistanceKm:    helper.RoundDistanceKm(distanceKm),
			DriveDuration: helper.FormatDriveDuration(distanceKm),
		}
	}

	return &model.RecommendationResponse{Recommendations: results}, nil
}

// ExplainRecommendation は1組のスポットペアのスコア内訳を返す
func (u *recommendationUseCaseImpl) ExplainRecommendation(ctx context.Context, spotID, candidateID string) (*model.ScoreBreakdown, error) {
	reference, err := u.spotsRepo.GetByID(ctx, spotID)
	if err != nil {
		return nil, fmt.Errorf("基準スポットの取得に失敗: %w", err)
	}

	candidate, err := u.spotsRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("比較対象スポットの取得に失敗: %w", err)
	}

	return u.engine.Explain(reference, candidate)
}
