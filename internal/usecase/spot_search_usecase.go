package usecase

import (
	"context"
	"errors"
	"fmt"

	"DriveSpot-App/internal/domain/model"
	"DriveSpot-App/internal/domain/repository"
	"DriveSpot-App/internal/domain/service"
	"DriveSpot-App/internal/infrastructure/maps"
)

type SpotSearchUseCase interface {
	// GetSpotsByArea は指定されたエリア名に含まれるスポット一覧を返す
	// エリア名が未登録の場合は全カタログ、タグ指定時はさらにタグで絞り込む
	GetSpotsByArea(ctx context.Context, areaName, tag string) ([]*model.Spot, error)

	// GetSpotsByTier は基準座標から指定ティアの距離内にあるスポットを近い順で返す
	GetSpotsByTier(ctx context.Context, origin model.LatLng, tierID string) ([]*model.Spot, error)

	// CategorizeSpots は全スポットを3つのドライブ時間ティアに分類して返す
	CategorizeSpots(ctx context.Context, origin model.LatLng) (*model.TieredSpots, error)

	// SearchSpots は外部の場所検索からSpot型に変換した結果を返す
	SearchSpots(ctx context.Context, query string) ([]*model.Spot, error)
}

// spotSearchUseCaseImpl はSpotSearchUseCaseの実装
type spotSearchUseCaseImpl struct {
	spotsRepo      repository.SpotsRepository
	placesProvider *maps.GooglePlacesProvider
}

// NewSpotSearchUseCase は新しいSpotSearchUseCaseインスタンスを作成
// placesProviderはnil可（その場合、SearchSpotsはエラーを返す）
func NewSpotSearchUseCase(spotsRepo repository.SpotsRepository, placesProvider *maps.GooglePlacesProvider) SpotSearchUseCase {
	return &spotSearchUseCaseImpl{
		spotsRepo:      spotsRepo,
		placesProvider: placesProvider,
	}
}

const searchMaxResults = 10

func (u *spotSearchUseCaseImpl) GetSpotsByArea(ctx context.Context, areaName, tag string) ([]*model.Spot, error) {
	catalog, err := u.spotsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("スポットカタログの取得に失敗: %w", err)
	}
	spots := service.FilterByAreaName(catalog, areaName)
	return service.FilterByTag(spots, tag), nil
}

func (u *spotSearchUseCaseImpl) GetSpotsByTier(ctx context.Context, origin model.LatLng, tierID string) ([]*model.Spot, error) {
	tier, ok := model.GetTier(tierID)
	if !ok {
		return nil, fmt.Errorf("対応していないティアです: %s", tierID)
	}

	catalog, err := u.spotsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("スポットカタログの取得に失敗: %w", err)
	}
	return service.FilterByDriveTimeTier(catalog, origin, tier), nil
}

func (u *spotSearchUseCaseImpl) CategorizeSpots(ctx context.Context, origin model.LatLng) (*model.TieredSpots, error) {
	catalog, err := u.spotsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("スポットカタログの取得に失敗: %w", err)
	}
	return service.CategorizeByAllTiers(catalog, origin), nil
}

func (u *spotSearchUseCaseImpl) SearchSpots(ctx context.Context, query string) ([]*model.Spot, error) {
	if u.placesProvider == nil {
		return nil, errors.New("場所検索は現在利用できません（APIキー未設定）")
	}
	if query == "" {
		return nil, errors.New("検索キーワードが指定されていません")
	}

	spots, err := u.placesProvider.SearchSpots(ctx, query, searchMaxResults)
	if err != nil {
		return nil, fmt.Errorf("場所検索に失敗: %w", err)
	}
	return spots, nil
}
