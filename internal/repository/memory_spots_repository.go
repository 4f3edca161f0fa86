package repository

import (
	"context"
	"fmt"

	"DriveSpot-App/internal/domain/model"
	"DriveSpot-App/internal/domain/repository"
)

// MemorySpotsRepository 静的なスポットカタログをメモリ上に保持するリポジトリ
// プロセス起動時に一度だけ構築され、以降は読み取り専用で共有される
type MemorySpotsRepository struct {
	spots []*model.Spot
	byID  map[string]*model.Spot
}

func NewMemorySpotsRepository(spots []*model.Spot) repository.SpotsRepository {
	byID := make(map[string]*model.Spot, len(spots))
	for _, s := range spots {
		byID[s.ID] = s
	}
	return &MemorySpotsRepository{
		spots: spots,
		byID:  byID,
	}
}

func (r *MemorySpotsRepository) GetAll(ctx context.Context) ([]*model.Spot, error) {
	return r.spots, nil
}

func (r *MemorySpotsRepository) GetByID(ctx context.Context, id string) (*model.Spot, error) {
	spot, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("スポットID %s が見つかりません", id)
	}
	return spot, nil
}
