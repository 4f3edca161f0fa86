package repository

import (
	"context"

	"DriveSpot-App/internal/domain/model"
)

// SpotsRepository スポットカタログへのアクセスを提供するリポジトリのインターフェース
// カタログは読み取り専用であり、コアがスポットを変更することはない
type SpotsRepository interface {
	// GetAll 全スポットを取得する
	GetAll(ctx context.Context) ([]*model.Spot, error)

	// GetByID 指定されたIDのスポットを取得する
	GetByID(ctx context.Context, id string) (*model.Spot, error)
}
