package repository

import (
	"context"

	"DriveSpot-App/internal/domain/model"
)

// DrivePlansRepository ドライブプランの保存・取得を提供するリポジトリのインターフェース
type DrivePlansRepository interface {
	// SavePlan プランを保存し、生成されたplan_id入りのプランを返す
	SavePlan(ctx context.Context, plan *model.DrivePlan, ttlHours int) (*model.DrivePlan, error)

	// GetPlan 指定されたplan_idのプランを取得する
	GetPlan(ctx context.Context, planID string) (*model.DrivePlan, error)
}
