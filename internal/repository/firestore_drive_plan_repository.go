package repository

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"DriveSpot-App/internal/domain/model"
	"DriveSpot-App/internal/domain/repository"
)

// FirestoreDrivePlanRepository Firestoreを使用したドライブプランリポジトリ
type FirestoreDrivePlanRepository struct {
	client *firestore.Client
}

// NewFirestoreDrivePlanRepository 新しいFirestoreDrivePlanRepositoryインスタンスを作成
func NewFirestoreDrivePlanRepository(client *firestore.Client) repository.DrivePlansRepository {
	return &FirestoreDrivePlanRepository{
		client: client,
	}
}

// SavePlan はドライブプランをFirestoreに保存し、plan_idを生成して返す
func (r *FirestoreDrivePlanRepository) SavePlan(ctx context.Context, plan *model.DrivePlan, ttlHours int) (*model.DrivePlan, error) {
	planID := fmt.Sprintf("plan_%s", uuid.New().String())

	saved := *plan
	saved.PlanID = planID
	saved.Bounds = CreatePlanBounds(plan.Origin, plan.Stops)

	firestoreData := saved.ToFirestoreDrivePlan(ttlHours)

	_, err := r.client.Collection("drivePlans").Doc(planID).Set(ctx, firestoreData)
	if err != nil {
		log.Printf("❌ Failed to save drive plan %s: %v", planID, err)
		return nil, fmt.Errorf("ドライブプランの保存に失敗しました: %w", err)
	}

	log.Printf("✅ Drive plan saved: %s (expires in %d hours)", planID, ttlHours)
	return &saved, nil
}

// GetPlan は指定されたplan_idのドライブプランをFirestoreから取得する
func (r *FirestoreDrivePlanRepository) GetPlan(ctx context.Context, planID string) (*model.DrivePlan, error) {
	doc, err := r.client.Collection("drivePlans").Doc(planID).Get(ctx)
	if err != nil {
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("ドライブプランが見つかりません（有効期限切れまたは無効なID）: %s", planID)
		}
		return nil, fmt.Errorf("ドライブプランの取得に失敗しました: %w", err)
	}

	var firestoreData model.FirestoreDrivePlan
	if err := doc.DataTo(&firestoreData); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}

	// TTLによる自動削除は遅延するため、期限切れのドキュメントが残っていても返さない
	if firestoreData.Expired(time.Now()) {
		return nil, fmt.Errorf("ドライブプランが見つかりません（有効期限切れまたは無効なID）: %s", planID)
	}

	return firestoreData.ToDrivePlan(planID), nil
}
