package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToFirestoreDrivePlan(t *testing.T) {
	plan := &DrivePlan{
		PlanID: "plan_test",
		Title:  "湘南ドライブ",
		Origin: &Location{Latitude: 35.31, Longitude: 139.48},
		Stops: []PlanStop{
			{SpotID: "spot-enoshima", Name: "江の島シーキャンドル"},
		},
		TotalDistanceKm:      12.3,
		TotalDurationMinutes: 180,
	}

	doc := plan.ToFirestoreDrivePlan(72)

	t.Run("プランの内容が引き継がれる", func(t *testing.T) {
		assert.Equal(t, plan.Title, doc.Title)
		assert.Equal(t, plan.Stops, doc.Stops)
		assert.Equal(t, plan.TotalDistanceKm, doc.TotalDistanceKm)
	})

	t.Run("有効期限はTTL時間後に設定される", func(t *testing.T) {
		expected := time.Now().Add(72 * time.Hour)
		assert.WithinDuration(t, expected, doc.ExpireAt, time.Minute)
	})

	t.Run("plan_idを付け直して復元できる", func(t *testing.T) {
		restored := doc.ToDrivePlan("plan_restored")
		assert.Equal(t, "plan_restored", restored.PlanID)
		assert.Equal(t, plan.Title, restored.Title)
		assert.Equal(t, plan.TotalDurationMinutes, restored.TotalDurationMinutes)
	})
}

func TestFirestoreDrivePlanExpired(t *testing.T) {
	now := time.Now()

	t.Run("期限前は有効", func(t *testing.T) {
		doc := &FirestoreDrivePlan{ExpireAt: now.Add(time.Hour)}
		assert.False(t, doc.Expired(now))
	})

	t.Run("期限を過ぎたプランは無効", func(t *testing.T) {
		// TTLによる削除前にドキュメントが残っていても、読み取り側で弾けること
		doc := &FirestoreDrivePlan{ExpireAt: now.Add(-time.Hour)}
		assert.True(t, doc.Expired(now))
	})

	t.Run("作成直後のプランは有効", func(t *testing.T) {
		doc := (&DrivePlan{Title: "テスト"}).ToFirestoreDrivePlan(72)
		assert.False(t, doc.Expired(time.Now()))
	})
}
