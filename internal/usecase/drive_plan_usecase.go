package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"DriveSpot-App/internal/domain/helper"
	"DriveSpot-App/internal/domain/model"
	"DriveSpot-App/internal/domain/repository"
)

// プランの保存期間と、高速道路利用を想定する区間距離のしきい値
const (
	planTTLHours          = 72
	expresswayThresholdKm = 100.0
)

type DrivePlanUseCase interface {
	// CreatePlan は選択されたスポット列からドライブプランを作成して保存する
	CreatePlan(ctx context.Context, req *model.DrivePlanRequest) (*model.DrivePlanResponse, error)

	// GetPlan は指定されたplan_idのドライブプランを取得する
	GetPlan(ctx context.Context, planID string) (*model.DrivePlanResponse, error)
}

// drivePlanUseCaseImpl はDrivePlanUseCaseの実装
type drivePlanUseCaseImpl struct {
	spotsRepo repository.SpotsRepository
	plansRepo repository.DrivePlansRepository
}

// NewDrivePlanUseCase は新しいDrivePlanUseCaseインスタンスを作成
func NewDrivePlanUseCase(spotsRepo repository.SpotsRepository, plansRepo repository.DrivePlansRepository) DrivePlanUseCase {
	return &drivePlanUseCaseImpl{
		spotsRepo: spotsRepo,
		plansRepo: plansRepo,
	}
}

// CreatePlan は訪問順のスポットIDから各区間の距離・所要時間を計算し、
// プランとして保存する
func (u *drivePlanUseCaseImpl) CreatePlan(ctx context.Context, req *model.DrivePlanRequest) (*model.DrivePlanResponse, error) {
	if req.Origin == nil {
		return nil, errors.New("出発地点が指定されていません")
	}
	if len(req.SpotIDs) == 0 {
		return nil, errors.New("立ち寄るスポットが指定されていません")
	}

	plan, err := u.buildPlan(ctx, req)
	if err != nil {
		return nil, err
	}

	saved, err := u.plansRepo.SavePlan(ctx, plan, planTTLHours)
	if err != nil {
		return nil, fmt.Errorf("プランの保存に失敗: %w", err)
	}

	log.Printf("✅ ドライブプラン作成 (%s): %d箇所 / %.1fkm / %d分",
		saved.PlanID, len(saved.Stops), saved.TotalDistanceKm, saved.TotalDurationMinutes)

	return &model.DrivePlanResponse{Plan: saved}, nil
}

// buildPlan はスポットを順に辿りながら区間距離と所要時間を積み上げる
func (u *drivePlanUseCaseImpl) buildPlan(ctx context.Context, req *model.DrivePlanRequest) (*model.DrivePlan, error) {
	stops := make([]model.PlanStop, 0, len(req.SpotIDs))
	prev := req.Origin.ToLatLng()
	totalDistanceKm := 0.0
	totalMinutes := 0.0

	for _, spotID := range req.SpotIDs {
		spot, err := u.spotsRepo.GetByID(ctx, spotID)
		if err != nil {
			return nil, fmt.Errorf("スポットの取得に失敗: %w", err)
		}

		loc := spot.ToLatLng()
		legKm := helper.HaversineDistance(prev, loc)

		// 長距離区間は高速道路の利用を想定する
		var driveMinutes float64
		if legKm >= expresswayThresholdKm {
			driveMinutes = helper.EstimateExpresswayDriveMinutes(legKm)
		} else {
			driveMinutes = helper.EstimateDriveMinutes(legKm)
		}

		visitHours := spot.VisitHours()
		stops = append(stops, model.PlanStop{
			SpotID:               spot.ID,
			Name:                 spot.Name,
			ImageURL:             spot.MainImage(),
			Latitude:             loc.Lat,
			Longitude:            loc.Lng,
			DistanceFromPrevKm:   helper.RoundDistanceKm(legKm),
			DriveMinutesFromPrev: int(math.Round(driveMinutes)),
			VisitHours:           visitHours,
		})

		totalDistanceKm += legKm
		totalMinutes += driveMinutes + float64(visitHours*60)
		prev = loc
	}

	title := req.Title
	if title == "" {
		title = fmt.Sprintf("%sを巡るドライブ", stops[0].Name)
	}

	return &model.DrivePlan{
		Title:                title,
		Origin:               req.Origin,
		Stops:                stops,
		TotalDistanceKm:      helper.RoundDistanceKm(totalDistanceKm),
		TotalDurationMinutes: int(math.Round(totalMinutes)),
	}, nil
}

// GetPlan は指定されたplan_idのドライブプランを取得する
func (u *drivePlanUseCaseImpl) GetPlan(ctx context.Context, planID string) (*model.DrivePlanResponse, error) {
	if planID == "" {
		return nil, errors.New("plan_idが指定されていません")
	}

	plan, err := u.plansRepo.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	return &model.DrivePlanResponse{Plan: plan}, nil
}
