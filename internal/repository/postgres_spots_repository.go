package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"DriveSpot-App/internal/domain/model"
	"DriveSpot-App/internal/domain/repository"
	"DriveSpot-App/internal/infrastructure/database"
)

type PostgresSpotsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresSpotsRepository(client *database.PostgreSQLClient) repository.SpotsRepository {
	return &PostgresSpotsRepository{
		client: client,
	}
}

// SpotResult spotsテーブルの1行を受け取るための構造体
// location/images/tags/vibesはJSONBカラムとして格納されている
type SpotResult struct {
	ID          string
	Name        string
	Description string
	Address     string
	Images      string
	Location    string
	Tags        string
	Vibes       string
	Rating      float64
	Reviews     int
	Duration    sql.NullString
	BestTime    sql.NullString
}

// ToSpot SpotResultをmodel.Spotに変換
func (sr *SpotResult) ToSpot() (*model.Spot, error) {
	var location model.Geometry
	if err := json.Unmarshal([]byte(sr.Location), &location); err != nil {
		return nil, fmt.Errorf("location JSONBパースエラー: %w", err)
	}

	var images []string
	if err := json.Unmarshal([]byte(sr.Images), &images); err != nil {
		return nil, fmt.Errorf("images JSONBパースエラー: %w", err)
	}

	var tags []string
	if err := json.Unmarshal([]byte(sr.Tags), &tags); err != nil {
		return nil, fmt.Errorf("tags JSONBパースエラー: %w", err)
	}

	var vibes []string
	if err := json.Unmarshal([]byte(sr.Vibes), &vibes); err != nil {
		return nil, fmt.Errorf("vibes JSONBパースエラー: %w", err)
	}

	spot := &model.Spot{
		ID:          sr.ID,
		Name:        sr.Name,
		Description: sr.Description,
		Address:     sr.Address,
		Images:      images,
		Location:    &location,
		Tags:        tags,
		Vibes:       vibes,
		Rating:      sr.Rating,
		Reviews:     sr.Reviews,
	}

	if sr.Duration.Valid {
		spot.Duration = sr.Duration.String
	}
	if sr.BestTime.Valid {
		spot.BestTime = sr.BestTime.String
	}

	return spot, nil
}

const spotColumns = `id, name, description, address, images, location, tags, vibes, rating, reviews, duration, best_time`

func (r *PostgresSpotsRepository) GetAll(ctx context.Context) ([]*model.Spot, error) {
	query := fmt.Sprintf(`SELECT %s FROM spots ORDER BY id`, spotColumns)

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("スポットカタログの取得失敗: %w", err)
	}
	defer rows.Close()

	var spots []*model.Spot
	for rows.Next() {
		var result SpotResult
		err := rows.Scan(&result.ID, &result.Name, &result.Description, &result.Address,
			&result.Images, &result.Location, &result.Tags, &result.Vibes,
			&result.Rating, &result.Reviews, &result.Duration, &result.BestTime)
		if err != nil {
			return nil, fmt.Errorf("スポットデータスキャンエラー: %w", err)
		}

		spot, err := result.ToSpot()
		if err != nil {
			return nil, err
		}
		spots = append(spots, spot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("スポットデータの読み取りエラー: %w", err)
	}

	return spots, nil
}

func (r *PostgresSpotsRepository) GetByID(ctx context.Context, id string) (*model.Spot, error) {
	query := fmt.Sprintf(`SELECT %s FROM spots WHERE id = $1`, spotColumns)

	row := r.client.DB.QueryRowContext(ctx, query, id)

	var result SpotResult
	err := row.Scan(&result.ID, &result.Name, &result.Description, &result.Address,
		&result.Images, &result.Location, &result.Tags, &result.Vibes,
		&result.Rating, &result.Reviews, &result.Duration, &result.BestTime)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("スポットID %s が見つかりません", id)
		}
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}

	return result.ToSpot()
}
