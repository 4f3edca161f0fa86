package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"DriveSpot-App/internal/domain/model"
)

// GooglePlacesProvider はGoogle Places APIを使用したスポット検索の実装
// 外部の検索結果をSpot型に変換する境界アダプターであり、
// コアのロジックが生のPlacesレスポンスを見ることはない
type GooglePlacesProvider struct {
	apiKey     string
	httpClient *http.Client
}

// NewGooglePlacesProvider は新しいプロバイダを生成する
func NewGooglePlacesProvider(apiKey string) *GooglePlacesProvider {
	return &GooglePlacesProvider{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchSpots はGoogle Places Text Search APIを呼び出して検索結果をSpot型で返す
func (g *GooglePlacesProvider) SearchSpots(ctx context.Context, query string, maxResults int) ([]*model.Spot, error) {
	// 1. APIリクエストURLを構築
	reqURL := g.buildURL(query)

	// 2. HTTPリクエストを作成・実行
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	// 3. JSONレスポンスをパース
	var apiResp placesSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	if apiResp.Status != "OK" && apiResp.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("Places APIエラー: %s %s", apiResp.Status, apiResp.ErrorMessage)
	}

	// 4. ドメインモデルに変換して返す
	spots := make([]*model.Spot, 0, len(apiResp.Results))
	for _, result := range apiResp.Results {
		spots = append(spots, g.toSpot(result))
		if maxResults > 0 && len(spots) >= maxResults {
			break
		}
	}
	return spots, nil
}

// toSpot はPlaces APIの検索結果1件をSpot型に変換する
func (g *GooglePlacesProvider) toSpot(result placeResult) *model.Spot {
	var images []string
	for _, photo := range result.Photos {
		images = append(images, g.photoURL(photo.PhotoReference))
	}

	return &model.Spot{
		ID:          fmt.Sprintf("gp_%s", result.PlaceID),
		Name:        result.Name,
		Description: result.FormattedAddress,
		Address:     result.FormattedAddress,
		Images:      images,
		Location:    model.NewSpotLocation(result.Geometry.Location.Lat, result.Geometry.Location.Lng),
		Tags:        []string{"検索結果"},
		Vibes:       []string{},
		Rating:      result.Rating,
		Reviews:     result.UserRatingsTotal,
		Duration:    "1時間",
	}
}

func (g *GooglePlacesProvider) buildURL(query string) string {
	baseURL := "https://maps.googleapis.com/maps/api/place/textsearch/json"
	params := url.Values{}
	params.Set("query", query)
	params.Set("language", "ja")
	params.Set("region", "jp")
	params.Set("key", g.apiKey)
	return fmt.Sprintf("%s?%s", baseURL, params.Encode())
}

func (g *GooglePlacesProvider) photoURL(photoReference string) string {
	params := url.Values{}
	params.Set("maxwidth", "800")
	params.Set("photo_reference", photoReference)
	params.Set("key", g.apiKey)
	return fmt.Sprintf("https://maps.googleapis.com/maps/api/place/photo?%s", params.Encode())
}

// --- Google Places APIのレスポンスをパースするための構造体 ---

type placesSearchResponse struct {
	Results      []placeResult `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}
type placeResult struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	FormattedAddress string        `json:"formatted_address"`
	Geometry         placeGeometry `json:"geometry"`
	Rating           float64       `json:"rating"`
	UserRatingsTotal int           `json:"user_ratings_total"`
	Photos           []placePhoto  `json:"photos"`
}
type placeGeometry struct {
	Location placeLatLng `json:"location"`
}
type placeLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
type placePhoto struct {
	PhotoReference string `json:"photo_reference"`
}
