package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"DriveSpot-App/internal/database"
	"DriveSpot-App/internal/domain/service"
	"DriveSpot-App/internal/handler"
	pgdatabase "DriveSpot-App/internal/infrastructure/database"
	"DriveSpot-App/internal/infrastructure/firestore"
	"DriveSpot-App/internal/infrastructure/maps"
	repoimpl "DriveSpot-App/internal/repository"
	"DriveSpot-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseAnonKey := os.Getenv("SUPABASE_ANON_KEY")
	supabasePassword := os.Getenv("SUPABASE_DB_PASSWORD")

	if supabaseURL == "" || supabaseAnonKey == "" || supabasePassword == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数: SUPABASE_URL, SUPABASE_ANON_KEY, SUPABASE_DB_PASSWORD")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	ctx := context.Background()

	fmt.Println("Initializing Supabase client...")
	supabaseClient, err := database.NewSupabaseClient()
	if err != nil {
		log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
	}

	fmt.Println("Performing Supabase health check...")
	if err := supabaseClient.HealthCheck(); err != nil {
		log.Fatalf("Supabaseヘルスチェック失敗: %v", err)
	}
	fmt.Println("✅ Supabase connection successful!")

	fmt.Println("Initializing PostgreSQL client...")
	pgClient, err := pgdatabase.NewPostgreSQLClientWithRetry(3, 2*time.Second)
	if err != nil {
		log.Fatalf("PostgreSQLクライアント初期化失敗: %v", err)
	}
	defer pgClient.Close()

	// スポットカタログは起動時に一度だけ読み込み、以降は読み取り専用で共有する
	fmt.Println("Loading spot catalog...")
	pgRepo := repoimpl.NewPostgresSpotsRepository(pgClient)
	catalog, err := pgRepo.GetAll(ctx)
	if err != nil {
		log.Fatalf("スポットカタログの読み込み失敗: %v", err)
	}
	log.Printf("✅ %d件のスポットを読み込みました", len(catalog))
	spotsRepo := repoimpl.NewMemorySpotsRepository(catalog)

	// おすすめエンジンの初期化
	engine, err := service.NewRecommendEngine(service.DefaultScoringConfig())
	if err != nil {
		log.Fatalf("おすすめエンジン初期化失敗: %v", err)
	}

	// 場所検索プロバイダ（APIキー未設定の場合は検索エンドポイントのみ無効）
	var placesProvider *maps.GooglePlacesProvider
	if apiKey := os.Getenv("GOOGLE_MAPS_API_KEY"); apiKey != "" {
		placesProvider = maps.NewGooglePlacesProvider(apiKey)
	} else {
		fmt.Println("⚠️  GOOGLE_MAPS_API_KEYが未設定のため、場所検索は無効です")
	}

	recommendationUseCase := usecase.NewRecommendationUseCase(spotsRepo, engine)
	spotSearchUseCase := usecase.NewSpotSearchUseCase(spotsRepo, placesProvider)

	recommendationHandler := handler.NewRecommendationHandler(recommendationUseCase)
	spotsHandler := handler.NewSpotsHandler(spotSearchUseCase)

	r := gin.Default()

	// ヘルスチェック
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "DriveSpot-App"})
	})

	// おすすめスポット
	r.POST("/recommendations", recommendationHandler.PostRecommendations)
	r.GET("/recommendations/explain", recommendationHandler.GetExplain)

	// スポット検索・絞り込み
	r.GET("/spots", spotsHandler.GetSpots)
	r.GET("/spots/tiers", spotsHandler.GetSpotsByTier)
	r.GET("/spots/categorized", spotsHandler.GetCategorizedSpots)
	r.GET("/spots/search", spotsHandler.SearchSpots)

	// ドライブプラン（Firestoreが設定されている場合のみ有効）
	if projectID := os.Getenv("GOOGLE_CLOUD_PROJECT"); projectID != "" {
		firestoreClient, err := firestore.NewFirestoreClient(ctx, projectID)
		if err != nil {
			log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
		}
		defer firestoreClient.Close()

		plansRepo := repoimpl.NewFirestoreDrivePlanRepository(firestoreClient.GetClient())
		drivePlanUseCase := usecase.NewDrivePlanUseCase(spotsRepo, plansRepo)
		drivePlanHandler := handler.NewDrivePlanHandler(drivePlanUseCase)

		r.POST("/plans", drivePlanHandler.PostPlan)
		r.GET("/plans/:id", drivePlanHandler.GetPlan)
	} else {
		fmt.Println("⚠️  GOOGLE_CLOUD_PROJECTが未設定のため、ドライブプラン保存は無効です")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("DriveSpot-App server starting on :%s...\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("サーバーの起動に失敗: %v", err)
	}
}
