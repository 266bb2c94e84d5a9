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

	"TabiMap-App/internal/application"
	"TabiMap-App/internal/database"
	"TabiMap-App/internal/domain/service"
	"TabiMap-App/internal/handler"
	infradb "TabiMap-App/internal/infrastructure/database"
	"TabiMap-App/internal/infrastructure/firestore"
	"TabiMap-App/internal/repository"
	"TabiMap-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	// 必要な環境変数の確認
	requiredVars := []string{
		"SUPABASE_URL",
		"SUPABASE_ANON_KEY",
		"SUPABASE_DB_PASSWORD",
		"FIRESTORE_PROJECT_ID",
	}
	for _, envVar := range requiredVars {
		if os.Getenv(envVar) == "" {
			fmt.Printf("⚠️  環境変数 %s が設定されていません\n", envVar)
			fmt.Println(".envファイルを作成するか、環境変数を設定してください")
			log.Fatal("Environment variables not set")
		}
	}

	ctx := context.Background()

	// Supabase（旅程データ）
	fmt.Println("Initializing Supabase client...")
	supabaseClient, err := database.NewSupabaseClient()
	if err != nil {
		log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
	}
	if err := supabaseClient.HealthCheck(); err != nil {
		log.Fatalf("Supabaseヘルスチェック失敗: %v", err)
	}

	// PostgreSQL（地点マーカーデータ）
	fmt.Println("Initializing PostgreSQL client...")
	postgresClient, err := infradb.NewPostgreSQLClientWithRetry(3, 2*time.Second)
	if err != nil {
		log.Fatalf("PostgreSQLクライアント初期化失敗: %v", err)
	}
	defer postgresClient.Close()

	// Firestore（ラベル配置スナップショット）
	fmt.Println("Initializing Firestore client...")
	firestoreClient, err := firestore.NewFirestoreClient(ctx, os.Getenv("FIRESTORE_PROJECT_ID"))
	if err != nil {
		log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
	}
	defer firestoreClient.Close()

	fmt.Println("✅ 全データベース接続成功")

	// リポジトリの初期化
	tripsRepo := repository.NewSupabaseTripsRepository(supabaseClient)
	locationsRepo := repository.NewPostgresLocationsRepository(postgresClient)
	placementRepo := repository.NewFirestoreLabelPlacementRepository(firestoreClient.GetClient())

	// サービス・ユースケースの初期化
	labelService := service.NewHexagonalLabelService()
	tripsService := application.NewTripsService(tripsRepo, locationsRepo)
	placementUseCase := usecase.NewLabelPlacementUseCase(labelService, locationsRepo, placementRepo)

	// ハンドラーの初期化
	labelHandler := handler.NewLabelPlacementHandler(placementUseCase)
	tripsHandler := handler.NewTripsHandler(tripsService)

	// Ginルーターのセットアップ
	router := gin.Default()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "TabiMap-App"})
	})

	// ラベル配置API
	router.POST("/labels/hexagonal", labelHandler.PostHexagonalLabels)
	router.POST("/labels/placements", labelHandler.PostLabelPlacement)
	router.GET("/labels/placements/:id", labelHandler.GetLabelPlacement)

	// 旅程API
	router.POST("/trips", tripsHandler.CreateTrip)
	router.GET("/trips", tripsHandler.GetTripsByBoundingBox)
	router.GET("/trips/:id", tripsHandler.GetTripDetail)
	router.GET("/locations/nearby", tripsHandler.GetNearbyLocations)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("TabiMap-App server starting on :%s...\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("サーバーの起動に失敗: %v", err)
	}
}
