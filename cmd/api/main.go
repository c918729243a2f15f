package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"lokapasar/internal/adapter/api"
	"lokapasar/internal/adapter/api/handler"
	apimiddleware "lokapasar/internal/adapter/api/middleware"
	"lokapasar/internal/adapter/api/router"
	"lokapasar/internal/adapter/repository"
	"lokapasar/internal/infrastructure/firebase"
	"lokapasar/internal/infrastructure/storage"
	"lokapasar/internal/state"
	"lokapasar/internal/usecase"
	"lokapasar/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			log.Fatalf("FIREBASE_SERVICE_ACCOUNT_JSON or FIREBASE_SERVICE_ACCOUNT_PATH is required")
		}
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"))
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisClient.Close()

	var persister state.Persister
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable (%v), falling back to in-memory persistence", err)
		persister = state.NewMemoryPersister()
	} else {
		persister = state.NewRedisPersister(redisClient)
	}
	registry := state.NewRegistry(persister)

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	storeRepo := repository.NewFirestoreStoreRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	voucherRepo := repository.NewFirestoreVoucherRepository(firestoreClient)
	wishlistRepo := repository.NewFirestoreWishlistRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient, registry)
	userUseCase := usecase.NewUserUseCase(userRepo, registry)
	productUseCase := usecase.NewProductUseCase(productRepo, storeRepo, categoryRepo, storageClient)
	storeUseCase := usecase.NewStoreUseCase(storeRepo, registry)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)
	cartUseCase := usecase.NewCartUseCase(productRepo, registry)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo, productRepo)
	voucherUseCase := usecase.NewVoucherUseCase(voucherRepo)

	handler.Setup(
		authUseCase,
		userUseCase,
		productUseCase,
		storeUseCase,
		categoryUseCase,
		cartUseCase,
		wishlistUseCase,
		voucherUseCase,
		cfg.HomeURL,
	)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
