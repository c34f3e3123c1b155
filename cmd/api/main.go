package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"marketadmin/internal/adapter/api"
	"marketadmin/internal/adapter/api/handler"
	apimiddleware "marketadmin/internal/adapter/api/middleware"
	"marketadmin/internal/adapter/api/router"
	"marketadmin/internal/adapter/repository"
	"marketadmin/internal/infrastructure/firebase"
	"marketadmin/internal/infrastructure/storage"
	"marketadmin/internal/infrastructure/websocket"
	"marketadmin/internal/usecase"
	"marketadmin/pkg/config"
	"marketadmin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	serviceAccountPath := ""

	// Credentials come either inline (production) or from a file path
	// (local development).
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
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

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	adminRepo := repository.NewFirestoreAdminRepository(firestoreClient)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	txnRepo := repository.NewFirestoreTransactionRepository(firestoreClient)
	verificationRepo := repository.NewFirestoreVerificationRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(adminRepo, firebaseAuthClient)
	staffUseCase := usecase.NewStaffUseCase(adminRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, userRepo)
	txnUseCase := usecase.NewTransactionUseCase(txnRepo, orderRepo)
	verificationUseCase := usecase.NewVerificationUseCase(verificationRepo, userRepo, storageClient)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo, notificationRepo, wsManager)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(userRepo, orderRepo, txnRepo)

	// Incoming websocket send commands are handled by the chat use case;
	// the manager is constructed first so the use case can push through it.
	wsManager.SetCommandHandler(chatUseCase.HandleSendCommand)

	devMode := cfg.Environment == "development"
	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient, cfg.DevTokenSecret, devMode)
	permMiddleware := apimiddleware.NewPermissionMiddleware(adminRepo)

	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(authUseCase),
		Staff:        handler.NewStaffHandler(staffUseCase),
		User:         handler.NewUserHandler(userUseCase),
		Order:        handler.NewOrderHandler(orderUseCase),
		Transaction:  handler.NewTransactionHandler(txnUseCase),
		Verification: handler.NewVerificationHandler(verificationUseCase),
		Chat:         handler.NewChatHandler(chatUseCase),
		Notification: handler.NewNotificationHandler(notificationUseCase),
		Dashboard:    handler.NewDashboardHandler(dashboardUseCase),
		WebSocket:    handler.NewWebSocketHandler(wsManager, authMiddleware),
	}
	if devMode {
		handlers.DevToken = handler.NewDevTokenHandler(cfg.DevTokenSecret, cfg.DevTokenExpiry)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	router.Setup(e, handlers, authMiddleware, permMiddleware, devMode)

	logger.Info("Starting server on port %s (environment: %s)", cfg.ServerPort, cfg.Environment)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
