package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"mealplanner-backend-go/internal/api"
	"mealplanner-backend-go/internal/config"
	"mealplanner-backend-go/internal/core"
	"mealplanner-backend-go/internal/db"
	"mealplanner-backend-go/internal/llm"
	"mealplanner-backend-go/internal/middleware"
)

func main() {
	// --- 1. Load .env (optional, local development convenience) ---
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	// --- 2. Initialize Logger (Zap) ---
	// Using NewDevelopment for more verbose, human-readable output during development.
	// For production, consider zap.NewProduction() or a custom configuration.
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync() // Flushes buffer, if any. IMPORTANT for buffered loggers.
	zapLogger.Info("Zap logger initialized successfully.")

	// --- 3. Load Application Configuration ---
	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded successfully.")

	// --- 4. Initialize Firebase Admin SDK (includes Firestore and Auth clients) ---
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirestore(initCtx, appConfig); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firestore and Firebase Admin SDK", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK (Firestore, Auth) initialized successfully.")

	firestoreClient := db.GetFirestoreClient()
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firestoreClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firestore client is nil after initialization. Application cannot start.")
	}
	if firebaseAuthClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firebase Auth client is nil after initialization. Application cannot start.")
	}

	// --- 5. Initialize Gemini Client ---
	generator, err := llm.NewGeminiClient(context.Background(), appConfig.GeminiAPIKey, appConfig.GeminiModel)
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Gemini client", zap.Error(err))
	}
	if closer, ok := generator.(llm.Closer); ok {
		defer closer.Close()
	}
	zapLogger.Info("Gemini client initialized successfully.", zap.String("model", appConfig.GeminiModel))

	// --- 6. Initialize Repositories ---
	userRepo := db.NewFirestoreUserRepository(firestoreClient)
	auditRepo := db.NewFirestoreAuditRepository(firestoreClient)
	recipeRepo := db.NewFirestoreRecipeRepository(firestoreClient)
	planRepo := db.NewFirestoreMealPlanRepository(firestoreClient)
	shoppingRepo := db.NewFirestoreShoppingListRepository(firestoreClient)
	noteRepo := db.NewFirestoreNoteRepository(firestoreClient)
	zapLogger.Info("Repositories initialized successfully.")

	// --- 7. Initialize Services ---
	auditService := core.NewAuditService(auditRepo)
	userService := core.NewUserService(userRepo)
	recipeService := core.NewRecipeService(recipeRepo, auditService, zapLogger)
	plannerService := core.NewPlannerService(planRepo, recipeService, auditService, zapLogger)
	shoppingService := core.NewShoppingService(shoppingRepo, plannerService, llm.NewCategorizer(generator), zapLogger)
	noteService := core.NewNoteService(noteRepo)
	zapLogger.Info("Core services initialized successfully.")

	// --- 8. Setup Gin HTTP Engine ---
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
		zapLogger.Info("Gin mode set to 'release'.")
	} else {
		gin.SetMode(gin.DebugMode)
		zapLogger.Info("Gin mode set to 'debug'.")
	}
	router := gin.New()

	// --- 9. Apply Global Middleware (Order is important) ---
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))

	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS Middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URL is not configured. API might not be accessible from a web frontend.")
	}

	// --- 10. Setup API Routes ---
	api.SetupRoutes(
		router,
		appConfig,
		zapLogger,
		userService,
		recipeService,
		plannerService,
		shoppingService,
		noteService,
		generator,
	)

	// --- 11. Configure and Start HTTP Server ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 12. Graceful Shutdown Handling ---
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	zapLogger.Info("Attempting graceful shutdown of HTTP server...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}
