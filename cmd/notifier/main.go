// The notifier sends one Telegram message per day with the meals planned for
// that day. It runs alongside the API server as a standalone process.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"mealplanner-backend-go/internal/config"
	"mealplanner-backend-go/internal/db"
	"mealplanner-backend-go/internal/notify"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}
	if appConfig.TelegramBotToken == "" {
		zapLogger.Fatal("TELEGRAM_BOT_TOKEN is required for the notifier")
	}
	if appConfig.TelegramChatID == 0 {
		zapLogger.Fatal("TELEGRAM_CHAT_ID is required for the notifier")
	}
	if appConfig.NotifyUserID == "" {
		zapLogger.Fatal("NOTIFY_USER_ID is required for the notifier")
	}

	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirestore(initCtx, appConfig); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firestore and Firebase Admin SDK", zap.Error(err))
	}

	firestoreClient := db.GetFirestoreClient()
	if firestoreClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firestore client is nil after initialization.")
	}

	bot, err := tgbotapi.NewBotAPI(appConfig.TelegramBotToken)
	if err != nil {
		zapLogger.Fatal("Failed to create Telegram bot", zap.Error(err))
	}
	zapLogger.Info("Telegram bot authorized", zap.String("account", bot.Self.UserName))

	planRepo := db.NewFirestoreMealPlanRepository(firestoreClient)
	recipeRepo := db.NewFirestoreRecipeRepository(firestoreClient)
	notifier := notify.New(planRepo, recipeRepo, bot, appConfig.TelegramChatID, appConfig.NotifyUserID, zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zapLogger.Info("Notifier running", zap.String("sendAt", appConfig.NotifyTime), zap.String("userID", appConfig.NotifyUserID))
	if err := notifier.RunDaily(ctx, appConfig.NotifyTime); err != nil && !errors.Is(err, context.Canceled) {
		zapLogger.Fatal("Notifier stopped with error", zap.Error(err))
	}
	zapLogger.Info("Notifier exiting gracefully.")
	os.Exit(0)
}
