// Package notify sends the daily meal message: today's planned recipes with
// their ingredients, delivered over Telegram.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"mealplanner-backend-go/internal/db"
	"mealplanner-backend-go/internal/models"
)

// Notifier resolves today's meal plan for one user and sends it to a
// Telegram chat.
type Notifier struct {
	planRepo   db.MealPlanRepository
	recipeRepo db.RecipeRepository
	bot        *tgbotapi.BotAPI
	chatID     int64
	userID     string
	logger     *zap.Logger
}

// New creates a Notifier for the given user and chat.
func New(pr db.MealPlanRepository, rr db.RecipeRepository, bot *tgbotapi.BotAPI, chatID int64, userID string, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{
		planRepo:   pr,
		recipeRepo: rr,
		bot:        bot,
		chatID:     chatID,
		userID:     userID,
		logger:     logger,
	}
}

// TodayMealMessage builds the notification text for the given moment: the
// current week's plan is looked up under the user's composite key and today's
// weekday value resolved recipe by recipe. Recipes that no longer exist are
// skipped.
func (n *Notifier) TodayMealMessage(ctx context.Context, now time.Time) (string, error) {
	dayName := now.Weekday().String()
	dateStr := now.Format("January 02, 2006")
	weekRange := models.WeekRangeLabel(now)
	key := models.WeekKey(n.userID, weekRange)

	plan, err := n.planRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Sprintf("No meal planned for %s, %s", dayName, dateStr), nil
		}
		return "", fmt.Errorf("failed to get meal plan '%s': %w", key, err)
	}

	recipeIDs := plan.DayRecipeIDs(dayName)
	if len(recipeIDs) == 0 {
		return fmt.Sprintf("No meal planned for %s, %s", dayName, dateStr), nil
	}

	var recipes []*models.Recipe
	for _, id := range recipeIDs {
		recipe, err := n.recipeRepo.GetByID(ctx, id)
		if err != nil {
			n.logger.Warn("skipping unresolvable recipe", zap.String("recipeID", id), zap.Error(err))
			continue
		}
		recipes = append(recipes, recipe)
	}
	if len(recipes) == 0 {
		return fmt.Sprintf("No meal planned for %s, %s", dayName, dateStr), nil
	}

	return ComposeMessage(dayName, dateStr, recipes), nil
}

// ComposeMessage renders today's recipes as the notification text.
func ComposeMessage(dayName, dateStr string, recipes []*models.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍽️ Today's Meal (%s, %s):\n\n", dayName, dateStr)
	for _, recipe := range recipes {
		fmt.Fprintf(&b, "📌 %s\n", recipe.Name)
		b.WriteString("Ingredients:\n")
		for _, ingredient := range recipe.Ingredients {
			fmt.Fprintf(&b, "• %s\n", ingredient)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

// SendDaily builds and delivers today's meal message.
func (n *Notifier) SendDaily(ctx context.Context, now time.Time) error {
	message, err := n.TodayMealMessage(ctx, now)
	if err != nil {
		return err
	}
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, message)); err != nil {
		return fmt.Errorf("failed to send Telegram message: %w", err)
	}
	n.logger.Info("daily meal notification sent", zap.Int64("chatID", n.chatID))
	return nil
}

// RunDaily blocks, sending the notification at the configured wall-clock time
// each day until the context is cancelled. sendAt is "HH:MM" local time.
func (n *Notifier) RunDaily(ctx context.Context, sendAt string) error {
	at, err := time.Parse("15:04", sendAt)
	if err != nil {
		return fmt.Errorf("invalid NOTIFY_TIME %q: %w", sendAt, err)
	}

	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), at.Hour(), at.Minute(), 0, 0, now.Location())
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case fireTime := <-timer.C:
			if err := n.SendDaily(ctx, fireTime); err != nil {
				n.logger.Error("daily notification failed", zap.Error(err))
			}
		}
	}
}
