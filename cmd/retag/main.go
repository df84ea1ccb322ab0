// The retag tool re-runs the tag classifier over every stored recipe. Run it
// after changing the classifier's keyword lists so existing recipes pick up
// the new vocabulary.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mealplanner-backend-go/internal/config"
	"mealplanner-backend-go/internal/db"
	"mealplanner-backend-go/internal/tagging"
)

var dryRun bool

var rootCmd = &cobra.Command{
	Use:   "retag",
	Short: "Recompute classifier tags for all stored recipes",
	Long: `Iterates every recipe document, re-runs the deterministic tag
classifier over its name and ingredients, and writes the recipe back when the
tag set changed. User-added tags are preserved; classifier tags are merged in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRetag(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing")
}

func runRetag(ctx context.Context) error {
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer zapLogger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	initCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := db.InitFirestore(initCtx, appConfig); err != nil {
		return fmt.Errorf("failed to initialize Firestore: %w", err)
	}

	recipeRepo := db.NewFirestoreRecipeRepository(db.GetFirestoreClient())

	recipes, err := recipeRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list recipes: %w", err)
	}
	zapLogger.Info("Loaded recipes", zap.Int("count", len(recipes)))

	var changed, failed int
	for _, recipe := range recipes {
		newTags := tagging.Normalize(append(tagging.Classify(recipe), recipe.Tags...))
		if equalTags(recipe.Tags, newTags) {
			continue
		}

		if dryRun {
			zapLogger.Info("Would retag recipe",
				zap.String("recipeID", recipe.ID),
				zap.Strings("oldTags", recipe.Tags),
				zap.Strings("newTags", newTags))
			changed++
			continue
		}

		recipe.Tags = newTags
		if err := recipeRepo.Update(ctx, recipe); err != nil {
			zapLogger.Error("Failed to update recipe", zap.String("recipeID", recipe.ID), zap.Error(err))
			failed++
			continue
		}
		changed++
	}

	zapLogger.Info("Retag complete",
		zap.Int("total", len(recipes)),
		zap.Int("changed", changed),
		zap.Int("failed", failed),
		zap.Bool("dryRun", dryRun))
	if failed > 0 {
		return fmt.Errorf("%d recipe updates failed", failed)
	}
	return nil
}

func equalTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
