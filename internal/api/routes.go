package api

import (
	"net/http" // For http.StatusOK in health check

	"github.com/gin-gonic/gin"
	"go.uber.org/zap" // For logger in middleware and function params

	"mealplanner-backend-go/internal/clipper"
	"mealplanner-backend-go/internal/config"
	"mealplanner-backend-go/internal/core"
	"mealplanner-backend-go/internal/db" // For db.GetFirebaseAuthClient()
	"mealplanner-backend-go/internal/llm"
	"mealplanner-backend-go/internal/middleware"
)

// SetupRoutes configures all the application routes with their handlers and middleware.
// It's expected that global middleware (Logging, Recovery, CORS) are applied to the `router`
// instance *before* this function is called, typically in `main.go`.
func SetupRoutes(
	router *gin.Engine,
	appConfig *config.Config,
	logger *zap.Logger,
	userService core.UserService,
	recipeService core.RecipeService,
	plannerService core.PlannerService,
	shoppingService core.ShoppingService,
	noteService core.NoteService,
	generator llm.TextGenerator,
) {
	// Get Firebase Auth client. This must be available after db.InitFirestore().
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("CRITICAL_SETUP_ERROR: Firebase Auth client is not initialized. AuthMiddleware cannot be created, and routes will not be set up.")
		panic("Firebase Auth client is nil during route setup. Ensure db.InitFirestore() was called and succeeded.")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient)

	authHandler := NewAuthHandler(userService)
	userHandler := NewUserHandler(userService)
	recipeHandler := NewRecipeHandler(recipeService)
	planHandler := NewPlanHandler(plannerService)
	shoppingHandler := NewShoppingHandler(shoppingService)
	noteHandler := NewNoteHandler(noteService)
	assistantHandler := NewAssistantHandler(generator, clipper.New(), logger)

	apiV1 := router.Group("/api/v1")
	{
		// --- User and Authentication Endpoints ---
		userAuthGroup := apiV1.Group("/users")
		{
			// POST /api/v1/users/initialize - called after client-side Firebase
			// login/signup to ensure the backend profile exists.
			userAuthGroup.POST("/initialize", authMW.VerifyToken(), authHandler.InitializeUserProfile)

			userAuthGroup.GET("/me", authMW.VerifyToken(), userHandler.GetCurrentUserProfile)
			userAuthGroup.PUT("/me", authMW.VerifyToken(), userHandler.UpdateProfile)
		}

		// --- Recipe Endpoints ---
		recipesRouteGroup := apiV1.Group("/recipes", authMW.VerifyToken())
		{
			recipesRouteGroup.POST("", recipeHandler.CreateRecipe)
			recipesRouteGroup.GET("", recipeHandler.ListRecipes) // Owned plus shared
			recipesRouteGroup.GET("/:recipeId", recipeHandler.GetRecipe)
			recipesRouteGroup.PUT("/:recipeId", recipeHandler.UpdateRecipe)

			sharingRouteGroup := recipesRouteGroup.Group("/:recipeId/share")
			{
				// POST /api/v1/recipes/{recipeId}/share
				sharingRouteGroup.POST("", recipeHandler.ShareRecipe)
				// DELETE /api/v1/recipes/{recipeId}/share/{targetUserId}
				sharingRouteGroup.DELETE("/:targetUserId", recipeHandler.RemoveShare)
			}
		}

		// --- Meal Plan Endpoints ---
		// The week range is part of the path; ownership is enforced through the
		// composite document key inside the service layer.
		plansRouteGroup := apiV1.Group("/mealplans", authMW.VerifyToken())
		{
			plansRouteGroup.GET("/:week", planHandler.GetPlan)
			plansRouteGroup.PUT("/:week/days/:day", planHandler.SetDay)
			plansRouteGroup.GET("/:week/ingredients", planHandler.AggregateIngredients)
		}

		// --- Shopping List Endpoints ---
		shoppingRouteGroup := apiV1.Group("/shopping", authMW.VerifyToken())
		{
			shoppingRouteGroup.GET("/:week", shoppingHandler.GetList)
			shoppingRouteGroup.PUT("/:week/checked", shoppingHandler.ToggleChecked)
			shoppingRouteGroup.POST("/:week/misc", shoppingHandler.AddMiscItem)
			shoppingRouteGroup.DELETE("/:week/misc", shoppingHandler.RemoveMiscItem)
		}

		// --- Note Endpoints ---
		notesRouteGroup := apiV1.Group("/notes", authMW.VerifyToken())
		{
			notesRouteGroup.GET("/:date", noteHandler.GetNote)
			notesRouteGroup.PUT("/:date", noteHandler.SaveNote)
		}

		// --- Assistant Endpoints ---
		assistantRouteGroup := apiV1.Group("/assistant", authMW.VerifyToken())
		{
			assistantRouteGroup.POST("/chat", assistantHandler.Chat)
			assistantRouteGroup.POST("/extract", assistantHandler.Extract)
		}
	}

	// --- General Health Check Endpoint ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Meal planner backend is healthy."})
	})

	logger.Info("API routes configured successfully under /api/v1 and /health.")
}
