package api

import (
	"net/http"

	"alcyxob/scalar-app/internal/catalog"
	"alcyxob/scalar-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all handlers into the gin engine.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	cat *catalog.Catalog,
	authService service.AuthService,
	submissionService service.SubmissionService,
	scoringService service.ScoringService,
	profileService service.ProfileService,
) {
	authHandler := NewAuthHandler(authService)
	catalogHandler := NewCatalogHandler(cat)
	submissionHandler := NewSubmissionHandler(submissionService)
	scoreHandler := NewScoreHandler(scoringService, cat)
	profileHandler := NewProfileHandler(profileService)

	authMiddleware := AuthMiddleware(jwtSecret)
	router.Use(RequestIDMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Catalog is public read-only data; the submit form needs it
		// before login.
		catalogGroup := apiV1.Group("/catalog")
		{
			catalogGroup.GET("/domains", catalogHandler.GetDomains)
			catalogGroup.GET("/events", catalogHandler.GetEvents)
			catalogGroup.GET("/unit-types", catalogHandler.GetUnitTypes)
			catalogGroup.GET("/genders", catalogHandler.GetGenders)
			catalogGroup.GET("/age-groups", catalogHandler.GetAgeGroups)
			catalogGroup.GET("/cohorts", catalogHandler.GetCohorts)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userID.Hex()})
		})

		// --- Submissions ---
		submissionGroup := protected.Group("/submissions")
		{
			submissionGroup.POST("", submissionHandler.CreateSubmission)
			submissionGroup.GET("", submissionHandler.GetMySubmissions)
		}

		// --- Scores ---
		scoreGroup := protected.Group("/scores")
		{
			// GET /api/v1/scores - all domains (or ?domains=a,b,c)
			scoreGroup.GET("", scoreHandler.GetDomainScores)
			// GET /api/v1/scores/domains/{domainValue}
			scoreGroup.GET("/domains/:domainValue", scoreHandler.GetDomainScore)
		}

		// GET /api/v1/cohort - the user's cohort for display
		protected.GET("/cohort", scoreHandler.GetCohort)

		// --- Profile ---
		profileGroup := protected.Group("/profile")
		{
			profileGroup.GET("", profileHandler.GetProfile)
			profileGroup.PUT("", profileHandler.UpdateProfile)
			profileGroup.POST("/avatar", profileHandler.RequestAvatarUpload)
			profileGroup.GET("/avatar", profileHandler.GetAvatar)
		}
	}
}
