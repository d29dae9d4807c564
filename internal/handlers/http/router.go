package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/casadf-backend/internal/handlers/dto"
	"github.com/rafabene/casadf-backend/internal/handlers/middleware"
	"github.com/rafabene/casadf-backend/internal/infrastructure/i18n"
)

// RouterConfig reúne o que a API precisa para montar as rotas
type RouterConfig struct {
	BaseURL        string
	AllowedOrigins []string
	I18n           *i18n.Service

	Health   *HealthHandler
	Property *PropertyHandler
	Lead     *LeadHandler
	Blog     *BlogHandler
	Settings *SettingsHandler
	User     *UserHandler
}

// NewRouter monta o engine do Gin com middlewares e rotas /api/v1
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.NewI18nMiddleware(cfg.I18n).DetectLanguage())
	router.Use(func(c *gin.Context) {
		c.Set(dto.BaseURLContextKey, cfg.BaseURL)
		c.Next()
	})

	router.NoRoute(func(c *gin.Context) {
		dto.NotFound(c, "resource.route")
	})

	router.GET("/health", cfg.Health.Health)

	v1 := router.Group("/api/v1")
	{
		properties := v1.Group("/properties")
		{
			properties.GET("", cfg.Property.ListProperties)
			properties.POST("", cfg.Property.CreateProperty)
			properties.GET("/featured", cfg.Property.ListFeatured)
			properties.GET("/map", cfg.Property.Map)
			properties.GET("/slug/:slug", cfg.Property.GetPropertyBySlug)
			properties.GET("/:id", cfg.Property.GetProperty)
			properties.PATCH("/:id", cfg.Property.UpdateProperty)
			properties.DELETE("/:id", cfg.Property.DeleteProperty)
			properties.GET("/:id/images", cfg.Property.ListImages)
			properties.POST("/:id/images", cfg.Property.AddImage)
			properties.DELETE("/:id/images/:imageId", cfg.Property.DeleteImage)
		}

		leads := v1.Group("/leads")
		{
			leads.GET("", cfg.Lead.ListLeads)
			leads.POST("", cfg.Lead.CreateLead)
			leads.GET("/:id", cfg.Lead.GetLead)
			leads.PATCH("/:id", cfg.Lead.UpdateLead)
			leads.DELETE("/:id", cfg.Lead.DeleteLead)
			leads.POST("/:id/stage", cfg.Lead.ChangeStage)
			leads.GET("/:id/interactions", cfg.Lead.ListInteractions)
			leads.POST("/:id/interactions", cfg.Lead.AddInteraction)
		}

		blog := v1.Group("/blog")
		{
			blog.GET("/posts", cfg.Blog.ListPosts)
			blog.GET("/posts/:slug", cfg.Blog.GetPost)
			blog.GET("/categories", cfg.Blog.ListCategories)
		}
		v1.GET("/reviews/featured", cfg.Blog.ListFeaturedReviews)

		v1.GET("/settings", cfg.Settings.GetSettings)
		v1.PUT("/settings", cfg.Settings.UpdateSettings)

		users := v1.Group("/users")
		{
			users.POST("/sign-in", cfg.User.SignIn)
			users.GET("/open-id/:openId", cfg.User.GetUserByOpenID)
			users.GET("/:id", cfg.User.GetUser)
		}
	}

	return router
}
