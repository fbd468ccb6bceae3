package routes

import (
	authapi "artmarket/internal/api/auth"
	ordersapi "artmarket/internal/api/orders"
	reportsapi "artmarket/internal/api/reports"
	worksapi "artmarket/internal/api/works"
	"artmarket/internal/app/http/middleware"
	"artmarket/internal/domain/access"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Auth     middleware.Authenticator
	Users    *authapi.Handler
	Artworks *worksapi.Handler
	Orders   *ordersapi.Handler
	Reports  *reportsapi.Handler
	// UploadDir is served under /uploads when set.
	UploadDir string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	if d.UploadDir != "" {
		r.Static("/uploads", d.UploadDir)
	}

	api := r.Group("/api")
	api.Use(middleware.SanitizeAndCleanInputMiddleware())

	authGroup := api.Group("/auth")
	authGroup.POST("/register", d.Users.Register)
	authGroup.POST("/login", d.Users.Login)
	authGroup.GET("/me", middleware.AuthMiddleware(d.Auth), d.Users.Me)
	if d.Users.Google != nil {
		authGroup.GET("/google", d.Users.GoogleStart)
		authGroup.GET("/google/callback", d.Users.GoogleCallback)
	}

	artworks := api.Group("/artworks")
	artworks.GET("", d.Artworks.ListArtworks)
	artworks.GET("/:id", d.Artworks.GetArtwork)
	artworks.POST("",
		middleware.AuthMiddleware(d.Auth),
		middleware.RequireRole(access.RoleArtist),
		d.Artworks.CreateArtwork)

	orders := api.Group("/orders")
	orders.GET("/highest/:artwork_id", d.Orders.HighestBid)

	collector := orders.Group("")
	collector.Use(middleware.AuthMiddleware(d.Auth), middleware.RequireRole(access.RoleCollector))
	collector.POST("/order", d.Orders.PlaceOrder)
	collector.POST("/custom", d.Orders.PlaceCustomOrder)
	collector.POST("/bid", d.Orders.PlaceBid)

	artist := orders.Group("")
	artist.Use(middleware.AuthMiddleware(d.Auth), middleware.RequireRole(access.RoleArtist))
	artist.GET("/artist-orders", d.Orders.ArtistOrders)
	artist.POST("/:id/accept", d.Orders.AcceptOrder)
	artist.POST("/:id/reject", d.Orders.RejectOrder)

	// Whether anonymous callers may read reports is decided by the service.
	api.GET("/reports/artist/:artist_id", middleware.OptionalAuth(d.Auth), d.Reports.ArtistReport)
}
