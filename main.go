package main

import (
	"os"
	"time"

	"artmarket/config"
	"artmarket/database"
	authapi "artmarket/internal/api/auth"
	ordersapi "artmarket/internal/api/orders"
	reportsapi "artmarket/internal/api/reports"
	worksapi "artmarket/internal/api/works"
	routes "artmarket/internal/app/http"
	"artmarket/internal/app/http/middleware"
	"artmarket/internal/domain/bids"
	"artmarket/internal/domain/orders"
	"artmarket/internal/domain/reports"
	"artmarket/internal/domain/users"
	"artmarket/internal/domain/works"
	"artmarket/internal/infra/authn"
	"artmarket/internal/infra/blobstore"
	"artmarket/internal/logging"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)

	// Prices go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	db, err := database.Open(database.Options{
		Driver:          cfg.DBDriver,
		DSN:             cfg.DBURL,
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}
	log.Info().Str("driver", cfg.DBDriver).Msg("database ready")

	blobs, err := blobstore.NewLocal(cfg.UploadDir, cfg.PublicBaseURL+"/uploads")
	if err != nil {
		log.Fatal().Err(err).Msg("prepare upload dir")
	}

	tokens := authn.New(cfg.JWTSecret, cfg.TokenTTL)
	ledger := bids.NewLedger(db)
	orderSvc := orders.NewService(db, ledger, orders.Options{
		RequireAvailableForDirectOrder: cfg.DirectOrderRequireAvailable,
	})
	reportSvc := reports.NewService(db, reports.Options{Public: cfg.PublicArtistReports})

	authHandler := &authapi.Handler{Users: users.NewService(db), Tokens: tokens}
	if cfg.GoogleEnabled() {
		authHandler.Google = &authapi.GoogleConfig{
			ClientID:         cfg.GoogleClientID,
			ClientSecret:     cfg.GoogleClientSecret,
			RedirectURL:      cfg.GoogleRedirectURL,
			FrontendRedirect: cfg.GoogleFrontendRedirect,
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.StoreTimeout(cfg.StoreTimeout))
	r.MaxMultipartMemory = blobstore.MaxImageBytes

	routes.RegisterRoutes(r, routes.Deps{
		Auth:      tokens,
		Users:     authHandler,
		Artworks:  &worksapi.Handler{Catalog: works.NewCatalog(db), Bids: ledger, Blobs: blobs},
		Orders:    &ordersapi.Handler{Orders: orderSvc},
		Reports:   &reportsapi.Handler{Reports: reportSvc},
		UploadDir: blobs.Dir(),
	})

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
