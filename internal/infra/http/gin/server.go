package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"github.com/asghar-0017/aparntment-frontend/internal/infra/config"
	"github.com/asghar-0017/aparntment-frontend/internal/infra/obs"
)

// Handlers groups everything the HTTP surface exposes.
type Handlers struct {
	Listing ListingHandler
	Booking BookingHandler
	Share   ShareHandler
	Report  ReportHandler
	Pages   PagesHandler
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
			"X-Cache",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	api.GET("/apartments", h.Listing.List)
	api.GET("/apartments/availability", h.Listing.Search)
	api.GET("/apartments/:id", h.Listing.Get)
	api.POST("/apartments/:id/book", h.Booking.Book)
	api.GET("/apartments/:id/share", h.Share.Get)
	api.POST("/report", h.Report.Create)
	api.GET("/pages", h.Pages.List)
	api.GET("/pages/:slug", h.Pages.Get)

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
