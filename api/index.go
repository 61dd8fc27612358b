package api

import (
	"log"
	"net/http"
	"sync"

	"jewelry-shop/config"
	"jewelry-shop/middleware"
	"jewelry-shop/routes"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()

		logger, err := config.NewLogger("production")
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}

		pool, err := config.ConnectDB(logger)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, routes.NewControllers(pool, logger))
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
