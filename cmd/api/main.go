package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"feasibility_sim/pkg/api/feasibility"
	"feasibility_sim/pkg/core/config"
)

func main() {
	// Load environment variables
	godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	site, err := config.LoadSite("")
	if err != nil {
		logger.Fatal("site config load failed", zap.Error(err))
	}
	logger.Info("site parameters loaded",
		zap.Float64("site_area", site.SiteArea),
		zap.Float64("sellable_fraction", site.SellableFraction),
		zap.Float64("dev_cost_per_sqm", site.DevCostPerSqm))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	h := feasibility.NewHandler(site, logger)
	h.Register(r.Group("/api/feasibility"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("listening", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
