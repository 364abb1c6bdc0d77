package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// metricsCacheTTL bounds staleness for computed metrics. Profile writes
// invalidate eagerly, so the TTL only covers out-of-band database edits.
const metricsCacheTTL = 5 * time.Minute

func main() {
	log.SetPrefix("lg/health-metrics-go-api: ")
	log.SetFlags(0)

	// .env is optional; deployed environments set real env vars.
	if err := godotenv.Load(); err != nil {
		log.Printf("[main] no .env file loaded: %v", err)
	}

	fmt.Println("Starting gin app...")

	router := gin.Default()
	router.SetTrustedProxies(nil)

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = []string{origins}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	h := &Handler{
		db:    getDBPool(),
		cache: newMetricsCache(metricsCacheTTL),
	}
	h.registerRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	router.Run(":" + port)
}
