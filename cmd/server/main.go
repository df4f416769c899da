package main

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sociafeed/sociafeed-backend/server/graph"
	"github.com/sociafeed/sociafeed-backend/server/middlewares"
	"github.com/sociafeed/sociafeed-backend/server/resolver"
	"github.com/sociafeed/sociafeed-backend/store"
	"github.com/sociafeed/sociafeed-backend/utils"
	"github.com/sociafeed/sociafeed-backend/utils/dotenv"
	. "github.com/sociafeed/sociafeed-backend/utils/flag"
	. "github.com/sociafeed/sociafeed-backend/utils/log"
)

func cleanup() {
	LogV2.Info("api server shutdown")
}

func main() {
	ParseFlags()
	defer cleanup()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	r := resolver.NewResolver(store.NewMongoStores(db), utils.NewRedisFeedCache())

	schema, err := graph.NewSchema(r)
	if err != nil {
		panic("failed to build schema: " + err.Error())
	}

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()

	router.Use(cors.Default())
	router.Use(middlewares.RequestId())
	router.Use(middlewares.AccessLog())
	router.Use(middlewares.GinContextToContext())

	// Add a debug route for testing and health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusAccepted, "pong")
	})

	router.POST("/api/graphql", graph.GinHandler(schema))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"message": "Sociafeed server - API not found"})
	})

	port := os.Getenv("PORT")
	if len(port) == 0 {
		port = "3000"
	}

	LogV2.Info("===== API Server Started =====")
	router.Run(":" + port)
}
