package main

import (
	"fmt"
	"log"
	"os"

	"crmpro-backend/config"
	"crmpro-backend/logger"
	"crmpro-backend/models"
	"crmpro-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	logger.Init()
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Interaction{},
		&models.Order{},
		&models.Note{},
	)
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	r := routes.SetupRouter()
	printRoutes(r)

	logger.GetLogger().Info("Server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.GetLogger().Fatal("Server stopped", zap.Error(err))
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
