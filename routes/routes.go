package routes

import (
	"os"
	"strings"

	"crmpro-backend/config"
	"crmpro-backend/controllers"
	"crmpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:8081"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger())

	api := r.Group("/api")
	{
		// User routes
		users := api.Group("/users")
		{
			users.POST("/register", controllers.Register)
			users.POST("/login", controllers.Login)
			users.GET("/me", utils.AuthMiddleware(), controllers.Me)
		}

		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}

		// Interaction routes
		interactions := api.Group("/interactions")
		{
			interactions.POST("", controllers.CreateInteraction)
			interactions.GET("/:clientId", controllers.GetInteractionsByClient)
			interactions.DELETE("/:id", controllers.DeleteInteraction)
		}

		// Order routes
		orders := api.Group("/orders")
		{
			orders.POST("", controllers.CreateOrder)
			orders.GET("/:clientId", controllers.GetOrdersByClient)
			orders.DELETE("/:id", controllers.DeleteOrder)
		}

		// Note routes
		notes := api.Group("/notes")
		{
			notes.POST("", controllers.CreateNote)
			notes.GET("/:clientId", controllers.GetNotesByClient)
			notes.DELETE("/:id", controllers.DeleteNote)
		}
	}

	return r
}
