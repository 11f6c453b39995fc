package controllers

import (
	"errors"
	"net/http"

	"crmpro-backend/config"
	"crmpro-backend/models"
	"crmpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

// UpdateClientInput defines the expected JSON structure for updating a client
type UpdateClientInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone"`
}

// CreateClient creates a new client record
func CreateClient(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.AbortWithError(c, utils.BadRequest("Invalid input: "+err.Error()))
		return
	}

	// A duplicate email must fail validation, never overwrite
	var existing models.Client
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		utils.AbortWithError(c, utils.BadRequest("Client with this email already exists"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.AbortWithError(c, utils.Internal())
		return
	}

	client := models.Client{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}

	if err := config.DB.Create(&client).Error; err != nil {
		// Unique-index backstop for creates racing the duplicate check
		utils.AbortWithError(c, utils.BadRequest(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClients retrieves all clients in insertion order
func GetClients(c *gin.Context) {
	clients := make([]models.Client, 0)
	if err := config.DB.Order("id").Find(&clients).Error; err != nil {
		utils.AbortWithError(c, utils.Internal())
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient retrieves a specific client by ID
func GetClient(c *gin.Context) {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		utils.AbortWithError(c, utils.BadRequest("Invalid client ID format"))
		return
	}

	var client models.Client
	if err := config.DB.First(&client, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.AbortWithError(c, utils.BadRequest("Client not found"))
		} else {
			utils.AbortWithError(c, utils.Internal())
		}
		return
	}

	c.JSON(http.StatusOK, client)
}

// UpdateClient applies a partial field merge and returns the stored state
func UpdateClient(c *gin.Context) {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		utils.AbortWithError(c, utils.BadRequest("Invalid client ID format"))
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.AbortWithError(c, utils.BadRequest("Invalid input: "+err.Error()))
		return
	}

	var client models.Client
	if err := config.DB.First(&client, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.AbortWithError(c, utils.BadRequest("Client not found"))
		} else {
			utils.AbortWithError(c, utils.Internal())
		}
		return
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Email != nil {
		// Check if the email is being changed to another client's
		if client.Email != *input.Email {
			var existing models.Client
			if err := config.DB.Where("email = ?", *input.Email).First(&existing).Error; err == nil {
				utils.AbortWithError(c, utils.BadRequest("Another client with this email already exists"))
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.AbortWithError(c, utils.Internal())
				return
			}
		}
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}

	if err := config.DB.Save(&client).Error; err != nil {
		utils.AbortWithError(c, utils.BadRequest(err.Error()))
		return
	}

	// Re-read so the caller observes the authoritative stored state
	var updated models.Client
	if err := config.DB.First(&updated, clientID).Error; err != nil {
		utils.AbortWithError(c, utils.Internal())
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteClient hard-deletes a client; the database cascades to the client's
// interactions, orders and notes in the same operation.
func DeleteClient(c *gin.Context) {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		utils.AbortWithError(c, utils.BadRequest("Invalid client ID format"))
		return
	}

	result := config.DB.Delete(&models.Client{}, clientID)
	if result.Error != nil {
		utils.AbortWithError(c, utils.Internal())
		return
	}

	if result.RowsAffected == 0 {
		utils.AbortWithError(c, utils.BadRequest("Client not found"))
		return
	}

	c.Status(http.StatusNoContent)
}
