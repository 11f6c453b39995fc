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

// CreateInteractionInput defines the expected JSON structure for logging an interaction
type CreateInteractionInput struct {
	ClientID uint   `json:"clientId" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Notes    string `json:"notes"`
	Date     string `json:"date" binding:"required"`
}

// CreateInteraction logs an interaction against an existing client
func CreateInteraction(c *gin.Context) {
	var input CreateInteractionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.AbortWithError(c, utils.BadRequest("Invalid input: "+err.Error()))
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.AbortWithError(c, utils.BadRequest(err.Error()))
		return
	}

	var client models.Client
	if err := config.DB.First(&client, input.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.AbortWithError(c, utils.BadRequest("Client not found"))
		} else {
			utils.AbortWithError(c, utils.Internal())
		}
		return
	}

	interaction := models.Interaction{
		ClientID: input.ClientID,
		Type:     input.Type,
		Notes:    input.Notes,
		Date:     date,
	}

	if err := config.DB.Create(&interaction).Error; err != nil {
		utils.AbortWithError(c, utils.BadRequest(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, interaction)
}

// GetInteractionsByClient lists the interactions owned by one client.
// The owner filter is enforced here explicitly; a missing or malformed owner
// id must never fall through to an unfiltered scan.
func GetInteractionsByClient(c *gin.Context) {
	clientID, err := parseIDParam(c, "clientId")
	if err != nil {
		utils.AbortWithError(c, utils.BadRequest("owner id required"))
		return
	}

	// Empty result is an empty array on the wire, never null
	interactions := make([]models.Interaction, 0)
	if err := config.DB.Where("client_id = ?", clientID).Order("id").Find(&interactions).Error; err != nil {
		utils.AbortWithError(c, utils.Internal())
		return
	}

	c.JSON(http.StatusOK, interactions)
}

// DeleteInteraction removes a single interaction
func DeleteInteraction(c *gin.Context) {
	interactionID, err := parseIDParam(c, "id")
	if err != nil {
		utils.AbortWithError(c, utils.BadRequest("Invalid interaction ID format"))
		return
	}

	result := config.DB.Delete(&models.Interaction{}, interactionID)
	if result.Error != nil {
		utils.AbortWithError(c, utils.Internal())
		return
	}

	if result.RowsAffected == 0 {
		utils.AbortWithError(c, utils.BadRequest("Interaction not found"))
		return
	}

	c.Status(http.StatusNoContent)
}
