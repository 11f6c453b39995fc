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

// CreateNoteInput defines the expected JSON structure for creating a note
type CreateNoteInput struct {
	ClientID uint   `json:"clientId" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// CreateNote attaches a note to an existing client
func CreateNote(c *gin.Context) {
	var input CreateNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.AbortWithError(c, utils.BadRequest("Invalid input: "+err.Error()))
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

	note := models.Note{
		ClientID: input.ClientID,
		Content:  input.Content,
	}

	if err := config.DB.Create(&note).Error; err != nil {
		utils.AbortWithError(c, utils.BadRequest(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, note)
}

// GetNotesByClient lists the notes owned by one client
func GetNotesByClient(c *gin.Context) {
	clientID, err := parseIDParam(c, "clientId")
	if err != nil {
		utils.AbortWithError(c, utils.BadRequest("owner id required"))
		return
	}

	notes := make([]models.Note, 0)
	if err := config.DB.Where("client_id = ?", clientID).Order("id").Find(&notes).Error; err != nil {
		utils.AbortWithError(c, utils.Internal())
		return
	}

	c.JSON(http.StatusOK, notes)
}

// DeleteNote removes a single note
func DeleteNote(c *gin.Context) {
	noteID, err := parseIDParam(c, "id")
	if err != nil {
		utils.AbortWithError(c, utils.BadRequest("Invalid note ID format"))
		return
	}

	result := config.DB.Delete(&models.Note{}, noteID)
	if result.Error != nil {
		utils.AbortWithError(c, utils.Internal())
		return
	}

	if result.RowsAffected == 0 {
		utils.AbortWithError(c, utils.BadRequest("Note not found"))
		return
	}

	c.Status(http.StatusNoContent)
}
