package controllers

import (
	"errors"
	"net/http"
	"strings"

	"crmpro-backend/config"
	"crmpro-backend/models"
	"crmpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account. The password is hashed by the model hook;
// storing it verbatim like the system this replaces is not reproduced.
func Register(c *gin.Context) {
	var input RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.AbortWithError(c, utils.BadRequest("Invalid input: "+err.Error()))
		return
	}

	var existingUser models.User
	result := config.DB.Where("email = ?", input.Email).First(&existingUser)

	if result.Error == nil {
		utils.AbortWithError(c, utils.BadRequest("Email already registered"))
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.AbortWithError(c, utils.Internal())
		return
	}

	newUser := models.User{
		Email:    input.Email,
		Password: input.Password, // Will be hashed in BeforeCreate hook
	}

	if err := config.DB.Create(&newUser).Error; err != nil {
		utils.AbortWithError(c, utils.Internal())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": newUser})
}

// Login checks credentials and returns the user plus a signed token the
// client persists. A mismatch never reveals which of email or password was
// wrong.
func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.AbortWithError(c, utils.BadRequest("Invalid input: "+err.Error()))
		return
	}

	email := strings.TrimSpace(input.Email)

	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.AbortWithError(c, utils.Unauthorized())
		} else {
			utils.AbortWithError(c, utils.Internal())
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.AbortWithError(c, utils.Unauthorized())
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		utils.AbortWithError(c, utils.Internal())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// Me returns the account behind the presented token
func Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.AbortWithError(c, utils.Internal())
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.AbortWithError(c, utils.Unauthorized())
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
