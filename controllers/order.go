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

// CreateOrderInput defines the expected JSON structure for creating an order.
// TotalAmount is a pointer so that a missing field is rejected while an
// explicit zero passes through; amounts are not required to be positive here.
type CreateOrderInput struct {
	ClientID     uint     `json:"clientId" binding:"required"`
	OrderDetails string   `json:"orderDetails" binding:"required"`
	TotalAmount  *float64 `json:"totalAmount" binding:"required"`
}

// CreateOrder records an order against an existing client
func CreateOrder(c *gin.Context) {
	var input CreateOrderInput
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

	order := models.Order{
		ClientID:     input.ClientID,
		OrderDetails: input.OrderDetails,
		TotalAmount:  *input.TotalAmount,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		utils.AbortWithError(c, utils.BadRequest(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrdersByClient lists the orders owned by one client
func GetOrdersByClient(c *gin.Context) {
	clientID, err := parseIDParam(c, "clientId")
	if err != nil {
		utils.AbortWithError(c, utils.BadRequest("owner id required"))
		return
	}

	orders := make([]models.Order, 0)
	if err := config.DB.Where("client_id = ?", clientID).Order("id").Find(&orders).Error; err != nil {
		utils.AbortWithError(c, utils.Internal())
		return
	}

	c.JSON(http.StatusOK, orders)
}

// DeleteOrder removes a single order
func DeleteOrder(c *gin.Context) {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		utils.AbortWithError(c, utils.BadRequest("Invalid order ID format"))
		return
	}

	result := config.DB.Delete(&models.Order{}, orderID)
	if result.Error != nil {
		utils.AbortWithError(c, utils.Internal())
		return
	}

	if result.RowsAffected == 0 {
		utils.AbortWithError(c, utils.BadRequest("Order not found"))
		return
	}

	c.Status(http.StatusNoContent)
}
