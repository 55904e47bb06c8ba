package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/sangem-ordering/services"
	"github.com/yeremiapane/sangem-ordering/utils"
)

type DeliveryController struct {
	Delivery *services.DeliveryService
}

func NewDeliveryController(delivery *services.DeliveryService) *DeliveryController {
	return &DeliveryController{Delivery: delivery}
}

// GetDashboard -> partner, active/done orders and today's stats
func (dc *DeliveryController) GetDashboard(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	dash, err := dc.Delivery.Dashboard(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Delivery dashboard", dash)
}

func (dc *DeliveryController) MarkDelivered(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	order, err := dc.Delivery.MarkDelivered(c.Request.Context(), sess, c.Param("order_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order delivered", order)
}
