package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/services"
	"github.com/yeremiapane/sangem-ordering/session"
	"github.com/yeremiapane/sangem-ordering/utils"
)

// StorefrontController serves the public ordering site.
type StorefrontController struct {
	Orders   *services.OrderService
	Menus    *services.MenuService
	Feedback *services.FeedbackService
	Prefs    *session.Store
}

func NewStorefrontController(orders *services.OrderService, menu *services.MenuService, feedback *services.FeedbackService, prefs *session.Store) *StorefrontController {
	return &StorefrontController{Orders: orders, Menus: menu, Feedback: feedback, Prefs: prefs}
}

func (sc *StorefrontController) Branches(c *gin.Context) {
	names, err := sc.Prefs.LoadBranchNames(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Branches", models.BranchesWithNames(names))
}

// Menu -> GET /branches/:branch_id/menu?q=&cuisine=&dietary_type=&meal_type=&min_price=&max_price=&min_rating=&sort=
func (sc *StorefrontController) Menu(c *gin.Context) {
	minPrice, ok := floatQuery(c, "min_price")
	if !ok {
		return
	}
	maxPrice, ok := floatQuery(c, "max_price")
	if !ok {
		return
	}
	minRating, ok := floatQuery(c, "min_rating")
	if !ok {
		return
	}

	filter := services.MenuFilter{
		Search:       c.Query("q"),
		Cuisines:     listQuery(c, "cuisine"),
		DietaryTypes: listQuery(c, "dietary_type"),
		MealTypes:    listQuery(c, "meal_type"),
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		MinRating:    minRating,
		Sort:         c.Query("sort"),
	}

	dishes, err := sc.Menus.Menu(c.Request.Context(), c.Param("branch_id"), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu", gin.H{
		"categories": models.DishCategories,
		"dishes":     dishes,
	})
}

// Checkout places a cash-on-delivery order.
func (sc *StorefrontController) Checkout(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result, err := sc.Orders.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order placed", result)
}

func (sc *StorefrontController) SubmitFeedback(c *gin.Context) {
	var in services.FeedbackInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	fb, err := sc.Feedback.Submit(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Thank you for your feedback", fb)
}
