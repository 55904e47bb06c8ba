package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/sangem-ordering/services"
	"github.com/yeremiapane/sangem-ordering/utils"
)

type DishController struct {
	Dishes *services.DishService
}

func NewDishController(dishes *services.DishService) *DishController {
	return &DishController{Dishes: dishes}
}

func (dc *DishController) GetDishes(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	dishes, err := dc.Dishes.List(c.Request.Context(), sess, c.Query("branch_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of dishes", dishes)
}

func (dc *DishController) CreateDish(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var in services.DishInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	dish, err := dc.Dishes.Create(c.Request.Context(), sess, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Dish created", dish)
}

// UpdateDish -> branch staff cannot change the price; it is dropped.
func (dc *DishController) UpdateDish(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "dish_id")
	if !ok {
		return
	}
	var in services.DishUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	dish, err := dc.Dishes.Update(c.Request.Context(), sess, id, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dish updated", dish)
}

func (dc *DishController) DeleteDish(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "dish_id")
	if !ok {
		return
	}
	if err := dc.Dishes.Delete(c.Request.Context(), sess, id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dish deleted", nil)
}
