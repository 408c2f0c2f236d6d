package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-concierge/services"
	"github.com/yeremiapane/restaurant-concierge/utils"
)

type MenuRatingController struct {
	Menu *services.MenuService
}

func NewMenuRatingController(menu *services.MenuService) *MenuRatingController {
	return &MenuRatingController{Menu: menu}
}

func (rc *MenuRatingController) SubmitRating(c *gin.Context) {
	var req services.MenuRatingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rating, err := rc.Menu.SubmitRating(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Rating submitted", rating)
}

// GetItemRatings -> semua rating untuk satu menu id
func (rc *MenuRatingController) GetItemRatings(c *gin.Context) {
	menuID, ok := parseID(c, "menuId")
	if !ok {
		return
	}

	ratings, err := rc.Menu.RatingsForItem(c.Request.Context(), menuID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of ratings", ratings)
}

// GetRatingSummaries -> agregat per menu id
func (rc *MenuRatingController) GetRatingSummaries(c *gin.Context) {
	summaries, err := rc.Menu.RatingSummaries(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Rating summaries", summaries)
}

// GetMenuWithRatings -> menu lengkap + agregat berdasarkan nama item
func (rc *MenuRatingController) GetMenuWithRatings(c *gin.Context) {
	items, err := rc.Menu.MenuWithRatings(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu with ratings", items)
}
