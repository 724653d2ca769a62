package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cruisy/internal/models/request_models"
	"cruisy/internal/services"
	"cruisy/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

// Search godoc
// @Summary Search a destination
// @Description Fetch curated activities and booking partners for a destination
// @Tags Search
// @Accept json
// @Produce json
// @Param request body request_models.SearchRequest true "Destination selection"
// @Success 200 {object} response_models.SearchResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /search [post]
func (s *SearchController) Search(c *gin.Context) {
	var req request_models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	result, err := s.searchService.Search(c.Request.Context(), req.Destination)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Search completed successfully")
}

// LastResult returns the most recently completed search so the list view
// can re-render without a refetch.
func (s *SearchController) LastResult(c *gin.Context) {
	result, ok := s.searchService.LastResult()
	if !ok {
		utils.RespondError(c, http.StatusNotFound, "No completed search in this session")
		return
	}

	utils.RespondSuccess(c, result, "Search result fetched successfully")
}

func (s *SearchController) ListDestinations(c *gin.Context) {
	utils.RespondSuccess(c, services.AvailableDestinations(), "Destinations fetched successfully")
}

func (s *SearchController) ListGear(c *gin.Context) {
	utils.RespondSuccess(c, services.GlobalGear(), "Gear fetched successfully")
}
