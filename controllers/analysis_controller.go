package controllers

import (
	"errors"
	"net/http"

	"options-analyzer/pricing"
	"options-analyzer/services"

	"github.com/gin-gonic/gin"
)

// OptionAnalysisController handles option pricing and scenario requests
type OptionAnalysisController struct {
	analysisService *services.OptionAnalysisService
}

// NewOptionAnalysisController creates a new option analysis controller
func NewOptionAnalysisController(analysisService *services.OptionAnalysisService) *OptionAnalysisController {
	return &OptionAnalysisController{
		analysisService: analysisService,
	}
}

// RegisterRoutes attaches the controller's routes to a router group.
func (oac *OptionAnalysisController) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/options/price", oac.HandlePriceOption)
	api.POST("/options/scenarios", oac.HandleScenarios)
	api.POST("/options/analyze", oac.HandleAnalyze)
}

// HandlePriceOption prices a single option leg
// POST /api/v1/options/price
func (oac *OptionAnalysisController) HandlePriceOption(c *gin.Context) {
	var req services.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	quote, err := oac.analysisService.PriceOption(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// HandleScenarios prices a single leg and returns its P&L scenario table
// POST /api/v1/options/scenarios
func (oac *OptionAnalysisController) HandleScenarios(c *gin.Context) {
	var req services.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	analysis, err := oac.analysisService.AnalyzeOption(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// HandleAnalyze runs the full call and put analysis for one parameter set
// POST /api/v1/options/analyze
func (oac *OptionAnalysisController) HandleAnalyze(c *gin.Context) {
	var req services.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	analysis, err := oac.analysisService.AnalyzeBoth(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// respondError maps the engine's typed validation errors to 400 and
// everything else to 500.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, pricing.ErrInvalidParameters) || errors.Is(err, pricing.ErrInvalidSweep) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid parameters",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Analysis failed",
		"details": err.Error(),
	})
}
