package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	_ "github.com/rmxvidhya/Multi-agent-Tourism-System/internal/types" // imported for swagger type definitions
)

// QueryRequest is the JSON body accepted by the query endpoint
type QueryRequest struct {
	Query string `json:"query"` // Free-text tourism question
}

// handleQuery godoc
// @Summary Process a tourism query
// @Description Resolve the place named in a free-text query and answer with weather and/or nearby attractions as requested
// @Tags query
// @Accept json
// @Produce json
// @Param request body QueryRequest true "User query" example({"query": "What's the weather in Kyoto and what should I see?"})
// @Success 200 {object} types.QueryResult
// @Failure 400 {object} map[string]interface{}
// @Router /api/query [post]
func (app *App) handleQuery(c *gin.Context) {
	var input QueryRequest

	// A malformed body or a missing query is a request-validation failure,
	// distinct from a pipeline-level failed result
	if err := c.ShouldBindJSON(&input); err != nil || input.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please provide a query",
		})
		return
	}

	result := app.orchestrator.ProcessRequest(c.Request.Context(), input.Query)

	c.JSON(http.StatusOK, result)
}
