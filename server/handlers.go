package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/planartsp/hilbert"
	"github.com/katalvlaran/planartsp/tsp"
)

const (
	defaultCanvasWidth  = 800
	defaultCanvasHeight = 600
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) algorithms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"algorithms": tsp.Algorithms()})
}

func (s *Server) randomCities(c *gin.Context) {
	var q randomCitiesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, citiesResponse{
		Cities: tsp.RandomCities(s.rng, q.Count, float64(q.Width), float64(q.Height)),
	})
}

func (s *Server) solve(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	algo, err := tsp.ParseAlgorithm(req.Algorithm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := tsp.Solve(c.Request.Context(), algo, req.Cities, s.opts)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toSolveResponse(res))
}

func (s *Server) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := tsp.Compare(c.Request.Context(), req.Cities, s.opts)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toAnalyzeResponse(results))
}

func (s *Server) sfcDebug(c *gin.Context) {
	var req sfcDebugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := tsp.ValidateCities(req.Cities); err != nil {
		s.fail(c, err)
		return
	}
	if req.CanvasWidth <= 0 {
		req.CanvasWidth = defaultCanvasWidth
	}
	if req.CanvasHeight <= 0 {
		req.CanvasHeight = defaultCanvasHeight
	}
	c.JSON(http.StatusOK, toDebugResponse(hilbert.Debug(req.Cities, req.CanvasWidth, req.CanvasHeight)))
}

// fail maps orchestrator errors onto HTTP statuses.
func (s *Server) fail(c *gin.Context, err error) {
	var status = http.StatusInternalServerError
	switch {
	case errors.Is(err, tsp.ErrNoCities),
		errors.Is(err, tsp.ErrNegativeID),
		errors.Is(err, tsp.ErrNonFiniteCoordinate),
		errors.Is(err, tsp.ErrDuplicateID),
		errors.Is(err, tsp.ErrUnsupportedAlgorithm),
		errors.Is(err, tsp.ErrTooFewCities):
		status = http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	default:
		s.log.Error("solve failed", "path", c.FullPath(), "err", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
