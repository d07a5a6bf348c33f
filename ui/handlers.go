package ui

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"

	"bross/adapters/render"
	"bross/app"
	"bross/domain/core"
	"bross/domain/trial"
	apperrors "bross/internal/errors"
)

// pairDTO mirrors trial.Pair on the wire
type pairDTO struct {
	A int `json:"a"`
	B int `json:"b"`
}

type analyzeRequest struct {
	Pairs []pairDTO `json:"pairs" binding:"required"`
}

type analyzeResponse struct {
	*app.AnalysisResult
	Chart string `json:"chart,omitempty"`
}

type evaluateRequest struct {
	Pairs      []pairDTO `json:"pairs" binding:"required"`
	Iterations int       `json:"iterations"`
	Alpha      float64   `json:"alpha"`
	Seed       int64     `json:"seed"`
	Persist    bool      `json:"persist"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.analysis.Analyze(c.Request.Context(), toPairs(req.Pairs))
	if err != nil {
		s.respondError(c, err)
		return
	}

	resp := analyzeResponse{AnalysisResult: result}
	if result.Grid != nil {
		resp.Chart = render.Chart(result.Grid)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleEvaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Iterations == 0 {
		req.Iterations = 1000
	}
	if req.Alpha == 0 {
		req.Alpha = 0.05
	}

	result, err := s.robustness.Evaluate(c.Request.Context(), app.EvaluateRequest{
		Pairs:      toPairs(req.Pairs),
		Iterations: req.Iterations,
		Alpha:      req.Alpha,
		Seed:       req.Seed,
		Persist:    req.Persist,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result.Run)
}

func (s *Server) handleGetRun(c *gin.Context) {
	if s.ledger == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "run ledger not configured"})
		return
	}
	r, err := s.ledger.GetRun(c.Request.Context(), core.RunID(c.Param("id")))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *Server) handleListRuns(c *gin.Context) {
	if s.ledger == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "run ledger not configured"})
		return
	}
	runs, err := s.ledger.ListRuns(c.Request.Context(), 20)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (s *Server) handleReport(c *gin.Context) {
	if s.ledger == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "run ledger not configured"})
		return
	}
	r, err := s.ledger.GetRun(c.Request.Context(), core.RunID(c.Param("id")))
	if err != nil {
		s.respondError(c, err)
		return
	}

	html := markdown.ToHTML([]byte(render.Report(r)), nil, nil)
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// respondError maps domain error codes onto HTTP statuses
func (s *Server) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrNotFound):
		status = http.StatusNotFound
	default:
		switch apperrors.GetCode(err) {
		case apperrors.CodeInvalidInput, apperrors.CodeInvalidArgument:
			status = http.StatusBadRequest
		case apperrors.CodeNotFound:
			status = http.StatusNotFound
		}
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed: %v", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func toPairs(dtos []pairDTO) trial.PairSequence {
	pairs := make(trial.PairSequence, len(dtos))
	for i, d := range dtos {
		pairs[i] = trial.Pair{A: d.A, B: d.B}
	}
	return pairs
}
