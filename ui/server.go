package ui

import (
	"github.com/gin-gonic/gin"

	"bross/app"
	"bross/internal"
	"bross/ports"
)

// Server exposes the analyzer and the robustness evaluator over HTTP
type Server struct {
	router     *gin.Engine
	analysis   *app.AnalysisService
	robustness *app.RobustnessService
	ledger     ports.RunLedger
	logger     *internal.Logger
}

// NewServer wires the HTTP surface. ledger may be nil; run lookup endpoints
// then answer 503.
func NewServer(analysis *app.AnalysisService, robustness *app.RobustnessService, ledger ports.RunLedger, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	s := &Server{
		router:     gin.Default(),
		analysis:   analysis,
		robustness: robustness,
		ledger:     ledger,
		logger:     logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.POST("/analyze", s.handleAnalyze)
		api.POST("/evaluate", s.handleEvaluate)
		api.GET("/runs", s.handleListRuns)
		api.GET("/runs/:id", s.handleGetRun)
	}

	s.router.GET("/report/:id", s.handleReport)
}

// Router returns the underlying gin engine (tests)
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server on the given port
func (s *Server) Run(port string) error {
	s.logger.Info("starting server on port %s", port)
	return s.router.Run(":" + port)
}
