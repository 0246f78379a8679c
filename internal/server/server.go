package server

import (
	"github.com/gin-gonic/gin"

	"github.com/conventional-commitizen/conventional-commitizen/internal/config"
	"github.com/conventional-commitizen/conventional-commitizen/internal/lint"
	"github.com/conventional-commitizen/conventional-commitizen/internal/parser"
	"github.com/conventional-commitizen/conventional-commitizen/internal/storage"
	"github.com/conventional-commitizen/conventional-commitizen/pkg/logger"
)

type Server struct {
	config  *config.Config
	parser  parser.Parser
	checker *lint.Checker
	store   storage.Store
	logger  *logger.Logger
}

// NewServer wires the HTTP surface. checker and store may be nil when lint
// or caching are disabled.
func NewServer(cfg *config.Config, p parser.Parser, checker *lint.Checker, store storage.Store, log *logger.Logger) *Server {
	return &Server{
		config:  cfg,
		parser:  p,
		checker: checker,
		store:   store,
		logger:  log,
	}
}

func (s *Server) Router() *gin.Engine {
	if gin.Mode() != gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestID())

	router.GET("/health", s.handleHealth)

	v1 := router.Group("/v1")
	v1.POST("/parse", s.handleParse)
	if s.checker != nil {
		v1.POST("/lint", s.handleLint)
	}

	return router
}
