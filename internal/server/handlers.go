package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conventional-commitizen/conventional-commitizen/internal/commit"
	"github.com/conventional-commitizen/conventional-commitizen/internal/storage"
)

type messageRequest struct {
	Message string `json:"message" binding:"required"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "conventional-commitizen",
	})
}

func (s *Server) handleParse(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	fields, cached := s.parseMessage(c, req.Message)

	c.JSON(http.StatusOK, gin.H{
		"request_id": requestID(c),
		"fields":     fields,
		"cached":     cached,
	})
}

func (s *Server) handleLint(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	fields, _ := s.parseMessage(c, req.Message)
	report := s.checker.Check(fields)

	failures := make([]gin.H, 0, len(report.Failures))
	for _, f := range report.Failures {
		failures = append(failures, gin.H{
			"rule":        f.RuleName,
			"severity":    int(f.Severity),
			"errors":      f.Errors,
			"suggestions": f.Suggestion,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id": requestID(c),
		"passed":     report.Passed,
		"failures":   failures,
		"summary":    report.Summary,
		"fields":     fields,
	})
}

// parseMessage runs the parser with a cache lookup around it. Cache
// problems are logged and degrade to a fresh parse.
func (s *Server) parseMessage(c *gin.Context, message string) (map[string]string, bool) {
	cmt := commit.New(message)

	var key string
	if s.store != nil {
		key = storage.Key(cmt.Raw)
		if fields, ok, err := s.store.Get(c.Request.Context(), key); err != nil {
			s.logger.Warn("Cache lookup failed", "request_id", requestID(c), "error", err)
		} else if ok {
			return fields, true
		}
	}

	fields := s.parser.Parse(cmt)

	if s.store != nil {
		if err := s.store.Set(c.Request.Context(), key, fields); err != nil {
			s.logger.Warn("Cache write failed", "request_id", requestID(c), "error", err)
		}
	}

	return fields, false
}
