// Package ui exposes the scoring service over HTTP: a JSON API for runs
// and reports, export endpoints for coach-facing formats, and an ops
// surface for health checks.
package ui

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lightscore/app"
	"lightscore/domain/assessment"
	"lightscore/domain/catalog"
	"lightscore/domain/core"
	internal "lightscore/internal"
	"lightscore/internal/errors"
	"lightscore/ports"
)

// Server represents the web server for the scoring API
type Server struct {
	router    *gin.Engine
	service   *app.ScoringService
	bank      *catalog.Bank
	exporters map[string]ports.ReportExporter
	log       *internal.Logger
	http      *http.Server
}

// NewServer creates a new web server instance
func NewServer(service *app.ScoringService, bank *catalog.Bank, exporters map[string]ports.ReportExporter, log *internal.Logger) *Server {
	s := &Server{
		router:    gin.New(),
		service:   service,
		bank:      bank,
		exporters: exporters,
		log:       log,
	}
	s.router.Use(gin.Recovery(), requestLogger(log))
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/runs", s.handleSubmitRun)
		v1.POST("/runs/:run_id/score", s.handleScoreRun)
		v1.GET("/reports", s.handleListReports)
		v1.GET("/reports/:run_id", s.handleGetReport)
		v1.GET("/reports/:run_id/export/:format", s.handleExportReport)
		v1.GET("/questions", s.handleListQuestions)
	}

	// Ops surface lives on its own chi router so deploy tooling can probe
	// it without touching the API middleware chain.
	s.router.Any("/ops/*any", gin.WrapH(newOpsRouter(s.service)))
}

// Start runs the HTTP server until the context is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.http = &http.Server{Addr: addr, Handler: s.router}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("scoring API listening on %s", addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return nil
	}
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func requestLogger(log *internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Debug("%s %s -> %d", c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}

// writeError maps domain and app errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	switch {
	case core.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.GetCode(err) == errors.CodeScoringRejected || core.IsScoringError(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.GetCode(err) == errors.CodeInvalidInput:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (s *Server) handleSubmitRun(c *gin.Context) {
	var input assessment.RunInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed run payload: " + err.Error()})
		return
	}
	if err := s.service.SubmitRun(c.Request.Context(), &input); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"run_id":    input.RunID,
		"responses": len(input.Responses),
	})
}

func (s *Server) handleScoreRun(c *gin.Context) {
	runID, err := core.ParseRunID(c.Param("run_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report, err := s.service.ScoreRun(c.Request.Context(), runID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleGetReport(c *gin.Context) {
	runID, err := core.ParseRunID(c.Param("run_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report, err := s.service.GetReport(c.Request.Context(), runID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleListReports(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	reports, err := s.service.ListReports(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports, "count": len(reports)})
}

func (s *Server) handleExportReport(c *gin.Context) {
	runID, err := core.ParseRunID(c.Param("run_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	format := c.Param("format")
	exporter, ok := s.exporters[format]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown export format: " + format})
		return
	}

	report, err := s.service.GetReport(c.Request.Context(), runID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Type", exporter.ContentType())
	if format == "xlsx" {
		c.Header("Content-Disposition", `attachment; filename="report-`+string(runID)+`.xlsx"`)
	}
	c.Status(http.StatusOK)
	if err := exporter.Export(c.Request.Context(), report, c.Writer); err != nil {
		s.log.Error("export %s for run %s failed: %v", format, runID, err)
	}
}

// handleListQuestions serves the assigned question list for a set so
// front-ends render from the same bank the engine scores against.
func (s *Server) handleListQuestions(c *gin.Context) {
	set := assessment.QuestionSet(c.DefaultQuery("set", string(assessment.QuestionSetFull)))
	if set != assessment.QuestionSetFull && set != assessment.QuestionSetWeekly {
		c.JSON(http.StatusBadRequest, gin.H{"error": "set must be full_143 or weekly_43"})
		return
	}

	type questionView struct {
		ID          string                 `json:"id"`
		Prompt      string                 `json:"prompt"`
		DisplayType assessment.DisplayType `json:"display_type"`
		Min         int                    `json:"min"`
		Max         int                    `json:"max"`
		Required    bool                   `json:"required"`
	}
	assigned := s.bank.QuestionsFor(set)
	views := make([]questionView, 0, len(assigned))
	for _, q := range assigned {
		views = append(views, questionView{
			ID:          q.ID,
			Prompt:      q.Prompt,
			DisplayType: q.DisplayType,
			Min:         q.Min,
			Max:         q.Max,
			Required:    q.Required,
		})
	}
	c.JSON(http.StatusOK, gin.H{"set": set, "questions": views, "count": len(views)})
}
