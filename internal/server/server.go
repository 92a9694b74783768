package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sentiment-analyst/internal/analyst"
	"sentiment-analyst/internal/history"
	"sentiment-analyst/internal/logger"
)

// Server exposes the dashboard and the JSON API.
type Server struct {
	analyst *analyst.Analyst
}

// New builds the gin router around the analyst pipeline.
func New(a *analyst.Analyst) (*Server, *gin.Engine) {
	s := &Server{analyst: a}

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.GET("/", s.Dashboard)
	r.POST("/analyze", s.Analyze)
	r.GET("/history/export", s.ExportHistory)

	api := r.Group("/api")
	{
		api.GET("/analyze/:ticker", s.AnalyzeJSON)
	}

	return s, r
}

// PageData feeds the dashboard template.
type PageData struct {
	Ticker string
	Report *analyst.Report
	Error  string
}

// Dashboard renders the empty ticker form.
func (s *Server) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", PageData{Ticker: "TSLA"})
}

// Analyze runs the pipeline for the submitted ticker and renders the result.
func (s *Server) Analyze(c *gin.Context) {
	ticker := normalizeTicker(c.PostForm("ticker"))

	report, err := s.analyst.Run(c.Request.Context(), ticker)
	if err != nil {
		logger.Warn(c.Request.Context(), "Analysis did not complete", "ticker", ticker, "reason", err)
		c.HTML(http.StatusOK, "dashboard.html", PageData{Ticker: ticker, Error: err.Error()})
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", PageData{Ticker: ticker, Report: report})
}

// AnalyzeJSON runs the pipeline and returns the raw report.
func (s *Server) AnalyzeJSON(c *gin.Context) {
	ticker := normalizeTicker(c.Param("ticker"))

	report, err := s.analyst.Run(c.Request.Context(), ticker)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, analyst.ErrNoHeadlines) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error(), "ticker": ticker})
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExportHistory serves the raw history CSV for download.
func (s *Server) ExportHistory(c *gin.Context) {
	data, err := s.analyst.History().Export()
	if err != nil {
		if errors.Is(err, history.ErrNoHistory) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no history recorded yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="sentiment_history.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func normalizeTicker(raw string) string {
	ticker := strings.ToUpper(strings.TrimSpace(raw))
	if ticker == "" {
		ticker = "TSLA"
	}
	return ticker
}
