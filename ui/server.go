package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"salarydash/app"
	"salarydash/domain/salary"
	"salarydash/internal"
	"salarydash/internal/config"
	"salarydash/ports"
)

//go:embed templates/*
var embeddedFiles embed.FS

var logger = internal.NewLogger("ui")

// Server is the web server for the salary dashboard.
type Server struct {
	router    *gin.Engine
	dataset   *salary.Dataset
	service   *app.DashboardService
	views     ports.ViewRepository // nil when Postgres is not configured
	cfg       *config.Config
	templates *template.Template
	aboutHTML template.HTML
}

// NewServer creates a dashboard server over an in-memory dataset. The
// view repository may be nil; saved-view endpoints then report the
// feature as unavailable.
func NewServer(cfg *config.Config, dataset *salary.Dataset, views ports.ViewRepository) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	templates, err := template.ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	about, err := renderAboutPanel(embeddedFiles)
	if err != nil {
		return nil, fmt.Errorf("failed to render about panel: %w", err)
	}

	s := &Server{
		router:    gin.Default(),
		dataset:   dataset,
		service:   app.NewDashboardService(cfg.Dashboard.TopRoles),
		views:     views,
		cfg:       cfg,
		templates: templates,
		aboutHTML: about,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)

	api := s.router.Group("/api")
	api.GET("/filters", s.handleFilters)
	api.GET("/dashboard", s.handleDashboard)
	api.GET("/records", s.handleRecords)
	api.GET("/export", s.handleExport)

	api.POST("/views", s.handleSaveView)
	api.GET("/views", s.handleListViews)
	api.GET("/views/:id", s.handleGetView)
	api.DELETE("/views/:id", s.handleDeleteView)
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := ":" + s.cfg.Server.Port
	logger.Info("dashboard listening on %s (%d records)", addr, s.dataset.Len())
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// filterFromQuery builds a dataset filter from the request's query
// parameters. Each dimension accepts repeated parameters or
// comma-separated values; an absent dimension means no restriction.
func filterFromQuery(c *gin.Context) salary.Filter {
	f := salary.NewFilter()
	for _, dim := range salary.FilterDimensions {
		for _, raw := range c.QueryArray(string(dim)) {
			for _, v := range strings.Split(raw, ",") {
				if v = strings.TrimSpace(v); v != "" {
					f = f.With(dim, v)
				}
			}
		}
	}
	return f
}

func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	c.Header("Content-Type", "text/html")
	if err := s.templates.ExecuteTemplate(c.Writer, templateName, data); err != nil {
		logger.Error("template error: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
