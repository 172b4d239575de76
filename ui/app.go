package ui

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"salarydash/app"
	"salarydash/domain/salary"
	"salarydash/internal/config"
)

// App is the headless JSON API variant of the dashboard: the same filter
// and panel endpoints as the web server, without templates or saved
// views. Used by cmd/api.
type App struct {
	router  *chi.Mux
	dataset *salary.Dataset
	service *app.DashboardService
}

// NewApp creates the headless API application.
func NewApp(cfg *config.Config, dataset *salary.Dataset) *App {
	a := &App{
		router:  chi.NewRouter(),
		dataset: dataset,
		service: app.NewDashboardService(cfg.Dashboard.TopRoles),
	}

	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)

	a.router.Get("/api/filters", a.handleFilters)
	a.router.Get("/api/dashboard", a.handleDashboard)
	a.router.Get("/api/health", a.handleHealth)

	return a
}

// Router exposes the chi mux.
func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"records": a.dataset.Len(),
	})
}

func (a *App) handleFilters(w http.ResponseWriter, r *http.Request) {
	values := make(map[string][]string, len(salary.FilterDimensions))
	for _, dim := range salary.FilterDimensions {
		values[string(dim)] = a.dataset.DistinctValues(dim)
	}
	writeJSON(w, http.StatusOK, values)
}

func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	filtered := a.dataset.Filter(filterFromRequest(r))
	showLegend := r.URL.Query().Get("legend") == "true"

	data, err := a.service.Build(r.Context(), filtered, showLegend)
	if err != nil {
		logger.Error("dashboard build failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to build dashboard"})
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// filterFromRequest is the net/http twin of filterFromQuery for chi
// handlers.
func filterFromRequest(r *http.Request) salary.Filter {
	f := salary.NewFilter()
	query := r.URL.Query()
	for _, dim := range salary.FilterDimensions {
		for _, raw := range query[string(dim)] {
			for _, v := range strings.Split(raw, ",") {
				if v = strings.TrimSpace(v); v != "" {
					f = f.With(dim, v)
				}
			}
		}
	}
	return f
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response: %v", err)
	}
}
