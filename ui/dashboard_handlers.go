package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salarydash/domain/salary"
)

func (s *Server) handleIndex(c *gin.Context) {
	data := gin.H{
		"Title": "Salary Analytics Dashboard",
		"About": s.aboutHTML,
		"Filters": gin.H{
			"Years":        s.dataset.DistinctValues(salary.DimYear),
			"Seniorities":  s.dataset.DistinctValues(salary.DimSeniority),
			"Contracts":    s.dataset.DistinctValues(salary.DimContract),
			"CompanySizes": s.dataset.DistinctValues(salary.DimCompanySize),
		},
	}
	s.renderTemplate(c, "dashboard.html", data)
}

// handleFilters returns the distinct values for each filter widget.
func (s *Server) handleFilters(c *gin.Context) {
	values := make(gin.H, len(salary.FilterDimensions))
	for _, dim := range salary.FilterDimensions {
		values[string(dim)] = s.dataset.DistinctValues(dim)
	}
	c.JSON(http.StatusOK, values)
}

// handleDashboard computes every panel for the current filter selection.
// The legend query flag mirrors the page's legend toggle for the roles
// chart; it defaults to hidden.
func (s *Server) handleDashboard(c *gin.Context) {
	filtered := s.dataset.Filter(filterFromQuery(c))
	showLegend := c.Query("legend") == "true"

	data, err := s.service.Build(c.Request.Context(), filtered, showLegend)
	if err != nil {
		logger.Error("dashboard build failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard"})
		return
	}
	c.JSON(http.StatusOK, data)
}

// handleRecords serves the paginated detail table of the filtered subset.
func (s *Server) handleRecords(c *gin.Context) {
	filtered := s.dataset.Filter(filterFromQuery(c))

	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "page_size", s.cfg.Dashboard.TablePageSize)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 500 {
		pageSize = s.cfg.Dashboard.TablePageSize
	}

	records := filtered.Records()
	start := (page - 1) * pageSize
	if start > len(records) {
		start = len(records)
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}

	c.JSON(http.StatusOK, gin.H{
		"records":   records[start:end],
		"total":     len(records),
		"page":      page,
		"page_size": pageSize,
	})
}
