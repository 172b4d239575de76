package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"salarydash/domain/salary"
	"salarydash/models"
)

var exportHeaders = []string{
	"year", "seniority", "contract", "company_size",
	"role", "remote_mode", "country_iso3", "salary_usd",
}

// handleExport streams the filtered subset as an XLSX workbook.
func (s *Server) handleExport(c *gin.Context) {
	filtered := s.dataset.Filter(filterFromQuery(c))

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	for i, r := range filtered.Records() {
		row := []interface{}{
			r.Year, r.Seniority, r.Contract, r.CompanySize,
			r.Role, r.RemoteMode, r.CountryISO3, r.SalaryUSD,
		}
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Error("export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build export"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="salaries_filtered.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// saveViewRequest is the POST body for creating a saved view.
type saveViewRequest struct {
	Name   string                        `json:"name" binding:"required"`
	Filter map[salary.Dimension][]string `json:"filter"`
}

func (s *Server) handleSaveView(c *gin.Context) {
	if s.views == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "saved views require a configured database"})
		return
	}

	var req saveViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view := models.NewSavedView(req.Name, salary.Filter{Dimensions: req.Filter})
	if err := s.views.Save(c.Request.Context(), view); err != nil {
		logger.Error("failed to save view: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save view"})
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (s *Server) handleListViews(c *gin.Context) {
	if s.views == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "saved views require a configured database"})
		return
	}

	views, err := s.views.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list views: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list views"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"views": views, "count": len(views)})
}

func (s *Server) handleGetView(c *gin.Context) {
	if s.views == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "saved views require a configured database"})
		return
	}

	view, err := s.views.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "view not found"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleDeleteView(c *gin.Context) {
	if s.views == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "saved views require a configured database"})
		return
	}

	if err := s.views.Delete(c.Request.Context(), c.Param("id")); err != nil {
		logger.Error("failed to delete view: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete view"})
		return
	}
	c.Status(http.StatusNoContent)
}
