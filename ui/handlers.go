package ui

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"edudesk/adapters/printer"
	"edudesk/app"
	"edudesk/domain/table"
	"edudesk/internal/errors"
	"edudesk/ports"
)

// handleScreens lists the registered screens and their column contracts.
func (s *Server) handleScreens(c *gin.Context) {
	type screenInfo struct {
		Name      string                   `json:"name"`
		Title     string                   `json:"title"`
		Columns   []table.ColumnDefinition `json:"columns"`
		Filters   []string                 `json:"filters"`
		CanImport bool                     `json:"can_import"`
	}
	out := make([]screenInfo, 0, len(s.screens))
	for _, screen := range Screens() {
		out = append(out, screenInfo{
			Name:      screen.Name,
			Title:     screen.Title,
			Columns:   screen.Columns,
			Filters:   screen.DiscreteFilters,
			CanImport: screen.ImportContract != nil,
		})
	}
	c.JSON(http.StatusOK, gin.H{"screens": out})
}

// handleList fetches the screen's record set and runs it through
// filter -> sort -> paginate for the requested state.
func (s *Server) handleList(c *gin.Context, screen app.Screen) {
	records, err := s.backend.FetchAll(c.Request.Context(), screen.Resource, nil)
	if err != nil {
		s.logger.Error("list fetch for %s failed: %v", screen.Resource, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load records"})
		return
	}

	filter, sortState := s.stateFromQuery(c, screen)
	result := s.tables.BuildPage(records, screen, filter, sortState)
	c.JSON(http.StatusOK, result)
}

// stateFromQuery builds the engine state from request parameters.
// Out-of-range pages and malformed numbers are normalized, not rejected.
func (s *Server) stateFromQuery(c *gin.Context, screen app.Screen) (table.FilterState, table.SortState) {
	filter := table.NewFilterState(s.cfg.Table.DefaultPageSize)

	if size, err := strconv.Atoi(c.DefaultQuery("page_size", "")); err == nil && size > 0 {
		filter.SetPageSize(size)
	}
	filter.SearchTerm = c.Query("search")
	for _, name := range screen.DiscreteFilters {
		if value := c.Query(name); value != "" {
			filter.Filters[name] = value
		}
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}

	sortState := table.SortState{Direction: table.SortAsc}
	if key := c.Query("sort"); key != "" {
		if col, ok := screen.Column(key); ok && col.Sortable {
			sortState.Key = key
			if c.Query("dir") == string(table.SortDesc) {
				sortState.Direction = table.SortDesc
			}
		}
	}
	return filter, sortState
}

func (s *Server) handleSummary(c *gin.Context, screen app.Screen) {
	records, err := s.backend.FetchAll(c.Request.Context(), screen.Resource, nil)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load records"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cards": app.BuildCards(records, screen.Cards)})
}

// handleExport streams the filter-aware XLSX download.
func (s *Server) handleExport(c *gin.Context, screen app.Screen) {
	filter, sortState := s.stateFromQuery(c, screen)

	filename, data, err := s.exports.Export(c.Request.Context(), screen, filter, sortState)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "export failed"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// handlePrint serves the standalone print document. The client opens this
// URL in a new window; the document prints itself after a settle delay and
// closes the window. There is no abort once it is served.
func (s *Server) handlePrint(c *gin.Context, screen app.Screen) {
	records, err := s.backend.FetchAll(c.Request.Context(), screen.Resource, nil)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load records"})
		return
	}

	filter, sortState := s.stateFromQuery(c, screen)
	visible := s.tables.BuildFullSet(records, screen, filter, sortState)

	cards := make([]printer.SummaryCard, 0, len(screen.Cards))
	for _, card := range app.BuildCards(visible, screen.Cards) {
		cards = append(cards, printer.SummaryCard{Label: card.Label, Value: card.Value})
	}

	document, err := s.renderer.Render(screen.Title+" Report", cards, screen.Columns, visible, time.Now())
	if err != nil {
		s.logger.Error("print render for %s failed: %v", screen.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "print rendering failed"})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	surface := printer.NewWriterSurface(c.Writer)
	if err := surface.Open(document); err != nil {
		s.logger.Error("print surface for %s failed: %v", screen.Name, err)
	}
}

// handleImport accepts a CSV upload and runs the bulk-import pipeline.
func (s *Server) handleImport(c *gin.Context, screen app.Screen) {
	if screen.ImportContract == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "screen does not support import"})
		return
	}

	text, err := uploadedText(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := s.imports.Import(c.Request.Context(), *screen.ImportContract, text)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.GetCode(err) == errors.CodeBackendError {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": count})
}

func (s *Server) handleImportTemplate(c *gin.Context, screen app.Screen) {
	if screen.ImportContract == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "screen does not support import"})
		return
	}
	data, err := s.imports.Template(*screen.ImportContract)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "template generation failed"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+screen.Name+`-template.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// uploadedText reads the CSV payload from a multipart "file" field, or
// from the raw request body as a fallback.
func uploadedText(c *gin.Context) (string, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return "", errors.InvalidInput("could not open uploaded file")
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return "", errors.InvalidInput("could not read uploaded file")
		}
		return string(data), nil
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil || len(data) == 0 {
		return "", errors.InvalidInput("no CSV payload provided")
	}
	return string(data), nil
}

// handleCreate forwards a single-record create to the backend.
func (s *Server) handleCreate(c *gin.Context, screen app.Screen) {
	var record table.Record
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record payload"})
		return
	}
	if err := s.backend.Create(c.Request.Context(), screen.Resource, record); err != nil {
		s.hub.Notify("Create failed", ports.NotifyError)
		c.JSON(http.StatusBadGateway, gin.H{"error": "create failed"})
		return
	}
	s.hub.Notify(screen.Title+" record created", ports.NotifySuccess)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleUpdate(c *gin.Context, screen app.Screen) {
	var record table.Record
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record payload"})
		return
	}
	if err := s.backend.Update(c.Request.Context(), screen.Resource, c.Param("id"), record); err != nil {
		s.hub.Notify("Update failed", ports.NotifyError)
		c.JSON(http.StatusBadGateway, gin.H{"error": "update failed"})
		return
	}
	s.hub.Notify(screen.Title+" record updated", ports.NotifySuccess)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleDelete(c *gin.Context, screen app.Screen) {
	if err := s.backend.Delete(c.Request.Context(), screen.Resource, c.Param("id")); err != nil {
		s.hub.Notify("Delete failed", ports.NotifyError)
		c.JSON(http.StatusBadGateway, gin.H{"error": "delete failed"})
		return
	}
	s.hub.Notify(screen.Title+" record deleted", ports.NotifySuccess)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": s.hub.Active()})
}

func (s *Server) handleDismissNotification(c *gin.Context) {
	s.hub.Dismiss(c.Param("id"))
	c.Status(http.StatusNoContent)
}
