package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"edudesk/adapters/printer"
	"edudesk/app"
	"edudesk/internal"
	"edudesk/internal/config"
	"edudesk/internal/notify"
	"edudesk/ports"
)

// Server is the back-office web server: one set of generic handlers bound
// to every registered screen.
type Server struct {
	router   *gin.Engine
	backend  ports.BackendPort
	tables   *app.TableService
	exports  *app.ExportService
	imports  *app.ImportService
	renderer *printer.Renderer
	hub      *notify.Hub
	screens  map[string]app.Screen
	logger   *internal.Logger
	cfg      *config.Config
}

// NewServer wires the console against a backend.
func NewServer(cfg *config.Config, backend ports.BackendPort) *Server {
	gin.SetMode(cfg.Server.GinMode)

	hub := notify.NewHub()
	tables := app.NewTableService()

	s := &Server{
		router:   gin.Default(),
		backend:  backend,
		tables:   tables,
		exports:  app.NewExportService(backend, hub, tables),
		imports:  app.NewImportService(backend, hub),
		renderer: printer.NewRenderer(cfg.Report.Company, cfg.Report.Subtitle, cfg.Report.Locale),
		hub:      hub,
		screens:  make(map[string]app.Screen),
		logger:   internal.DefaultLogger,
		cfg:      cfg,
	}
	for _, screen := range Screens() {
		s.screens[screen.Name] = screen
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")

	api.GET("/screens", s.handleScreens)
	api.GET("/notifications", s.handleNotifications)
	api.DELETE("/notifications/:id", s.handleDismissNotification)

	screen := api.Group("/screens/:screen")
	screen.GET("/records", s.withScreen(s.handleList))
	screen.POST("/records", s.withScreen(s.handleCreate))
	screen.PUT("/records/:id", s.withScreen(s.handleUpdate))
	screen.DELETE("/records/:id", s.withScreen(s.handleDelete))
	screen.GET("/summary", s.withScreen(s.handleSummary))
	screen.GET("/export", s.withScreen(s.handleExport))
	screen.GET("/print", s.withScreen(s.handlePrint))
	screen.POST("/import", s.withScreen(s.handleImport))
	screen.GET("/import/template", s.withScreen(s.handleImportTemplate))
}

// withScreen resolves the :screen path segment against the registry.
func (s *Server) withScreen(handler func(*gin.Context, app.Screen)) gin.HandlerFunc {
	return func(c *gin.Context) {
		screen, ok := s.screens[c.Param("screen")]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown screen"})
			return
		}
		handler(c, screen)
	}
}

// Router exposes the gin engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	addr := ":" + s.cfg.Server.Port
	s.logger.Info("starting back-office console on %s", addr)
	return s.router.Run(addr)
}
