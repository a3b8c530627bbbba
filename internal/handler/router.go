package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"checkin-core/internal/handler/api"
	"checkin-core/internal/handler/middleware"
	"checkin-core/internal/pkg/config"
	"checkin-core/internal/pkg/jwt"
	"checkin-core/internal/usecase/shared"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers mounted under /api.
type Handlers struct {
	Services *api.ServiceHandler
	History  *api.HistoryHandler
	Sync     *api.SyncHandler
	Subjects *api.SubjectHandler
}

func NewHandlers(services *api.ServiceHandler, history *api.HistoryHandler, sync *api.SyncHandler, subjects *api.SubjectHandler) Handlers {
	return Handlers{Services: services, History: history, Sync: sync, Subjects: subjects}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, registry *prometheus.Registry, liveness shared.Liveness, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, registry, liveness, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, registry *prometheus.Registry, liveness shared.Liveness, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck(liveness))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	staffOnly := authMiddleware.RequireRoleAtLeast(jwt.RoleStaff)
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/showers", Handler: h.Services.BookShower},
			{Method: http.MethodPost, Path: "/showers/waitlist", Handler: h.Services.JoinWaitlist},
			{Method: http.MethodPost, Path: "/laundry", Handler: h.Services.BookLaundry},
			{Method: http.MethodPost, Path: "/bicycles", Handler: h.Services.LogBicycleRepair},
			{Method: http.MethodPost, Path: "/logs", Handler: h.Services.LogService},
			{Method: http.MethodGet, Path: "/slots/:type", Handler: h.Services.ListSlots},
		})

		records := apiGroup.Group("/records")
		addRoutes(records, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Services.ListRecords},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Services.UpdateStatus},
			{Method: http.MethodPatch, Path: "/:id/slot", Handler: h.Services.Reschedule},
			{Method: http.MethodPatch, Path: "/:id/bag", Handler: h.Services.UpdateBagNumber},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Services.CancelRecord},
		})

		history := apiGroup.Group("/history")
		addRoutes(history, []route{
			{Method: http.MethodGet, Path: "", Handler: h.History.List},
			{Method: http.MethodPost, Path: "/:id/undo", Handler: h.History.Undo},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/sync/status", Handler: h.Sync.Status},
			{Method: http.MethodPost, Path: "/sync/flush", Handler: h.Sync.Flush, Mw: []gin.HandlerFunc{staffOnly}},
			{Method: http.MethodGet, Path: "/notices", Handler: h.Sync.Notices},
			{Method: http.MethodPatch, Path: "/subjects/:id", Handler: h.Subjects.Update, Mw: []gin.HandlerFunc{staffOnly}},
		})
	}
}

// @Summary Health check
// @Description Reports whether the service is up and whether the record store is reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(liveness shared.Liveness) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := "online"
		if !liveness.Online() {
			store = "offline"
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"store":  store,
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
