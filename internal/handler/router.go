package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"facility-booking/internal/domain/user"
	"facility-booking/internal/handler/api"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	resourceHandler *api.ResourceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookingHandler, resourceHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	resourceHandler *api.ResourceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Routes live at the root, no /api prefix; clients post to these paths directly.
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
		{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},

		{Method: http.MethodPost, Path: "/reserve_room", Handler: bookingHandler.ReserveRoom},
		{Method: http.MethodPost, Path: "/reserve_vehicle", Handler: bookingHandler.ReserveVehicle},
		{Method: http.MethodGet, Path: "/reservations_room", Handler: bookingHandler.ListRoomBookings},
		{Method: http.MethodGet, Path: "/reservations_vehicle", Handler: bookingHandler.ListVehicleBookings},

		{Method: http.MethodGet, Path: "/rooms", Handler: resourceHandler.ListRooms},
		{Method: http.MethodGet, Path: "/vehicles", Handler: resourceHandler.ListVehicles},
	})

	// Lifecycle updates require a signed-in user.
	authRequired := engine.Group("")
	authRequired.Use(authMiddleware.RequireAuth())
	addRoutes(authRequired, []route{
		{Method: http.MethodPatch, Path: "/update_room_status", Handler: bookingHandler.UpdateRoomStatus},
		{Method: http.MethodPatch, Path: "/update_vehicle_status", Handler: bookingHandler.UpdateVehicleStatus},
	})

	// Pool management is admin-only.
	adminRequired := engine.Group("")
	adminRequired.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
	addRoutes(adminRequired, []route{
		{Method: http.MethodPost, Path: "/rooms", Handler: resourceHandler.CreateRoom},
		{Method: http.MethodPost, Path: "/vehicles", Handler: resourceHandler.CreateVehicle},
		{Method: http.MethodDelete, Path: "/rooms/:id", Handler: resourceHandler.DeleteRoom},
		{Method: http.MethodDelete, Path: "/vehicles/:id", Handler: resourceHandler.DeleteVehicle},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
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
