package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/common"
)

// HealthTimestampLayout matches the millisecond ISO-8601 format clients parse
const HealthTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Handlers groups the route handlers. Nil handlers are mounted as 501.
type Handlers struct {
	AI         *AIController
	Transcribe *Transcribe
	Export     *Export
	Share      *Share
	Meeting    *Meeting
}

// Router holds all handlers
type Router struct {
	h        Handlers
	authMW   echo.MiddlewareFunc
	gatherer prometheus.Gatherer
	now      func() time.Time
}

// NewRouter creates a new router with all handlers. authMW guards the bearer
// routes; gatherer backs /metrics and may be nil.
func NewRouter(h Handlers, authMW echo.MiddlewareFunc, gatherer prometheus.Gatherer) *Router {
	return &Router{h: h, authMW: authMW, gatherer: gatherer, now: time.Now}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Public endpoints
	e.GET("/api/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if rt.gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(rt.gatherer, promhttp.HandlerOpts{})))
	}
	if rt.h.Export != nil {
		e.GET("/exports/:filename", rt.h.Export.Download)
	} else {
		e.GET("/exports/:filename", rt.notImplemented)
	}
	if rt.h.Share != nil {
		e.GET("/api/share/:token", rt.h.Share.Resolve)
	} else {
		e.GET("/api/share/:token", rt.notImplemented)
	}

	// Bearer endpoints
	var mws []echo.MiddlewareFunc
	if rt.authMW != nil {
		mws = append(mws, rt.authMW)
	}
	api := e.Group("/api", mws...)

	rt.setupRelayRoutes(api)
	rt.setupMeetingRoutes(api)
}

// setupRelayRoutes configures the transcription, completion and export relays
func (rt *Router) setupRelayRoutes(g *echo.Group) {
	if rt.h.Transcribe != nil {
		g.POST("/transcribe", rt.h.Transcribe.Transcribe)
	} else {
		g.POST("/transcribe", rt.notImplemented)
	}

	if rt.h.AI != nil {
		g.POST("/extract-actions", rt.h.AI.ExtractActions)
		g.POST("/generate-summary", rt.h.AI.GenerateSummary)
	} else {
		g.POST("/extract-actions", rt.notImplemented)
		g.POST("/generate-summary", rt.notImplemented)
	}

	if rt.h.Export != nil {
		g.POST("/export-pdf", rt.h.Export.ExportPDF)
		g.POST("/export-word", rt.h.Export.ExportWord)
	} else {
		g.POST("/export-pdf", rt.notImplemented)
		g.POST("/export-word", rt.notImplemented)
	}

	if rt.h.Share != nil {
		g.POST("/create-share-link", rt.h.Share.Create)
		g.POST("/validate-membership", rt.h.Share.ValidateMembership)
	} else {
		g.POST("/create-share-link", rt.notImplemented)
		g.POST("/validate-membership", rt.notImplemented)
	}
}

// setupMeetingRoutes configures saved meeting routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	if rt.h.Meeting == nil {
		meetings.Any("", rt.notImplemented)
		meetings.Any("/*", rt.notImplemented)
		return
	}
	meetings.GET("", rt.h.Meeting.List)
	meetings.GET("/:id", rt.h.Meeting.Get)
	meetings.PUT("/:id", rt.h.Meeting.Save)
	meetings.DELETE("/:id", rt.h.Meeting.Delete)
	meetings.PUT("/:id/actions", rt.h.Meeting.ReplaceActions)
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":  "This endpoint is not yet implemented",
		"path":   c.Request().URL.Path,
		"method": c.Request().Method,
	})
}

// healthCheck godoc
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /api/health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:    "ok",
		Service:   "transcription",
		Timestamp: rt.now().UTC().Format(HealthTimestampLayout),
		Version:   "1.0.0",
	})
}
