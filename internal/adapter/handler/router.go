package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-planner/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-planner/pkg/config"
)

// HealthCheck reports whether one dependency is reachable
type HealthCheck func(ctx context.Context) error

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
	respondHandler *Respond
	rosterHandler  *Roster
	patientHandler *Patient
	staticHandler  *Static
	respondLimit   echo.MiddlewareFunc
	healthChecks   map[string]HealthCheck
}

// RouterDeps lists the handlers and hooks the router wires
type RouterDeps struct {
	Meeting *Meeting
	Respond *Respond
	Roster  *Roster
	Patient *Patient
	Static  *Static
	// RespondLimit guards the token endpoint; nil disables it
	RespondLimit echo.MiddlewareFunc
	HealthChecks map[string]HealthCheck
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, deps RouterDeps) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: deps.Meeting,
		respondHandler: deps.Respond,
		rosterHandler:  deps.Roster,
		patientHandler: deps.Patient,
		staticHandler:  deps.Static,
		respondLimit:   deps.RespondLimit,
		healthChecks:   deps.HealthChecks,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")

	api.GET("/teams", rt.rosterHandler.ListTeams)
	api.POST("/teams", rt.rosterHandler.CreateTeam)
	api.GET("/members", rt.rosterHandler.ListMembers)
	api.POST("/members", rt.rosterHandler.CreateMember)

	api.GET("/meetings", rt.meetingHandler.ListMeetings)
	api.POST("/meetings", rt.meetingHandler.CreateMeeting)

	api.GET("/patient-details", rt.patientHandler.ListPatientDetails)
	api.POST("/patient-details", rt.patientHandler.CreatePatientDetail)

	var respondMW []echo.MiddlewareFunc
	if rt.respondLimit != nil {
		respondMW = append(respondMW, rt.respondLimit)
	}
	api.GET("/respond-to-meeting/:token", rt.respondHandler.Respond, respondMW...)
	api.POST("/respond-to-meeting/:token", rt.respondHandler.Respond, respondMW...)

	if rt.staticHandler != nil {
		e.GET("/*", rt.staticHandler.Serve)
	}
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  common.HealthResponse  "Healthy"
// @Failure      503  {object}  common.HealthResponse  "A dependency is unreachable"
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
	}
	status := http.StatusOK

	if len(rt.healthChecks) > 0 {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		resp.Checks = make(map[string]string, len(rt.healthChecks))
		for name, check := range rt.healthChecks {
			if err := check(ctx); err != nil {
				resp.Checks[name] = "down"
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "up"
		}
	}

	return c.JSON(status, resp)
}
