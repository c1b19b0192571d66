// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"
	"strings"

	"gameapi/config"
	"gameapi/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams lets each binary provide only the handlers it serves.
type RouterParams struct {
	fx.In

	PlayerHandler *handler.PlayerHandler `optional:"true"`
	SaveHandler   *handler.SaveHandler   `optional:"true"`
	Config        *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	playerHandler *handler.PlayerHandler
	saveHandler   *handler.SaveHandler
	routes        config.RoutesConfig
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		playerHandler: params.PlayerHandler,
		saveHandler:   params.SaveHandler,
		routes:        params.Config.Routes,
	}
}

// RegisterRoutes mounts every route group whose handler was provided.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.playerHandler != nil {
		playerGroup := e.Group(groupPrefix(r.routes.Player))
		{
			playerGroup.POST("/login", r.playerHandler.Login)
			playerGroup.GET("/all", r.playerHandler.ListPlayers)
			rootRoute(playerGroup, http.MethodPost, r.playerHandler.Register)
			rootRoute(playerGroup, http.MethodGet, r.playerHandler.GetByToken)
		}
	}

	if r.saveHandler != nil {
		saveGroup := e.Group(groupPrefix(r.routes.Save))
		{
			rootRoute(saveGroup, http.MethodPost, r.saveHandler.Create)
			rootRoute(saveGroup, http.MethodGet, r.saveHandler.List)
			saveGroup.GET("/:save_id", r.saveHandler.Get)
			saveGroup.DELETE("/:save_id", r.saveHandler.Delete)
		}
	}
}

// groupPrefix normalizes a configured prefix. An empty or "/" prefix mounts at the root.
func groupPrefix(prefix string) string {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}

	return prefix
}

// rootRoute serves the group root with and without the trailing slash.
func rootRoute(g *echo.Group, method string, h echo.HandlerFunc) {
	g.Add(method, "", h)
	g.Add(method, "/", h)
}
