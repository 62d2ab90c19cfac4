package api

import (
	"net/http"

	"github.com/banachtech/vanilla/config"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Server serves HTTP requests for our option pricer service.
type Server struct {
	cfg      config.ServerConfig
	defaults config.Config
	limiters *limiterSet
	router   *gin.Engine
}

// NewServer creates a new HTTP server and set up routing. Simulation fields
// missing from a pricing request fall back to cfg.Simulation; market fields are
// always taken from the request.
func NewServer(cfg *config.Config) *Server {
	server := &Server{
		cfg:      cfg.Server,
		defaults: *cfg,
		limiters: newLimiterSet(rate.Limit(cfg.Server.RateLimit), cfg.Server.Burst),
	}

	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	v1 := router.Group("/v1").Use(server.rateLimit)
	v1.POST("/pricer", server.pricer)
	server.router = router
}

// Start runs the HTTP server on the configured address.
func (server *Server) Start() error {
	return server.router.Run(server.cfg.Addr)
}

// Handler exposes the router, mainly for tests.
func (server *Server) Handler() http.Handler {
	return server.router
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
