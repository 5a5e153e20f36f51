package server

import (
	_ "embed"
	"errors"
	"html/template"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"content_variation_generator/config"
	"content_variation_generator/generator"
	"content_variation_generator/logger"
)

//go:embed web/index.html
var indexHTML string

type Server struct {
	agent  *generator.Agent
	cfg    config.Config
	store  *sessionStore
	log    *logger.Logger
	engine *gin.Engine

	// in-flight generations, drained by Close
	inflight sync.WaitGroup
}

func New(agent *generator.Agent, cfg config.Config, log *logger.Logger) (*Server, error) {
	if agent == nil {
		return nil, errors.New("generator agent required")
	}
	if log == nil {
		log = logger.Nop()
	}
	page, err := template.New("index").Parse(indexHTML)
	if err != nil {
		return nil, err
	}
	store, err := newStore(cfg.SessionTTL)
	if err != nil {
		return nil, err
	}

	s := &Server{
		agent: agent,
		cfg:   cfg,
		store: store,
		log:   log,
	}
	s.engine = s.newEngine(page)
	return s, nil
}

// Routes returns the HTTP handler serving the page and the API.
func (s *Server) Routes() http.Handler {
	return s.engine
}

// Close waits for pending generations to publish, then drops all sessions.
func (s *Server) Close() error {
	s.inflight.Wait()
	return s.store.close()
}

func (s *Server) newEngine(page *template.Template) *gin.Engine {
	engine := gin.New()
	engine.SetHTMLTemplate(page)

	engine.Use(recovery(s.log), requestID())
	if len(s.cfg.CORS.AllowedOrigins) > 0 {
		engine.Use(corsMiddleware(s.cfg.CORS.AllowedOrigins))
	}
	if s.cfg.Tracing.Enabled {
		engine.Use(otelgin.Middleware(s.cfg.Tracing.ServiceName))
	}
	if s.cfg.Metrics.Enabled {
		engine.Use(metricsMiddleware())
	}
	engine.Use(requestLogger(s.log))

	engine.GET("/", s.handleIndex)
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.cfg.Metrics.Enabled {
		engine.GET(s.cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	api := engine.Group("/api")
	{
		api.GET("/options", s.handleOptions)
		api.POST("/sessions", s.handleSessionCreate)

		sessions := api.Group("/sessions/:id")
		sessions.GET("", s.handleSessionGet)
		sessions.PATCH("", s.handleSessionUpdate)
		sessions.POST("/generate", s.handleGenerate)
		sessions.GET("/variations/:n/text", s.handleVariationText)
		sessions.GET("/download", s.handleDownload)
	}
	return engine
}
