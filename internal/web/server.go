// Package web serves the proposition listing, timeline, and export API.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/legitrack/legitrack/internal/camara"
	"github.com/legitrack/legitrack/internal/enrich"
	"github.com/legitrack/legitrack/internal/export"
	"github.com/legitrack/legitrack/internal/proposicao"
	"github.com/legitrack/legitrack/internal/search"
)

// Source is the slice of the API client the server needs.
type Source interface {
	ListPropositions(ctx context.Context, p camara.ListParams) ([]map[string]any, error)
	Tramitations(ctx context.Context, id int64) ([]map[string]any, error)
	AuthorsByURI(ctx context.Context, uri string) []map[string]any
}

// Server exposes the normalized proposition API over HTTP.
type Server struct {
	source       Source
	enricher     *enrich.Enricher
	defaultTipos []string
	defaultItens int
}

// NewServer creates a Server. defaultTipos and defaultItens apply when the
// request does not name its own filters.
func NewServer(source Source, enricher *enrich.Enricher, defaultTipos []string, defaultItens int) *Server {
	if defaultItens <= 0 {
		defaultItens = 100
	}
	if len(defaultTipos) == 0 {
		defaultTipos = []string{"PL"}
	}
	return &Server{
		source:       source,
		enricher:     enricher,
		defaultTipos: defaultTipos,
		defaultItens: defaultItens,
	}
}

// Router builds the gin handler tree.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/proposicoes", s.handleList)
	api.GET("/proposicoes/:id/tramitacoes", s.handleTimeline)

	return r
}

// Start blocks serving on addr.
func (s *Server) Start(addr string) error {
	log.Info("listening", "addr", addr)
	return s.Router().Run(addr)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

// loadPropositions runs the full pipeline: fetch, normalize, theme-filter, enrich.
func (s *Server) loadPropositions(c *gin.Context) ([]proposicao.Proposicao, bool) {
	params := camara.ListParams{
		Types: s.defaultTipos,
		Items: s.defaultItens,
	}
	if tipos := c.Query("tipos"); tipos != "" {
		params.Types = splitTipos(tipos)
	}
	if ano := c.Query("ano"); ano != "" {
		y, err := strconv.Atoi(ano)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid ano: %q", ano)})
			return nil, false
		}
		params.Year = y
	}
	if itens := c.Query("itens"); itens != "" {
		if n, err := strconv.Atoi(itens); err == nil && n > 0 {
			params.Items = n
		}
	}

	raw, err := s.source.ListPropositions(c.Request.Context(), params)
	if err != nil {
		status := http.StatusInternalServerError
		var apiErr *camara.APIError
		if errors.As(err, &apiErr) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return nil, false
	}

	props := proposicao.Normalize(raw)
	if tema := c.Query("tema"); tema != "" {
		props, err = search.MatchTheme(props, tema)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return nil, false
		}
	}

	s.enricher.Enrich(c.Request.Context(), props)
	return props, true
}

// handleList serves the listing as JSON, or as a file download when the
// formato query names an export serialization.
func (s *Server) handleList(c *gin.Context) {
	formato := c.Query("formato")

	var format export.Format
	if formato != "" {
		var err error
		format, err = export.ParseFormat(formato)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	props, ok := s.loadPropositions(c)
	if !ok {
		return
	}

	if formato == "" {
		c.JSON(http.StatusOK, props)
		return
	}

	filename := "legitrack_resultados." + string(format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", format.ContentType())
	c.Status(http.StatusOK)
	if err := export.Write(c.Writer, format, props); err != nil {
		log.Error("export failed", "format", format, "err", err)
	}
}

func (s *Server) handleTimeline(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid id: %q", c.Param("id"))})
		return
	}

	raw, err := s.source.Tramitations(c.Request.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		var apiErr *camara.APIError
		if errors.As(err, &apiErr) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, proposicao.Timeline(raw))
}

func splitTipos(s string) []string {
	var tipos []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tipos = append(tipos, strings.ToUpper(t))
		}
	}
	return tipos
}
