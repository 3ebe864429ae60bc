// Package server exposes the engine's collaborator API over HTTP. It is a
// thin layer: chat-platform dispatch and message rendering live elsewhere.
package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/xyian/lorebase/internal/core"
	"github.com/xyian/lorebase/internal/core/ingest"
	"github.com/xyian/lorebase/internal/core/model"
	"github.com/xyian/lorebase/internal/core/relate"
	"github.com/xyian/lorebase/internal/core/search"
	"github.com/xyian/lorebase/internal/core/store"
)

type Server struct {
	Catalog *core.Catalog

	// writeMu serializes ingestion; queries read whichever snapshot is
	// published and never block on writers.
	writeMu sync.Mutex
}

func New(catalog *core.Catalog) *Server {
	return &Server{Catalog: catalog}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.Health)
	r.GET("/stats", s.Stats)
	r.POST("/search", s.Search)
	r.GET("/answer", s.Answer)
	r.GET("/entities/:id/related", s.Related)
	r.POST("/ingest", s.Ingest)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, s.Catalog.Active().Stats())
}

type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

func (s *Server) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	engine := search.NewEngine(s.Catalog.Active())
	hits := engine.Search(req.Query, req.Limit)
	if hits == nil {
		hits = []model.SearchHit{}
	}
	c.JSON(http.StatusOK, gin.H{"results": hits})
}

func (s *Server) Answer(c *gin.Context) {
	engine := search.NewEngine(s.Catalog.Active())
	answer, found := engine.Answer(c.Query("q"), store.DefaultRelatedLimit)
	if !found {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "answer": answer})
}

func (s *Server) Related(c *gin.Context) {
	st := s.Catalog.Active()
	id := c.Param("id")
	if _, ok := st.Entity(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "entity not found"})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	related := st.FindRelated(id, c.Query("type"), limit)
	if related == nil {
		related = []model.Related{}
	}
	c.JSON(http.StatusOK, gin.H{"related": related})
}

type IngestRequest struct {
	Source  string               `json:"source"`
	Records []model.SourceRecord `json:"records"`
}

// Ingest folds new records into a copy of the active store, re-runs
// relationship inference, and publishes the result as one atomic swap.
func (s *Server) Ingest(c *gin.Context) {
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Source == "" {
		req.Source = "api"
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := store.New()
	next.Import(s.Catalog.Active().Export())

	res := ingest.New(next, req.Source).IngestAll(req.Records)
	inferred := relate.Infer(next)
	s.Catalog.Publish(next)

	slog.Info("ingest request processed",
		"source", req.Source, "ingested", res.Ingested, "skipped", res.Skipped)
	c.JSON(http.StatusOK, gin.H{
		"ingested":            res.Ingested,
		"skipped":             res.Skipped,
		"relationships_added": inferred.Added,
	})
}
