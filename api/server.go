// Package api exposes a read-only HTTP inspection service over an
// in-memory *rmdp.RMDP, structured the way the teacher project's
// cbft/redisraft network intercept servers wrap a gin.Engine: a
// constructor taking a context, a struct holding *http.Server, and
// Start/Stop methods for a scoped server lifetime.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zeu5/rmdp/rmdp"
)

// Server is a read-only HTTP projection of an *rmdp.RMDP. It never
// mutates the underlying RMDP; every handler is a read accessor from
// spec.md §4.4.
type Server struct {
	ctx    context.Context
	model  *rmdp.RMDP
	port   int
	engine *gin.Engine
	server *http.Server
}

// New builds a Server for model, listening on port once Start is
// called.
func New(ctx context.Context, model *rmdp.RMDP, port int) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{ctx: ctx, model: model, port: port, engine: engine}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/states", s.handleStates)
	s.engine.GET("/states/:state/actions/:action", s.handleAction)
	s.engine.GET("/pretty", s.handlePretty)
	s.engine.GET("/export.csv", s.handleExportCSV)
}

func (s *Server) handleStates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"state_count": s.model.StateCount()})
}

func (s *Server) handleAction(c *gin.Context) {
	stateID, err := strconv.Atoi(c.Param("state"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid state id"})
		return
	}
	actionID, err := strconv.Atoi(c.Param("action"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action id"})
		return
	}

	outcomeCount, err := s.model.OutcomeCount(stateID, actionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state":         stateID,
		"action":        actionID,
		"outcome_count": outcomeCount,
	})
}

func (s *Server) handlePretty(c *gin.Context) {
	c.String(http.StatusOK, s.model.String())
}

func (s *Server) handleExportCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	if err := rmdp.Export(c.Writer, s.model, true); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Start begins serving on s.port. It blocks until the server stops or
// fails to start; callers typically run it in a goroutine.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    ":" + strconv.Itoa(s.port),
		Handler: s.engine,
	}
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the server down, honoring ctx's deadline.
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
