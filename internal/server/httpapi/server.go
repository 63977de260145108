// Package httpapi is the HTTP collaborator around the auth core. It serves
// the static login/signup pages, maps POST /login/try and /signup/try onto
// the auth service, and translates the typed auth outcomes into status codes
// and plain-text bodies.
package httpapi

import (
	"context"
	"embed"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/askarpov/loginward/internal/logging"
	"github.com/askarpov/loginward/internal/server/login"
)

//go:embed pages
var pages embed.FS

// SessionTokenHeader carries the serialized session token on a successful
// login response.
const SessionTokenHeader = "X-Session-Token"

type Server struct {
	address string
	auth    *login.Service
	logger  logging.Logger
}

func NewServer(address string, l logging.Logger, auth *login.Service) *Server {
	return &Server{
		address: address,
		auth:    auth,
		logger:  l.With("module", "http_server"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/login", s.servePage("pages/login.html"))
	r.GET("/signup", s.servePage("pages/signup.html"))
	r.GET("/default_avatar.png", s.serveAvatar)

	r.POST("/login/try", s.tryLogin)
	r.POST("/signup/try", s.trySignup)

	return r
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) servePage(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		contents, err := pages.ReadFile(name)
		if err != nil {
			c.String(http.StatusInternalServerError, "page unavailable")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", contents)
	}
}

func (s *Server) serveAvatar(c *gin.Context) {
	contents, err := pages.ReadFile("pages/default_avatar.png")
	if err != nil {
		c.String(http.StatusInternalServerError, "asset unavailable")
		return
	}
	c.Data(http.StatusOK, "image/png", contents)
}

func (s *Server) tryLogin(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusBadRequest, "Error cause: %v", err)
		return
	}

	token, err := s.auth.Login(c.Request.Context(), raw)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.Header(SessionTokenHeader, token)
	c.String(http.StatusOK, "Login successful!")
}

func (s *Server) trySignup(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusBadRequest, "Error cause: %v", err)
		return
	}

	if err := s.auth.Signup(c.Request.Context(), raw); err != nil {
		s.fail(c, err)
		return
	}

	c.String(http.StatusOK, "Signup successful!")
}

// fail maps an auth outcome to a response. Client mistakes are 400; a broken
// backend is 502 since retrying the whole request may succeed later.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, login.ErrStoreFailure) {
		status = http.StatusBadGateway
		s.logger.Error(c.Request.Context(), "credential store failure", "error", err.Error())
	}
	c.String(status, "Error cause: %v", err)
}
