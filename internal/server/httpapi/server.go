// Package httpapi exposes the expense tracker over HTTP: registration, login
// and the bearer-token-protected expense routes.
package httpapi

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/dmarques/despesas/internal/logging"
	"github.com/dmarques/despesas/internal/server/config"
	"github.com/dmarques/despesas/internal/server/expenses"
	"github.com/dmarques/despesas/internal/server/users"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Server struct {
	address     string
	logger      logging.Logger
	users       *users.Service
	expenses    *expenses.Service
	jwtSecret   []byte
	corsOrigins []string
}

func NewServer(cfg *config.Config, l logging.Logger, us *users.Service, es *expenses.Service) (*Server, error) {
	origins := []string{}
	for _, o := range strings.Split(cfg.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Server{
		address:     cfg.EndpointAddr,
		logger:      l.With("module", "http_server"),
		users:       us,
		expenses:    es,
		jwtSecret:   []byte(cfg.SecretKey),
		corsOrigins: origins,
	}, nil
}

// Router assembles the route tree. Split out from Run so tests can drive the
// handlers through httptest without opening a listener.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(s.requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/", s.home)

	r.Route("/api", func(api chi.Router) {
		api.Post("/register", s.register)
		api.Post("/login", s.login)

		api.Group(func(protected chi.Router) {
			protected.Use(s.requireAuth)
			protected.Get("/expenses", s.listExpenses)
			protected.Post("/expenses", s.createExpense)
			protected.Delete("/expenses/{id}", s.deleteExpense)
		})
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: s.Router()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.Serve(listen); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
