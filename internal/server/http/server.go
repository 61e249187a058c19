package internalhttp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/mkravets/eventcal/internal/app"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Host string
	Port int
}

type Server struct {
	srv  *http.Server
	addr string
}

func NewServer(config Config, app *app.App) *Server {
	addr := net.JoinHostPort(config.Host, strconv.Itoa(config.Port))
	return &Server{
		addr: addr,
		srv:  &http.Server{Addr: addr, Handler: loggingMiddleware(NewMux(app))},
	}
}

// NewMux builds the REST routing for the event store. Exposed so tests can
// drive the handlers without binding a port.
func NewMux(app *app.App) http.Handler {
	h := handlers{app: app}
	mux := runtime.NewServeMux()

	mux.HandlePath("GET", "/events", h.listEvents)
	mux.HandlePath("POST", "/events", h.createEvent)
	// Literal paths before parameterized ones; the mux matches in
	// registration order.
	mux.HandlePath("GET", "/events/date/{date}", h.eventsByDate)
	mux.HandlePath("POST", "/events/conflicts", h.checkConflicts)
	mux.HandlePath("GET", "/events/{id}", h.getEvent)
	mux.HandlePath("PUT", "/events/{id}", h.updateEvent)
	mux.HandlePath("DELETE", "/events/{id}", h.deleteEvent)
	mux.HandlePath("GET", "/stats", h.getStats)
	mux.HandlePath("GET", "/health", h.health)

	return mux
}

func (s *Server) Start(_ context.Context) error {
	log.Printf("starting http server on %s", s.addr)
	err := s.srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func getIP(req *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return "", fmt.Errorf("userip: %q is not IP:port", req.RemoteAddr)
	}

	if parsed := net.ParseIP(ip); parsed == nil {
		return "", fmt.Errorf("userip: %q is not IP:port", req.RemoteAddr)
	}
	return ip, nil
}
