package httpd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/muurk/softap/internal/logging"
	"go.uber.org/zap"
)

// DefaultAddr is the listen address on the device.
const DefaultAddr = ":80"

// ListenFunc opens the server's listener.
type ListenFunc func(network, address string) (net.Listener, error)

// Config holds the server configuration. Zero fields take defaults.
type Config struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	Listen            ListenFunc
}

// DefaultConfig returns the device's server configuration.
func DefaultConfig() Config {
	return Config{Addr: DefaultAddr}
}

func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = 2 * time.Second
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 5 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 10 * time.Second
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60 * time.Second
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 5 * time.Second
	}
	if c.Listen == nil {
		c.Listen = net.Listen
	}
	return c
}

// Server creates running server instances from a Config.
type Server struct {
	config Config
	log    *zap.Logger
}

// New returns a Server. Nothing is bound until Start is called.
func New(config Config) *Server {
	return &Server{
		config: config.withDefaults(),
		log:    logging.Named("httpd"),
	}
}

// Start binds the listener and begins serving in the background.
func (s *Server) Start() (*Handle, error) {
	ln, err := s.config.Listen("tcp", s.config.Addr)
	if err != nil {
		return nil, &ServerError{Op: "listen", Addr: s.config.Addr, Err: err}
	}

	h := &Handle{
		listener: ln,
		log:      s.log,
		timeout:  s.config.ShutdownTimeout,
		done:     make(chan struct{}),
	}
	h.http = &http.Server{
		Handler:           withRequestLogging(h),
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
		ErrorLog:          zap.NewStdLog(s.log),
	}

	go func() {
		defer close(h.done)
		if err := h.http.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("Serve failed", zap.Error(err))
		}
	}()

	s.log.Info("Web server listening", zap.String("addr", ln.Addr().String()))
	return h, nil
}

// Handle is a running server instance.
type Handle struct {
	http     *http.Server
	listener net.Listener
	log      *zap.Logger
	timeout  time.Duration
	done     chan struct{}

	router   atomic.Pointer[httprouter.Router]
	routesMu sync.Mutex
	routes   []Route
	once     sync.Once
}

// Addr returns the bound listen address.
func (h *Handle) Addr() net.Addr {
	return h.listener.Addr()
}

// Port returns the bound TCP port, or 0 for non-TCP listeners.
func (h *Handle) Port() int {
	if tcp, ok := h.listener.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	return 0
}

// RegisterRoutes installs the route table. Only the first call has an
// effect; the table is read-only afterwards.
func (h *Handle) RegisterRoutes(routes []Route) {
	h.once.Do(func() {
		router := httprouter.New()
		seen := make(map[routeKey]bool, len(routes))
		installed := make([]Route, 0, len(routes))

		for _, r := range routes {
			key := r.key()
			if seen[key] {
				h.log.Warn("Duplicate route ignored",
					zap.String("method", r.Method),
					zap.String("path", r.Path),
				)
				continue
			}
			seen[key] = true
			router.HandlerFunc(r.Method, r.Path, r.Handler)
			installed = append(installed, r)
			h.log.Debug("Route registered",
				zap.String("method", r.Method),
				zap.String("path", r.Path),
			)
		}

		h.routesMu.Lock()
		h.routes = installed
		h.routesMu.Unlock()
		h.router.Store(router)
	})
}

// Routes returns the installed route table.
func (h *Handle) Routes() []Route {
	h.routesMu.Lock()
	defer h.routesMu.Unlock()
	out := make([]Route, len(h.routes))
	copy(out, h.routes)
	return out
}

// ServeHTTP dispatches to the route table. Before routes are registered
// every request is not found.
func (h *Handle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	router := h.router.Load()
	if router == nil {
		http.NotFound(w, r)
		return
	}
	router.ServeHTTP(w, r)
}

// Shutdown stops the server, waiting for in-flight requests up to the
// configured shutdown timeout.
func (h *Handle) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := h.http.Shutdown(ctx); err != nil {
		return &ServerError{Op: "shutdown", Addr: h.listener.Addr().String(), Err: err}
	}
	<-h.done
	h.log.Info("Web server stopped")
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, rec.status)
	})
}
