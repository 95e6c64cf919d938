// Package server exposes the generated calendar feed and a small JSON
// conversion API over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/tartampluch/go-bikram-sambat/internal/config"
)

// Options configures a CalendarServer.
type Options struct {
	Bind      string
	Port      int
	RateLimit float64 // API requests per second, shared by all clients.
	RateBurst int

	// AllowedOrigins for CORS; empty allows every origin.
	AllowedOrigins []string
}

// OptionsFrom maps the server settings onto Options.
func OptionsFrom(s config.ServerSettings) Options {
	return Options{
		Bind:      s.Bind,
		Port:      s.Port,
		RateLimit: s.RateLimit,
		RateBurst: s.RateBurst,
	}
}

// CalendarServer serves the ICS feed and the conversion API.
type CalendarServer struct {
	// Reads vastly outnumber updates (one per sync), so the feed sits behind
	// an atomic pointer rather than a lock.
	cache atomic.Pointer[cacheItem]

	opts     Options
	limiter  *rate.Limiter
	registry *prometheus.Registry
	metrics  *metrics
	handler  http.Handler

	// now is the clock of /today; replaced in tests.
	now func() time.Time
}

// NewCalendarServer creates a server with its own metrics registry.
func NewCalendarServer(opts Options) *CalendarServer {
	if opts.RateLimit <= 0 {
		opts.RateLimit = config.DefaultRateLimit
	}
	if opts.RateBurst <= 0 {
		opts.RateBurst = config.DefaultRateBurst
	}
	if opts.Bind == "" {
		opts.Bind = config.DefaultBind
	}

	s := &CalendarServer{
		opts:     opts,
		limiter:  rate.NewLimiter(rate.Limit(opts.RateLimit), opts.RateBurst),
		registry: prometheus.NewRegistry(),
		now:      time.Now,
	}
	s.metrics = newMetrics(s.registry)
	s.handler = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *CalendarServer) Handler() http.Handler { return s.handler }

func (s *CalendarServer) routes() http.Handler {
	origins := s.opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{config.CORSAllowAll}
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", config.HeaderIfNoneMatch, config.HeaderIfModifiedSince},
		ExposedHeaders: []string{config.HeaderETag, config.HeaderLastModified},
		MaxAge:         config.CORSMaxAge,
	}))
	r.Use(s.metrics.middleware)

	r.MethodNotAllowed(methodNotAllowed)
	r.Get(config.RouteCalendar, s.handleCalendarRequest)
	r.Head(config.RouteCalendar, s.handleCalendarRequest)
	r.Method(http.MethodGet, config.RouteMetrics, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Route(config.RouteAPI, func(api chi.Router) {
		api.Use(s.rateLimit)
		api.Get(config.RouteToBS, s.handleToBS)
		api.Get(config.RouteToAD, s.handleToAD)
		api.Get(config.RouteMonth, s.handleMonth)
		api.Get(config.RouteToday, s.handleToday)
	})
	return r
}

// Start listens on Bind:Port and blocks until ctx is cancelled.
func (s *CalendarServer) Start(ctx context.Context) error {
	if s.opts.Port == 0 {
		return errors.New(config.ErrPortRequired)
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(s.opts.Bind, strconv.Itoa(s.opts.Port)),
		Handler:      s.handler,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.opts.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// rateLimit rejects API calls beyond the shared token bucket with 429.
func (s *CalendarServer) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			w.Header().Set(config.HeaderRetryAfter, "1")
			respondError(w, http.StatusTooManyRequests, config.HTTPMsgRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(config.HeaderAllow, config.AllowedMethods)
	http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
}
