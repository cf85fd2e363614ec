package server

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/sagarsuperuser/marketnav/internal/httputil"
	"github.com/sagarsuperuser/marketnav/internal/router"
	"github.com/sagarsuperuser/marketnav/navigation"
	"github.com/sagarsuperuser/marketnav/server/httpstatus"
	"github.com/sagarsuperuser/marketnav/server/metrics"
	"github.com/sagarsuperuser/marketnav/server/middlewares"
	apiv1 "github.com/sagarsuperuser/marketnav/server/routes/api/v1"
	"github.com/sagarsuperuser/marketnav/server/settings"
	"github.com/sagarsuperuser/marketnav/server/web"
	"github.com/sagarsuperuser/marketnav/store"
)

// versionMatcher defines a variable matcher to be parsed by the router
// when a request is about to be served.
const versionMatcher = "/v{version:[0-9.]+}"

// apiPrefix keeps API paths out of the navigation path space served by the
// frontend.
const apiPrefix = "/api"

type Server struct {
	router      *mux.Router
	settings    *settings.Settings
	store       *store.Store
	navigation  *navigation.Router
	httpServer  *http.Server
	httpAddress string
	mu          sync.Mutex
	middlewares []middlewares.Middleware
}

func NewServer(settings *settings.Settings, store *store.Store, nav *navigation.Router, registry *prometheus.Registry) *Server {
	ret := new(Server)
	ret.settings = settings
	ret.store = store
	ret.navigation = nav
	mRouter := mux.NewRouter()

	// Global Middlewares --

	// register panic recovery middleware
	mRouter.Use(middlewares.Recovery())

	// Inject zerolog logger into request context
	mRouter.Use(hlog.NewHandler(log.Logger))

	// Prepopulate request log fields.
	mRouter.Use(hlog.RemoteAddrHandler("ip"))
	mRouter.Use(hlog.UserAgentHandler("user_agent"))
	mRouter.Use(hlog.RefererHandler("referer"))
	mRouter.Use(hlog.RequestIDHandler("req_id", "X-Request-Id"))

	// register CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins: settings.Origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	mRouter.Use(c.Handler)

	// register access logger, called after each request
	mRouter.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("")
	}))
	// setup listen addresses
	ret.httpAddress = net.JoinHostPort(settings.Host, strconv.Itoa(settings.Port))

	mRouter.Methods(http.MethodGet).Path("/health").HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			hlog.FromRequest(r).Debug().Int("routes", nav.Table().Len()).Msg("health ok")
			w.WriteHeader(http.StatusOK)
		})

	var m *metrics.Metrics
	if registry != nil {
		m = metrics.New(registry)
		if settings.MetricsEnabled {
			mRouter.Methods(http.MethodGet).Path("/metrics").Handler(
				promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		}
	}

	// register api version 1 endpoints
	apiV1Service := apiv1.NewAPIV1Service(settings, store, nav, m)
	versionMW, err := middlewares.NewVersionMiddleware(Version, "1.0", "1.0")
	if err != nil {
		log.Fatal().Err(err).Msg("invalid API version configuration")
	}
	ret.UseMiddleware(versionMW)
	ret.CreateMux(
		context.Background(),
		mRouter.PathPrefix(apiPrefix).Subrouter(),
		apiv1.NewNavigationRouter(apiV1Service),
		apiv1.NewVisitRouter(apiV1Service),
	)

	// everything else is a navigation request for the frontend
	frontend, err := web.NewFrontend(nav, m)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load frontend templates")
	}
	frontend.RegisterRoutes(mRouter)

	mRouter.NotFoundHandler = http.HandlerFunc(notFound)
	mRouter.MethodNotAllowedHandler = http.HandlerFunc(notFound)

	ret.router = mRouter
	return ret
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// UseMiddleware registers a global APIFunc middleware.
// They are executed in the order that they are applied to the Router.
func (s *Server) UseMiddleware(mw middlewares.Middleware) {
	s.middlewares = append(s.middlewares, mw)
}

// makeHTTPHandler adapts an API route to net/http. The middleware chain is
// built here, so UseMiddleware must be called before CreateMux.
func (s *Server) makeHTTPHandler(r router.Route) http.HandlerFunc {
	handlerFunc := s.handlerWithGlobalMiddlewares(r.Handler())
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		if vars == nil {
			vars = make(map[string]string)
		}

		if err := handlerFunc(ctx, w, r, vars); err != nil {
			statusCode := httpstatus.FromError(err)
			respMsg := err.Error()
			if statusCode >= http.StatusInternalServerError {
				// Internal details stay in the log.
				respMsg = http.StatusText(statusCode)
				zerolog.Ctx(ctx).Error().Err(err).Msgf("Handler for %s %s returned error", r.Method, r.URL.Path)
			}
			_ = httputil.WriteError(w, statusCode, respMsg)
		}
	})
}

// CreateMux registers all the routers on m.
func (s *Server) CreateMux(ctx context.Context, m *mux.Router, routers ...router.Router) *mux.Router {
	log.Debug().Msg("Registering routers")
	for _, apiRouter := range routers {
		for _, r := range apiRouter.Routes() {
			if ctx.Err() != nil {
				return m
			}
			log.Debug().Str("method", r.Method()).Str("path", apiPrefix+r.Path()).Msg("Registering route")
			f := s.makeHTTPHandler(r)
			m.Path(versionMatcher + r.Path()).Methods(r.Method()).Handler(f)
			m.Path(r.Path()).Methods(r.Method()).Handler(f)
		}
	}

	// Undefined API paths and methods answer in JSON instead of falling
	// through to the frontend.
	m.PathPrefix("/").HandlerFunc(notFound)

	return m
}

func notFound(w http.ResponseWriter, r *http.Request) {
	_ = httputil.WriteError(w, http.StatusNotFound, "page not found")
}

func (server *Server) Start() {
	server.handleGracefulShutdown()

	log.Info().Str("address", server.httpAddress).Msg("Listening for HTTP on")
	list, err := net.Listen("tcp", server.httpAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open HTTP listener")
	}

	srv := &http.Server{
		Handler:           server.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	server.mu.Lock()
	server.httpServer = srv
	server.mu.Unlock()
	err = srv.Serve(list)

	if err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("failed to serve HTTP server")
	}

}

// Stop shuts the HTTP server down, waiting up to five seconds for in-flight
// requests.
func (server *Server) Stop() {
	server.mu.Lock()
	defer server.mu.Unlock()
	if server.httpServer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed, closing")
		server.httpServer.Close()
	}
}

func (server *Server) handleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		sig := <-sigs

		log.Info().Interface("signal", sig).Msg("Server received signal, shutting down gracefully")
		server.Stop()
		if err := server.store.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close store")
		}
		os.Exit(0)
	}()
}
