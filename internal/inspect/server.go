// Package inspect serves a small HTTP API for looking into a route table:
// resolving paths, reversing names, listing routes, and exporting the table
// as OpenAPI and its metrics for Prometheus.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rohanthewiz/urlresolve/consts"
	"github.com/rohanthewiz/urlresolve/core/resolve"
	"github.com/rohanthewiz/urlresolve/internal/openapi"
	"github.com/rohanthewiz/urlresolve/internal/send"
	"github.com/rohanthewiz/urlresolve/internal/telemetry"
)

// Config configures the inspector.
type Config struct {
	// Title heads the HTML route listing.
	Title string
	// Logger receives request logs. Default: discard.
	Logger *slog.Logger
	// Gatherer backs /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
	// OpenAPI generates /openapi.json and /openapi.yaml. Default: NewGenerator({}).
	OpenAPI *openapi.Generator
}

type server[T any] struct {
	urls   *telemetry.Instrumented[T]
	config Config
}

// NewRouter returns the inspector's routes.
//
//	GET /resolve?path=/users/1/
//	GET /reverse/{name}?arg=1&arg=2
//	GET /routes                 HTML, or JSON/YAML by Accept header
//	GET /openapi.json, /openapi.yaml
//	GET /metrics
func NewRouter[T any](urls *telemetry.Instrumented[T], config Config) chi.Router {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.OpenAPI == nil {
		config.OpenAPI = openapi.NewGenerator(openapi.Config{})
	}
	if config.Title == "" {
		config.Title = "Routes"
	}
	s := &server[T]{urls: urls, config: config}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestInfo(config.Logger))

	r.Get("/resolve", s.resolve)
	r.Get("/reverse/{name}", s.reverse)
	r.Get("/routes", s.routes)
	r.Get("/openapi.{format}", s.openAPI)
	if config.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(config.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

type resolveResponse struct {
	Path    string            `json:"path"`
	Name    string            `json:"name"`
	Handler string            `json:"handler"`
	Args    []string          `json:"args"`
	Params  map[string]string `json:"params"`
}

type reverseResponse struct {
	Name string   `json:"name"`
	Args []string `json:"args"`
	Path string   `json:"path"`
}

type errorResponse struct {
	Error string   `json:"error"`
	Path  string   `json:"path,omitempty"`
	Tried []string `json:"tried,omitempty"`
}

func (s *server[T]) resolve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		_ = send.JSON(w, http.StatusBadRequest, errorResponse{Error: "missing path query parameter"})
		return
	}

	m, err := s.urls.Resolve(r.Context(), path)
	if err != nil {
		var nf *resolve.NotFound[T]
		if errors.As(err, &nf) {
			resp := errorResponse{Error: err.Error(), Path: path, Tried: []string{}}
			for _, a := range nf.Tried {
				resp.Tried = append(resp.Tried, a.String())
			}
			_ = send.JSON(w, http.StatusNotFound, resp)
			return
		}
		_ = send.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error(), Path: path})
		return
	}

	params := make(map[string]string, len(m.Args))
	for _, p := range m.Params() {
		params[p.Key] = p.Value
	}
	_ = send.JSON(w, http.StatusOK, resolveResponse{
		Path:    path,
		Name:    m.Name,
		Handler: fmt.Sprint(m.Handler),
		Args:    m.Args,
		Params:  params,
	})
}

func (s *server[T]) reverse(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	args := r.URL.Query()["arg"]
	if args == nil {
		args = []string{}
	}

	path, err := s.urls.Reverse(r.Context(), name, args...)
	if err != nil {
		status := http.StatusInternalServerError
		var nrm *resolve.NoReverseMatch
		if errors.As(err, &nrm) {
			status = http.StatusBadRequest
			if nrm.Expected < 0 {
				status = http.StatusNotFound
			}
		}
		_ = send.JSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	_ = send.JSON(w, http.StatusOK, reverseResponse{Name: name, Args: args, Path: path})
}

func (s *server[T]) routes(w http.ResponseWriter, r *http.Request) {
	urls := s.urls.URLs()
	list := urls.Routes()

	accept := r.Header.Get(consts.HeaderAccept)
	switch {
	case strings.Contains(accept, consts.MIMEJSON):
		_ = send.JSON(w, http.StatusOK, list)
		return
	case strings.Contains(accept, consts.MIMEYAML):
		_ = send.YAML(w, http.StatusOK, list)
		return
	}

	_ = send.HTML(w, http.StatusOK, RenderRoutes(s.config.Title, urls.Prefix(), list))
}

func (s *server[T]) openAPI(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	urls := s.urls.URLs()
	doc := s.config.OpenAPI.Generate(urls.Routes(), urls.Prefix())

	switch format {
	case "json":
		w.Header().Set(consts.HeaderContentType, consts.MIMEJSON)
	case "yaml":
		w.Header().Set(consts.HeaderContentType, consts.MIMEYAML)
	default:
		_ = send.Text(w, http.StatusNotFound, "unknown format "+strconv.Quote(format)+"\n")
		return
	}
	if err := openapi.Write(w, doc, format); err != nil {
		s.config.Logger.Error("openapi write failed", "error", err)
	}
}

// Serve runs handler on addr until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("inspector listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("inspector shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
