// internal/server/server.go

package server

import (
	"embed"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/receipt-generator/internal/metrics"
	"github.com/receipt-generator/pkg/receipt"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed docs/swagger.json
var swaggerDoc []byte

// Renderer is what the server needs from pkg/render.
type Renderer interface {
	Render(w io.Writer, doc receipt.Document) error
}

type Server struct {
	renderer Renderer
	metrics  *metrics.Metrics
	registry *prometheus.Registry
	index    *template.Template
	now      func() time.Time
	router   *mux.Router
}

type Options struct {
	Renderer Renderer
	// Now names downloads. Defaults to time.Now.
	Now func() time.Time
}

func New(opts Options) (*Server, error) {
	index, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	s := &Server{
		renderer: opts.Renderer,
		metrics:  metrics.New(reg),
		registry: reg,
		index:    index,
		now:      opts.Now,
		router:   mux.NewRouter(),
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.router
	r.HandleFunc("/", s.indexHandler).Methods("GET")
	r.HandleFunc("/generate-receipt", s.generateReceiptHandler).Methods("POST")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/receipts", s.createReceiptHandler).Methods("POST")
	api.HandleFunc("/receipts/preview", s.previewReceiptHandler).Methods("POST")

	r.HandleFunc("/healthz", s.healthHandler).Methods("GET")
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods("GET")
	r.HandleFunc("/swagger/doc.json", s.swaggerDocHandler).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

// Handler returns the router wrapped with request id and logging middleware.
func (s *Server) Handler() http.Handler {
	return requestIDMiddleware(loggingMiddleware(s.router))
}

func (s *Server) Metrics() *metrics.Metrics {
	return s.metrics
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	respondOK(w, r, "ok", nil)
}

func (s *Server) swaggerDocHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(swaggerDoc)
}

