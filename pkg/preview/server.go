package preview

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/danielnarey/modular-ui/pkg/render"
)

const defaultTracerName = "modui-preview"

// Server hosts a Program over HTTP: the root route serves the rendered
// page with the client script injected, /ws runs the live event loop, and
// /metrics exposes Prometheus metrics.
type Server struct {
	program     Program
	addr        string
	title       string
	pretty      bool
	metricsOpts []MetricsOption

	metrics  *metrics
	tracer   trace.Tracer
	upgrader websocket.Upgrader
}

// Option configures a preview Server.
type Option func(*Server)

// WithAddr sets the listen address (default "localhost:3000").
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(s *Server) {
		s.title = title
	}
}

// WithPretty enables indented HTML on the root route. WebSocket render
// frames are always compact.
func WithPretty(pretty bool) Option {
	return func(s *Server) {
		s.pretty = pretty
	}
}

// WithMetricsOptions forwards options to the Prometheus metrics setup.
func WithMetricsOptions(opts ...MetricsOption) Option {
	return func(s *Server) {
		s.metricsOpts = append(s.metricsOpts, opts...)
	}
}

// NewServer creates a preview server for a program.
func NewServer(program Program, opts ...Option) *Server {
	s := &Server{
		program: program,
		addr:    "localhost:3000",
		title:   "modular-ui preview",
	}
	for _, opt := range opts {
		opt(s)
	}

	s.metrics = newMetrics(s.metricsOpts...)
	s.tracer = otel.Tracer(defaultTracerName)
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true // preview runs locally
		},
	}
	return s
}

// Handler returns the server's route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Get("/", s.handlePage)
	r.Get("/ws", s.handleWebSocket)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// ListenAndServe runs the server until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[preview] listening on http://%s", s.addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// handlePage serves the initial render wrapped in a page shell. Live
// bindings arrive over the WebSocket once the client script connects.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	renderer := render.New(render.Config{Pretty: s.pretty})

	var model any
	if s.program.Init != nil {
		model = s.program.Init()
	}
	html, err := renderer.ToString(s.program.View(model).Render())
	if err != nil {
		log.Printf("[preview] render failed: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, s.title, html, clientScript)
}

// handleWebSocket runs one live session: an initial render frame, then an
// event/render loop until the client disconnects.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.metrics.wsErrors.WithLabelValues("upgrade").Inc()
		return
	}
	defer conn.Close()

	s.metrics.activeSessions.Inc()
	defer s.metrics.activeSessions.Dec()

	sess := newSession(s.program)

	frame, err := sess.render()
	if err != nil {
		log.Printf("[preview] initial render failed: %v", err)
		_ = conn.WriteJSON(errorFrame{Type: frameError, Error: err.Error()})
		return
	}
	if err := conn.WriteJSON(frame); err != nil {
		s.metrics.wsErrors.WithLabelValues("write").Inc()
		return
	}
	s.metrics.rendersTotal.Inc()

	for {
		var ev eventFrame
		if err := conn.ReadJSON(&ev); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.metrics.wsErrors.WithLabelValues("read").Inc()
			}
			return
		}
		if ev.Type != frameEvent {
			continue
		}
		s.serveEvent(r.Context(), conn, sess, ev)
	}
}

// serveEvent dispatches one event frame inside a trace span and pushes
// the resulting render frame.
func (s *Server) serveEvent(ctx context.Context, conn *websocket.Conn, sess *session, ev eventFrame) {
	_, span := s.tracer.Start(ctx, "modui."+ev.Event,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("modui.event", ev.Event),
			attribute.String("modui.target", ev.HID),
		),
	)
	defer span.End()

	start := time.Now()
	frame, d, err := sess.handleEvent(ev)
	s.metrics.eventDuration.WithLabelValues(ev.Event).Observe(time.Since(start).Seconds())

	if err != nil {
		s.metrics.eventsTotal.WithLabelValues(ev.Event, "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Printf("[preview] event %s on %s: %v", ev.Event, ev.HID, err)
		_ = conn.WriteJSON(errorFrame{Type: frameError, Error: err.Error()})
		return
	}

	s.metrics.eventsTotal.WithLabelValues(ev.Event, "success").Inc()
	span.SetAttributes(
		attribute.Int("modui.msg_count", len(d.Msgs)),
		attribute.Bool("modui.stop_propagation", d.StopPropagation),
		attribute.Bool("modui.prevent_default", d.PreventDefault),
	)
	span.SetStatus(codes.Ok, "")

	if err := conn.WriteJSON(frame); err != nil {
		s.metrics.wsErrors.WithLabelValues("write").Inc()
		return
	}
	s.metrics.rendersTotal.Inc()
}

// pageShell wraps the rendered tree: title, mount point, client script.
const pageShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
<div id="modui-root">%s</div>
%s
</body>
</html>
`
