// Package server provides HTTP and WebSocket handlers
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/tryangle-app/tryangle/backend/guidance/internal/config"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/measure"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/session"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/syncx"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/trace"
)

// Inference is the subset of the vision client the server needs.
type Inference interface {
	ExtractMeasurement(ctx context.Context, image []byte, format string, frontCamera bool) (*measure.FrameMeasurement, error)
	AnalyzeReference(ctx context.Context, image []byte, format string) (*measure.FrameMeasurement, error)
	Healthy(ctx context.Context) bool
}

// Message types.
type Message struct {
	Type string `json:"type"`
}

// FrameMessage carries one live camera frame for server-side inference.
type FrameMessage struct {
	Type        string `json:"type"`
	ImageData   []byte `json:"image_data"`
	Format      string `json:"format"`
	FrontCamera bool   `json:"front_camera"`
}

// MeasurementMessage carries a measurement produced by on-device perception,
// skipping the inference round trip.
type MeasurementMessage struct {
	Type        string                    `json:"type"`
	Measurement *measure.FrameMeasurement `json:"measurement"`
}

type SnapshotMessage struct {
	Type     string           `json:"type"`
	Snapshot session.Snapshot `json:"snapshot"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// referenceRequest is the POST /api/reference body. Either a raw image (the
// server runs reference analysis) or a pre-computed measurement.
type referenceRequest struct {
	ImageData   []byte                    `json:"image_data,omitempty"`
	Format      string                    `json:"format,omitempty"`
	Measurement *measure.FrameMeasurement `json:"measurement,omitempty"`
}

// rateLimiter tracks message timestamps using a sliding window.
type rateLimiter struct {
	timestamps []time.Time
	mu         sync.Mutex
}

// allow checks if a message is allowed and records the timestamp if so.
func (r *rateLimiter) allow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-RateLimitWindow)

	// Prune old timestamps
	valid := r.timestamps[:0]
	for _, t := range r.timestamps {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	r.timestamps = valid

	if len(r.timestamps) >= RateLimitMessages {
		return false
	}

	r.timestamps = append(r.timestamps, now)
	return true
}

// Server handles HTTP and WebSocket connections.
type Server struct {
	engine    *session.Engine
	inference Inference
	cfg       *config.Config

	mu         sync.RWMutex
	conns      map[*websocket.Conn]struct{}
	rateLimits map[*websocket.Conn]*rateLimiter

	latest *syncx.RWGuard[session.Snapshot]
}

// New creates a new server.
func New(engine *session.Engine, inference Inference, cfg *config.Config) *Server {
	s := &Server{
		engine:     engine,
		inference:  inference,
		cfg:        cfg,
		conns:      make(map[*websocket.Conn]struct{}),
		rateLimits: make(map[*websocket.Conn]*rateLimiter),
		latest:     syncx.NewGuard(session.Snapshot{}),
	}

	go s.broadcastSnapshots()

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// WebSocket endpoint
	mux.HandleFunc("/ws", s.handleWebSocket)

	// REST API
	mux.HandleFunc("POST /api/reference", s.handleSetReference)
	mux.HandleFunc("DELETE /api/reference", s.handleClearReference)
	mux.HandleFunc("GET /api/status", s.handleStatus)

	// Apply middleware: trace -> CORS
	return s.corsMiddleware(trace.Middleware(mux))
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.allowOrigin(r.Header.Get("Origin")))
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) allowOrigin(origin string) string {
	for _, allowed := range s.cfg.AllowedOrigins {
		if allowed == "*" {
			return "*"
		}
		if allowed == origin {
			return origin
		}
	}
	return ""
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.cfg.AllowedOrigins,
	})
	if err != nil {
		trace.Logger(r.Context()).Error("websocket accept error", "error", err)
		return
	}
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "") }()

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.rateLimits[conn] = &rateLimiter{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		delete(s.rateLimits, conn)
		s.mu.Unlock()
	}()

	// Get trace context from HTTP upgrade request
	baseCtx := r.Context()
	log := trace.Logger(baseCtx)
	log.Info("websocket connected", "remote", r.RemoteAddr)

	for {
		var msg json.RawMessage
		if err := wsjson.Read(baseCtx, conn, &msg); err != nil {
			log.Debug("websocket read error", "error", err)
			return
		}

		// Check rate limit
		s.mu.RLock()
		rl := s.rateLimits[conn]
		s.mu.RUnlock()

		if !rl.allow() {
			log.Warn("rate limit exceeded", "remote", r.RemoteAddr)
			_ = wsjson.Write(baseCtx, conn, ErrorMessage{
				Type:    "error",
				Message: "rate limit exceeded",
			})
			continue
		}

		var base Message
		if err := json.Unmarshal(msg, &base); err != nil {
			continue
		}

		// Carry the client's trace when it sends one.
		ctx := baseCtx
		if tc, ok := trace.ExtractFromJSON(msg); ok {
			ctx = trace.WithContext(ctx, tc)
		}

		switch base.Type {
		case "frame":
			var frame FrameMessage
			if err := json.Unmarshal(msg, &frame); err != nil {
				continue
			}
			s.handleFrame(ctx, conn, frame)
		case "measurement":
			var mm MeasurementMessage
			if err := json.Unmarshal(msg, &mm); err != nil || mm.Measurement == nil {
				continue
			}
			s.engine.Tick(mm.Measurement)
		}
	}
}

// handleFrame runs inference on a raw frame and ticks the engine. The
// resulting snapshot reaches the client through the broadcast loop.
func (s *Server) handleFrame(ctx context.Context, conn *websocket.Conn, frame FrameMessage) {
	ctx, span := trace.StartSpan(ctx, "handle_frame")
	defer func() {
		span.End()
		trace.Logger(ctx).Debug("frame handled", "span", span)
	}()

	m, err := s.inference.ExtractMeasurement(ctx, frame.ImageData, frame.Format, frame.FrontCamera)
	if err != nil {
		span.SetAttr("error", err.Error())
		trace.Logger(ctx).Error("frame inference failed", "error", err)
		_ = wsjson.Write(ctx, conn, ErrorMessage{Type: "error", Message: "frame analysis failed"})
		return
	}
	s.engine.Tick(m)
}

// broadcastSnapshots fans the engine's snapshot stream out to every
// connection and keeps the latest one for the status endpoint.
func (s *Server) broadcastSnapshots() {
	snapshots, cancel := s.engine.Subscribe()
	defer cancel()

	for snap := range snapshots {
		s.latest.Set(snap)
		msg := SnapshotMessage{Type: "snapshot", Snapshot: snap}

		s.mu.RLock()
		for conn := range s.conns {
			go func(c *websocket.Conn) {
				_ = wsjson.Write(context.Background(), c, msg)
			}(conn)
		}
		s.mu.RUnlock()
	}
}

func (s *Server) handleSetReference(w http.ResponseWriter, r *http.Request) {
	log := trace.Logger(r.Context())

	var req referenceRequest
	body := http.MaxBytesReader(w, r.Body, MaxReferenceBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	m := req.Measurement
	if m == nil {
		if len(req.ImageData) == 0 {
			http.Error(w, "image_data or measurement required", http.StatusBadRequest)
			return
		}
		var err error
		m, err = s.inference.AnalyzeReference(r.Context(), req.ImageData, req.Format)
		if err != nil {
			log.Error("reference analysis failed", "error", err)
			http.Error(w, "reference analysis failed", http.StatusBadGateway)
			return
		}
	}

	if !m.HasSubject(s.cfg.VisibilityThreshold) {
		http.Error(w, "no subject detected in reference", http.StatusUnprocessableEntity)
		return
	}

	var img image.Image
	if len(req.ImageData) > 0 {
		if decoded, _, err := image.Decode(bytes.NewReader(req.ImageData)); err == nil {
			img = decoded
		}
	}

	ref := s.engine.SetReference(m, img)
	json.NewEncoder(w).Encode(map[string]any{
		"id":     ref.ID,
		"set_at": ref.SetAt,
	})
}

func (s *Server) handleClearReference(w http.ResponseWriter, r *http.Request) {
	had := s.engine.ClearReference()
	json.NewEncoder(w).Encode(map[string]any{"cleared": had})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	latest := s.latest.Get()
	json.NewEncoder(w).Encode(map[string]any{
		"state":             s.engine.State(),
		"score":             latest.Score,
		"is_perfect":        latest.IsPerfect,
		"inference_healthy": s.inference.Healthy(r.Context()),
	})
}
