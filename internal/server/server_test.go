package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tryangle-app/tryangle/backend/guidance/internal/config"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/measure"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/session"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/stability"
)

// mockInference for testing.
type mockInference struct {
	measurement *measure.FrameMeasurement
	err         error
	healthy     bool

	referenceCalls int
}

func (m *mockInference) ExtractMeasurement(ctx context.Context, image []byte, format string, frontCamera bool) (*measure.FrameMeasurement, error) {
	return m.measurement, m.err
}

func (m *mockInference) AnalyzeReference(ctx context.Context, image []byte, format string) (*measure.FrameMeasurement, error) {
	m.referenceCalls++
	return m.measurement, m.err
}

func (m *mockInference) Healthy(ctx context.Context) bool { return m.healthy }

func subjectMeasurement() *measure.FrameMeasurement {
	return &measure.FrameMeasurement{
		Face: &measure.Face{
			Rect: measure.Rect{X: 0.4, Y: 0.2, W: 0.2, H: 0.2},
		},
		Keypoints: []measure.Keypoint{
			{X: 0.5, Y: 0.25, Confidence: 0.9},
		},
		Aspect:      measure.Aspect4x3,
		Orientation: measure.Portrait,
	}
}

func newTestServer(t *testing.T, inference Inference) *Server {
	t.Helper()

	cfg := &config.Config{
		AllowedOrigins:      []string{"*"},
		VisibilityThreshold: 0.5,
		Language:            "en",
	}
	engine, err := session.NewEngine(session.Options{
		Visibility: cfg.VisibilityThreshold,
		Language:   cfg.Language,
		Stability:  stability.DefaultConfig(),
	})
	if err != nil {
		t.Fatalf("NewEngine error: %v", err)
	}
	return New(engine, inference, cfg)
}

func TestRateLimiter(t *testing.T) {
	rl := &rateLimiter{}

	for i := 0; i < RateLimitMessages; i++ {
		if !rl.allow() {
			t.Fatalf("message %d blocked before limit", i)
		}
	}
	if rl.allow() {
		t.Error("message above limit should be blocked")
	}
}

func TestCORSMiddleware(t *testing.T) {
	s := newTestServer(t, &mockInference{})
	handler := s.corsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Test OPTIONS request
	req := httptest.NewRequest("OPTIONS", "/test", http.NoBody)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("OPTIONS status = %d, want %d", rec.Code, http.StatusOK)
	}
	if v := rec.Header().Get("Access-Control-Allow-Origin"); v != "*" {
		t.Errorf("CORS origin = %q, want %q", v, "*")
	}

	// Test regular request
	req = httptest.NewRequest("GET", "/test", http.NoBody)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("GET status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestAllowOriginList(t *testing.T) {
	s := newTestServer(t, &mockInference{})
	s.cfg.AllowedOrigins = []string{"https://app.example.com"}

	if got := s.allowOrigin("https://app.example.com"); got != "https://app.example.com" {
		t.Errorf("allowed origin = %q", got)
	}
	if got := s.allowOrigin("https://evil.example.com"); got != "" {
		t.Errorf("disallowed origin = %q, want empty", got)
	}
}

func TestSetReferenceWithMeasurement(t *testing.T) {
	s := newTestServer(t, &mockInference{})
	handler := s.Handler()

	body, _ := json.Marshal(referenceRequest{Measurement: subjectMeasurement()})
	req := httptest.NewRequest("POST", "/api/reference", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID    string    `json:"id"`
		SetAt time.Time `json:"set_at"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json.Unmarshal error: %v", err)
	}
	if resp.ID == "" {
		t.Error("reference id should be set")
	}
	if s.engine.State() != "referenced" {
		t.Errorf("engine state = %q, want referenced", s.engine.State())
	}
}

func TestSetReferenceRunsInference(t *testing.T) {
	mock := &mockInference{measurement: subjectMeasurement()}
	s := newTestServer(t, mock)
	handler := s.Handler()

	body, _ := json.Marshal(referenceRequest{ImageData: []byte("not-a-real-image"), Format: "jpeg"})
	req := httptest.NewRequest("POST", "/api/reference", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if mock.referenceCalls != 1 {
		t.Errorf("AnalyzeReference calls = %d, want 1", mock.referenceCalls)
	}
}

func TestSetReferenceEmptyBody(t *testing.T) {
	s := newTestServer(t, &mockInference{})
	handler := s.Handler()

	req := httptest.NewRequest("POST", "/api/reference", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSetReferenceNoSubject(t *testing.T) {
	s := newTestServer(t, &mockInference{})
	handler := s.Handler()

	body, _ := json.Marshal(referenceRequest{Measurement: &measure.FrameMeasurement{}})
	req := httptest.NewRequest("POST", "/api/reference", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestSetReferenceInferenceFailure(t *testing.T) {
	mock := &mockInference{err: errors.New("inference down")}
	s := newTestServer(t, mock)
	handler := s.Handler()

	body, _ := json.Marshal(referenceRequest{ImageData: []byte("img"), Format: "jpeg"})
	req := httptest.NewRequest("POST", "/api/reference", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
}

func TestClearReference(t *testing.T) {
	s := newTestServer(t, &mockInference{})
	handler := s.Handler()

	// Nothing to clear yet.
	req := httptest.NewRequest("DELETE", "/api/reference", http.NoBody)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp struct {
		Cleared bool `json:"cleared"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json.Unmarshal error: %v", err)
	}
	if resp.Cleared {
		t.Error("cleared should be false without a reference")
	}

	s.engine.SetReference(subjectMeasurement(), nil)

	req = httptest.NewRequest("DELETE", "/api/reference", http.NoBody)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json.Unmarshal error: %v", err)
	}
	if !resp.Cleared {
		t.Error("cleared should be true with a reference set")
	}
	if s.engine.State() != "idle" {
		t.Errorf("engine state = %q, want idle", s.engine.State())
	}
}

func TestStatus(t *testing.T) {
	s := newTestServer(t, &mockInference{healthy: true})
	handler := s.Handler()

	req := httptest.NewRequest("GET", "/api/status", http.NoBody)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		State            string `json:"state"`
		InferenceHealthy bool   `json:"inference_healthy"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json.Unmarshal error: %v", err)
	}
	if resp.State != "idle" {
		t.Errorf("state = %q, want idle", resp.State)
	}
	if !resp.InferenceHealthy {
		t.Error("inference_healthy should be true")
	}
}

func TestMessageTypeParsing(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		typeVal string
	}{
		{"frame", `{"type": "frame", "image_data": "aGVsbG8=", "format": "jpeg", "front_camera": true}`, "frame"},
		{"measurement", `{"type": "measurement", "measurement": {"keypoints": []}}`, "measurement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var base Message
			if err := json.Unmarshal([]byte(tt.input), &base); err != nil {
				t.Fatalf("json.Unmarshal error: %v", err)
			}
			if base.Type != tt.typeVal {
				t.Errorf("type = %q, want %q", base.Type, tt.typeVal)
			}
		})
	}
}

func TestFrameMessageParsing(t *testing.T) {
	input := `{"type": "frame", "image_data": "aGVsbG8=", "format": "jpeg", "front_camera": true}`

	var frame FrameMessage
	if err := json.Unmarshal([]byte(input), &frame); err != nil {
		t.Fatalf("json.Unmarshal error: %v", err)
	}

	if string(frame.ImageData) != "hello" {
		t.Errorf("image_data = %q, want %q", frame.ImageData, "hello")
	}
	if frame.Format != "jpeg" {
		t.Errorf("format = %q, want %q", frame.Format, "jpeg")
	}
	if !frame.FrontCamera {
		t.Error("front_camera should be true")
	}
}
