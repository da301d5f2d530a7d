package pb

import (
	"testing"
)

func TestKeypoint(t *testing.T) {
	kp := &Keypoint{X: 0.5, Y: 0.3, Confidence: 0.9}

	if kp.X != 0.5 || kp.Y != 0.3 {
		t.Error("keypoint coordinates incorrect")
	}
	if kp.Confidence != 0.9 {
		t.Errorf("Confidence = %f, want %f", kp.Confidence, 0.9)
	}
}

func TestFaceDetection(t *testing.T) {
	yaw := float32(0.26)
	face := &FaceDetection{X: 0.4, Y: 0.2, W: 0.2, H: 0.25, Yaw: &yaw}

	if face.W != 0.2 || face.H != 0.25 {
		t.Error("face rectangle incorrect")
	}
	if face.Yaw == nil || *face.Yaw != 0.26 {
		t.Error("optional yaw should round-trip")
	}
	if face.Pitch != nil {
		t.Error("unset pitch should be nil")
	}
}

func TestFrameRequest(t *testing.T) {
	req := &FrameRequest{
		ImageData:   []byte{0xFF, 0xD8, 0xFF, 0xE0}, // JPEG magic bytes
		Format:      "jpeg",
		TimestampNs: 1234567890,
		FrontCamera: true,
	}

	if len(req.ImageData) != 4 {
		t.Errorf("ImageData length = %d, want 4", len(req.ImageData))
	}
	if req.Format != "jpeg" {
		t.Errorf("Format = %q, want %q", req.Format, "jpeg")
	}
	if req.TimestampNs != 1234567890 {
		t.Errorf("TimestampNs = %d, want %d", req.TimestampNs, 1234567890)
	}
	if !req.FrontCamera {
		t.Error("FrontCamera should be true")
	}
}

func TestMeasurementResponse(t *testing.T) {
	resp := &MeasurementResponse{
		Keypoints: []*Keypoint{
			{X: 0.5, Y: 0.1, Confidence: 0.95},
			{X: 0.48, Y: 0.09, Confidence: 0.91},
		},
		Face:        &FaceDetection{X: 0.4, Y: 0.05, W: 0.2, H: 0.2},
		Gaze:        &GazeEstimate{Direction: "left", Confidence: 0.8},
		Depth:       &DepthEstimate{Meters: 2.1, Method: "model", Confidence: 0.7},
		TiltAngle:   1.5,
		CameraAngle: "eye_level",
		Composition: "thirds_left",
		AspectRatio: "4:3",
		Orientation: "portrait",
	}

	if len(resp.Keypoints) != 2 {
		t.Errorf("Keypoints length = %d, want 2", len(resp.Keypoints))
	}
	if resp.Gaze.Direction != "left" {
		t.Errorf("Gaze.Direction = %q, want %q", resp.Gaze.Direction, "left")
	}
	if resp.Depth.Meters != 2.1 {
		t.Errorf("Depth.Meters = %f, want %f", resp.Depth.Meters, 2.1)
	}
	if resp.CameraAngle != "eye_level" {
		t.Errorf("CameraAngle = %q, want %q", resp.CameraAngle, "eye_level")
	}
	if resp.Error != nil {
		t.Error("Error should be nil on success")
	}
}

func TestPartialFailureCarriesError(t *testing.T) {
	resp := &MeasurementResponse{
		Keypoints: []*Keypoint{{X: 0.5, Y: 0.5, Confidence: 0.9}},
		Error: &ErrorDetail{
			Code:     ErrorCode_VISION_GAZE_FAILED,
			Message:  "gaze model timeout",
			Metadata: map[string]string{"model": "gaze-v2"},
		},
	}

	if resp.Error.Code != ErrorCode_VISION_GAZE_FAILED {
		t.Errorf("Code = %v, want VISION_GAZE_FAILED", resp.Error.Code)
	}
	if resp.Error.Metadata["model"] != "gaze-v2" {
		t.Errorf("Metadata[model] = %q", resp.Error.Metadata["model"])
	}
	if len(resp.Keypoints) != 1 {
		t.Error("partial results should survive a sub-model failure")
	}
}

func TestHealthResponse(t *testing.T) {
	resp := &HealthResponse{
		Healthy: true,
		Models:  map[string]string{"pose": "ready", "gaze": "loading"},
	}

	if !resp.Healthy {
		t.Error("Healthy should be true")
	}
	if resp.Models["pose"] != "ready" {
		t.Errorf("Models[pose] = %q, want %q", resp.Models["pose"], "ready")
	}
}

func TestReferenceRequest(t *testing.T) {
	req := &ReferenceRequest{ImageData: []byte{0x89, 0x50}, Format: "png"}

	if len(req.ImageData) != 2 {
		t.Errorf("ImageData length = %d, want 2", len(req.ImageData))
	}
	if req.Format != "png" {
		t.Errorf("Format = %q, want %q", req.Format, "png")
	}
}
