package grpcclient

import (
	"math"
	"testing"

	"github.com/tryangle-app/tryangle/backend/guidance/internal/measure"
	pb "github.com/tryangle-app/tryangle/backend/guidance/pkg/pb"
)

func TestFromProtoFullMeasurement(t *testing.T) {
	yaw := float32(0.26)
	resp := &pb.MeasurementResponse{
		Keypoints: []*pb.Keypoint{
			{X: 0.5, Y: 0.1, Confidence: 0.95},
			{X: 0.48, Y: 0.09, Confidence: 0.2},
		},
		Face:        &pb.FaceDetection{X: 0.4, Y: 0.05, W: 0.2, H: 0.25, Yaw: &yaw},
		Gaze:        &pb.GazeEstimate{Direction: "up_left", Confidence: 0.8},
		Depth:       &pb.DepthEstimate{Meters: 2.1, Method: "model", Confidence: 0.7},
		TiltAngle:   1.5,
		CameraAngle: "low",
		Composition: "thirds_left",
		AspectRatio: "16:9",
		Orientation: "landscape",
	}

	m := fromProto(resp)

	if len(m.Keypoints) != 2 {
		t.Fatalf("keypoints = %d, want 2", len(m.Keypoints))
	}
	if m.Keypoints[0].X != 0.5 || !m.Keypoints[0].Visible(0.5) {
		t.Errorf("keypoint 0 = %+v", m.Keypoints[0])
	}
	if m.Keypoints[1].Visible(0.5) {
		t.Error("low confidence keypoint should not be visible")
	}
	if m.Face == nil || m.Face.Rect.W != 0.2 {
		t.Fatalf("face = %+v", m.Face)
	}
	if m.Face.Yaw == nil || math.Abs(*m.Face.Yaw-0.26) > 1e-6 {
		t.Errorf("yaw = %v, want 0.26", m.Face.Yaw)
	}
	if m.Face.Pitch != nil {
		t.Error("unset pitch should stay nil")
	}
	if m.Gaze == nil || m.Gaze.Direction != measure.GazeUpLeft {
		t.Errorf("gaze = %+v", m.Gaze)
	}
	if m.Depth == nil || m.Depth.Meters != 2.1 {
		t.Errorf("depth = %+v", m.Depth)
	}
	if m.CameraAngle != measure.AngleLow {
		t.Errorf("camera angle = %v, want low", m.CameraAngle)
	}
	if m.Composition != measure.CompositionThirdsLeft {
		t.Errorf("composition = %v", m.Composition)
	}
	if m.Aspect != measure.Aspect16x9 {
		t.Errorf("aspect = %v", m.Aspect)
	}
	if m.Orientation != measure.Landscape {
		t.Errorf("orientation = %v", m.Orientation)
	}
}

func TestFromProtoEmptyResponse(t *testing.T) {
	m := fromProto(&pb.MeasurementResponse{})

	if m.Face != nil || m.Gaze != nil || m.Depth != nil {
		t.Error("absent sub-messages should stay nil")
	}
	if len(m.Keypoints) != 0 {
		t.Error("no keypoints expected")
	}
	if m.HasSubject(0.5) {
		t.Error("empty measurement has no subject")
	}
}

func TestFromProtoUnknownTags(t *testing.T) {
	m := fromProto(&pb.MeasurementResponse{
		CameraAngle: "sideways",
		Composition: "diagonal",
		AspectRatio: "21:9",
	})

	if m.CameraAngle != measure.AngleUnknown {
		t.Errorf("camera angle = %v, want unknown", m.CameraAngle)
	}
	if m.Composition != measure.CompositionUnknown {
		t.Errorf("composition = %v, want unknown", m.Composition)
	}
	if m.Aspect != measure.AspectUnknown {
		t.Errorf("aspect = %v, want unknown", m.Aspect)
	}
}
