// Package grpcclient provides a client for the Python vision inference gRPC server
package grpcclient

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	apperrors "github.com/tryangle-app/tryangle/backend/guidance/internal/errors"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/measure"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/resilience"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/trace"
	pb "github.com/tryangle-app/tryangle/backend/guidance/pkg/pb"
)

// Client wraps the vision inference service with retry and circuit breaking.
// The frame path uses a tight retry budget; reference analysis is off the hot
// path and can afford the default one.
type Client struct {
	conn    *grpc.ClientConn
	Vision  pb.VisionServiceClient
	breaker *resilience.Breaker

	frameRetry resilience.RetryConfig
	refRetry   resilience.RetryConfig
}

// New creates a new inference client
func New(addr string) (*Client, error) {
	conn, err := grpc.Dial(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:    DefaultKeepaliveTime,
			Timeout: DefaultKeepaliveTimeout,
		}),
		grpc.WithUnaryInterceptor(trace.UnaryClientInterceptor()),
	)
	if err != nil {
		return nil, err
	}

	return &Client{
		conn:       conn,
		Vision:     pb.NewVisionServiceClient(conn),
		breaker:    resilience.New(resilience.FastConfig()),
		frameRetry: resilience.FrameRetryConfig(),
		refRetry:   resilience.DefaultRetryConfig(),
	}, nil
}

// Close closes the gRPC connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// ExtractMeasurement analyzes one live camera frame.
func (c *Client) ExtractMeasurement(ctx context.Context, image []byte, format string, frontCamera bool) (*measure.FrameMeasurement, error) {
	req := &pb.FrameRequest{
		ImageData:   image,
		Format:      format,
		TimestampNs: time.Now().UnixNano(),
		FrontCamera: frontCamera,
	}

	resp, err := c.call(ctx, c.frameRetry, func() (*pb.MeasurementResponse, error) {
		return c.Vision.ExtractMeasurement(ctx, req)
	})
	if err != nil {
		return nil, apperrors.FromGRPCError(err)
	}
	return fromProto(resp), nil
}

// AnalyzeReference analyzes an uploaded reference photo.
func (c *Client) AnalyzeReference(ctx context.Context, image []byte, format string) (*measure.FrameMeasurement, error) {
	ctx, cancel := context.WithTimeout(ctx, ReferenceTimeout)
	defer cancel()

	req := &pb.ReferenceRequest{ImageData: image, Format: format}
	resp, err := c.call(ctx, c.refRetry, func() (*pb.MeasurementResponse, error) {
		return c.Vision.AnalyzeReference(ctx, req)
	})
	if err != nil {
		return nil, apperrors.FromGRPCError(err)
	}
	return fromProto(resp), nil
}

// Healthy reports whether the inference service and its models are ready.
func (c *Client) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, HealthCheckTimeout)
	defer cancel()

	resp, err := c.Vision.HealthCheck(ctx, &pb.HealthRequest{})
	if err != nil {
		return false
	}
	return resp.Healthy
}

// call runs fn behind the breaker with the given retry budget.
func (c *Client) call(ctx context.Context, retry resilience.RetryConfig, fn func() (*pb.MeasurementResponse, error)) (*pb.MeasurementResponse, error) {
	var resp *pb.MeasurementResponse
	err := resilience.Retry(ctx, retry, func() error {
		r, err := resilience.ExecuteWithResult(c.breaker, fn)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	if resp.Error != nil {
		// Partial failure: some sub-model failed but the rest of the
		// measurement is usable.
		slog.Warn("inference sub-model failed",
			"code", resp.Error.Code.String(), "message", resp.Error.Message)
	}
	return resp, nil
}

// fromProto converts the wire measurement into the engine's types. Unknown
// categorical tags degrade to the unknown enum value rather than erroring.
func fromProto(r *pb.MeasurementResponse) *measure.FrameMeasurement {
	m := &measure.FrameMeasurement{
		TiltAngle:   float64(r.TiltAngle),
		CameraAngle: measure.ParseCameraAngle(r.CameraAngle),
		Composition: measure.ParseComposition(r.Composition),
		Aspect:      measure.ParseAspectRatio(r.AspectRatio),
		Orientation: measure.ParseOrientation(r.Orientation),
	}

	if len(r.Keypoints) > 0 {
		m.Keypoints = make([]measure.Keypoint, len(r.Keypoints))
		for i, kp := range r.Keypoints {
			m.Keypoints[i] = measure.Keypoint{
				X:          float64(kp.X),
				Y:          float64(kp.Y),
				Confidence: float64(kp.Confidence),
			}
		}
	}

	if r.Face != nil {
		m.Face = &measure.Face{
			Rect: measure.Rect{
				X: float64(r.Face.X),
				Y: float64(r.Face.Y),
				W: float64(r.Face.W),
				H: float64(r.Face.H),
			},
			Yaw:   toFloat64(r.Face.Yaw),
			Pitch: toFloat64(r.Face.Pitch),
			Roll:  toFloat64(r.Face.Roll),
		}
	}

	if r.Gaze != nil {
		m.Gaze = &measure.Gaze{
			Direction:  measure.ParseGaze(r.Gaze.Direction),
			Confidence: float64(r.Gaze.Confidence),
		}
	}

	if r.Depth != nil {
		m.Depth = &measure.Depth{
			Meters:     float64(r.Depth.Meters),
			Method:     r.Depth.Method,
			Confidence: float64(r.Depth.Confidence),
		}
	}

	return m
}

func toFloat64(p *float32) *float64 {
	if p == nil {
		return nil
	}
	v := float64(*p)
	return &v
}
