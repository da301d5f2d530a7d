// Package measure defines the structured frame measurements the guidance
// engine consumes: keypoints, face geometry, and the categorical classifier
// outputs produced by the external vision inference service.
package measure

import "github.com/go-gl/mathgl/mgl64"

// Point is a normalized image coordinate (0..1 relative to frame size).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec2 converts the point for vector math.
func (p Point) Vec2() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(o Point) float64 {
	return p.Vec2().Sub(o.Vec2()).Len()
}

// Rect is a normalized rectangle.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Area returns the normalized area.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Keypoint is one detected landmark with its confidence in [0,1].
type Keypoint struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Confidence float64 `json:"confidence"`
}

// Point returns the keypoint position.
func (k Keypoint) Point() Point {
	return Point{X: k.X, Y: k.Y}
}

// Visible reports whether the keypoint clears the confidence threshold.
func (k Keypoint) Visible(threshold float64) bool {
	return k.Confidence >= threshold
}

// Face holds the detected face rectangle and optional head pose in radians.
type Face struct {
	Rect  Rect     `json:"rect"`
	Yaw   *float64 `json:"yaw,omitempty"`
	Pitch *float64 `json:"pitch,omitempty"`
	Roll  *float64 `json:"roll,omitempty"`
}

// Gaze is the classified gaze direction with its confidence.
type Gaze struct {
	Direction  GazeDirection `json:"direction"`
	Confidence float64       `json:"confidence"`
}

// Depth is the estimated subject distance in meters.
type Depth struct {
	Meters     float64 `json:"meters"`
	Method     string  `json:"method"`
	Confidence float64 `json:"confidence"`
}

// Padding holds normalized margins around the subject.
type Padding struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// FrameMeasurement is one analyzed frame, reference or live. Every geometric
// field is normalized to [0,1]; angles are degrees unless noted.
type FrameMeasurement struct {
	Face        *Face           `json:"face,omitempty"`
	BodyRect    *Rect           `json:"body_rect,omitempty"`
	Keypoints   []Keypoint      `json:"keypoints"`
	TiltAngle   float64         `json:"tilt_angle"`
	CameraAngle CameraAngle     `json:"camera_angle"`
	Composition CompositionType `json:"composition"`
	Gaze        *Gaze           `json:"gaze,omitempty"`
	Depth       *Depth          `json:"depth,omitempty"`
	Aspect      AspectRatio     `json:"aspect_ratio"`
	Padding     *Padding        `json:"padding,omitempty"`
	Orientation Orientation     `json:"orientation"`
}

// HasSubject reports whether any subject evidence exists: a face detection or
// at least one visible body keypoint.
func (m *FrameMeasurement) HasSubject(threshold float64) bool {
	if m == nil {
		return false
	}
	if m.Face != nil {
		return true
	}
	limit := min(len(m.Keypoints), NumBodyKeypoints)
	for i := 0; i < limit; i++ {
		if m.Keypoints[i].Visible(threshold) {
			return true
		}
	}
	return false
}

// Keypoint returns the keypoint at idx, reporting false when the schema does
// not carry that index. Extended-schema indices beyond the base 17 are always
// optional.
func (m *FrameMeasurement) Keypoint(idx int) (Keypoint, bool) {
	if m == nil || idx < 0 || idx >= len(m.Keypoints) {
		return Keypoint{}, false
	}
	return m.Keypoints[idx], true
}

// SubjectPosition returns the coordinate used for position comparison: the
// face center when a face was detected, the nose keypoint otherwise.
func (m *FrameMeasurement) SubjectPosition(threshold float64) (Point, bool) {
	if m == nil {
		return Point{}, false
	}
	if m.Face != nil {
		return m.Face.Rect.Center(), true
	}
	if nose, ok := m.Keypoint(Nose); ok && nose.Visible(threshold) {
		return nose.Point(), true
	}
	return Point{}, false
}
