package measure

// CameraAngle is the classified vertical camera position.
type CameraAngle int

const (
	AngleUnknown CameraAngle = iota
	AngleVeryLow
	AngleLow
	AngleEyeLevel
	AngleHigh
	AngleVeryHigh
	AngleDutch
)

var cameraAngleNames = map[CameraAngle]string{
	AngleUnknown:  "unknown",
	AngleVeryLow:  "very_low",
	AngleLow:      "low",
	AngleEyeLevel: "eye_level",
	AngleHigh:     "high",
	AngleVeryHigh: "very_high",
	AngleDutch:    "dutch",
}

func (a CameraAngle) String() string { return enumName(cameraAngleNames, a) }

// ParseCameraAngle maps the inference service's string tag to the enum.
func ParseCameraAngle(s string) CameraAngle { return parseEnum(cameraAngleNames, s, AngleUnknown) }

// CompositionType classifies where the subject sits on the composition grid.
type CompositionType int

const (
	CompositionUnknown CompositionType = iota
	CompositionCenter
	CompositionThirdsLeft
	CompositionThirdsRight
	CompositionThirdsTop
	CompositionThirdsBottom
	CompositionGoldenLeft
	CompositionGoldenRight
	CompositionCustom
)

var compositionNames = map[CompositionType]string{
	CompositionUnknown:      "unknown",
	CompositionCenter:       "center",
	CompositionThirdsLeft:   "thirds_left",
	CompositionThirdsRight:  "thirds_right",
	CompositionThirdsTop:    "thirds_top",
	CompositionThirdsBottom: "thirds_bottom",
	CompositionGoldenLeft:   "golden_left",
	CompositionGoldenRight:  "golden_right",
	CompositionCustom:       "custom",
}

func (c CompositionType) String() string { return enumName(compositionNames, c) }

// ParseComposition maps the classifier tag to the enum.
func ParseComposition(s string) CompositionType {
	return parseEnum(compositionNames, s, CompositionUnknown)
}

// GazeDirection is the 8-way gaze classification plus center.
type GazeDirection int

const (
	GazeUnknown GazeDirection = iota
	GazeCenter
	GazeLeft
	GazeRight
	GazeUp
	GazeDown
	GazeUpLeft
	GazeUpRight
	GazeDownLeft
	GazeDownRight
)

var gazeNames = map[GazeDirection]string{
	GazeUnknown:   "unknown",
	GazeCenter:    "center",
	GazeLeft:      "left",
	GazeRight:     "right",
	GazeUp:        "up",
	GazeDown:      "down",
	GazeUpLeft:    "up_left",
	GazeUpRight:   "up_right",
	GazeDownLeft:  "down_left",
	GazeDownRight: "down_right",
}

func (g GazeDirection) String() string { return enumName(gazeNames, g) }

// ParseGaze maps the classifier tag to the enum.
func ParseGaze(s string) GazeDirection { return parseEnum(gazeNames, s, GazeUnknown) }

// Horizontal reports whether the gaze points left or right of the frame.
func (g GazeDirection) Horizontal() (left bool, ok bool) {
	switch g {
	case GazeLeft, GazeUpLeft, GazeDownLeft:
		return true, true
	case GazeRight, GazeUpRight, GazeDownRight:
		return false, true
	default:
		return false, false
	}
}

// AspectRatio is the capture aspect ratio category.
type AspectRatio int

const (
	AspectUnknown AspectRatio = iota
	Aspect4x3
	Aspect1x1
	Aspect16x9
)

var aspectNames = map[AspectRatio]string{
	AspectUnknown: "unknown",
	Aspect4x3:     "4:3",
	Aspect1x1:     "1:1",
	Aspect16x9:    "16:9",
}

func (a AspectRatio) String() string { return enumName(aspectNames, a) }

// ParseAspectRatio maps the capture layer's tag to the enum.
func ParseAspectRatio(s string) AspectRatio { return parseEnum(aspectNames, s, AspectUnknown) }

// Orientation is the device capture orientation.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// ParseOrientation maps the capture layer's tag to the enum.
func ParseOrientation(s string) Orientation {
	if s == "landscape" {
		return Landscape
	}
	return Portrait
}

func enumName[K comparable](names map[K]string, k K) string {
	if n, ok := names[k]; ok {
		return n
	}
	return "unknown"
}

func parseEnum[K comparable](names map[K]string, s string, def K) K {
	for k, n := range names {
		if n == s {
			return k
		}
	}
	return def
}
