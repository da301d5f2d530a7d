// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: vision.proto

package pb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// ErrorCode is shared across Python, Go, and TypeScript.
type ErrorCode int32

const (
	ErrorCode_ERROR_CODE_UNSPECIFIED   ErrorCode = 0
	ErrorCode_UNKNOWN                  ErrorCode = 1
	ErrorCode_INTERNAL                 ErrorCode = 2
	ErrorCode_INVALID_ARGUMENT         ErrorCode = 3
	ErrorCode_NOT_FOUND                ErrorCode = 4
	ErrorCode_UNAVAILABLE              ErrorCode = 5
	ErrorCode_TIMEOUT                  ErrorCode = 6
	ErrorCode_CANCELLED                ErrorCode = 7
	ErrorCode_VISION_INVALID_IMAGE     ErrorCode = 10
	ErrorCode_VISION_EMPTY_INPUT       ErrorCode = 11
	ErrorCode_VISION_POSE_FAILED       ErrorCode = 12
	ErrorCode_VISION_FACE_FAILED       ErrorCode = 13
	ErrorCode_VISION_GAZE_FAILED       ErrorCode = 14
	ErrorCode_VISION_DEPTH_FAILED      ErrorCode = 15
	ErrorCode_VISION_MODEL_LOAD_FAILED ErrorCode = 16
	ErrorCode_REFERENCE_NO_SUBJECT     ErrorCode = 17
	ErrorCode_CONFIG_INVALID           ErrorCode = 20
	ErrorCode_CONFIG_MISSING           ErrorCode = 21
)

// Enum value maps for ErrorCode.
var (
	ErrorCode_name = map[int32]string{
		0:  "ERROR_CODE_UNSPECIFIED",
		1:  "UNKNOWN",
		2:  "INTERNAL",
		3:  "INVALID_ARGUMENT",
		4:  "NOT_FOUND",
		5:  "UNAVAILABLE",
		6:  "TIMEOUT",
		7:  "CANCELLED",
		10: "VISION_INVALID_IMAGE",
		11: "VISION_EMPTY_INPUT",
		12: "VISION_POSE_FAILED",
		13: "VISION_FACE_FAILED",
		14: "VISION_GAZE_FAILED",
		15: "VISION_DEPTH_FAILED",
		16: "VISION_MODEL_LOAD_FAILED",
		17: "REFERENCE_NO_SUBJECT",
		20: "CONFIG_INVALID",
		21: "CONFIG_MISSING",
	}
	ErrorCode_value = map[string]int32{
		"ERROR_CODE_UNSPECIFIED":   0,
		"UNKNOWN":                  1,
		"INTERNAL":                 2,
		"INVALID_ARGUMENT":         3,
		"NOT_FOUND":                4,
		"UNAVAILABLE":              5,
		"TIMEOUT":                  6,
		"CANCELLED":                7,
		"VISION_INVALID_IMAGE":     10,
		"VISION_EMPTY_INPUT":       11,
		"VISION_POSE_FAILED":       12,
		"VISION_FACE_FAILED":       13,
		"VISION_GAZE_FAILED":       14,
		"VISION_DEPTH_FAILED":      15,
		"VISION_MODEL_LOAD_FAILED": 16,
		"REFERENCE_NO_SUBJECT":     17,
		"CONFIG_INVALID":           20,
		"CONFIG_MISSING":           21,
	}
)

func (x ErrorCode) Enum() *ErrorCode {
	p := new(ErrorCode)
	*p = x
	return p
}

func (x ErrorCode) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ErrorCode) Descriptor() protoreflect.EnumDescriptor {
	return file_vision_proto_enumTypes[0].Descriptor()
}

func (ErrorCode) Type() protoreflect.EnumType {
	return &file_vision_proto_enumTypes[0]
}

func (x ErrorCode) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ErrorCode.Descriptor instead.
func (ErrorCode) EnumDescriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{0}
}

type FrameRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ImageData     []byte                 `protobuf:"bytes,1,opt,name=image_data,json=imageData,proto3" json:"image_data,omitempty"`
	Format        string                 `protobuf:"bytes,2,opt,name=format,proto3" json:"format,omitempty"` // "jpeg" | "png"
	TimestampNs   int64                  `protobuf:"varint,3,opt,name=timestamp_ns,json=timestampNs,proto3" json:"timestamp_ns,omitempty"`
	FrontCamera   bool                   `protobuf:"varint,4,opt,name=front_camera,json=frontCamera,proto3" json:"front_camera,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FrameRequest) Reset() {
	*x = FrameRequest{}
	mi := &file_vision_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FrameRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FrameRequest) ProtoMessage() {}

func (x *FrameRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vision_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FrameRequest.ProtoReflect.Descriptor instead.
func (*FrameRequest) Descriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{0}
}

func (x *FrameRequest) GetImageData() []byte {
	if x != nil {
		return x.ImageData
	}
	return nil
}

func (x *FrameRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *FrameRequest) GetTimestampNs() int64 {
	if x != nil {
		return x.TimestampNs
	}
	return 0
}

func (x *FrameRequest) GetFrontCamera() bool {
	if x != nil {
		return x.FrontCamera
	}
	return false
}

type ReferenceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ImageData     []byte                 `protobuf:"bytes,1,opt,name=image_data,json=imageData,proto3" json:"image_data,omitempty"`
	Format        string                 `protobuf:"bytes,2,opt,name=format,proto3" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReferenceRequest) Reset() {
	*x = ReferenceRequest{}
	mi := &file_vision_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReferenceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReferenceRequest) ProtoMessage() {}

func (x *ReferenceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vision_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReferenceRequest.ProtoReflect.Descriptor instead.
func (*ReferenceRequest) Descriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{1}
}

func (x *ReferenceRequest) GetImageData() []byte {
	if x != nil {
		return x.ImageData
	}
	return nil
}

func (x *ReferenceRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

// Keypoint coordinates are normalized to [0,1] of the frame.
type Keypoint struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	X             float32                `protobuf:"fixed32,1,opt,name=x,proto3" json:"x,omitempty"`
	Y             float32                `protobuf:"fixed32,2,opt,name=y,proto3" json:"y,omitempty"`
	Confidence    float32                `protobuf:"fixed32,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Keypoint) Reset() {
	*x = Keypoint{}
	mi := &file_vision_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Keypoint) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Keypoint) ProtoMessage() {}

func (x *Keypoint) ProtoReflect() protoreflect.Message {
	mi := &file_vision_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Keypoint.ProtoReflect.Descriptor instead.
func (*Keypoint) Descriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{2}
}

func (x *Keypoint) GetX() float32 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *Keypoint) GetY() float32 {
	if x != nil {
		return x.Y
	}
	return 0
}

func (x *Keypoint) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type FaceDetection struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	X     float32                `protobuf:"fixed32,1,opt,name=x,proto3" json:"x,omitempty"`
	Y     float32                `protobuf:"fixed32,2,opt,name=y,proto3" json:"y,omitempty"`
	W     float32                `protobuf:"fixed32,3,opt,name=w,proto3" json:"w,omitempty"`
	H     float32                `protobuf:"fixed32,4,opt,name=h,proto3" json:"h,omitempty"`
	// Head pose in radians, absent when the pose model did not run.
	Yaw           *float32 `protobuf:"fixed32,5,opt,name=yaw,proto3,oneof" json:"yaw,omitempty"`
	Pitch         *float32 `protobuf:"fixed32,6,opt,name=pitch,proto3,oneof" json:"pitch,omitempty"`
	Roll          *float32 `protobuf:"fixed32,7,opt,name=roll,proto3,oneof" json:"roll,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FaceDetection) Reset() {
	*x = FaceDetection{}
	mi := &file_vision_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FaceDetection) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FaceDetection) ProtoMessage() {}

func (x *FaceDetection) ProtoReflect() protoreflect.Message {
	mi := &file_vision_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FaceDetection.ProtoReflect.Descriptor instead.
func (*FaceDetection) Descriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{3}
}

func (x *FaceDetection) GetX() float32 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *FaceDetection) GetY() float32 {
	if x != nil {
		return x.Y
	}
	return 0
}

func (x *FaceDetection) GetW() float32 {
	if x != nil {
		return x.W
	}
	return 0
}

func (x *FaceDetection) GetH() float32 {
	if x != nil {
		return x.H
	}
	return 0
}

func (x *FaceDetection) GetYaw() float32 {
	if x != nil && x.Yaw != nil {
		return *x.Yaw
	}
	return 0
}

func (x *FaceDetection) GetPitch() float32 {
	if x != nil && x.Pitch != nil {
		return *x.Pitch
	}
	return 0
}

func (x *FaceDetection) GetRoll() float32 {
	if x != nil && x.Roll != nil {
		return *x.Roll
	}
	return 0
}

type GazeEstimate struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Direction     string                 `protobuf:"bytes,1,opt,name=direction,proto3" json:"direction,omitempty"` // "center", "left", "up_right", ...
	Confidence    float32                `protobuf:"fixed32,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GazeEstimate) Reset() {
	*x = GazeEstimate{}
	mi := &file_vision_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GazeEstimate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GazeEstimate) ProtoMessage() {}

func (x *GazeEstimate) ProtoReflect() protoreflect.Message {
	mi := &file_vision_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GazeEstimate.ProtoReflect.Descriptor instead.
func (*GazeEstimate) Descriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{4}
}

func (x *GazeEstimate) GetDirection() string {
	if x != nil {
		return x.Direction
	}
	return ""
}

func (x *GazeEstimate) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type DepthEstimate struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Meters        float32                `protobuf:"fixed32,1,opt,name=meters,proto3" json:"meters,omitempty"`
	Method        string                 `protobuf:"bytes,2,opt,name=method,proto3" json:"method,omitempty"` // "lidar" | "model" | "face_width"
	Confidence    float32                `protobuf:"fixed32,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DepthEstimate) Reset() {
	*x = DepthEstimate{}
	mi := &file_vision_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DepthEstimate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DepthEstimate) ProtoMessage() {}

func (x *DepthEstimate) ProtoReflect() protoreflect.Message {
	mi := &file_vision_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DepthEstimate.ProtoReflect.Descriptor instead.
func (*DepthEstimate) Descriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{5}
}

func (x *DepthEstimate) GetMeters() float32 {
	if x != nil {
		return x.Meters
	}
	return 0
}

func (x *DepthEstimate) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *DepthEstimate) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type MeasurementResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Keypoints     []*Keypoint            `protobuf:"bytes,1,rep,name=keypoints,proto3" json:"keypoints,omitempty"`
	Face          *FaceDetection         `protobuf:"bytes,2,opt,name=face,proto3" json:"face,omitempty"`
	Gaze          *GazeEstimate          `protobuf:"bytes,3,opt,name=gaze,proto3" json:"gaze,omitempty"`
	Depth         *DepthEstimate         `protobuf:"bytes,4,opt,name=depth,proto3" json:"depth,omitempty"`
	TiltAngle     float32                `protobuf:"fixed32,5,opt,name=tilt_angle,json=tiltAngle,proto3" json:"tilt_angle,omitempty"`     // device roll in degrees
	CameraAngle   string                 `protobuf:"bytes,6,opt,name=camera_angle,json=cameraAngle,proto3" json:"camera_angle,omitempty"` // "eye_level", "low", "dutch", ...
	Composition   string                 `protobuf:"bytes,7,opt,name=composition,proto3" json:"composition,omitempty"`                    // "center", "thirds_left", ...
	AspectRatio   string                 `protobuf:"bytes,8,opt,name=aspect_ratio,json=aspectRatio,proto3" json:"aspect_ratio,omitempty"` // "4:3", "1:1", "16:9"
	Orientation   string                 `protobuf:"bytes,9,opt,name=orientation,proto3" json:"orientation,omitempty"`                    // "portrait" | "landscape"
	Error         *ErrorDetail           `protobuf:"bytes,10,opt,name=error,proto3" json:"error,omitempty"`                               // set when a sub-model failed but others ran
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MeasurementResponse) Reset() {
	*x = MeasurementResponse{}
	mi := &file_vision_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MeasurementResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MeasurementResponse) ProtoMessage() {}

func (x *MeasurementResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vision_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MeasurementResponse.ProtoReflect.Descriptor instead.
func (*MeasurementResponse) Descriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{6}
}

func (x *MeasurementResponse) GetKeypoints() []*Keypoint {
	if x != nil {
		return x.Keypoints
	}
	return nil
}

func (x *MeasurementResponse) GetFace() *FaceDetection {
	if x != nil {
		return x.Face
	}
	return nil
}

func (x *MeasurementResponse) GetGaze() *GazeEstimate {
	if x != nil {
		return x.Gaze
	}
	return nil
}

func (x *MeasurementResponse) GetDepth() *DepthEstimate {
	if x != nil {
		return x.Depth
	}
	return nil
}

func (x *MeasurementResponse) GetTiltAngle() float32 {
	if x != nil {
		return x.TiltAngle
	}
	return 0
}

func (x *MeasurementResponse) GetCameraAngle() string {
	if x != nil {
		return x.CameraAngle
	}
	return ""
}

func (x *MeasurementResponse) GetComposition() string {
	if x != nil {
		return x.Composition
	}
	return ""
}

func (x *MeasurementResponse) GetAspectRatio() string {
	if x != nil {
		return x.AspectRatio
	}
	return ""
}

func (x *MeasurementResponse) GetOrientation() string {
	if x != nil {
		return x.Orientation
	}
	return ""
}

func (x *MeasurementResponse) GetError() *ErrorDetail {
	if x != nil {
		return x.Error
	}
	return nil
}

type HealthRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealthRequest) Reset() {
	*x = HealthRequest{}
	mi := &file_vision_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthRequest) ProtoMessage() {}

func (x *HealthRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vision_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HealthRequest.ProtoReflect.Descriptor instead.
func (*HealthRequest) Descriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{7}
}

type HealthResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Healthy       bool                   `protobuf:"varint,1,opt,name=healthy,proto3" json:"healthy,omitempty"`
	Models        map[string]string      `protobuf:"bytes,2,rep,name=models,proto3" json:"models,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"` // model name -> status
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealthResponse) Reset() {
	*x = HealthResponse{}
	mi := &file_vision_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthResponse) ProtoMessage() {}

func (x *HealthResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vision_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HealthResponse.ProtoReflect.Descriptor instead.
func (*HealthResponse) Descriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{8}
}

func (x *HealthResponse) GetHealthy() bool {
	if x != nil {
		return x.Healthy
	}
	return false
}

func (x *HealthResponse) GetModels() map[string]string {
	if x != nil {
		return x.Models
	}
	return nil
}

type ErrorDetail struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          ErrorCode              `protobuf:"varint,1,opt,name=code,proto3,enum=vision.ErrorCode" json:"code,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Metadata      map[string]string      `protobuf:"bytes,3,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ErrorDetail) Reset() {
	*x = ErrorDetail{}
	mi := &file_vision_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ErrorDetail) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ErrorDetail) ProtoMessage() {}

func (x *ErrorDetail) ProtoReflect() protoreflect.Message {
	mi := &file_vision_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ErrorDetail.ProtoReflect.Descriptor instead.
func (*ErrorDetail) Descriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{9}
}

func (x *ErrorDetail) GetCode() ErrorCode {
	if x != nil {
		return x.Code
	}
	return ErrorCode_ERROR_CODE_UNSPECIFIED
}

func (x *ErrorDetail) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ErrorDetail) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

var File_vision_proto protoreflect.FileDescriptor

const file_vision_proto_rawDesc = "" +
	"\n" +
	"\fvision.proto\x12\x06vision\"\x8b\x01\n" +
	"\fFrameRequest\x12\x1d\n" +
	"\n" +
	"image_data\x18\x01 \x01(\fR\timageData\x12\x16\n" +
	"\x06format\x18\x02 \x01(\tR\x06format\x12!\n" +
	"\ftimestamp_ns\x18\x03 \x01(\x03R\vtimestampNs\x12!\n" +
	"\ffront_camera\x18\x04 \x01(\bR\vfrontCamera\"I\n" +
	"\x10ReferenceRequest\x12\x1d\n" +
	"\n" +
	"image_data\x18\x01 \x01(\fR\timageData\x12\x16\n" +
	"\x06format\x18\x02 \x01(\tR\x06format\"F\n" +
	"\bKeypoint\x12\f\n" +
	"\x01x\x18\x01 \x01(\x02R\x01x\x12\f\n" +
	"\x01y\x18\x02 \x01(\x02R\x01y\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x02R\n" +
	"confidence\"\xad\x01\n" +
	"\rFaceDetection\x12\f\n" +
	"\x01x\x18\x01 \x01(\x02R\x01x\x12\f\n" +
	"\x01y\x18\x02 \x01(\x02R\x01y\x12\f\n" +
	"\x01w\x18\x03 \x01(\x02R\x01w\x12\f\n" +
	"\x01h\x18\x04 \x01(\x02R\x01h\x12\x15\n" +
	"\x03yaw\x18\x05 \x01(\x02H\x00R\x03yaw\x88\x01\x01\x12\x19\n" +
	"\x05pitch\x18\x06 \x01(\x02H\x01R\x05pitch\x88\x01\x01\x12\x17\n" +
	"\x04roll\x18\a \x01(\x02H\x02R\x04roll\x88\x01\x01B\x06\n" +
	"\x04_yawB\b\n" +
	"\x06_pitchB\a\n" +
	"\x05_roll\"L\n" +
	"\fGazeEstimate\x12\x1c\n" +
	"\tdirection\x18\x01 \x01(\tR\tdirection\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x02R\n" +
	"confidence\"_\n" +
	"\rDepthEstimate\x12\x16\n" +
	"\x06meters\x18\x01 \x01(\x02R\x06meters\x12\x16\n" +
	"\x06method\x18\x02 \x01(\tR\x06method\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x02R\n" +
	"confidence\"\x9b\x03\n" +
	"\x13MeasurementResponse\x12.\n" +
	"\tkeypoints\x18\x01 \x03(\v2\x10.vision.KeypointR\tkeypoints\x12)\n" +
	"\x04face\x18\x02 \x01(\v2\x15.vision.FaceDetectionR\x04face\x12(\n" +
	"\x04gaze\x18\x03 \x01(\v2\x14.vision.GazeEstimateR\x04gaze\x12+\n" +
	"\x05depth\x18\x04 \x01(\v2\x15.vision.DepthEstimateR\x05depth\x12\x1d\n" +
	"\n" +
	"tilt_angle\x18\x05 \x01(\x02R\ttiltAngle\x12!\n" +
	"\fcamera_angle\x18\x06 \x01(\tR\vcameraAngle\x12 \n" +
	"\vcomposition\x18\a \x01(\tR\vcomposition\x12!\n" +
	"\faspect_ratio\x18\b \x01(\tR\vaspectRatio\x12 \n" +
	"\vorientation\x18\t \x01(\tR\vorientation\x12)\n" +
	"\x05error\x18\n" +
	" \x01(\v2\x13.vision.ErrorDetailR\x05error\"\x0f\n" +
	"\rHealthRequest\"\xa1\x01\n" +
	"\x0eHealthResponse\x12\x18\n" +
	"\ahealthy\x18\x01 \x01(\bR\ahealthy\x12:\n" +
	"\x06models\x18\x02 \x03(\v2\".vision.HealthResponse.ModelsEntryR\x06models\x1a9\n" +
	"\vModelsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xca\x01\n" +
	"\vErrorDetail\x12%\n" +
	"\x04code\x18\x01 \x01(\x0e2\x11.vision.ErrorCodeR\x04code\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\x12=\n" +
	"\bmetadata\x18\x03 \x03(\v2!.vision.ErrorDetail.MetadataEntryR\bmetadata\x1a;\n" +
	"\rMetadataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01*\x87\x03\n" +
	"\tErrorCode\x12\x1a\n" +
	"\x16ERROR_CODE_UNSPECIFIED\x10\x00\x12\v\n" +
	"\aUNKNOWN\x10\x01\x12\f\n" +
	"\bINTERNAL\x10\x02\x12\x14\n" +
	"\x10INVALID_ARGUMENT\x10\x03\x12\r\n" +
	"\tNOT_FOUND\x10\x04\x12\x0f\n" +
	"\vUNAVAILABLE\x10\x05\x12\v\n" +
	"\aTIMEOUT\x10\x06\x12\r\n" +
	"\tCANCELLED\x10\a\x12\x18\n" +
	"\x14VISION_INVALID_IMAGE\x10\n" +
	"\x12\x16\n" +
	"\x12VISION_EMPTY_INPUT\x10\v\x12\x16\n" +
	"\x12VISION_POSE_FAILED\x10\f\x12\x16\n" +
	"\x12VISION_FACE_FAILED\x10\r\x12\x16\n" +
	"\x12VISION_GAZE_FAILED\x10\x0e\x12\x17\n" +
	"\x13VISION_DEPTH_FAILED\x10\x0f\x12\x1c\n" +
	"\x18VISION_MODEL_LOAD_FAILED\x10\x10\x12\x18\n" +
	"\x14REFERENCE_NO_SUBJECT\x10\x11\x12\x12\n" +
	"\x0eCONFIG_INVALID\x10\x14\x12\x12\n" +
	"\x0eCONFIG_MISSING\x10\x152\xe1\x01\n" +
	"\rVisionService\x12G\n" +
	"\x12ExtractMeasurement\x12\x14.vision.FrameRequest\x1a\x1b.vision.MeasurementResponse\x12I\n" +
	"\x10AnalyzeReference\x12\x18.vision.ReferenceRequest\x1a\x1b.vision.MeasurementResponse\x12<\n" +
	"\vHealthCheck\x12\x15.vision.HealthRequest\x1a\x16.vision.HealthResponseB:Z8github.com/tryangle-app/tryangle/backend/guidance/pkg/pbb\x06proto3"

var (
	file_vision_proto_rawDescOnce sync.Once
	file_vision_proto_rawDescData []byte
)

func file_vision_proto_rawDescGZIP() []byte {
	file_vision_proto_rawDescOnce.Do(func() {
		file_vision_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_vision_proto_rawDesc), len(file_vision_proto_rawDesc)))
	})
	return file_vision_proto_rawDescData
}

var file_vision_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_vision_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_vision_proto_goTypes = []any{
	(ErrorCode)(0),              // 0: vision.ErrorCode
	(*FrameRequest)(nil),        // 1: vision.FrameRequest
	(*ReferenceRequest)(nil),    // 2: vision.ReferenceRequest
	(*Keypoint)(nil),            // 3: vision.Keypoint
	(*FaceDetection)(nil),       // 4: vision.FaceDetection
	(*GazeEstimate)(nil),        // 5: vision.GazeEstimate
	(*DepthEstimate)(nil),       // 6: vision.DepthEstimate
	(*MeasurementResponse)(nil), // 7: vision.MeasurementResponse
	(*HealthRequest)(nil),       // 8: vision.HealthRequest
	(*HealthResponse)(nil),      // 9: vision.HealthResponse
	(*ErrorDetail)(nil),         // 10: vision.ErrorDetail
	nil,                         // 11: vision.HealthResponse.ModelsEntry
	nil,                         // 12: vision.ErrorDetail.MetadataEntry
}
var file_vision_proto_depIdxs = []int32{
	3,  // 0: vision.MeasurementResponse.keypoints:type_name -> vision.Keypoint
	4,  // 1: vision.MeasurementResponse.face:type_name -> vision.FaceDetection
	5,  // 2: vision.MeasurementResponse.gaze:type_name -> vision.GazeEstimate
	6,  // 3: vision.MeasurementResponse.depth:type_name -> vision.DepthEstimate
	10, // 4: vision.MeasurementResponse.error:type_name -> vision.ErrorDetail
	11, // 5: vision.HealthResponse.models:type_name -> vision.HealthResponse.ModelsEntry
	0,  // 6: vision.ErrorDetail.code:type_name -> vision.ErrorCode
	12, // 7: vision.ErrorDetail.metadata:type_name -> vision.ErrorDetail.MetadataEntry
	1,  // 8: vision.VisionService.ExtractMeasurement:input_type -> vision.FrameRequest
	2,  // 9: vision.VisionService.AnalyzeReference:input_type -> vision.ReferenceRequest
	8,  // 10: vision.VisionService.HealthCheck:input_type -> vision.HealthRequest
	7,  // 11: vision.VisionService.ExtractMeasurement:output_type -> vision.MeasurementResponse
	7,  // 12: vision.VisionService.AnalyzeReference:output_type -> vision.MeasurementResponse
	9,  // 13: vision.VisionService.HealthCheck:output_type -> vision.HealthResponse
	11, // [11:14] is the sub-list for method output_type
	8,  // [8:11] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_vision_proto_init() }
func file_vision_proto_init() {
	if File_vision_proto != nil {
		return
	}
	file_vision_proto_msgTypes[3].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_vision_proto_rawDesc), len(file_vision_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_vision_proto_goTypes,
		DependencyIndexes: file_vision_proto_depIdxs,
		EnumInfos:         file_vision_proto_enumTypes,
		MessageInfos:      file_vision_proto_msgTypes,
	}.Build()
	File_vision_proto = out.File
	file_vision_proto_goTypes = nil
	file_vision_proto_depIdxs = nil
}
