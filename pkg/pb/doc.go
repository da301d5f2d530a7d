// Package pb holds the generated protobuf bindings for the vision inference
// service. Regenerate after editing proto/vision.proto.
//
//go:generate protoc --proto_path=../../proto --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative vision.proto
package pb
