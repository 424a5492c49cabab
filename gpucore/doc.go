// Package gpucore provides the device abstraction textures are built on.
//
// This package defines the [Device] interface, an ID-based view of a graphics
// device that covers exactly what 2D textures need: allocation, upload,
// sampler creation, binding to a texture unit and release. Backends translate
// these calls to a concrete API:
//
//	               +-----------------+
//	               |     texture     |
//	               | (Create / Load) |
//	               +--------+--------+
//	                        |
//	               +--------v--------+
//	               | gpucore.Device  |
//	               +--------+--------+
//	                        |
//	               +--------v--------+
//	               | native adapter  |
//	               |  (hal.Device)   |
//	               +--------+--------+
//	                        |
//	               +--------v--------+
//	               |   gogpu/wgpu    |
//	               +-----------------+
//
// # Sampling
//
// [FilterMode] and [WrapMode] are the sampling knobs. Both implement
// encoding.TextMarshaler and encoding.TextUnmarshaler so they can be used
// directly in configuration files.
//
// # Thread Safety
//
// The active texture unit is process-wide device state. Device
// implementations are expected to be driven from a single render goroutine.
package gpucore
