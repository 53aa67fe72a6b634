package half

import (
	"sync"

	"k8s.io/klog/v2"
)

// Converter is one implementation of the half <-> single codec.
//
// Two implementations exist: the portable one (Float32ToFloat16Fast3RTNE and
// Float16ToFloat32) and, when the CPU has a conversion instruction, a native
// one. Both round to nearest even and agree on every finite input.
type Converter interface {
	// Name returns a human-readable name, e.g. "portable", "f16c", "fcvt".
	Name() string

	// Encode converts a float32 to Float16.
	Encode(f float32) Float16

	// Decode converts a Float16 to float32.
	Decode(h Float16) float32
}

type portableConverter struct{}

func (portableConverter) Name() string             { return "portable" }
func (portableConverter) Encode(f float32) Float16 { return Float32ToFloat16Fast3RTNE(f) }
func (portableConverter) Decode(h Float16) float32 { return Float16ToFloat32(h) }

// nativeConverter wraps a pair of hardware conversion routines.
type nativeConverter struct {
	name   string
	encode func(float32) uint16
	decode func(uint16) float32
}

func (c nativeConverter) Name() string             { return c.name }
func (c nativeConverter) Encode(f float32) Float16 { return Float16(c.encode(f)) }
func (c nativeConverter) Decode(h Float16) float32 { return c.decode(uint16(h)) }

// active is the converter selected for this platform.
// Set by init() in dispatch_*.go files and never changed afterwards.
var active Converter = portableConverter{}

// hasNative is true if active uses a hardware instruction.
var hasNative bool

// selection describes why active was chosen. It is logged on the first call
// to Active, once the program had a chance to parse its klog flags.
var (
	selection    string
	logSelection sync.Once
)

// Portable returns the converter that uses no hardware conversion instruction.
func Portable() Converter {
	return portableConverter{}
}

// Active returns the converter selected for the running CPU.
// The first call logs the selection at klog.V(1).
func Active() Converter {
	logSelection.Do(func() {
		klog.V(1).Infof("half: %s", selection)
	})
	return active
}

// SelectionReason describes which converter was selected and why,
// e.g. "using native f16c float16 conversion".
func SelectionReason() string {
	return selection
}

// HasNative returns true if the CPU has a float32 <-> float16 conversion
// instruction and it is in use.
func HasNative() bool {
	return hasNative
}

// Float32ToFloat16 converts a float32 to Float16 with round-to-nearest-even,
// using the hardware instruction when available.
func Float32ToFloat16(f float32) Float16 {
	return active.Encode(f)
}

func useNative(name string, encode func(float32) uint16, decode func(uint16) float32) {
	active = nativeConverter{name: name, encode: encode, decode: decode}
	hasNative = true
	selection = "using native " + name + " float16 conversion"
}

func usePortable(reason string) {
	active = portableConverter{}
	hasNative = false
	selection = "using portable float16 conversion (" + reason + ")"
}
