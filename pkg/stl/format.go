package stl

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Binary STL layout
const (
	headerSize    = 80
	countSize     = 4
	minBinarySize = headerSize + countSize
	triangleSize  = 50
	normalSize    = 12
	vertexSize    = 12
)

var solidKeyword = []byte("solid")

// Format is the encoding of an STL buffer
type Format int

const (
	// FormatEmpty marks a buffer too small to hold any model
	FormatEmpty Format = iota
	FormatBinary
	FormatASCII
)

func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatASCII:
		return "ascii"
	default:
		return "empty"
	}
}

// MarshalText encodes the format by name
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText decodes a format name
func (f *Format) UnmarshalText(text []byte) error {
	switch string(text) {
	case "binary":
		*f = FormatBinary
	case "ascii":
		*f = FormatASCII
	case "empty", "":
		*f = FormatEmpty
	default:
		return fmt.Errorf("unknown stl format %q", text)
	}
	return nil
}

// DetectFormat decides whether data is binary or ASCII STL.
//
// STL has no magic number. A header that does not start with "solid" is
// binary. A "solid" header is still binary when the buffer length matches
// the declared triangle count exactly; everything else is ASCII. Buffers
// shorter than 84 bytes are FormatEmpty.
func DetectFormat(data []byte) Format {
	if len(data) < minBinarySize {
		return FormatEmpty
	}

	header := data[:headerSize]
	if !bytes.HasPrefix(header, solidKeyword) {
		return FormatBinary
	}
	if binarySize(declaredCount(data)) == uint64(len(data)) {
		return FormatBinary
	}
	return FormatASCII
}

func declaredCount(data []byte) uint32 {
	return binary.LittleEndian.Uint32(data[headerSize:minBinarySize])
}

// binarySize is the exact byte length of a binary file with n triangles
func binarySize(n uint32) uint64 {
	return minBinarySize + uint64(n)*triangleSize
}
