package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/philipparndt/stlquote/pkg/geometry"
)

// decodeBinary scans the triangle records of a binary STL buffer.
// Only triangles that fit completely inside data are read.
func decodeBinary(data []byte, acc *accumulator) error {
	acc.name = headerName(data[:headerSize])

	declared := declaredCount(data)
	available := uint64(len(data)-minBinarySize) / triangleSize
	readable := uint64(declared)
	if readable > available {
		readable = available
	}

	for i := 0; i < int(readable); i++ {
		// Skip the facet normal; it does not contribute to the extents
		offset := minBinarySize + i*triangleSize + normalSize
		for v := 0; v < 3; v++ {
			if !acc.addVertex(readVector(data[offset+v*vertexSize:])) {
				acc.malformed++
			}
		}
		acc.triangles++
	}

	if uint64(declared) > available {
		return &TruncatedFileError{Declared: declared, Parsed: int(readable)}
	}
	return nil
}

// readVector decodes three little-endian float32 values
func readVector(b []byte) geometry.Vector3 {
	return geometry.NewVector3(
		float64(math.Float32frombits(binary.LittleEndian.Uint32(b[0:4]))),
		float64(math.Float32frombits(binary.LittleEndian.Uint32(b[4:8]))),
		float64(math.Float32frombits(binary.LittleEndian.Uint32(b[8:12]))),
	)
}

// headerName extracts printable text from a binary header, if any
func headerName(header []byte) string {
	header = bytes.TrimRight(header, "\x00 ")
	if !utf8.Valid(header) {
		return ""
	}

	name := strings.TrimSpace(string(header))
	name = strings.TrimSpace(strings.TrimPrefix(name, string(solidKeyword)))
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return ""
		}
	}
	return name
}
