package stl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/philipparndt/stlquote/pkg/geometry"
)

type facet [3]geometry.Vector3

// binarySTL encodes facets with the given header text and declared count
func binarySTL(header string, declared uint32, facets []facet) []byte {
	buf := make([]byte, headerSize, minBinarySize+len(facets)*triangleSize)
	copy(buf, header)
	buf = binary.LittleEndian.AppendUint32(buf, declared)

	for _, f := range facets {
		// normal
		buf = append(buf, make([]byte, normalSize)...)
		for _, v := range f {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(v.X)))
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(v.Y)))
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(v.Z)))
		}
		// attribute byte count
		buf = append(buf, 0, 0)
	}
	return buf
}

// asciiSTL renders facets as an ASCII solid
func asciiSTL(name string, facets []facet) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "solid %s\n", name)
	for _, f := range facets {
		b.WriteString("  facet normal 0 0 0\n    outer loop\n")
		for _, v := range f {
			fmt.Fprintf(&b, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		b.WriteString("    endloop\n  endfacet\n")
	}
	fmt.Fprintf(&b, "endsolid %s\n", name)
	return b.Bytes()
}

// cubeFacets returns the 12 triangles of an axis-aligned cube at the origin
func cubeFacets(size float64) []facet {
	v := func(x, y, z float64) geometry.Vector3 {
		return geometry.NewVector3(x*size, y*size, z*size)
	}
	return []facet{
		{v(0, 0, 0), v(1, 1, 0), v(1, 0, 0)},
		{v(0, 0, 0), v(0, 1, 0), v(1, 1, 0)},
		{v(0, 0, 1), v(1, 0, 1), v(1, 1, 1)},
		{v(0, 0, 1), v(1, 1, 1), v(0, 1, 1)},
		{v(0, 0, 0), v(1, 0, 0), v(1, 0, 1)},
		{v(0, 0, 0), v(1, 0, 1), v(0, 0, 1)},
		{v(0, 1, 0), v(1, 1, 1), v(1, 1, 0)},
		{v(0, 1, 0), v(0, 1, 1), v(1, 1, 1)},
		{v(0, 0, 0), v(0, 0, 1), v(0, 1, 1)},
		{v(0, 0, 0), v(0, 1, 1), v(0, 1, 0)},
		{v(1, 0, 0), v(1, 1, 0), v(1, 1, 1)},
		{v(1, 0, 0), v(1, 1, 1), v(1, 0, 1)},
	}
}

func flatTriangle() []facet {
	return []facet{{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(10, 0, 0),
		geometry.NewVector3(0, 10, 0),
	}}
}
