package stl

import (
	"math"

	"github.com/philipparndt/stlquote/pkg/geometry"
)

// DefaultFillFactor approximates how much of its bounding box a printed
// part actually fills. It is a heuristic, not a property of the mesh.
const DefaultFillFactor = 0.3

// GeometrySummary is the result of scanning one STL buffer.
// All lengths are in the units of the source file, conventionally mm.
type GeometrySummary struct {
	Format        Format               `json:"format"`
	Name          string               `json:"name,omitempty"`
	TriangleCount int                  `json:"triangleCount"`
	Bounds        geometry.BoundingBox `json:"bounds"`
	Dimensions    geometry.Vector3     `json:"dimensions"`

	// BoundingVolume is Dimensions.X * Dimensions.Y * Dimensions.Z
	BoundingVolume float64 `json:"boundingVolume"`

	// EstimatedVolume is BoundingVolume * FillFactor. It is an estimate,
	// not the enclosed volume of the mesh.
	EstimatedVolume float64 `json:"estimatedVolume"`
	FillFactor      float64 `json:"fillFactor"`

	// MalformedVertices counts vertices skipped for an unparsable, NaN or
	// infinite coordinate.
	MalformedVertices int `json:"malformedVertices,omitempty"`
}

// Extractor turns raw STL buffers into summaries. The zero value uses
// DefaultFillFactor. An Extractor holds no state between calls.
type Extractor struct {
	FillFactor float64
}

// Summarize scans data with the default fill factor
func Summarize(data []byte) (GeometrySummary, error) {
	return Extractor{}.Summarize(data)
}

// Summarize detects the format of data and scans it.
//
// The returned summary is always usable. The error is ErrBufferTooSmall for
// degenerate buffers and a *TruncatedFileError when the binary triangle
// count overruns the buffer; in both cases the summary holds what could be
// read. data is neither retained nor modified.
func (e Extractor) Summarize(data []byte) (GeometrySummary, error) {
	acc := newAccumulator()
	format := DetectFormat(data)

	var err error
	switch format {
	case FormatBinary:
		err = decodeBinary(data, &acc)
	case FormatASCII:
		err = decodeASCII(data, &acc)
	default:
		err = ErrBufferTooSmall
	}

	return acc.summary(format, e.fillFactor()), err
}

func (e Extractor) fillFactor() float64 {
	if e.FillFactor <= 0 || math.IsNaN(e.FillFactor) || math.IsInf(e.FillFactor, 0) {
		return DefaultFillFactor
	}
	return e.FillFactor
}

// accumulator tracks the running extents; no triangle data is kept
type accumulator struct {
	name      string
	bbox      geometry.BoundingBox
	triangles int
	malformed int
}

func newAccumulator() accumulator {
	return accumulator{bbox: geometry.NewBoundingBox()}
}

func (a *accumulator) addVertex(v geometry.Vector3) bool {
	return a.bbox.Extend(v)
}

func (a *accumulator) summary(format Format, fillFactor float64) GeometrySummary {
	bounds := a.bbox
	if bounds.Empty() {
		bounds = geometry.BoundingBox{}
	}

	dimensions := bounds.Size()
	boundingVolume := dimensions.Product()

	return GeometrySummary{
		Format:            format,
		Name:              a.name,
		TriangleCount:     a.triangles,
		Bounds:            bounds,
		Dimensions:        dimensions,
		BoundingVolume:    boundingVolume,
		EstimatedVolume:   boundingVolume * fillFactor,
		FillFactor:        fillFactor,
		MalformedVertices: a.malformed,
	}
}
