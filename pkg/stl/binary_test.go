package stl

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/stlquote/pkg/geometry"
)

func TestSummarizeBinarySingleTriangle(t *testing.T) {
	summary, err := Summarize(binarySTL("", 1, flatTriangle()))
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.Format != FormatBinary {
		t.Errorf("Format failed: expected %v, got %v", FormatBinary, summary.Format)
	}
	if summary.TriangleCount != 1 {
		t.Errorf("TriangleCount failed: expected 1, got %d", summary.TriangleCount)
	}
	expected := geometry.NewVector3(10, 10, 0)
	if summary.Dimensions != expected {
		t.Errorf("Dimensions failed: expected %v, got %v", expected, summary.Dimensions)
	}
	if summary.BoundingVolume != 0 {
		t.Errorf("BoundingVolume failed: expected 0, got %v", summary.BoundingVolume)
	}
	if summary.EstimatedVolume != 0 {
		t.Errorf("EstimatedVolume failed: expected 0, got %v", summary.EstimatedVolume)
	}
}

func TestSummarizeBinaryCube(t *testing.T) {
	summary, err := Summarize(binarySTL("", 12, cubeFacets(10)))
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.TriangleCount != 12 {
		t.Errorf("TriangleCount failed: expected 12, got %d", summary.TriangleCount)
	}
	if expected := geometry.NewVector3(10, 10, 10); summary.Dimensions != expected {
		t.Errorf("Dimensions failed: expected %v, got %v", expected, summary.Dimensions)
	}
	if math.Abs(summary.BoundingVolume-1000) > 1e-9 {
		t.Errorf("BoundingVolume failed: expected 1000, got %v", summary.BoundingVolume)
	}
	if summary.EstimatedVolume != summary.BoundingVolume*0.3 {
		t.Errorf("EstimatedVolume failed: expected %v, got %v", summary.BoundingVolume*0.3, summary.EstimatedVolume)
	}
	if expected := geometry.NewVector3(5, 5, 5); summary.Bounds.Center() != expected {
		t.Errorf("Bounds center failed: expected %v, got %v", expected, summary.Bounds.Center())
	}
}

func TestSummarizeBinaryOffsetModel(t *testing.T) {
	facets := []facet{{
		geometry.NewVector3(-5, 2, 1),
		geometry.NewVector3(3, 8, 1),
		geometry.NewVector3(1, 4, 7),
	}}

	summary, err := Summarize(binarySTL("", 1, facets))
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if expected := geometry.NewVector3(8, 6, 6); summary.Dimensions != expected {
		t.Errorf("Dimensions failed: expected %v, got %v", expected, summary.Dimensions)
	}
	if expected := geometry.NewVector3(-5, 2, 1); summary.Bounds.Min != expected {
		t.Errorf("Bounds.Min failed: expected %v, got %v", expected, summary.Bounds.Min)
	}
}

func TestSummarizeBinaryTruncated(t *testing.T) {
	facets := make([]facet, 0, 10)
	for i := 0; i < 10; i++ {
		facets = append(facets, flatTriangle()[0])
	}

	summary, err := Summarize(binarySTL("", 100, facets))
	if err == nil {
		t.Fatalf("expected truncation error")
	}

	var truncated *TruncatedFileError
	if !errors.As(err, &truncated) {
		t.Fatalf("expected *TruncatedFileError, got %T: %v", err, err)
	}
	if truncated.Declared != 100 {
		t.Errorf("Declared failed: expected 100, got %d", truncated.Declared)
	}
	if truncated.Parsed != 10 {
		t.Errorf("Parsed failed: expected 10, got %d", truncated.Parsed)
	}
	if !errors.Is(err, ErrTruncated) || !IsSoft(err) {
		t.Errorf("truncation error should match ErrTruncated and be soft")
	}
	if summary.TriangleCount != 10 {
		t.Errorf("TriangleCount failed: expected 10, got %d", summary.TriangleCount)
	}
	if expected := geometry.NewVector3(10, 10, 0); summary.Dimensions != expected {
		t.Errorf("Dimensions failed: expected %v, got %v", expected, summary.Dimensions)
	}
}

func TestSummarizeBinaryPartialTrailingRecord(t *testing.T) {
	data := binarySTL("", 2, cubeFacets(4)[:2])
	data = data[:len(data)-7]

	summary, err := Summarize(data)
	var truncated *TruncatedFileError
	if !errors.As(err, &truncated) {
		t.Fatalf("expected *TruncatedFileError, got %v", err)
	}
	if truncated.Parsed != 1 || summary.TriangleCount != 1 {
		t.Errorf("expected 1 readable triangle, got error %d / summary %d", truncated.Parsed, summary.TriangleCount)
	}
}

func TestSummarizeBinaryHugeDeclaredCount(t *testing.T) {
	summary, err := Summarize(binarySTL("", math.MaxUint32, flatTriangle()))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncation error, got %v", err)
	}
	if summary.TriangleCount != 1 {
		t.Errorf("TriangleCount failed: expected 1, got %d", summary.TriangleCount)
	}
}

func TestSummarizeBinaryZeroTriangles(t *testing.T) {
	summary, err := Summarize(binarySTL("", 0, nil))
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.TriangleCount != 0 {
		t.Errorf("TriangleCount failed: expected 0, got %d", summary.TriangleCount)
	}
	if summary.Dimensions != (geometry.Vector3{}) {
		t.Errorf("Dimensions failed: expected zero box, got %v", summary.Dimensions)
	}
	if summary.Bounds != (geometry.BoundingBox{}) {
		t.Errorf("Bounds failed: expected zero box, got %v", summary.Bounds)
	}
	if summary.EstimatedVolume != 0 {
		t.Errorf("EstimatedVolume failed: expected 0, got %v", summary.EstimatedVolume)
	}
}

func TestSummarizeBinarySkipsNonFiniteVertices(t *testing.T) {
	facets := flatTriangle()
	facets = append(facets, facet{
		geometry.NewVector3(math.NaN(), 0, 0),
		geometry.NewVector3(math.Inf(1), 50, 50),
		geometry.NewVector3(2, 2, 0),
	})

	summary, err := Summarize(binarySTL("", 2, facets))
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if summary.TriangleCount != 2 {
		t.Errorf("TriangleCount failed: expected 2, got %d", summary.TriangleCount)
	}
	if summary.MalformedVertices != 2 {
		t.Errorf("MalformedVertices failed: expected 2, got %d", summary.MalformedVertices)
	}
	if expected := geometry.NewVector3(10, 10, 0); summary.Dimensions != expected {
		t.Errorf("Dimensions failed: expected %v, got %v", expected, summary.Dimensions)
	}
}

func TestHeaderName(t *testing.T) {
	header := make([]byte, headerSize)
	copy(header, "solid bracket_v2")
	if name := headerName(header); name != "bracket_v2" {
		t.Errorf("headerName failed: expected %q, got %q", "bracket_v2", name)
	}

	if name := headerName(make([]byte, headerSize)); name != "" {
		t.Errorf("headerName of zero header failed: expected empty, got %q", name)
	}

	binaryJunk := make([]byte, headerSize)
	copy(binaryJunk, []byte{'A', 0x01, 0x02, 'B'})
	if name := headerName(binaryJunk); name != "" {
		t.Errorf("headerName of control bytes failed: expected empty, got %q", name)
	}
}
