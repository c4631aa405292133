package stl

import (
	"strings"
	"testing"

	"github.com/philipparndt/stlquote/pkg/geometry"
)

func TestSummarizeASCIICube(t *testing.T) {
	summary, err := Summarize(asciiSTL("test_cube", cubeFacets(20)))
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.Format != FormatASCII {
		t.Errorf("Format failed: expected %v, got %v", FormatASCII, summary.Format)
	}
	if summary.Name != "test_cube" {
		t.Errorf("Name failed: expected test_cube, got %q", summary.Name)
	}
	if summary.TriangleCount != 12 {
		t.Errorf("TriangleCount failed: expected 12, got %d", summary.TriangleCount)
	}
	if expected := geometry.NewVector3(20, 20, 20); summary.Dimensions != expected {
		t.Errorf("Dimensions failed: expected %v, got %v", expected, summary.Dimensions)
	}
	if summary.BoundingVolume != 8000 {
		t.Errorf("BoundingVolume failed: expected 8000, got %v", summary.BoundingVolume)
	}
}

func TestSummarizeASCIILongSolidName(t *testing.T) {
	// The solid line runs past the 80-byte header
	name := "C:/Users/someone/Documents/CAD/projects/bracket_assembly_revision_final_v3.STL"
	summary, err := Summarize(asciiSTL(name, cubeFacets(10)))
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.Format != FormatASCII {
		t.Errorf("Format failed: expected %v, got %v", FormatASCII, summary.Format)
	}
	if summary.Name != name {
		t.Errorf("Name failed: expected %q, got %q", name, summary.Name)
	}
	if summary.TriangleCount != 12 {
		t.Errorf("TriangleCount failed: expected 12, got %d", summary.TriangleCount)
	}
	if expected := geometry.NewVector3(10, 10, 10); summary.Dimensions != expected {
		t.Errorf("Dimensions failed: expected %v, got %v", expected, summary.Dimensions)
	}
}

func TestSummarizeASCIIMatchesBinary(t *testing.T) {
	facets := cubeFacets(7.5)

	ascii, err := Summarize(asciiSTL("same", facets))
	if err != nil {
		t.Fatalf("Summarize ASCII failed: %v", err)
	}
	bin, err := Summarize(binarySTL("", uint32(len(facets)), facets))
	if err != nil {
		t.Fatalf("Summarize binary failed: %v", err)
	}

	if ascii.TriangleCount != bin.TriangleCount || ascii.Dimensions != bin.Dimensions {
		t.Errorf("ASCII and binary summaries differ: %+v vs %+v", ascii, bin)
	}
}

func TestSummarizeASCIISkipsMalformedVertices(t *testing.T) {
	text := `solid broken
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex abc 1 2
      vertex 4 nan 0
    endloop
  endfacet
  facet normal 0 0 1
    outer loop
      vertex 1 1 1
      vertex 3 5 inf
      vertex 2 -2 2
    endloop
  endfacet
endsolid broken
`
	summary, err := Summarize([]byte(text))
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.Format != FormatASCII {
		t.Fatalf("Format failed: expected %v, got %v", FormatASCII, summary.Format)
	}
	if summary.TriangleCount != 2 {
		t.Errorf("TriangleCount failed: expected 2, got %d", summary.TriangleCount)
	}
	if summary.MalformedVertices != 3 {
		t.Errorf("MalformedVertices failed: expected 3, got %d", summary.MalformedVertices)
	}
	if expected := geometry.NewVector3(2, 3, 2); summary.Dimensions != expected {
		t.Errorf("Dimensions failed: expected %v, got %v", expected, summary.Dimensions)
	}
}

func TestSummarizeASCIIWithoutValidVertices(t *testing.T) {
	text := "solid nothing\n" +
		strings.Repeat("  facet normal 0 0 0\n    outer loop\n      vertex x y z\n    endloop\n  endfacet\n", 3) +
		"endsolid nothing\n"

	summary, err := Summarize([]byte(text))
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if summary.TriangleCount != 1 {
		t.Errorf("TriangleCount failed: expected 1, got %d", summary.TriangleCount)
	}
	if summary.Dimensions != (geometry.Vector3{}) || summary.EstimatedVolume != 0 {
		t.Errorf("expected zero-volume summary, got %+v", summary)
	}
}

func TestSummarizeASCIIUngroupedVertices(t *testing.T) {
	text := "solid loose\n" +
		"vertex 0 0 0 vertex 1 0 0 vertex 0 1 0 vertex 0 0 1 vertex 5 5 5\n" +
		"endsolid loose\n" + strings.Repeat(" ", 40)

	summary, err := Summarize([]byte(text))
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if summary.TriangleCount != 1 {
		t.Errorf("TriangleCount failed: expected floor(5/3) = 1, got %d", summary.TriangleCount)
	}
	if expected := geometry.NewVector3(5, 5, 5); summary.Dimensions != expected {
		t.Errorf("Dimensions failed: expected %v, got %v", expected, summary.Dimensions)
	}
}

func TestSummarizeASCIIRestartsOnIncompleteVertex(t *testing.T) {
	text := "solid cut\nfacet normal 0 0 0\nouter loop\n" +
		"vertex 1 2\nvertex 0 0 0\nvertex 4 0 0\nvertex 0 4 0\n" +
		"endloop\nendfacet\nendsolid cut\n"

	summary, err := Summarize([]byte(text))
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if summary.TriangleCount != 1 {
		t.Errorf("TriangleCount failed: expected 1, got %d", summary.TriangleCount)
	}
	if summary.MalformedVertices != 0 {
		t.Errorf("MalformedVertices failed: expected 0, got %d", summary.MalformedVertices)
	}
	if expected := geometry.NewVector3(4, 4, 0); summary.Dimensions != expected {
		t.Errorf("Dimensions failed: expected %v, got %v", expected, summary.Dimensions)
	}
}

func TestSolidName(t *testing.T) {
	if name := solidName([]byte("solid  My Part \r\nfacet")); name != "My Part" {
		t.Errorf("solidName failed: expected %q, got %q", "My Part", name)
	}
	if name := solidName([]byte("solid\n")); name != "" {
		t.Errorf("solidName failed: expected empty, got %q", name)
	}
}
