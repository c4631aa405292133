package main

import (
	"fmt"

	"github.com/philipparndt/stlquote/pkg/geometry"
	"github.com/philipparndt/stlquote/pkg/stl"
)

// summarizeFile parses filename with the configured fill factor.
// Empty and truncated files only log a warning; the partial summary is used.
func summarizeFile(filename string) (stl.GeometrySummary, error) {
	summary, err := stl.Extractor{FillFactor: cfg.FillFactor}.ParseFile(filename)
	switch {
	case err == nil:
	case stl.IsSoft(err):
		logger.Warn("model may be incomplete", "file", filename, "error", err)
	default:
		return summary, fmt.Errorf("error parsing STL file: %w", err)
	}

	if summary.MalformedVertices > 0 {
		logger.Warn("skipped malformed vertices", "file", filename, "count", summary.MalformedVertices)
	}
	logger.Debug("model summarized",
		"file", filename,
		"format", summary.Format.String(),
		"triangles", summary.TriangleCount,
	)
	return summary, nil
}

func formatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
