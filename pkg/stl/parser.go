package stl

import (
	"fmt"
	"os"
)

// ParseFile reads an STL file and summarizes it with the default fill factor.
// It automatically detects whether the file is ASCII or binary format.
func ParseFile(filename string) (GeometrySummary, error) {
	return Extractor{}.ParseFile(filename)
}

// ParseFile reads an STL file and summarizes it
func (e Extractor) ParseFile(filename string) (GeometrySummary, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return GeometrySummary{}, fmt.Errorf("failed to read file: %w", err)
	}
	return e.Summarize(data)
}
