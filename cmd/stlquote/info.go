package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display the geometry summary of an STL file",
	Long:  "Show format, triangle count, bounding box, dimensions and estimated volume of an STL file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Print the summary as JSON")
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	summary, err := summarizeFile(filename)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if infoJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Fprintln(out, "STL File Information")
	fmt.Fprintln(out, "====================")
	if summary.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", summary.Name)
	}
	fmt.Fprintf(out, "File: %s\n", filename)
	fmt.Fprintf(out, "Format: %s\n\n", summary.Format)

	fmt.Fprintln(out, "Model Statistics:")
	fmt.Fprintf(out, "  Triangles: %d\n", summary.TriangleCount)
	if summary.MalformedVertices > 0 {
		fmt.Fprintf(out, "  Skipped vertices: %d\n", summary.MalformedVertices)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", formatVector(summary.Bounds.Min))
	fmt.Fprintf(out, "  Max: %s\n", formatVector(summary.Bounds.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", formatVector(summary.Bounds.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Width (X): %.6f units\n", summary.Dimensions.X)
	fmt.Fprintf(out, "  Depth (Y): %.6f units\n", summary.Dimensions.Y)
	fmt.Fprintf(out, "  Height (Z): %.6f units\n", summary.Dimensions.Z)
	fmt.Fprintf(out, "  Bounding volume: %.6f cubic units\n", summary.BoundingVolume)
	fmt.Fprintf(out, "  Estimated volume: %.6f cubic units (fill factor %.2f)\n", summary.EstimatedVolume, summary.FillFactor)
	return nil
}
