package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/windpath/pkg/analysis"
	"github.com/philipparndt/windpath/pkg/pathing"
	"github.com/philipparndt/windpath/pkg/waypoint"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [seed.json]",
	Short: "Display general information about a seed file",
	Long:  "Show the waypoint count, bounding box and nearest-neighbor tour statistics of a seed file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	points, err := loadSeed(args[0])
	if err != nil {
		return err
	}

	writeInfo(cmd.OutOrStdout(), args[0], points)
	return nil
}

func writeInfo(w io.Writer, filename string, points []waypoint.PathPoint) {
	result := analysis.AnalyzeTour(pathing.FindNearestNeighborPath(points))

	fmt.Fprintln(w, "Seed Information")
	fmt.Fprintln(w, "================")
	fmt.Fprintf(w, "File: %s\n", filename)
	fmt.Fprintf(w, "Waypoints: %d\n", result.PointCount)

	if !result.HasBounds {
		return
	}

	bbox := result.BoundingBox
	size := bbox.Size()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Bounding Box:")
	fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(bbox.Min))
	fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(bbox.Max))
	fmt.Fprintf(w, "  Center: %s\n", analysis.FormatVector(bbox.Center()))
	fmt.Fprintf(w, "  Size: %.3f x %.3f x %.3f units\n", size.X, size.Y, size.Z)
	fmt.Fprintf(w, "  Diagonal: %s\n", analysis.FormatMeasurement(bbox.Diagonal(), ""))

	if len(result.Legs) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Nearest-Neighbor Tour:")
	fmt.Fprintf(w, "  Legs: %d\n", len(result.Legs))
	fmt.Fprintf(w, "  Total: %s\n", analysis.FormatMeasurement(result.TotalLength, ""))
	fmt.Fprintf(w, "  Shortest leg: %s\n", analysis.FormatMeasurement(result.MinLeg, ""))
	fmt.Fprintf(w, "  Longest leg: %s\n", analysis.FormatMeasurement(result.MaxLeg, ""))
	fmt.Fprintf(w, "  Average leg: %s\n", analysis.FormatMeasurement(result.AvgLeg, ""))
}
