package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/philipparndt/windpath/internal/seed"
	"github.com/philipparndt/windpath/pkg/analysis"
	"github.com/philipparndt/windpath/pkg/pathing"
	"github.com/philipparndt/windpath/pkg/waypoint"
	"github.com/spf13/cobra"
)

var pathJSON bool

var pathCmd = &cobra.Command{
	Use:   "path [seed.json]",
	Short: "Compute the nearest-neighbor visiting order for a seed file",
	Long:  "Load waypoints from a seed file, order them with the nearest-neighbor heuristic starting at the first record, and print the tour with its leg lengths.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPath,
}

func init() {
	pathCmd.Flags().BoolVar(&pathJSON, "json", false, "print the tour as JSON")
	rootCmd.AddCommand(pathCmd)
}

// tourStop is one entry of the JSON tour output.
type tourStop struct {
	ID       string     `json:"id"`
	Position [3]float64 `json:"position"`
}

type tourOutput struct {
	Tour   []tourStop `json:"tour"`
	Length float64    `json:"length"`
}

func runPath(cmd *cobra.Command, args []string) error {
	points, err := loadSeed(args[0])
	if err != nil {
		return err
	}

	tour := pathing.FindNearestNeighborPath(points)
	if pathJSON {
		return writeTourJSON(cmd.OutOrStdout(), tour)
	}
	writeTour(cmd.OutOrStdout(), tour)
	return nil
}

// loadSeed parses a seed file into a fresh store and returns its points.
func loadSeed(filename string) ([]waypoint.PathPoint, error) {
	positions, err := seed.ParseFile(filename)
	if err != nil {
		return nil, err
	}

	store := waypoint.NewStore(waypoint.NewSessionIDGenerator(), logger)
	if err := store.Initialize(positions); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	logger.Debug("seed loaded", "file", filename, "points", store.Len())
	return store.List(), nil
}

func writeTour(w io.Writer, tour []waypoint.PathPoint) {
	result := analysis.AnalyzeTour(tour)

	fmt.Fprintln(w, "Tour")
	fmt.Fprintln(w, "====")
	if len(tour) == 0 {
		fmt.Fprintln(w, "No waypoints.")
		return
	}

	for i, p := range tour {
		fmt.Fprintf(w, "%3d. %-12s %s\n", i+1, p.ID, analysis.FormatVector(p.Position))
	}

	if len(result.Legs) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Legs:")
	for _, leg := range result.Legs {
		fmt.Fprintf(w, "  %s -> %s: %s\n", leg.FromID, leg.ToID, analysis.FormatMeasurement(leg.Length, ""))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total length: %s\n", analysis.FormatMeasurement(result.TotalLength, ""))
}

func writeTourJSON(w io.Writer, tour []waypoint.PathPoint) error {
	out := tourOutput{
		Tour:   make([]tourStop, 0, len(tour)),
		Length: analysis.PathLength(waypoint.Positions(tour)),
	}
	for _, p := range tour {
		out.Tour = append(out.Tour, tourStop{ID: p.ID, Position: p.Position.Array()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
