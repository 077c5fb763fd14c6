package shell

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/philipparndt/windpath/pkg/analysis"
	"github.com/philipparndt/windpath/pkg/waypoint"
)

var (
	// fatih/color disables these automatically when out is not a TTY
	successColor  = color.New(color.FgGreen, color.Bold)
	warningColor  = color.New(color.FgYellow, color.Bold)
	errorColor    = color.New(color.FgRed, color.Bold)
	headerColor   = color.New(color.FgBlue, color.Bold)
	selectedColor = color.New(color.FgRed)
	dimColor      = color.New(color.FgHiBlack)
)

func (s *Shell) success(format string, args ...any) {
	_, _ = successColor.Fprintf(s.out, "✓ "+format+"\n", args...)
}

func (s *Shell) warning(format string, args ...any) {
	_, _ = warningColor.Fprintf(s.out, "⚠ "+format+"\n", args...)
}

func (s *Shell) failure(format string, args ...any) {
	_, _ = errorColor.Fprintf(s.out, "✗ "+format+"\n", args...)
}

func (s *Shell) header(title string) {
	_, _ = headerColor.Fprintf(s.out, "▸ %s\n", title)
}

func writePoints(out io.Writer, points []waypoint.PathPoint, selected string) {
	if len(points) == 0 {
		_, _ = dimColor.Fprintln(out, "  no points")
		return
	}
	for _, p := range points {
		line := fmt.Sprintf("  %-14s %s", p.ID, analysis.FormatVectorShort(p.Position))
		if p.ID == selected {
			_, _ = selectedColor.Fprintln(out, line+"  (selected)")
			continue
		}
		fmt.Fprintln(out, line)
	}
}

func writePath(out io.Writer, path []waypoint.PathPoint) {
	if len(path) == 0 {
		_, _ = dimColor.Fprintln(out, "  no path")
		return
	}
	result := analysis.AnalyzeTour(path)
	for i, p := range path {
		fmt.Fprintf(out, "  %3d. %-14s %s\n", i+1, p.ID, analysis.FormatVectorShort(p.Position))
	}
	fmt.Fprintf(out, "  length: %s over %d legs\n",
		analysis.FormatMeasurement(result.TotalLength, ""), len(result.Legs))
}
