// Package report renders the end-of-run tables printed by the CLI.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/somtsp/internal/driver"
	"github.com/katalvlaran/somtsp/som"
	"github.com/katalvlaran/somtsp/tour"
)

// Write prints a summary table of res followed by the visiting order of the
// final tour (the polished one when present) over cities.
func Write(w io.Writer, res driver.Result, cities []som.Point) error {
	final, label := res.Tour, "ring"
	if res.Polished != nil {
		final, label = res.Polished, "polished"
	}
	if err := tour.ValidateTour(final, len(cities), 0); err != nil {
		return fmt.Errorf("report: %s tour: %w", label, err)
	}

	writeSummary(w, res)
	if _, err := fmt.Fprintf(w, "\nTour (%s):\n", label); err != nil {
		return err
	}
	writeTour(w, final, cities)
	return nil
}

func writeSummary(w io.Writer, res driver.Result) {
	rows := [][]string{
		{"Run", res.RunID},
		{"Cities", strconv.Itoa(res.Cities)},
		{"Nodes", strconv.Itoa(res.Nodes)},
		{"Epochs", fmt.Sprintf("%d/%d", res.Epochs, res.MaxEpochs)},
		{"Completed", strconv.FormatBool(res.Completed)},
		{"Ring length", formatLength(res.RingLength)},
		{"Tour length", formatLength(res.TourLength)},
	}
	if res.Polished != nil {
		rows = append(rows,
			[]string{"Polished length", formatLength(res.PolishedLength)},
			[]string{"2-opt gain", gain(res.TourLength, res.PolishedLength)},
		)
	}
	rows = append(rows, []string{"Elapsed", res.Elapsed.String()})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func writeTour(w io.Writer, t []int, cities []som.Point) {
	rows := make([][]string, 0, len(t))
	var (
		i    int
		leg  float64
		a, b som.Point
	)
	for i = 0; i < len(t); i++ {
		b = cities[t[i]]
		leg = 0
		if i > 0 {
			a = cities[t[i-1]]
			leg = math.Hypot(b.X-a.X, b.Y-a.Y)
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.Itoa(t[i]),
			formatCoord(b.X),
			formatCoord(b.Y),
			formatLength(leg),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Step", "City", "X", "Y", "Leg"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func formatLength(x float64) string { return strconv.FormatFloat(x, 'f', 3, 64) }

func formatCoord(x float64) string { return strconv.FormatFloat(x, 'f', 2, 64) }

// gain is the relative improvement of after over before, as a percentage.
func gain(before, after float64) string {
	if before <= 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", 100*(before-after)/before)
}
