// Package tempseries parses day/temperature series and summarises them.
package tempseries

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrNoReadings is returned when a series contains no readings.
var ErrNoReadings = errors.New("no readings")

// Reading is one day/temperature pair.
type Reading struct {
	Day  string
	Temp float64
}

// Summary holds the derived statistics of one series.
type Summary struct {
	Average      float64
	Max          float64
	Min          float64
	Range        float64
	HottestDay   string
	ColdestDay   string
	AboveAverage int
	BelowAverage int
}

// Parse reads a "Day:temp, Day:temp" series. Whitespace around days and
// temperatures is ignored.
func Parse(data string) ([]Reading, error) {
	entries := strings.Split(data, ",")
	readings := make([]Reading, 0, len(entries))

	for _, entry := range entries {
		day, temp, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, errors.Errorf("entry %q: missing day:temperature separator", strings.TrimSpace(entry))
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(temp), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %q", strings.TrimSpace(entry))
		}

		readings = append(readings, Reading{Day: strings.TrimSpace(day), Temp: value})
	}

	return readings, nil
}

// Summarize derives the summary statistics of the readings. The hottest and
// coldest days are the first ones reaching the maximum and minimum.
func Summarize(readings []Reading) (*Summary, error) {
	if len(readings) == 0 {
		return nil, ErrNoReadings
	}

	temps := make([]float64, len(readings))
	for i, r := range readings {
		temps[i] = r.Temp
	}

	s := &Summary{
		Average: stat.Mean(temps, nil),
		Max:     floats.Max(temps),
		Min:     floats.Min(temps),
	}
	s.Range = s.Max - s.Min

	for _, r := range readings {
		if r.Temp == s.Max && s.HottestDay == "" {
			s.HottestDay = r.Day
		}
		if r.Temp == s.Min && s.ColdestDay == "" {
			s.ColdestDay = r.Day
		}
		if r.Temp > s.Average {
			s.AboveAverage++
		}
		if r.Temp < s.Average {
			s.BelowAverage++
		}
	}

	return s, nil
}

// WriteReport writes the banner-formatted text report for the readings.
func WriteReport(w io.Writer, readings []Reading, summary *Summary) {
	banner := strings.Repeat("=", 50)

	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "TEMPERATURE DATA ANALYSIS")
	fmt.Fprintln(w, banner)

	fmt.Fprintln(w, "\nDaily Temperatures:")
	for _, r := range readings {
		fmt.Fprintf(w, "%-12s : %g°C\n", r.Day, r.Temp)
	}

	fmt.Fprintln(w, "\n"+banner)
	fmt.Fprintln(w, "STATISTICS")
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Average Temperature : %.2f°C\n", summary.Average)
	fmt.Fprintf(w, "Maximum Temperature : %g°C\n", summary.Max)
	fmt.Fprintf(w, "Minimum Temperature : %g°C\n", summary.Min)
	fmt.Fprintf(w, "Temperature Range   : %g°C\n", summary.Range)

	fmt.Fprintf(w, "\nHottest Day: %s (%g°C)\n", summary.HottestDay, summary.Max)
	fmt.Fprintf(w, "Coldest Day: %s (%g°C)\n", summary.ColdestDay, summary.Min)

	fmt.Fprintf(w, "\nDays above average: %d\n", summary.AboveAverage)
	fmt.Fprintf(w, "Days below average: %d\n", summary.BelowAverage)
	fmt.Fprintln(w, banner)
}
