// Command tempreport prints summary statistics for a day/temperature series
// and can render it as an HTML chart.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"scrubkit/internal/tempseries"
)

const defaultSeries = "Monday:22.5, Tuesday:24.0, Wednesday:23.5, Thursday:21.0, Friday:25.5, Saturday:26.0, Sunday:24.5"

func main() {
	data := flag.String("data", defaultSeries, "day:temperature series, comma separated")
	chart := flag.String("chart", "", "write an HTML chart to this file")
	flag.Parse()

	if err := run(os.Stdout, *data, *chart); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out io.Writer, data, chartFile string) error {
	readings, err := tempseries.Parse(data)
	if err != nil {
		return errors.Wrap(err, "unable to parse series")
	}

	summary, err := tempseries.Summarize(readings)
	if err != nil {
		return errors.Wrap(err, "unable to summarise series")
	}

	grp := errgroup.Group{}

	grp.Go(func() error {
		tempseries.WriteReport(out, readings, summary)

		return nil
	})

	if chartFile != "" {
		grp.Go(func() error {
			return renderChart(chartFile, readings)
		})
	}

	return grp.Wait()
}

func renderChart(fileName string, readings []tempseries.Reading) error {
	days := make([]string, len(readings))
	temps := make([]opts.LineData, len(readings))

	for i, r := range readings {
		days[i] = r.Day
		temps[i] = opts.LineData{Value: r.Temp}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Temperature Report"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Daily Temperatures",
			Subtitle: fmt.Sprintf("%d readings", len(readings)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(days).AddSeries("°C", temps)

	file, err := os.Create(fileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", fileName)
	}
	defer file.Close()

	if err := line.Render(file); err != nil {
		return errors.Wrap(err, "unable to render chart")
	}

	return nil
}
