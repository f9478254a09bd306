package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/delaneyj/tagparty/cmd/benchmark/report"
)

const (
	formatPretty = "pretty"
	formatASCII  = "ascii"
	formatHTML   = "html"
)

const title = "Tracked property tags"

func renderPretty(w io.Writer, results []result) {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(w)
	tbl.AppendHeader(table.Row{"benchmark", "nodes", "ops", "avg", "min", "p75", "p99", "max", "checksum"})
	for _, r := range results {
		tbl.AppendRow(table.Row{
			r.name,
			humanize.Comma(int64(r.nodes)),
			humanize.Comma(int64(r.ops)),
			r.calc.Time.Avg,
			r.calc.Time.Min,
			r.calc.Time.P75,
			r.calc.Time.P99,
			r.calc.Time.Max,
			fmt.Sprintf("%016x", r.checksum),
		})
	}
	tbl.Render()
}

func renderASCII(w io.Writer, results []result) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"benchmark", "nodes", "ops", "avg", "min", "p75", "p99", "max", "checksum"})
	for _, r := range results {
		tbl.Append([]string{
			r.name,
			humanize.Comma(int64(r.nodes)),
			humanize.Comma(int64(r.ops)),
			r.calc.Time.Avg.String(),
			r.calc.Time.Min.String(),
			r.calc.Time.P75.String(),
			r.calc.Time.P99.String(),
			r.calc.Time.Max.String(),
			strconv.FormatUint(r.checksum, 16),
		})
	}
	tbl.Render()
}

func writeHTML(path string, results []result) error {
	rows := make([]report.Row, 0, len(results))
	for _, r := range results {
		rows = append(rows, report.Row{
			Name:     r.name,
			Nodes:    r.nodes,
			Ops:      r.ops,
			Avg:      r.calc.Time.Avg,
			Min:      r.calc.Time.Min,
			P75:      r.calc.Time.P75,
			P99:      r.calc.Time.P99,
			Max:      r.calc.Time.Max,
			Checksum: r.checksum,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	report.WriteHTML(f, title, rows)
	return f.Close()
}
