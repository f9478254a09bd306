// Package report renders benchmark results as a standalone HTML page.
package report

import "time"

//go:generate qtc -file=report.qtpl

type Row struct {
	Name     string
	Nodes    int
	Ops      int
	Avg      time.Duration
	Min      time.Duration
	P75      time.Duration
	P99      time.Duration
	Max      time.Duration
	Checksum uint64
}
