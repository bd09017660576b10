package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/btcsuite/btclog"
	"github.com/davecgh/go-spew/spew"

	"pq_structures/bench"
	"pq_structures/pq"
	"pq_structures/treap"
)

var log btclog.Logger

// dumpKeys is the small workload used for --dump.
var dumpKeys = []uint64{5, 3, 8, 1, 9, 2, 7}

func dump(w io.Writer, cfg *config) error {
	kinds := cfg.Kinds
	if len(kinds) == 0 {
		kinds = pq.Kinds()
	}
	for _, kind := range kinds {
		q, err := pq.New(kind)
		if err != nil {
			return err
		}
		pq.InsertAll(q, dumpKeys)
		fmt.Fprintf(w, "== %s\n", kind)
		spew.Fdump(w, q)
	}
	seed := uint64(cfg.Seed) | 1
	tr := treap.New(func() uint64 {
		// xorshift64
		seed ^= seed << 13
		seed ^= seed >> 7
		seed ^= seed << 17
		return seed
	})
	for _, k := range dumpKeys {
		tr.Insert(k)
	}
	fmt.Fprintln(w, "== treap")
	spew.Fdump(w, tr)
	return nil
}

func printReport(w io.Writer, report *bench.Report) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "QUEUE\tINSERT\tDRAIN")
	for _, r := range report.Queues {
		fmt.Fprintf(tw, "%s\t%v\t%v\n", r.Kind, r.Insert, r.Drain)
	}
	fmt.Fprintln(tw, "\t\t")
	fmt.Fprintln(tw, "TREE\tINSERT\tHEIGHT")
	for _, r := range report.Trees {
		fmt.Fprintf(tw, "%s\t%v\t%d\n", r.Kind, r.Insert, r.Height)
	}
	return tw.Flush()
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	// Setup logging.
	backendLogger := btclog.NewBackend(os.Stdout)
	defer os.Stdout.Sync()
	level, _ := btclog.LevelFromString(cfg.DebugLevel)
	log = backendLogger.Logger("MAIN")
	log.SetLevel(level)
	benchLog := backendLogger.Logger("BNCH")
	benchLog.SetLevel(level)
	bench.UseLogger(benchLog)

	if cfg.Dump {
		return dump(os.Stdout, cfg)
	}

	report, err := bench.Run(bench.Config{
		Count:  cfg.Count,
		Seed:   cfg.Seed,
		Kinds:  cfg.Kinds,
		Sorted: cfg.Sorted,
	})
	if err != nil {
		log.Error(err)
		return err
	}
	return printReport(os.Stdout, report)
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
