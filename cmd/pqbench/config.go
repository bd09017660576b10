package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"

	"pq_structures/pq"
)

const (
	defaultCount      = 10000
	defaultDebugLevel = "info"
	maxCount          = 1 << 24
)

// config defines the configuration options for pqbench.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Count      uint64   `short:"n" long:"count" description:"Number of keys inserted into each structure"`
	Seed       int64    `long:"seed" description:"Seed for key shuffling and treap priorities"`
	Kinds      []string `short:"k" long:"kind" description:"Queue kind to run (may be repeated); all kinds by default"`
	Sorted     bool     `long:"sorted" description:"Insert keys in increasing order instead of shuffled"`
	DebugLevel string   `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	Dump       bool     `long:"dump" description:"Dump the internal shape of each structure built from a few keys"`
}

// loadConfig initializes and parses the config using command line options.
func loadConfig() (*config, []string, error) {
	// Default config.
	cfg := config{
		Count:      defaultCount,
		DebugLevel: defaultDebugLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	funcName := "loadConfig"
	if cfg.Count == 0 || cfg.Count > maxCount {
		str := "%s: the count must be between 1 and %d -- parsed [%d]"
		err := fmt.Errorf(str, funcName, maxCount, cfg.Count)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	if _, ok := btclog.LevelFromString(cfg.DebugLevel); !ok {
		str := "%s: the specified debug level [%v] is invalid"
		err := fmt.Errorf(str, funcName, cfg.DebugLevel)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	known := pq.Kinds()
	for _, kind := range cfg.Kinds {
		if !slices.Contains(known, kind) {
			str := "%s: the specified queue kind [%v] is invalid -- " +
				"supported kinds %v"
			err := fmt.Errorf(str, funcName, kind, known)
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
			return nil, nil, err
		}
	}

	return &cfg, remainingArgs, nil
}
