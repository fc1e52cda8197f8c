// Command loadcomb expands a load-group definition file into the full set
// of concrete load combinations and writes them as a single CSV table.
//
// Usage:
//
//	loadcomb -f definitions.yaml [-o combinations.csv] [-trees] [-max N]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/structcalc/loadcomb/combine"
	"github.com/structcalc/loadcomb/expand"
	"github.com/structcalc/loadcomb/hierarchy"
	"github.com/structcalc/loadcomb/loaddef"
	"github.com/structcalc/loadcomb/report"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the whole pipeline so tests can drive it with an arbitrary
// writer and argument list; main only maps errors to the exit code.
func run(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("loadcomb", flag.ContinueOnError)
	var (
		defPath = fs.String("f", "", "definition file (.yaml, .yml or .hcl)")
		outPath = fs.String("o", "", "output CSV path (default: stdout)")
		trees   = fs.Bool("trees", false, "print expanded trees instead of CSV")
		maxOut  = fs.Int("max", 0, "cap on generated combinations, 0 = unbounded")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *defPath == "" {
		fs.Usage()

		return fmt.Errorf("loadcomb: -f is required")
	}

	doc, err := loaddef.ParseFile(*defPath)
	if err != nil {
		return err
	}
	template, err := hierarchy.Build(doc.Groups)
	if err != nil {
		return err
	}
	slog.Info("template built", "groups", len(doc.Groups), "combinations", len(doc.Combinations))

	combos, failures := combine.InstantiateAll(template, doc.Combinations)
	for name, ferr := range failures {
		slog.Error("combination skipped", "name", name, "err", ferr)
	}

	// Sorted for reproducible output across runs.
	names := make([]string, 0, len(combos))
	for name := range combos {
		names = append(names, name)
	}
	sort.Strings(names)

	var opts []expand.Option
	if *maxOut > 0 {
		opts = append(opts, expand.WithMaxCombinations(*maxOut))
	}

	var rows []expand.Row
	var terminals []string
	for _, name := range names {
		result, err := expand.Expand(combos[name], opts...)
		if err != nil {
			return fmt.Errorf("loadcomb: expand %s: %w", name, err)
		}
		finals := make([]string, 0, len(result))
		for final := range result {
			finals = append(finals, final)
		}
		sort.Strings(finals)
		for _, final := range finals {
			if *trees {
				if err := report.Fprint(out, result[final]); err != nil {
					return err
				}

				continue
			}
			r, err := expand.Rows(result[final])
			if err != nil {
				return err
			}
			rows = append(rows, r...)
		}
		terminals = append(terminals, finals...)
	}
	slog.Info("expansion complete", "terminal_combinations", len(terminals))
	if *trees {
		return nil
	}

	w := out
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("loadcomb: create %s: %w", *outPath, err)
		}
		defer f.Close()
		w = f
	}

	return report.WriteCSV(w, rows)
}
