// Package main provides the CLI entrypoint for sssom-tool.
//
// sssom-tool is a small pipeline over SSSOM/TSV mapping sets that:
//   - Reads a mapping set, tolerating and reporting malformed values
//   - Propagates or condenses shared metadata between set and mappings
//   - Recomputes mapping cardinalities
//   - Writes the result back out as SSSOM/TSV
package main

import (
	"flag"
	"fmt"
	"os"

	"sssom-kit/cardinality"
	"sssom-kit/extension"
	"sssom-kit/propagation"
	"sssom-kit/tsv"
)

func main() {
	var (
		output      = flag.String("o", "", "output file (default stdout)")
		propagate   = flag.Bool("propagate", false, "propagate set-level metadata down to mappings")
		condense    = flag.Bool("condense", false, "condense unanimous mapping metadata up to the set")
		cardinalize = flag.Bool("cardinality", false, "recompute mapping_cardinality on every mapping")
		strict      = flag.Bool("strict", false, "reject non-standard metadata fields instead of keeping them")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: sssom-tool [flags] <mappings.sssom.tsv>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *output, *propagate, *condense, *cardinalize, *strict); err != nil {
		fmt.Fprintln(os.Stderr, "sssom-tool:", err)
		os.Exit(1)
	}
}

func run(input, output string, propagate, condense, cardinalize, strict bool) error {
	src, err := os.Open(input)
	if err != nil {
		return err
	}
	defer src.Close()

	reader := tsv.NewReader(src)
	if strict {
		reader.SetPolicy(extension.PolicyDefined)
	}
	ms, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}
	for _, d := range reader.Diagnostics().Warnings {
		fmt.Fprintln(os.Stderr, "sssom-tool:", d)
	}

	if propagate {
		propagation.NewPropagator(propagation.NeverReplace).Propagate(ms, false)
	}
	if condense {
		propagation.NewPropagator(propagation.NeverReplace).Condense(ms, false)
	}
	if cardinalize {
		clf, err := cardinality.NewClassifier()
		if err != nil {
			return err
		}
		clf.Fill(ms)
	}

	dst := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		dst = f
	}
	return tsv.NewWriter(dst).Write(ms)
}
