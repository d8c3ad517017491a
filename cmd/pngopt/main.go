// Command pngopt losslessly re-optimizes PNG files from the command line.
//
// Usage:
//
//	pngopt [-preset N] [-keep-metadata] [-o output.png] input.png
//
// Without -o the input file is rewritten in place. The input is left
// untouched when optimization finds no smaller encoding.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/pngopt"
)

func main() {
	preset := flag.Int("preset", pngopt.DefaultPreset, "effort level 0 (fastest) to 6 (maximum)")
	keepMetadata := flag.Bool("keep-metadata", false, "preserve text and timestamp chunks")
	output := flag.String("o", "", "output path (default: rewrite input in place)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-preset N] [-keep-metadata] [-o output.png] input.png\n", os.Args[0])
		os.Exit(2)
	}
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	inPath := flag.Arg(0)
	outPath := *output
	if outPath == "" {
		outPath = inPath
	}

	if err := run(inPath, outPath, *preset, !*keepMetadata); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "main",
			"input":    inPath,
			"error":    err.Error(),
		}).Error("Optimization failed")
		os.Exit(1)
	}
}

// run optimizes one file. The output file is written even when no bytes
// were saved so that -o always produces a result; in-place rewrites skip
// the write when nothing changed.
func run(inPath, outPath string, preset int, stripMetadata bool) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}

	opts := pngopt.NewOptions()
	opts.Preset = preset
	opts.StripMetadata = stripMetadata

	out, err := pngopt.Optimize(data, opts)
	if err != nil {
		return fmt.Errorf("optimize %s: %w", inPath, err)
	}

	saved := len(data) - len(out)
	if saved == 0 && outPath == inPath {
		logrus.WithFields(logrus.Fields{
			"function": "run",
			"input":    inPath,
			"size":     len(data),
		}).Info("Already optimal, nothing written")
		return nil
	}

	if err := os.WriteFile(outPath, out, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "run",
		"input":    inPath,
		"output":   outPath,
		"in_size":  len(data),
		"out_size": len(out),
		"saved":    saved,
	}).Info("Optimization complete")
	return nil
}
