// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/phom/archive"
	"github.com/katalvlaran/phom/barcode"
	"github.com/katalvlaran/phom/features"
	"github.com/katalvlaran/phom/persistence"
	"github.com/katalvlaran/phom/render"
	"github.com/katalvlaran/phom/simplicial"
)

func loggerFor(cmd *cobra.Command) (*slog.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	asJSON, _ := cmd.Flags().GetBool("log-json")

	return newLogger(cmd.ErrOrStderr(), level, asJSON)
}

func runCompute(cmd *cobra.Command, args []string) error {
	log, err := loggerFor(cmd)
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("config")
	output, _ := cmd.Flags().GetString("output")

	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	rec, err := execute(cmd.Context(), cfg, log)
	if err != nil {
		log.Error("compute failed", "config", path, "error", err)
		return err
	}

	switch output {
	case "json":
		data, err := archive.EncodeRecord(rec)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	case "text", "":
		return writeText(cmd.OutOrStdout(), rec)
	default:
		return fmt.Errorf("%w: unknown output %q", errConfig, output)
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	log, err := loggerFor(cmd)
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("config")

	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	c, err := cfg.BuildComplex()
	if err != nil {
		return err
	}
	if err := simplicial.Validate(c); err != nil {
		log.Error("invalid complex", "error", err)
		return err
	}
	cmd.Printf("ok: %s simplices, counts by dimension %v\n", humanize.Comma(int64(c.Len())), c.CountByDimension())

	return nil
}

// execute runs one config end to end: build, compute, archive, plot.
func execute(ctx context.Context, cfg *Config, log *slog.Logger) (archive.Record, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	opts, err := cfg.Options()
	if err != nil {
		return archive.Record{}, err
	}
	plotOpts, err := cfg.Plot.RenderOptions()
	if err != nil {
		return archive.Record{}, err
	}
	c, err := cfg.BuildComplex()
	if err != nil {
		return archive.Record{}, err
	}
	input, err := cfg.Input()
	if err != nil {
		return archive.Record{}, err
	}
	log.Debug("complex built",
		"simplices", humanize.Comma(int64(c.Len())),
		"vertices", humanize.Comma(int64(c.NumVertices())),
		"max_dim", c.MaxDimension())

	start := time.Now()
	bc, h, err := persistence.Compute(c, input, opts...)
	if err != nil {
		return archive.Record{}, err
	}
	defer h.Release()
	log.Info("barcode computed",
		"handle", h.ID(),
		"bars", humanize.Comma(int64(bc.Len())),
		"shape", bc.Shape(),
		"elapsed", time.Since(start))

	rec := archive.Record{
		RunID:   cfg.Archive.RunID,
		Step:    cfg.Archive.Step,
		Barcode: bc,
		Metrics: metrics(bc),
	}
	if rec.RunID == "" {
		rec.RunID = archive.NewRunID()
	}

	if cfg.Archive.Kind != "" {
		if err := save(ctx, cfg.Archive, rec, log); err != nil {
			return archive.Record{}, err
		}
	}
	if err := plot(cfg.Plot, plotOpts, bc, log); err != nil {
		return archive.Record{}, err
	}

	return rec, nil
}

// metrics summarizes each dimension by its total and largest finite length.
func metrics(bc barcode.Barcode) map[string]float64 {
	m := make(map[string]float64, 2*len(bc.Dims))
	for d := range bc.Dims {
		m[fmt.Sprintf("h%d.total", d)] = features.SumLengths(bc, d)
		m[fmt.Sprintf("h%d.max", d)] = features.TopKLengths(bc, d, 1)[0]
	}
	return m
}

func save(ctx context.Context, ac ArchiveConfig, rec archive.Record, log *slog.Logger) error {
	var store archive.Store
	if ac.Kind == "badger" {
		store = archive.NewBadgerStore(archive.BadgerOptions{
			Dir:      ac.Path,
			InMemory: ac.Path == "",
			Logger:   badgerLogger{log: log},
		})
	} else {
		s, err := archive.NewStore(ac.Kind, ac.Path)
		if err != nil {
			return err
		}
		store = s
	}
	if err := store.Init(ctx); err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(ctx, rec); err != nil {
		return fmt.Errorf("archive %s: %w", ac.Kind, err)
	}
	log.Info("barcode archived", "store", ac.Kind, "run", rec.RunID, "step", rec.Step)

	return nil
}

func plot(pc PlotConfig, opts []render.Option, bc barcode.Barcode, log *slog.Logger) error {
	if pc.Diagram != "" {
		var buf bytes.Buffer
		if err := render.Diagram(&buf, bc, opts...); err != nil {
			return fmt.Errorf("plot diagram: %w", err)
		}
		if err := writeFile(pc.Diagram, buf.Bytes(), log); err != nil {
			return err
		}
	}
	if pc.Bars != "" {
		var buf bytes.Buffer
		if err := render.Bars(&buf, bc, pc.BarsDim, opts...); err != nil {
			return fmt.Errorf("plot bars: %w", err)
		}
		if err := writeFile(pc.Bars, buf.Bytes(), log); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, data []byte, log *slog.Logger) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Info("plot written", "path", path, "size", humanize.Bytes(uint64(len(data))))
	return nil
}

// writeText prints one line per dimension followed by its bars.
func writeText(w io.Writer, rec archive.Record) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "run %s step %d\n", rec.RunID, rec.Step)
	for d, bars := range rec.Barcode.Dims {
		fmt.Fprintf(&sb, "H%d: %s bars, total persistence %s\n",
			d, humanize.Comma(int64(len(bars))), humanize.Ftoa(rec.Metrics[fmt.Sprintf("h%d.total", d)]))
		for _, b := range bars {
			fmt.Fprintf(&sb, "  [%s, %s)\n", formatValue(b.Birth), formatValue(b.Death))
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func formatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	default:
		return humanize.Ftoa(v)
	}
}
