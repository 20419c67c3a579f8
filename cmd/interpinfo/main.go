// Command interpinfo prints the layout size table and evaluates the engine
// interpolation functions.
//
// Usage:
//
//	interpinfo [flags] [function-name ...]
//
// Without arguments it sweeps every known function over the t range.
//
// Examples:
//
//	interpinfo lerp
//	interpinfo -from 2 -to 8 -tmin 0 -tmax 1 -steps 4 slerp
//	interpinfo -sizes -count 256
//	interpinfo -cases camera.yaml
//	interpinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-enginemath/interp"
	"github.com/cwbudde/algo-enginemath/size"
)

type funcEntry struct {
	name    string
	formula string
	eval    func(src0, src1, t float32) float32
}

var registry = []funcEntry{
	{"lerp", "src0 + (src1-src0) * (1/t)", interp.Lerp},
	{"slerp", "(src1/max(src0, 1e-6))^t * max(src0, 1e-6)", interp.Slerp},
}

type layoutEntry struct {
	name       string
	components int
	bytes      int
}

var layouts = []layoutEntry{
	{"vec2", 2, size.Vec2},
	{"vec3", 3, size.Vec3},
	{"vec4", 4, size.Vec4},
	{"mat2", 4, size.Mat2},
	{"mat3", 9, size.Mat3},
	{"mat4", 16, size.Mat4},
}

type sweepConfig struct {
	from, to   float64
	tmin, tmax float64
	steps      int
}

var errUsage = errors.New("usage error")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("interpinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	from := fs.Float64("from", 0, "src0 for sweeps")
	to := fs.Float64("to", 10, "src1 for sweeps")
	tmin := fs.Float64("tmin", 1, "first t of the sweep")
	tmax := fs.Float64("tmax", 4, "last t of the sweep")
	steps := fs.Int("steps", 6, "number of sweep points")
	sizes := fs.Bool("sizes", false, "print the layout size table")
	count := fs.Int("count", 1, "element count for the buffer column of -sizes")
	casesPath := fs.String("cases", "", "evaluate the cases listed in a YAML file")
	list := fs.Bool("list", false, "list available function names")
	verbose := fs.Bool("v", false, "enable debug logging on stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: interpinfo [flags] [function-name ...]\n\n")
		fmt.Fprintf(stderr, "Evaluates engine interpolation functions and prints layout sizes.\n")
		fmt.Fprintf(stderr, "Without arguments, sweeps all functions.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  interpinfo lerp\n")
		fmt.Fprintf(stderr, "  interpinfo -from 2 -to 8 -tmin 0 -tmax 1 -steps 4 slerp\n")
		fmt.Fprintf(stderr, "  interpinfo -sizes -count 256\n")
		fmt.Fprintf(stderr, "  interpinfo -cases camera.yaml\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := newLogger(*verbose, stderr)
	defer func() { _ = logger.Sync() }()

	features := cpu.DetectFeatures()
	logger.Debug("block kernel features", zap.String("features", kernelSummary(features)))

	switch {
	case *list:
		return printList(stdout)
	case *sizes:
		return printSizes(stdout, *count, features)
	case *casesPath != "":
		cases, err := loadCases(*casesPath)
		if err != nil {
			return err
		}
		logger.Debug("loaded cases", zap.String("path", *casesPath), zap.Int("count", len(cases)))
		return printCases(stdout, logger, cases)
	}

	if *steps < 1 {
		return fmt.Errorf("%w: -steps must be >= 1, got %d", errUsage, *steps)
	}

	entries := resolveEntries(logger, fs.Args())
	if len(entries) == 0 {
		return fmt.Errorf("%w: no matching functions", errUsage)
	}

	cfg := sweepConfig{from: *from, to: *to, tmin: *tmin, tmax: *tmax, steps: *steps}
	return printSweep(stdout, logger, entries, cfg)
}

// newLogger writes console-encoded entries to w. Warnings are always shown;
// verbose adds debug output.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core)
}

func printList(w io.Writer) error {
	sorted := append([]funcEntry(nil), registry...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range sorted {
		fmt.Fprintf(tw, "%s\t%s\n", e.name, e.formula)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write list: %w", err)
	}
	return nil
}

func resolveEntries(logger *zap.Logger, names []string) []funcEntry {
	if len(names) == 0 {
		return append([]funcEntry(nil), registry...)
	}

	byName := make(map[string]funcEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []funcEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			logger.Warn("unknown function, use -list to see available", zap.String("name", name))
			continue
		}
		result = append(result, e)
	}
	return result
}

func printSizes(w io.Writer, count int, features cpu.Features) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Layout\tComponents\tBytes\tBuffer x%d\n", count)
	fmt.Fprintf(tw, "------\t----------\t-----\t---------\n")
	for _, l := range layouts {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", l.name, l.components, l.bytes, size.Buffer(l.bytes, count))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write size table: %w", err)
	}
	if _, err := fmt.Fprintf(w, "\nblock kernels: %s\n", kernelSummary(features)); err != nil {
		return fmt.Errorf("write size table: %w", err)
	}
	return nil
}

// kernelSummary describes the SIMD features the block kernels dispatch on.
func kernelSummary(f cpu.Features) string {
	return fmt.Sprintf("arch=%s avx2=%t neon=%t", f.Architecture, f.HasAVX2, f.HasNEON)
}

// sweepPoints returns steps values evenly spaced over [tmin, tmax].
func sweepPoints(tmin, tmax float64, steps int) []float64 {
	if steps == 1 {
		return []float64{tmin}
	}
	out := make([]float64, steps)
	for i := range out {
		out[i] = tmin + (tmax-tmin)*float64(i)/float64(steps-1)
	}
	return out
}

func printSweep(w io.Writer, logger *zap.Logger, entries []funcEntry, cfg sweepConfig) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Function\tsrc0\tsrc1\tt\tResult\n")
	fmt.Fprintf(tw, "--------\t----\t----\t-\t------\n")

	src0, src1 := float32(cfg.from), float32(cfg.to)
	for _, e := range entries {
		for _, t := range sweepPoints(cfg.tmin, cfg.tmax, cfg.steps) {
			got := e.eval(src0, src1, float32(t))
			if isNonFinite(got) {
				logger.Debug("non-finite result",
					zap.String("function", e.name),
					zap.Float64("t", t),
					zap.Float32("result", got),
				)
			}
			fmt.Fprintf(tw, "%s\t%g\t%g\t%.4g\t%g\n", e.name, src0, src1, t, got)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write sweep: %w", err)
	}
	return nil
}

func isNonFinite(v float32) bool {
	f := float64(v)
	return math.IsNaN(f) || math.IsInf(f, 0)
}
