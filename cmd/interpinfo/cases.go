package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-enginemath/geom"
	"github.com/cwbudde/algo-enginemath/interp"
)

// caseFile is the YAML layout accepted by -cases:
//
//	cases:
//	  - name: zoom
//	    func: slerp
//	    from: [2]
//	    to: [8]
//	    t: [0.5, 1]
//	  - name: pan
//	    func: lerp
//	    from: [0, 0, 0]
//	    to: [10, 20, 30]
//	    t: [2]
//
// lerp accepts 1, 2 or 3 components; slerp accepts exactly one.
type caseFile struct {
	Cases []evalCase `yaml:"cases"`
}

type evalCase struct {
	Name string    `yaml:"name"`
	Func string    `yaml:"func"`
	From []float32 `yaml:"from"`
	To   []float32 `yaml:"to"`
	T    []float32 `yaml:"t"`
}

var errInvalidCase = errors.New("invalid case")

func loadCases(path string) ([]evalCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cases: %w", err)
	}
	return parseCases(data)
}

func parseCases(data []byte) ([]evalCase, error) {
	var f caseFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse cases: %w", err)
	}
	for i := range f.Cases {
		c := &f.Cases[i]
		c.Func = strings.ToLower(strings.TrimSpace(c.Func))
		if c.Name == "" {
			c.Name = fmt.Sprintf("case-%d", i+1)
		}
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
	}
	return f.Cases, nil
}

func (c evalCase) validate() error {
	if len(c.From) != len(c.To) {
		return fmt.Errorf("%w: from has %d components, to has %d", errInvalidCase, len(c.From), len(c.To))
	}
	if len(c.T) == 0 {
		return fmt.Errorf("%w: no t values", errInvalidCase)
	}
	switch c.Func {
	case "lerp":
		if len(c.From) < 1 || len(c.From) > 3 {
			return fmt.Errorf("%w: lerp takes 1 to 3 components, got %d", errInvalidCase, len(c.From))
		}
	case "slerp":
		if len(c.From) != 1 {
			return fmt.Errorf("%w: slerp takes 1 component, got %d", errInvalidCase, len(c.From))
		}
	default:
		return fmt.Errorf("%w: unknown func %q", errInvalidCase, c.Func)
	}
	return nil
}

// eval returns the result components for a single t.
func (c evalCase) eval(t float32) []float32 {
	switch {
	case c.Func == "slerp":
		return []float32{interp.Slerp(c.From[0], c.To[0], t)}
	case len(c.From) == 1:
		return []float32{interp.Lerp(c.From[0], c.To[0], t)}
	case len(c.From) == 2:
		v := interp.LerpVec2(geom.V2(c.From[0], c.From[1]), geom.V2(c.To[0], c.To[1]), t)
		return v.Components()
	default:
		v := interp.LerpVec3(
			geom.V3(c.From[0], c.From[1], c.From[2]),
			geom.V3(c.To[0], c.To[1], c.To[2]),
			t,
		)
		return v.Components()
	}
}

func printCases(w io.Writer, logger *zap.Logger, cases []evalCase) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Case\tFunction\tsrc0\tsrc1\tt\tResult\n")
	fmt.Fprintf(tw, "----\t--------\t----\t----\t-\t------\n")

	for _, c := range cases {
		for _, t := range c.T {
			got := c.eval(t)
			for _, v := range got {
				if isNonFinite(v) {
					logger.Debug("non-finite result", zap.String("case", c.Name), zap.Float32("t", t))
					break
				}
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%g\t%s\n",
				c.Name, c.Func, formatComponents(c.From), formatComponents(c.To), t, formatComponents(got))
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write cases: %w", err)
	}
	return nil
}

func formatComponents(v []float32) string {
	if len(v) == 1 {
		return fmt.Sprintf("%g", v[0])
	}
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = fmt.Sprintf("%g", c)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
