package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestList(t *testing.T) {
	out, _, err := runCLI(t, "-list")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "lerp") || !strings.HasPrefix(lines[1], "slerp") {
		t.Fatalf("unexpected list output:\n%s", out)
	}
}

func TestSizes(t *testing.T) {
	out, _, err := runCLI(t, "-sizes", "-count", "10")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range [][]string{
		{"vec2", "2", "8", "80"},
		{"vec3", "3", "12", "120"},
		{"mat3", "9", "36", "360"},
		{"mat4", "16", "64", "640"},
	} {
		if !containsRow(out, want) {
			t.Fatalf("size table missing row %v:\n%s", want, out)
		}
	}
}

func TestSizesReportsKernelFeatures(t *testing.T) {
	out, _, err := runCLI(t, "-sizes")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "block kernels: " + kernelSummary(cpu.DetectFeatures())
	if !strings.Contains(out, want) {
		t.Fatalf("missing %q:\n%s", want, out)
	}
}

func TestKernelSummary(t *testing.T) {
	tests := []struct {
		name string
		f    cpu.Features
		want string
	}{
		{name: "amd64 avx2", f: cpu.Features{Architecture: "amd64", HasAVX2: true}, want: "arch=amd64 avx2=true neon=false"},
		{name: "arm64 neon", f: cpu.Features{Architecture: "arm64", HasNEON: true}, want: "arch=arm64 avx2=false neon=true"},
		{name: "generic", f: cpu.Features{Architecture: "riscv64"}, want: "arch=riscv64 avx2=false neon=false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kernelSummary(tt.f); got != tt.want {
				t.Fatalf("kernelSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVerboseLogsKernelFeatures(t *testing.T) {
	_, logs, err := runCLI(t, "-v", "-list")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(logs, "block kernel features") {
		t.Fatalf("expected kernel feature log, got:\n%s", logs)
	}
}

func TestSweep(t *testing.T) {
	out, _, err := runCLI(t, "-from", "0", "-to", "10", "-tmin", "1", "-tmax", "2", "-steps", "2", "lerp")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !containsRow(out, []string{"lerp", "0", "10", "1", "10"}) {
		t.Fatalf("missing t=1 row:\n%s", out)
	}
	if !containsRow(out, []string{"lerp", "0", "10", "2", "5"}) {
		t.Fatalf("missing t=2 row:\n%s", out)
	}
	if strings.Contains(out, "slerp") {
		t.Fatalf("unexpected slerp rows:\n%s", out)
	}
}

func TestSweepSlerpSinglePoint(t *testing.T) {
	out, _, err := runCLI(t, "-from", "2", "-to", "8", "-tmin", "0.5", "-steps", "1", "slerp")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !containsRow(out, []string{"slerp", "2", "8", "0.5", "4"}) {
		t.Fatalf("missing slerp row:\n%s", out)
	}
}

func TestSweepZeroTLogsNonFinite(t *testing.T) {
	out, logs, err := runCLI(t, "-v", "-tmin", "0", "-steps", "1", "lerp")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !containsRow(out, []string{"lerp", "0", "10", "0", "+Inf"}) {
		t.Fatalf("missing +Inf row:\n%s", out)
	}
	if !strings.Contains(logs, "non-finite result") {
		t.Fatalf("expected debug log, got:\n%s", logs)
	}
}

func TestUnknownFunction(t *testing.T) {
	_, logs, err := runCLI(t, "nope")
	if !errors.Is(err, errUsage) {
		t.Fatalf("err = %v, want errUsage", err)
	}
	if !strings.Contains(logs, "unknown function") || !strings.Contains(logs, "nope") {
		t.Fatalf("expected warning, got:\n%s", logs)
	}
}

func TestInvalidSteps(t *testing.T) {
	if _, _, err := runCLI(t, "-steps", "0"); !errors.Is(err, errUsage) {
		t.Fatalf("err = %v, want errUsage", err)
	}
}

func TestCasesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	data := `cases:
  - name: zoom
    func: slerp
    from: [2]
    to: [8]
    t: [0.5]
  - name: pan
    func: LERP
    from: [0, 0]
    to: [10, 20]
    t: [2]
  - func: lerp
    from: [1, -1, 0]
    to: [5, 3, -8]
    t: [4]
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, "-cases", path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !containsRow(out, []string{"zoom", "slerp", "2", "8", "0.5", "4"}) {
		t.Fatalf("missing zoom row:\n%s", out)
	}
	if !strings.Contains(out, "(5, 10)") {
		t.Fatalf("missing pan result:\n%s", out)
	}
	if !strings.Contains(out, "case-3") || !strings.Contains(out, "(2, 0, -2)") {
		t.Fatalf("missing unnamed vec3 case:\n%s", out)
	}
}

func TestParseCasesRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "mismatched components", data: "cases:\n  - func: lerp\n    from: [1, 2]\n    to: [1]\n    t: [1]\n"},
		{name: "no t", data: "cases:\n  - func: lerp\n    from: [1]\n    to: [2]\n"},
		{name: "vector slerp", data: "cases:\n  - func: slerp\n    from: [1, 2]\n    to: [3, 4]\n    t: [1]\n"},
		{name: "four components", data: "cases:\n  - func: lerp\n    from: [1, 2, 3, 4]\n    to: [1, 2, 3, 4]\n    t: [1]\n"},
		{name: "unknown func", data: "cases:\n  - func: cubic\n    from: [1]\n    to: [2]\n    t: [1]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCases([]byte(tt.data))
			if !errors.Is(err, errInvalidCase) {
				t.Fatalf("err = %v, want errInvalidCase", err)
			}
		})
	}
}

func TestParseCasesMalformedYAML(t *testing.T) {
	_, err := parseCases([]byte("cases: [unterminated"))
	if err == nil || errors.Is(err, errInvalidCase) {
		t.Fatalf("err = %v, want parse error", err)
	}
}

func TestMissingCasesFile(t *testing.T) {
	_, _, err := runCLI(t, "-cases", filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestSweepPoints(t *testing.T) {
	got := sweepPoints(1, 4, 4)
	want := []float64{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sweepPoints()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// containsRow reports whether some line of out has exactly the given fields.
func containsRow(out string, fields []string) bool {
	for _, line := range strings.Split(out, "\n") {
		got := strings.Fields(line)
		if len(got) != len(fields) {
			continue
		}
		match := true
		for i := range got {
			if got[i] != fields[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
