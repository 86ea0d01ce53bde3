// internal/commands/root_test.go
package analyzer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDoc = `{
	"timestamp": "2024-06-01T10:00:00",
	"config": {"model": {"name": "twinkle-7b"}},
	"dataset_results": {
		"datasets/mmlu": {
			"results": [
				{"file": "datasets/mmlu/physics.json", "accuracy_mean": 0.8},
				{"file": "datasets/mmlu/biology.json", "accuracy_mean": 0.4}
			]
		}
	}
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootRegistersSubcommands(t *testing.T) {
	want := map[string]bool{"analyze": false, "datasets": false, "browse": false, "check": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("subcommand %s not registered", name)
		}
	}
}

func TestAnalyzeRendersChartAndTable(t *testing.T) {
	path := writeSample(t)
	output, err := runCommand(t, "analyze", path)
	if err != nil {
		t.Fatalf("analyze failed: %v\n%s", err, output)
	}
	for _, want := range []string{"mmlu | categories 1-2 / 2", "physics", "biology", "twinkle-7b @ 2024-06-01T10:00:00"} {
		if !strings.Contains(output, want) {
			t.Fatalf("analyze output missing %q:\n%s", want, output)
		}
	}
}

func TestAnalyzeUnknownDataset(t *testing.T) {
	path := writeSample(t)
	if _, err := runCommand(t, "analyze", "--dataset", "nope", path); err == nil {
		t.Fatal("expected error for unknown dataset")
	}
	analyzeDataset = ""
}

func TestDatasetsListsAverages(t *testing.T) {
	path := writeSample(t)
	output, err := runCommand(t, "datasets", path)
	if err != nil {
		t.Fatalf("datasets failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "mmlu") {
		t.Fatalf("datasets output missing dataset name:\n%s", output)
	}
	// Derived mean of 0.8 and 0.4.
	if !strings.Contains(output, "0.600") {
		t.Fatalf("datasets output missing derived average:\n%s", output)
	}
}

func TestCheckFlagsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write bad file: %v", err)
	}
	output, err := runCommand(t, "check", bad)
	if err == nil {
		t.Fatalf("expected check to fail:\n%s", output)
	}
}

func TestCheckAcceptsValidFile(t *testing.T) {
	path := writeSample(t)
	output, err := runCommand(t, "check", path)
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, output)
	}
}
