package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"unitcalc/internal/errors"
)

// runCalc executes the command line in-process, without a config file
// and without recording history unless the arguments ask for it.
func runCalc(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.json")))

	err := cmd.Execute()
	return strings.TrimSpace(stdout.String()), err
}

func writeDefinitions(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "extra.units")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"inch to cm", []string{"convert", "in", "cm"}, "2.54"},
		{"cm to inch", []string{"convert", "cm", "in"}, "0.3937"},
		{"with amount", []string{"convert", "3", "quart", "pint"}, "6"},
		{"decimal amount", []string{"convert", "1.5", "gallon", "quart"}, "6"},
		{"precision", []string{"convert", "-p", "2", "cm", "in"}, "0.39"},
		{"tablespoon", []string{"convert", "-r", "ustbsp", "ustsp"}, "3"},
		{"same unit", []string{"convert", "-r", "7", "cm", "cm"}, "7"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			output, err := runCalc(t, append(test.args, "--no-history")...)
			if err != nil {
				t.Fatalf("calc %v failed: %v", test.args, err)
			}
			if output != test.expected {
				t.Errorf("calc %v = %q, want %q", test.args, output, test.expected)
			}
		})
	}
}

func TestConvertWithDefinitions(t *testing.T) {
	definitions := writeDefinitions(t,
		"# surveying",
		"furlong !",
		"chain 1|10 furlong",
		"rod 1|4 chain",
		"s !",
		"z 0.0 furlong",
	)

	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"convert", "-r", "3", "rod", "furlong"}, "3/40"},
		{[]string{"convert", "3", "rod", "furlong"}, "0.075"},
		{[]string{"convert", "furlong", "rod"}, "40"},
		{[]string{"convert", "inch", "s"}, "2.54 cm / s"},
		{[]string{"convert", "z", "z"}, "NaN"},
		{[]string{"convert", "0", "z", "z"}, "NaN"},
	}

	for _, test := range tests {
		output, err := runCalc(t, append(test.args, "--no-history", "--definitions", definitions)...)
		if err != nil {
			t.Fatalf("calc %v failed: %v", test.args, err)
		}
		if output != test.expected {
			t.Errorf("calc %v = %q, want %q", test.args, output, test.expected)
		}
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		errType errors.Type
	}{
		{"unknown from", []string{"convert", "furlong", "cm"}, errors.TypeNotFound},
		{"unknown to", []string{"convert", "cm", "furlong"}, errors.TypeNotFound},
		{"bad amount", []string{"convert", "abc", "in", "cm"}, errors.TypeInput},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := runCalc(t, append(test.args, "--no-history")...)
			if !errors.IsType(err, test.errType) {
				t.Errorf("calc %v error = %v, want %s", test.args, err, test.errType)
			}
		})
	}

	if _, err := runCalc(t, "convert", "cm", "--no-history"); err == nil {
		t.Errorf("calc convert with one unit should fail")
	}
}

func TestBadDefinitionsFile(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"zero denominator", []string{"broken 1|0 cm"}},
		{"coefficient overflow", []string{"a !", "b 4294967296 a", "c 4294967296 b"}},
		{"power above limit", []string{"huge cm^1000000"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			definitions := writeDefinitions(t, test.lines...)
			_, err := runCalc(t, "convert", "in", "cm", "--no-history", "--definitions", definitions)
			if !errors.IsType(err, errors.TypeParsing) {
				t.Errorf("error = %v, want %s", err, errors.TypeParsing)
			}
		})
	}
}

func TestUnitsCommand(t *testing.T) {
	output, err := runCalc(t, "units", "cm", "inch", "qt")
	if err != nil {
		t.Fatalf("calc units failed: %v", err)
	}
	lines := strings.Split(output, "\n")
	if len(lines) != 3 || lines[0] != "cm = !" || lines[1] != "inch = 2.54 cm" || !strings.HasPrefix(lines[2], "qt = 946.35") {
		t.Errorf("calc units = %q", output)
	}

	output, err = runCalc(t, "units", "--fundamental")
	if err != nil || output != "cm = !" {
		t.Errorf("calc units --fundamental = %q, %v, want %q", output, err, "cm = !")
	}

	output, err = runCalc(t, "units")
	if err != nil || len(strings.Split(output, "\n")) != 25 {
		t.Errorf("calc units listed %d units (%v), want 25", len(strings.Split(output, "\n")), err)
	}

	if _, err := runCalc(t, "units", "furlong"); !errors.IsNotFound(err) {
		t.Errorf("calc units furlong error = %v, want not found", err)
	}
}

func TestHistoryCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.sqlite3")

	for _, args := range [][]string{
		{"convert", "in", "cm"},
		{"convert", "3", "quart", "pint"},
	} {
		if _, err := runCalc(t, append(args, "--history-db", db)...); err != nil {
			t.Fatalf("calc %v failed: %v", args, err)
		}
	}
	if _, err := runCalc(t, "convert", "2", "in", "cm", "--history-db", db, "--no-history"); err != nil {
		t.Fatalf("calc convert --no-history failed: %v", err)
	}

	output, err := runCalc(t, "history", "--history-db", db)
	if err != nil {
		t.Fatalf("calc history failed: %v", err)
	}
	lines := strings.Split(output, "\n")
	if len(lines) != 2 {
		t.Fatalf("calc history = %q, want 2 entries", output)
	}
	if !strings.HasSuffix(lines[0], "3 quart = 6 pint") || !strings.HasSuffix(lines[1], "1 in = 2.54 cm") {
		t.Errorf("calc history = %q", output)
	}

	output, err = runCalc(t, "history", "-n", "1", "--history-db", db)
	if err != nil || len(strings.Split(output, "\n")) != 1 {
		t.Errorf("calc history -n 1 = %q, %v", output, err)
	}

	if _, err := runCalc(t, "history", "-n", "0", "--history-db", db); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("calc history -n 0 error = %v, want %s", err, errors.TypeInput)
	}
}
