package aoc

import (
	"errors"
	"flag"
	"slices"
	"testing"
	"testing/fstest"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},

		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=42`,
			want: sample{
				want: "42",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("ParseSample = %v, want %v", got, tt.want)
		}
	}
}

func TestParseSampleNoWant(t *testing.T) {
	if got, ok := parseSample("// D1p1 solves part one."); ok {
		t.Errorf("ParseSample = %v, want no sample", got)
	}
}

const samplesSrc = `package main

/*
want=3

1
2
*/
func (s solver) D1p1() any { return nil }

// want=5
func (s solver) D1p2() any { return nil }

// helper has no sample.
func helper() {}
`

func TestExtractSamples(t *testing.T) {
	got, err := extractSamples([]byte(samplesSrc))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]sample{
		"D1p1": {want: "3", input: "1\n2\n"},
		"D1p2": {want: "5", input: "1\n2\n"},
	}
	if len(got) != len(want) {
		t.Fatalf("extractSamples returned %d samples, want %d: %v", len(got), len(want), got)
	}
	for name, w := range want {
		if got[name] != w {
			t.Errorf("sample %s = %+v, want %+v", name, got[name], w)
		}
	}
}

type testSolver struct {
	*Puzzle
}

func (s testSolver) D2p1() any { return 1 }
func (s testSolver) D2p2() any { return 2 }
func (s testSolver) D10p1() any { return 10 }
func (s testSolver) Helper() any { return nil }

func TestExtractSamplesBadSource(t *testing.T) {
	if _, err := extractSamples([]byte("package main\nfunc (")); err == nil {
		t.Error("extractSamples of broken source succeeded")
	}
}

func TestExtractMethods(t *testing.T) {
	days, err := extractMethods(&testSolver{})
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 2 {
		t.Fatalf("extractMethods found %d days, want 2", len(days))
	}
	d2 := days[2]
	if len(d2) != 2 || d2[0].Name != "D2p1" || d2[1].Name != "D2p2" {
		t.Errorf("day 2 parts = %+v, want D2p1, D2p2", d2)
	}
	if got := days[10][0].fn(); got != 10 {
		t.Errorf("D10p1() = %v, want 10", got)
	}

	if _, err := extractMethods(testSolver{}); err == nil {
		t.Error("extractMethods of non-pointer succeeded")
	}
}

type badSolver struct{}

func (badSolver) D1p1() int { return 1 }

func TestExtractMethodsBadSignature(t *testing.T) {
	if _, err := extractMethods(&badSolver{}); err == nil {
		t.Error("extractMethods accepted D1p1 returning int")
	}
}

func TestPuzzleInput(t *testing.T) {
	p := &Puzzle{
		day:     6,
		samples: map[string]sample{"D6p1": {want: "288", input: "a\nb\n"}},
		part:    partSolver{Name: "D6p1", Part: "1"},
		inputs:  fstest.MapFS{"6.input": {Data: []byte("real\n")}},
	}

	p.SampleMode = true
	if got := p.InputString(); got != "a\nb\n" {
		t.Errorf("sample InputString() = %q, want %q", got, "a\nb\n")
	}

	p.SampleMode = false
	if got := p.InputString(); got != "real\n" {
		t.Errorf("InputString() = %q, want %q", got, "real\n")
	}
}

func TestForLines(t *testing.T) {
	var lines []string
	err := ForLines("a\r\n\nb", func(y int, line string) error {
		if y != len(lines) {
			t.Errorf("line %q has y=%d, want %d", line, y, len(lines))
		}
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a", "", "b"}; !slices.Equal(lines, want) {
		t.Errorf("lines = %q, want %q", lines, want)
	}

	stop := errors.New("stop")
	n := 0
	err = ForLines("1\n2\n3\n", func(y int, line string) error {
		n++
		if line == "2" {
			return stop
		}
		return nil
	})
	if err != stop || n != 2 {
		t.Errorf("ForLines = %v after %d lines; want stop after 2", err, n)
	}
}

func TestAnswers(t *testing.T) {
	a, err := parseAnswers([]byte(`
6:
  "1": "288"
  "2": ""
10:
  "1": "6951"
`))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		day    int
		part   string
		want   string
		wantOK bool
	}{
		{6, "1", "288", true},
		{6, "2", "", false},
		{10, "1", "6951", true},
		{10, "2", "", false},
		{7, "1", "", false},
	}
	for _, tt := range tests {
		got, ok := a.lookup(tt.day, tt.part)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("lookup(%d, %q) = %q, %v; want %q, %v", tt.day, tt.part, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLoadAnswers(t *testing.T) {
	if got := loadAnswers(fstest.MapFS{}); got != nil {
		t.Errorf("loadAnswers without file = %v, want nil", got)
	}
	fsys := fstest.MapFS{answersFile: {Data: []byte("# nothing known yet\n")}}
	if got := loadAnswers(fsys); len(got) != 0 {
		t.Errorf("loadAnswers of comment-only file = %v, want empty", got)
	}
	fsys = fstest.MapFS{answersFile: {Data: []byte("8:\n  \"2\": \"13133452426987\"\n")}}
	if got, ok := loadAnswers(fsys).lookup(8, "2"); !ok || got != "13133452426987" {
		t.Errorf("lookup(8, 2) = %q, %v; want 13133452426987, true", got, ok)
	}
}

func TestLoadEnv(t *testing.T) {
	fset := flag.NewFlagSet("test", flag.ContinueOnError)
	day := fset.Int("day", -1, "")
	part := fset.String("part", "", "")
	fset.Bool("sample", false, "")
	fset.Bool("skip-sample", false, "")
	debug := fset.Bool("debug", false, "")
	fset.String("log-level", "info", "")

	t.Setenv("AOC_DAY", "10")
	t.Setenv("AOC_DEBUG", "true")
	loadEnv(fset)
	if *day != 10 {
		t.Errorf("day = %d, want 10", *day)
	}
	if !*debug {
		t.Errorf("debug = false, want true")
	}

	// Explicit flags still win.
	if err := fset.Parse([]string{"-day", "8", "-part", "2"}); err != nil {
		t.Fatal(err)
	}
	if *day != 8 || *part != "2" {
		t.Errorf("day, part = %d, %q; want 8, %q", *day, *part, "2")
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "b", "c"); got != "b" {
		t.Errorf("Or = %q, want b", got)
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or = %d, want 0", got)
	}
}
