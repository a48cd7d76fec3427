package aoc

import (
	"fmt"
	"io/fs"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/maps"
)

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part} and returns
// them grouped by day, each day's parts in order. x must be a pointer to
// a struct and the methods must have the signature func() any.
func extractMethods(x any) (map[int][]partSolver, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver is %T; want pointer to struct", x)
	}
	v = v.Elem()
	days := map[int][]partSolver{}
	for i := 0; i < v.NumMethod(); i++ {
		name := v.Type().Method(i).Name
		m := methodRx.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("%s has type %v; want func() any", name, v.Method(i).Type())
		}
		day, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		days[day] = append(days[day], partSolver{fn: fn, Part: m[2], Name: name})
	}
	for _, parts := range days {
		slices.SortFunc(parts, func(a, b partSolver) int {
			return strings.Compare(a.Part, b.Part)
		})
	}
	return days, nil
}

// runner holds what every day of a run shares.
type runner struct {
	year    int
	solver  reflect.Value // pointer to the solver struct
	samples map[string]sample
	inputs  fs.FS
	known   answers
}

func (r *runner) runDay(day int, parts []partSolver) {
	fmt.Printf("== %d day %d ==\n", r.year, day)
	p := &Puzzle{
		day:     day,
		samples: r.samples,
		inputs:  r.inputs,
	}
	r.solver.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, ps := range parts {
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		p.part = ps
		if !flagSkipSample {
			got, took := r.solve(p, true)
			want := p.sample().want
			if fmt.Sprint(got) != want {
				fmt.Printf("part %s sample: %v ❌; want %v\n", ps.Part, got, want)
				return
			}
			fmt.Printf("part %s sample: %v ✅ (%v)\n", ps.Part, got, took)
		}
		if flagOnlySample {
			continue
		}
		// Read the input before starting the clock.
		p.SampleMode = false
		p.Input()
		got, took := r.solve(p, false)
		want, ok := r.known.lookup(day, ps.Part)
		switch {
		case !ok:
			fmt.Printf("part %s: %v (took %v)\n", ps.Part, got, took)
		case fmt.Sprint(got) == want:
			fmt.Printf("part %s: %v ✅ (took %v)\n", ps.Part, got, took)
		default:
			fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, want)
		}
	}
}

func (r *runner) solve(p *Puzzle, sampleMode bool) (any, time.Duration) {
	p.SampleMode = sampleMode
	t0 := time.Now()
	got := p.part.fn()
	took := time.Since(t0).Round(time.Microsecond)
	logger.Debug().Int("day", p.day).Str("part", p.part.Part).Bool("sample", sampleMode).Dur("took", took).Send()
	return got, took
}

// Run runs the solver methods of slvr for the given year. src is the
// source file declaring the methods, from which samples are extracted.
// inputs holds the puzzle inputs as <day>.input and, optionally, known
// answers in answers.yaml.
func Run(year int, src []byte, inputs fs.FS, slvr any) {
	initFlags()
	samples, err := extractSamples(src)
	if err != nil {
		logger.Fatal().Err(err).Msg("extracting samples")
	}
	days, err := extractMethods(slvr)
	if err != nil {
		logger.Fatal().Err(err).Msg("finding solver methods")
	}
	r := &runner{
		year:    year,
		solver:  reflect.ValueOf(slvr),
		samples: samples,
		inputs:  inputs,
		known:   loadAnswers(inputs),
	}

	if flagCurDay != -1 {
		parts, ok := days[flagCurDay]
		if !ok {
			logger.Fatal().Msgf("no day %d", flagCurDay)
		}
		r.runDay(flagCurDay, parts)
		return
	}
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for i, day := range dayNums {
		if i > 0 {
			fmt.Println()
		}
		r.runDay(day, days[day])
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
