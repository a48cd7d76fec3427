package aoc

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Puzzle is embedded in a solver. It hands each part the input it should
// solve: the sample while checking the sample, the real input otherwise.
type Puzzle struct {
	SampleMode bool

	day     int
	part    partSolver
	samples map[string]sample
	inputs  fs.FS
	input   []byte // real input, read once per day
}

// Input returns the sample input in sample mode and the day's puzzle
// input otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.sample().input)
	}
	if p.input == nil {
		p.input = readInput(p.inputs, p.day)
	}
	return p.input
}

// InputString is Input as a string.
func (p *Puzzle) InputString() string {
	return string(p.Input())
}

// Debugf logs at debug level while solving a sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		logger.Debug().Int("day", p.day).Str("part", p.part.Part).Msgf(format, args...)
	}
}

func (p *Puzzle) sample() sample {
	s, ok := p.samples[p.part.Name]
	if !ok {
		logger.Fatal().Str("func", p.part.Name).Msg("no sample found")
	}
	return s
}

func readInput(inputs fs.FS, day int) []byte {
	name := fmt.Sprintf("%d.input", day)
	if inputs == nil {
		logger.Fatal().Int("day", day).Msg("no puzzle inputs embedded")
	}
	b, err := fs.ReadFile(inputs, name)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Fatal().Int("day", day).Msgf("no puzzle input; save it as inputs/%s", name)
	}
	return MustGet(b, err)
}

// ForLines calls onLine with the index and text of each line of input,
// without line endings. It stops at the first error onLine returns.
func ForLines(input string, onLine func(y int, line string) error) error {
	s := bufio.NewScanner(strings.NewReader(input))
	for y := 0; s.Scan(); y++ {
		if err := onLine(y, s.Text()); err != nil {
			return err
		}
	}
	return s.Err()
}
