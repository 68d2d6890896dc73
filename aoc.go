// Package aoc are quick & dirty utilities for solving Advent of Code
// problems: a runner that checks every part against the sample in its doc
// comment before running it on the real input, and the parse and fold
// helpers the solvers share.
package aoc

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
)

// ErrSampleMismatch is returned when a part's answer on its sample input
// differs from the want= value in its doc comment.
var ErrSampleMismatch = errors.New("sample mismatch")

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}, true
	}
	return sample{}, false
}

// extractSamples returns the samples declared in the doc comments of the
// funcs in src, keyed by func name. A want= comment without an input
// reuses the input of the previous sample in the same file.
func extractSamples(filename string, src []byte) (map[string]sample, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s to extract samples: %w", filename, err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// extractSamplesFS extracts the samples from every non-test .go file in
// fsys.
func extractSamplesFS(fsys fs.FS) (map[string]sample, error) {
	names, err := fs.Glob(fsys, "*.go")
	if err != nil {
		return nil, err
	}
	slices.Sort(names)
	samples := make(map[string]sample)
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		got, err := extractSamples(path.Base(name), src)
		if err != nil {
			return nil, err
		}
		for k, v := range got {
			if _, dup := samples[k]; dup {
				return nil, fmt.Errorf("sample for %s declared twice", k)
			}
			samples[k] = v
		}
	}
	return samples, nil
}

// Puzzle is embedded by solvers as *aoc.Puzzle and gives each part access
// to its input.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	inputs  string
	log     zerolog.Logger
	solver  partSolver
	samples map[string]sample
}

// InputPath returns the path of the real input file for the current day.
func (p *Puzzle) InputPath() string {
	return filepath.Join(p.inputs, fmt.Sprintf("day%d.txt", p.day.day))
}

// Text returns the whole input of the current part: the sample in sample
// mode, the contents of InputPath otherwise.
func (p *Puzzle) Text() (string, error) {
	if p.SampleMode {
		s, ok := p.Sample()
		if !ok {
			return "", fmt.Errorf("%w: no sample for %s", ErrMissingInput, p.solver.Name)
		}
		return s.input, nil
	}
	return ReadText(p.InputPath())
}

// Input is Text as bytes.
func (p *Puzzle) Input() ([]byte, error) {
	text, err := p.Text()
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// Lines returns the input split ByLine.
func (p *Puzzle) Lines() ([]string, error) {
	text, err := p.Text()
	if err != nil {
		return nil, err
	}
	return Split(text, ByLine)
}

// Debugf logs at debug level, only while running a sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.log.Debug().Str("part", p.solver.Name).Msgf(format, args...)
	}
}

// Sample returns the sample declared for the running part.
func (p *Puzzle) Sample() (sample, bool) {
	s, ok := p.samples[p.solver.Name]
	return s, ok
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() (any, error)
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods collects the methods of the struct pointed to by x named
// D{day}p{part}. They must have the signature func() (any, error).
func extractMethods(x any) (map[int]day, error) {
	rv := reflect.ValueOf(x)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	v := rv.Elem()
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() (any, error))
		if !ok {
			return nil, fmt.Errorf("solver method %s: got %v; want func() (any, error)", mn, v.Method(i).Type())
		}
		d, err := ParseInt(matches[1])
		if err != nil {
			return nil, fmt.Errorf("solver method %s: %w", mn, err)
		}
		byDays[d] = append(byDays[d], partSolver{
			fn:   fn,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

type options struct {
	day        int
	part       string
	onlySample bool
	skipSample bool
	inputs     string
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInputs     string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInputs, "inputs", "inputs", "directory holding day<N>.txt input files")
}

var initFlags = sync.OnceFunc(flag.Parse)

type runner struct {
	opts options
	out  io.Writer
	log  zerolog.Logger
}

func (r *runner) runDay(p *Puzzle, d day) error {
	p.day = d
	r.log.Debug().Int("year", p.year).Int("day", d.day).Int("parts", len(d.parts)).Msg("running")
	fmt.Fprintln(r.out, "Running day", d.day)
	for _, ps := range d.parts {
		p.solver = ps
		if r.opts.part != "" && ps.Part != r.opts.part {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && r.opts.onlySample {
				continue
			} else if sm && r.opts.skipSample {
				continue
			}
			p.SampleMode = sm
			s, hasSample := p.Sample()
			if sm && !hasSample {
				r.log.Debug().Int("day", d.day).Str("part", ps.Part).Msg("no sample")
				continue
			}
			t0 := time.Now()
			got, err := ps.fn()
			if err != nil {
				if sm {
					return fmt.Errorf("day %d part %s sample: %w", d.day, ps.Part, err)
				}
				return fmt.Errorf("day %d part %s: %w", d.day, ps.Part, err)
			}
			if sm {
				if fmt.Sprint(got) != s.want {
					fmt.Fprintf(r.out, "part %s: %v ❌; want %v\n", ps.Part, got, s.want)
					return fmt.Errorf("day %d part %s: got %v, want %v: %w", d.day, ps.Part, got, s.want, ErrSampleMismatch)
				}
				fmt.Fprintf(r.out, "part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Fprintf(r.out, "part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
	return nil
}

func (r *runner) run(year int, src fs.FS, slvr any) error {
	p := &Puzzle{
		year:   year,
		inputs: r.opts.inputs,
		log:    r.log,
	}
	var err error
	if p.samples, err = extractSamplesFS(src); err != nil {
		return err
	}
	sr := reflect.ValueOf(slvr)
	if sr.Kind() != reflect.Pointer || sr.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("solver: got %T; want pointer to struct", slvr)
	}
	f := sr.Elem().FieldByName("Puzzle")
	if !f.IsValid() || f.Type() != reflect.TypeOf(p) {
		return fmt.Errorf("solver %T does not embed *aoc.Puzzle", slvr)
	}
	f.Set(reflect.ValueOf(p))

	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}

	if r.opts.day != -1 {
		d, ok := days[r.opts.day]
		if !ok {
			return fmt.Errorf("no day %d", r.opts.day)
		}
		return r.runDay(p, d)
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	var errs []error
	for _, n := range dayNums {
		if err := r.runDay(p, days[n]); err != nil {
			r.log.Error().Err(err).Int("day", n).Msg("day failed")
			errs = append(errs, err)
		}
		fmt.Fprintln(r.out)
	}
	return errors.Join(errs...)
}

// Run runs every D{day}p{part} method of slvr, which must be a pointer to
// a struct embedding *Puzzle. src holds the solver's Go source, from which
// the samples are read. Run exits the process if any part fails.
func Run(year int, src fs.FS, slvr any) {
	initFlags()
	r := &runner{
		opts: options{
			day:        flagCurDay,
			part:       flagPart,
			onlySample: flagOnlySample,
			skipSample: flagSkipSample,
			inputs:     flagInputs,
		},
		out: os.Stdout,
		log: newLogger(os.Stderr, flagDebug),
	}
	if err := r.run(year, src, slvr); err != nil {
		r.log.Fatal().Err(err).Int("year", year).Msg("run failed")
	}
}

// Or returns the first non-zero element of list, or else returns the zero T.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
