// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"eratos/internal/cliutil"
	"eratos/internal/output"
	"eratos/internal/sieve"
)

// MaxLimit is the largest limit the sieve accepts.
const MaxLimit uint = math.MaxUint

// ErrInvalidLimit marks a limit outside [2, MaxLimit] or one that does not parse.
var ErrInvalidLimit = sieve.ErrInvalidLimit

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Limit    uint
	LimitSet bool // false means the limit still has to be prompted for

	// Output
	File   string // "" = console; "-" = stdout in CSV form
	Output string // "" = text for console, csv for files

	// Resources
	MaxMemory uint64 // sieve budget in bytes (0 = physical memory)

	// Misc
	NoPrompt bool
	Quiet    bool
	Version  bool
}

// Format resolves the effective output format.
func (o Options) Format() string {
	switch {
	case o.Output != "":
		return o.Output
	case o.File != "":
		return output.FormatCSV
	}
	return output.FormatText
}

// ParseLimit parses a decimal limit and checks it lies in [2, MaxLimit].
func ParseLimit(s string) (uint, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseUint(s, 10, bits.UintSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s exceeds %d", ErrInvalidLimit, s, MaxLimit)
		}
		return 0, fmt.Errorf("%w: %q is not a whole number between 2 and %d", ErrInvalidLimit, s, MaxLimit)
	}
	if v < 2 {
		return 0, fmt.Errorf("%w: limit must be between 2 and %d, got %d", ErrInvalidLimit, MaxLimit, v)
	}
	return uint(v), nil
}

// byteSize accepts plain bytes or a K/M/G suffix (powers of 1024).
type byteSize struct{ dst *uint64 }

func (b byteSize) String() string {
	if b.dst == nil {
		return "0"
	}
	return strconv.FormatUint(*b.dst, 10)
}

func (b byteSize) Set(s string) error {
	s = strings.ToUpper(strings.TrimSpace(s))
	shift := 0
	switch {
	case strings.HasSuffix(s, "K"):
		shift = 10
	case strings.HasSuffix(s, "M"):
		shift = 20
	case strings.HasSuffix(s, "G"):
		shift = 30
	}
	if shift > 0 {
		s = s[:len(s)-1]
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid size %q", s)
	}
	if v > math.MaxUint64>>shift {
		return fmt.Errorf("size %q overflows", s)
	}
	*b.dst = v << shift
	return nil
}

// Register wires every flag onto fs and returns the raw limit string, which
// ParseArgs validates after fs.Parse.
func Register(fs *flag.FlagSet, o *Options) *string {
	limitArg := ""
	fs.StringVar(&limitArg, "limit", "", "upper limit for prime generation [*]")
	fs.StringVar(&limitArg, "n", "", "alias of --limit")

	fs.StringVar(&o.File, "file", "", "output file (.csv, .csv.gz, or '-' for stdout)")
	fs.StringVar(&o.File, "f", "", "alias of --file")
	fs.StringVar(&o.Output, "output", "", "output: text | csv [text for console, csv for files]")
	fs.StringVar(&o.Output, "o", "", "alias of --output")

	fs.Var(byteSize{dst: &o.MaxMemory}, "max-memory", "sieve memory budget, e.g. 512M (0=physical memory) [0]")

	fs.BoolVar(&o.NoPrompt, "no-prompt", false, "never prompt on stdin [false]")
	fs.BoolVar(&o.Quiet, "quiet", false, "suppress warnings and status lines; prompts still show [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")

	return &limitArg
}

// ParseArgs registers and parses all flags, returns an Options struct.
// -h/--help yields flag.ErrHelp.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	limitArg := Register(fs, &opt)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}
	if *limitArg != "" {
		n, err := ParseLimit(*limitArg)
		if err != nil {
			return opt, err
		}
		opt.Limit, opt.LimitSet = n, true
	}

	switch len(posArgs) {
	case 0:
	case 1:
		if opt.LimitSet {
			return opt, fmt.Errorf("limit given twice (--limit and %q)", posArgs[0])
		}
		n, err := ParseLimit(posArgs[0])
		if err != nil {
			return opt, err
		}
		opt.Limit, opt.LimitSet = n, true
	default:
		return opt, fmt.Errorf("unexpected arguments: %s", strings.Join(posArgs[1:], " "))
	}

	return opt, Validate(opt)
}

// Validate applies CLI invariants that hold regardless of prompting.
func Validate(o Options) error {
	switch o.Output {
	case "", output.FormatText, output.FormatCSV:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.NoPrompt && !o.LimitSet {
		return errors.New("--no-prompt requires --limit or a positional limit")
	}
	if o.LimitSet && o.Limit < 2 {
		return fmt.Errorf("%w: limit must be between 2 and %d", ErrInvalidLimit, MaxLimit)
	}
	return nil
}
