package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ar90n/primext"
	"github.com/ar90n/primext/config"
	"github.com/ar90n/primext/number"
	"github.com/ar90n/primext/pipeline"
	"github.com/ar90n/primext/platform"
	"github.com/ar90n/primext/text"
	"github.com/ar90n/primext/tuple"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

type runner struct {
	stdin io.Reader
	cfg   config.Config
	log   *logrus.Logger
}

func parseValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value %q", arg)
		}
		values = append(values, v)
	}
	return values, nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (r *runner) before(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return errors.Mark(errors.Wrap(err, "log-level"), primext.ErrInvalidConfig)
	}

	r.cfg = cfg
	r.log.SetOutput(c.App.ErrWriter)
	r.log.SetLevel(level)
	return nil
}

// wrapSettings applies the wrap flags on top of the loaded config and checks
// the result the same way a config file is checked.
func (r *runner) wrapSettings(c *cli.Context) (config.Config, error) {
	cfg := r.cfg
	if c.IsSet("min") {
		cfg.Wrap.Min = c.Float64("min")
	}
	if c.IsSet("max") {
		cfg.Wrap.Max = c.Float64("max")
	}
	if c.IsSet("workers") {
		cfg.Batch.Workers = c.Int("workers")
	}
	if c.IsSet("buffer") {
		cfg.Batch.Buffer = c.Int("buffer")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, errors.Wrap(err, "invalid wrap options")
	}
	return cfg, nil
}

func limit[T any](ctx context.Context, c *cli.Context, inputStream <-chan T) <-chan T {
	if !c.IsSet("limit") {
		return inputStream
	}
	return pipeline.Take(ctx, c.Uint("limit"), inputStream)
}

func (r *runner) wrapAction(c *cli.Context) error {
	cfg, err := r.wrapSettings(c)
	if err != nil {
		return err
	}
	lower, upper := cfg.Wrap.Min, cfg.Wrap.Max

	logger := r.log.WithFields(logrus.Fields{"command": "wrap", "min": lower, "max": upper})
	if c.Bool("batch") {
		return r.wrapBatch(c, logger, lower, upper, cfg.Batch)
	}

	values, err := parseValues(c.Args().Slice())
	if err != nil {
		return err
	}
	ctx := c.Context
	wrapped := pipeline.ToSlice(ctx, limit(ctx, c, pipeline.Map(ctx, pipeline.FromSlice(ctx, values), func(v float64) float64 {
		return number.Wrap(v, lower, upper)
	})))

	w := bufio.NewWriter(c.App.Writer)
	for _, v := range wrapped {
		fmt.Fprintln(w, formatValue(v))
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "failed to write values")
	}
	logger.WithField("count", len(wrapped)).Debug("wrapped values")

	return nil
}

type wrapResult struct {
	line  string
	value float64
	err   error
}

func (r *runner) wrapBatch(c *cli.Context, logger *logrus.Entry, lower, upper float64, batch config.BatchConfig) error {
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	lines, readErr := pipeline.Lines(ctx, batch.Buffer, r.stdin)
	results := pipeline.ParallelMap(ctx, batch.Workers, batch.Buffer, lines, func(line string) wrapResult {
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return wrapResult{line: line, err: err}
		}
		return wrapResult{line: line, value: number.Wrap(v, lower, upper)}
	})

	w := bufio.NewWriter(c.App.Writer)
	count, skipped := 0, 0
	for res := range limit(ctx, c, results) {
		if res.err != nil {
			skipped++
			logger.WithField("line", res.line).Warn("skipping unparsable value")
			continue
		}
		fmt.Fprintln(w, formatValue(res.value))
		count++
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "failed to write values")
	}
	// a limited run leaves the rest of the input unread
	if !c.IsSet("limit") {
		if err := readErr(); err != nil {
			return errors.Wrap(err, "failed to read values")
		}
	}
	logger.WithFields(logrus.Fields{"count": count, "skipped": skipped, "workers": batch.Workers}).Info("batch done")

	return nil
}

func extrema(values []float64, pickMax bool) (float64, error) {
	switch len(values) {
	case 2:
		t := tuple.New(values[0], values[1])
		if pickMax {
			return tuple.Max(t), nil
		}
		return tuple.Min(t), nil
	case 3:
		t := tuple.New3(values[0], values[1], values[2])
		if pickMax {
			return tuple.Max3(t), nil
		}
		return tuple.Min3(t), nil
	case 4:
		t := tuple.New4(values[0], values[1], values[2], values[3])
		if pickMax {
			return tuple.Max4(t), nil
		}
		return tuple.Min4(t), nil
	default:
		return 0, errors.Wrapf(primext.ErrArity, "expected 2 to 4 values, got %d", len(values))
	}
}

func (r *runner) extremaAction(pickMax bool) cli.ActionFunc {
	return func(c *cli.Context) error {
		values, err := parseValues(c.Args().Slice())
		if err != nil {
			return err
		}
		v, err := extrema(values, pickMax)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, formatValue(v))
		return nil
	}
}

func (r *runner) emailAction(c *cli.Context) error {
	for _, addr := range c.Args().Slice() {
		fmt.Fprintf(c.App.Writer, "%s\t%t\n", addr, text.IsValidEmailAddress(addr))
	}
	return nil
}

func (r *runner) wordsAction(c *cli.Context) error {
	var input string
	if c.Args().Len() > 0 {
		input = strings.Join(c.Args().Slice(), " ")
	} else {
		data, err := io.ReadAll(r.stdin)
		if err != nil {
			return errors.Wrap(err, "failed to read stdin")
		}
		input = string(data)
	}

	n, err := text.WordCount(input)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, n)
	return nil
}

func (r *runner) platformAction(c *cli.Context) error {
	p := platform.Current()
	out := c.App.Writer
	fmt.Fprintf(out, "os\t%s/%s\n", p.GOOS, p.GOARCH)
	fmt.Fprintf(out, "desktop\t%t\n", p.IsDesktop())
	fmt.Fprintf(out, "standalone\t%t\n", p.IsDesktopStandalone())
	fmt.Fprintf(out, "editor\t%t\n", p.IsEditor())
	fmt.Fprintf(out, "web\t%t\n", p.IsWeb())
	fmt.Fprintf(out, "mobile\t%t\n", p.IsMobile())

	if !c.Bool("host") {
		return nil
	}
	d, err := platform.Describe(c.Context, p)
	if err != nil {
		r.log.WithError(err).Warn("host details incomplete")
	}
	fmt.Fprintf(out, "host\t%s\n", d.Hostname)
	fmt.Fprintf(out, "platform\t%s %s (%s)\n", d.OS, d.Version, d.Family)
	fmt.Fprintf(out, "kernel\t%s\n", d.KernelVersion)
	if d.Virtualization != "" {
		fmt.Fprintf(out, "virtualization\t%s\n", d.Virtualization)
	}
	return nil
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	r := &runner{
		stdin: stdin,
		cfg:   config.Default(),
		log:   logrus.New(),
	}

	return &cli.App{
		Name:      "primext",
		HelpName:  "primext",
		Usage:     "small numeric, tuple and text helpers",
		Writer:    stdout,
		ErrWriter: stderr,
		Before:    r.before,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "yaml config file",
				EnvVars: []string{"PRIMEXT_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (overrides config)",
				EnvVars: []string{"PRIMEXT_LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "wrap",
				Usage:     "wrap values into [min, max]",
				UsageText: "primext wrap [command options] VALUE...",
				Action:    r.wrapAction,
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  "min",
						Usage: "lower bound (default from config)",
					},
					&cli.Float64Flag{
						Name:  "max",
						Usage: "upper bound (default from config)",
					},
					&cli.BoolFlag{
						Name:  "batch",
						Usage: "read newline separated values from stdin",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "batch workers, 0 for one per CPU (default from config)",
					},
					&cli.IntFlag{
						Name:  "buffer",
						Usage: "batch channel capacity (default from config)",
					},
					&cli.UintFlag{
						Name:  "limit",
						Usage: "stop after this many results",
					},
				},
			},
			{
				Name:      "max",
				Usage:     "largest of 2 to 4 values",
				UsageText: "primext max VALUE VALUE [VALUE [VALUE]]",
				Action:    r.extremaAction(true),
			},
			{
				Name:      "min",
				Usage:     "smallest of 2 to 4 values",
				UsageText: "primext min VALUE VALUE [VALUE [VALUE]]",
				Action:    r.extremaAction(false),
			},
			{
				Name:      "email",
				Usage:     "check email address shape",
				UsageText: "primext email ADDRESS...",
				Action:    r.emailAction,
			},
			{
				Name:      "words",
				Usage:     "count words in the arguments or stdin",
				UsageText: "primext words [TEXT...]",
				Action:    r.wordsAction,
			},
			{
				Name:   "platform",
				Usage:  "show platform predicates",
				Action: r.platformAction,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "host",
						Usage: "include host details",
					},
				},
			},
		},
	}
}

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
