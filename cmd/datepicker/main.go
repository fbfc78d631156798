package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	datepicker "github.com/goliatone/go-datepicker"
)

const usage = `usage: datepicker [flags] <command> [args]

commands:
  render <RFC3339|now>   format a timestamp with the configured pattern
  parse <text>           parse text with the configured pattern
  grid [yyyy-mm]         print the six week calendar grid of a month
  weeks [yyyy-mm]        print the Sunday based weeks of a month
  calendar [yyyy-mm]     render a month through a text/template (see -template)
`

const calendarTemplate = `{{month_name . .Month}} {{.Month.Year}}
{{range weekday_names .}}{{printf "%5s" .}}{{end}}
{{range calendar_weeks . .Month}}{{range .}}{{if in_month . $.Month}}{{printf "%5d" .Number}}{{else}}{{printf "%5s" "."}}{{end}}{{end}}
{{end}}`

type cliFlags struct {
	config   string
	pattern  string
	locale   string
	monday   bool
	logLevel string
	template string
}

// calendarData is the data handed to calendar templates
type calendarData struct {
	Locale string
	Month  time.Time
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "datepicker: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("datepicker", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	var flags cliFlags
	fs.StringVar(&flags.config, "config", "", "path to a TOML configuration file")
	fs.StringVar(&flags.pattern, "pattern", "", "pattern, e.g. \"dd MMM yyyy\" (overrides config)")
	fs.StringVar(&flags.locale, "locale", "", "locale code, e.g. nb or en-GB (overrides config)")
	fs.BoolVar(&flags.monday, "monday", false, "take locale names from the monday localization tables")
	fs.StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	fs.StringVar(&flags.template, "template", "", "text/template file used by the calendar command")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("missing command")
	}

	cfg, err := loadFileConfig(flags.config)
	if err != nil {
		return err
	}
	applyFlags(&cfg, flags)

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))

	opts, err := cfg.options(logger)
	if err != nil {
		return err
	}

	pickerCfg, err := datepicker.NewConfig(opts...)
	if err != nil {
		return err
	}

	picker, err := pickerCfg.BuildPicker()
	if err != nil {
		return err
	}

	logger.Debug("picker ready",
		slog.String("pattern", picker.Format().Pattern()),
		slog.String("locale", cfg.Locale),
		slog.String("week_starts_on", picker.Locale().WeekStartsOn.String()),
	)

	command, rest := fs.Arg(0), fs.Args()[1:]
	switch command {
	case "render":
		return runRender(stdout, picker, rest)
	case "parse":
		return runParse(stdout, picker, rest)
	case "grid":
		return runGrid(stdout, picker, rest)
	case "weeks":
		return runWeeks(stdout, picker, rest)
	case "calendar":
		helpers := datepicker.TemplateHelpers(pickerCfg.LocaleSet(), datepicker.HelperConfig{
			DefaultLocale: pickerCfg.LocaleCode,
		})
		return runCalendar(stdout, picker, helpers, flags.template, cfg.Locale, rest)
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func applyFlags(cfg *fileConfig, flags cliFlags) {
	if flags.pattern != "" {
		cfg.Pattern = flags.pattern
	}
	if flags.locale != "" {
		cfg.Locale = flags.locale
	}
	if flags.monday {
		cfg.UseMonday = true
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
}

func runRender(w io.Writer, picker *datepicker.Picker, args []string) error {
	if len(args) != 1 {
		return errors.New("render expects exactly one timestamp")
	}

	when := time.Now()
	if args[0] != "now" {
		parsed, err := time.Parse(time.RFC3339, args[0])
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		when = parsed
	}

	_, err := fmt.Fprintln(w, picker.Format().Render(when))
	return err
}

func runParse(w io.Writer, picker *datepicker.Picker, args []string) error {
	if len(args) == 0 {
		return errors.New("parse expects text")
	}

	res := picker.Input(strings.Join(args, " "))
	switch {
	case res.Valid:
		_, err := fmt.Fprintln(w, res.Value.Format(time.RFC3339))
		return err
	case res.Unavailable:
		return fmt.Errorf("%q is outside the selectable range", res.Text)
	case res.Completion != "":
		return fmt.Errorf("%q is incomplete, did you mean %q?", res.Text, res.Completion)
	default:
		return fmt.Errorf("%q does not match %q", res.Text, picker.Format().Pattern())
	}
}

func browseTo(picker *datepicker.Picker, args []string) error {
	if len(args) == 0 {
		return nil
	}
	month, err := time.Parse("2006-01", args[0])
	if err != nil {
		return fmt.Errorf("month: %w", err)
	}
	current := picker.BrowseDate()
	diff := (month.Year()-current.Year())*12 + int(month.Month()) - int(current.Month())
	picker.Browse(diff)
	return nil
}

func runGrid(w io.Writer, picker *datepicker.Picker, args []string) error {
	if err := browseTo(picker, args); err != nil {
		return err
	}
	locale := picker.Locale()
	browse := picker.BrowseDate()
	fmt.Fprintf(w, "%s %d\n", locale.Month(browse.Month()), browse.Year())
	return printDays(w, locale.OrderedWeekdays(), picker.Grid(), browse.Month())
}

func runWeeks(w io.Writer, picker *datepicker.Picker, args []string) error {
	if err := browseTo(picker, args); err != nil {
		return err
	}
	locale := picker.Locale()
	browse := picker.BrowseDate()
	fmt.Fprintf(w, "%s %d\n", locale.Month(browse.Month()), browse.Year())

	header := locale.Weekdays[:]
	var days []datepicker.CalendarDay
	for _, week := range picker.Weeks() {
		days = append(days, week...)
	}
	return printDays(w, header, days, browse.Month())
}

func runCalendar(w io.Writer, picker *datepicker.Picker, helpers template.FuncMap, path, locale string, args []string) error {
	if err := browseTo(picker, args); err != nil {
		return err
	}

	tmpl := template.New("calendar").Funcs(helpers)
	var err error
	if path != "" {
		tmpl, err = tmpl.ParseFiles(path)
		if err == nil {
			tmpl = tmpl.Lookup(filepath.Base(path))
		}
	} else {
		tmpl, err = tmpl.Parse(calendarTemplate)
	}
	if err != nil {
		return fmt.Errorf("calendar template: %w", err)
	}

	return tmpl.Execute(w, calendarData{Locale: locale, Month: picker.BrowseDate()})
}

// printDays writes days seven per row; days of other months are bracketed
func printDays(w io.Writer, header []string, days []datepicker.CalendarDay, month time.Month) error {
	for _, name := range header {
		fmt.Fprintf(w, "%5s", name)
	}
	fmt.Fprintln(w)

	for i, day := range days {
		cell := fmt.Sprintf("%d", day.Number)
		if day.Month != month {
			cell = "(" + cell + ")"
		}
		fmt.Fprintf(w, "%5s", cell)
		if i%7 == 6 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}
