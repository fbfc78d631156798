package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	cldr "golang.org/x/text/unicode/cldr"
)

type generatorConfig struct {
	pkg      string
	out      string
	cldrPath string
	locales  []string
}

type localePayload struct {
	Locale       string
	Weekdays     []string
	Months       []string
	ShortMonths  []string
	WeekStartsOn string
}

var (
	emptyRegion  language.Region
	dayTypes     = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}
	weekdayNames = map[string]string{
		"sun": "Sunday",
		"mon": "Monday",
		"tue": "Tuesday",
		"wed": "Wednesday",
		"thu": "Thursday",
		"fri": "Friday",
		"sat": "Saturday",
	}
)

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "locale-gen: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.pkg, "pkg", "datepicker", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "locale_data.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects subdirectories like main/ and supplemental/)")
	flag.Var(&localeList, "locale", "locale to generate, e.g. nb or en-GB. Repeat flag to add more.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}

	for _, item := range localeList.items {
		locale := strings.ReplaceAll(strings.TrimSpace(item), "_", "-")
		if _, err := language.Parse(locale); err != nil {
			return generatorConfig{}, fmt.Errorf("invalid locale %q: %w", item, err)
		}
		cfg.locales = append(cfg.locales, locale)
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}

	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	firstDays := territoryFirstDays(data.Supplemental())

	payloads := make([]localePayload, 0, len(cfg.locales))
	for _, locale := range cfg.locales {
		payload, err := buildPayload(data, firstDays, locale)
		if err != nil {
			return fmt.Errorf("build locale %s: %w", locale, err)
		}
		payloads = append(payloads, payload)
	}

	sort.Slice(payloads, func(i, j int) bool {
		return payloads[i].Locale < payloads[j].Locale
	})

	source, err := renderSource(cfg.pkg, payloads, firstDays)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}

	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetDirFilter("main", "supplemental")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

// territoryFirstDays indexes supplemental weekData/firstDay by territory.
// The "001" entry is the world default.
func territoryFirstDays(supplemental *cldr.SupplementalData) map[string]string {
	result := make(map[string]string)
	if supplemental == nil || supplemental.WeekData == nil {
		return result
	}

	for _, entry := range supplemental.WeekData.FirstDay {
		if entry == nil || entry.Alt != "" {
			continue
		}
		for _, territory := range strings.Fields(entry.Territories) {
			result[territory] = entry.Day
		}
	}
	return result
}

func buildPayload(data *cldr.CLDR, firstDays map[string]string, locale string) (localePayload, error) {
	payload := localePayload{Locale: locale}

	ldml := findLDML(data, locale)
	if ldml == nil {
		return payload, errors.New("missing LDML data")
	}

	calendar := gregorian(ldml)
	if calendar == nil {
		return payload, errors.New("missing gregorian calendar")
	}

	payload.Months = monthNames(calendar, "wide")
	payload.ShortMonths = monthNames(calendar, "abbreviated")
	payload.Weekdays = dayNames(calendar, "short")

	if len(payload.Months) != 12 || len(payload.ShortMonths) != 12 || len(payload.Weekdays) != 7 {
		return payload, fmt.Errorf("incomplete calendar names (months=%d short=%d days=%d)",
			len(payload.Months), len(payload.ShortMonths), len(payload.Weekdays))
	}

	day := firstDays["001"]
	if territory := localeTerritory(locale); territory != "" {
		if d, ok := firstDays[territory]; ok {
			day = d
		}
	}
	name, ok := weekdayNames[day]
	if !ok {
		name = "Monday"
	}
	payload.WeekStartsOn = name

	return payload, nil
}

func localeTerritory(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	region, confidence := tag.Region()
	if region == emptyRegion || confidence == language.No {
		return ""
	}
	return strings.ToUpper(region.String())
}

func findLDML(data *cldr.CLDR, locale string) *cldr.LDML {
	if data == nil {
		return nil
	}
	candidate := strings.ReplaceAll(locale, "-", "_")
	for candidate != "" {
		if ldml, err := data.LDML(candidate); err == nil && ldml != nil {
			return ldml
		}
		idx := strings.LastIndex(candidate, "_")
		if idx < 0 {
			break
		}
		candidate = candidate[:idx]
	}
	return nil
}

func gregorian(ldml *cldr.LDML) *cldr.Calendar {
	if ldml == nil || ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return nil
	}
	for _, calendar := range ldml.Dates.Calendars.Calendar {
		if calendar != nil && calendar.Type == "gregorian" {
			return calendar
		}
	}
	return nil
}

// monthNames returns the format context names of the given width ordered
// January to December.
func monthNames(calendar *cldr.Calendar, width string) []string {
	if calendar.Months == nil {
		return nil
	}

	names := make([]string, 12)
	found := 0
	for _, context := range calendar.Months.MonthContext {
		if context == nil || context.Type != "format" {
			continue
		}
		for _, w := range context.MonthWidth {
			if w == nil || w.Type != width {
				continue
			}
			for _, month := range w.Month {
				if month == nil || month.Alt != "" || month.Yeartype != "" {
					continue
				}
				n, err := strconv.Atoi(month.Type)
				if err != nil || n < 1 || n > 12 || names[n-1] != "" {
					continue
				}
				names[n-1] = month.Data()
				found++
			}
		}
	}

	if found != 12 {
		return nil
	}
	return names
}

// dayNames returns the format context names of the given width ordered
// Sunday to Saturday.
func dayNames(calendar *cldr.Calendar, width string) []string {
	if calendar.Days == nil {
		return nil
	}

	byType := make(map[string]string, 7)
	for _, context := range calendar.Days.DayContext {
		if context == nil || context.Type != "format" {
			continue
		}
		for _, w := range context.DayWidth {
			if w == nil || w.Type != width {
				continue
			}
			for _, day := range w.Day {
				if day == nil || day.Alt != "" {
					continue
				}
				if _, exists := byType[day.Type]; !exists {
					byType[day.Type] = day.Data()
				}
			}
		}
	}

	names := make([]string, 0, 7)
	for _, t := range dayTypes {
		name, ok := byType[t]
		if !ok {
			return nil
		}
		names = append(names, name)
	}
	return names
}

func renderSource(pkg string, payloads []localePayload, firstDays map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by locale-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("import \"time\"\n\n")

	buf.WriteString("var builtinLocales = map[string]Locale{\n")
	for _, payload := range payloads {
		fmt.Fprintf(&buf, "\t%q: {\n", payload.Locale)
		fmt.Fprintf(&buf, "\t\tWeekdays: %s,\n", stringSlice(payload.Weekdays))
		fmt.Fprintf(&buf, "\t\tMonths: %s,\n", stringSlice(payload.Months))
		fmt.Fprintf(&buf, "\t\tShortMonths: %s,\n", stringSlice(payload.ShortMonths))
		fmt.Fprintf(&buf, "\t\tWeekStartsOn: WeekStart(time.%s),\n", payload.WeekStartsOn)
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n\n")

	buf.WriteString("// territories whose week does not start on Monday, from CLDR weekData/firstDay\n")
	buf.WriteString("var builtinFirstDays = map[time.Weekday]string{\n")
	grouped := groupTerritories(firstDays)
	for _, day := range dayTypes {
		territories, ok := grouped[day]
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, "\ttime.%s: %q,\n", weekdayNames[day], strings.Join(territories, " "))
	}
	buf.WriteString("}\n")

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return formatted, nil
}

// groupTerritories inverts firstDays into sorted territory lists per day.
// Monday territories and the "001" world entry are left out; Monday is the
// default.
func groupTerritories(firstDays map[string]string) map[string][]string {
	grouped := make(map[string][]string)
	for territory, day := range firstDays {
		if day == "mon" || territory == "001" {
			continue
		}
		if _, ok := weekdayNames[day]; !ok {
			continue
		}
		grouped[day] = append(grouped[day], territory)
	}
	for _, territories := range grouped {
		sort.Strings(territories)
	}
	return grouped
}

func stringSlice(values []string) string {
	quoted := make([]string, len(values))
	for i, value := range values {
		quoted[i] = strconv.Quote(value)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
