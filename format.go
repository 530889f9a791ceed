package locale

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// clockStyle selects how a time of day is rendered.
type clockStyle int

const (
	clock24 clockStyle = iota // 18:05
	clock12                   // 6:05 pm
	clockHalfDay              // 下午6:05
)

// conventions captures the per-locale formatting quirks in one place. The
// record is resolved once at Locale construction so the formatting paths stay
// free of scattered code checks.
type conventions struct {
	clock         clockStyle
	listSeparator string
	groupDigits   bool
	absoluteDates bool // locale never uses relative phrasing
}

func conventionsFor(code string) conventions {
	conv := conventions{clock: clock24, listSeparator: ", "}

	switch code {
	case "en", "en_US":
		conv.clock = clock12
		conv.groupDigits = true
	case "zh_CN":
		conv.clock = clockHalfDay
	}

	switch {
	case strings.HasPrefix(code, "ru"):
		conv.absoluteDates = true
	case strings.HasPrefix(code, "fa"):
		conv.listSeparator = " و " // joined with the Persian conjunction "و"
	}

	return conv
}

// formatConfig holds the resolved options of a formatting call.
type formatConfig struct {
	now       time.Time
	gmtOffset int
	relative  bool
	shorter   bool
	full      bool
	weekday   bool
}

// FormatOption configures FormatDate and FormatDay calls.
type FormatOption func(*formatConfig)

// WithGMTOffset shifts the rendered date into the caller's timezone,
// expressed as minutes west of GMT (the offset is subtracted).
func WithGMTOffset(minutes int) FormatOption {
	return func(cfg *formatConfig) { cfg.gmtOffset = minutes }
}

// Absolute disables relative phrasing ("2 minutes ago", "yesterday") and
// renders an absolute date instead.
func Absolute() FormatOption {
	return func(cfg *formatConfig) { cfg.relative = false }
}

// Shorter drops the time of day from absolute templates, e.g.
// "March 1" instead of "March 1 at 9:30 am".
func Shorter() FormatOption {
	return func(cfg *formatConfig) { cfg.shorter = true }
}

// FullFormat forces the full date template ("July 10, 1980") regardless of
// how recent the date is.
func FullFormat() FormatOption {
	return func(cfg *formatConfig) { cfg.full = true }
}

// WithReferenceTime fixes the "now" a relative date is computed against.
// Defaults to the wall clock; pass a fixed time for deterministic output.
func WithReferenceTime(now time.Time) FormatOption {
	return func(cfg *formatConfig) { cfg.now = now }
}

// WithoutWeekday omits the weekday from FormatDay output.
func WithoutWeekday() FormatOption {
	return func(cfg *formatConfig) { cfg.weekday = false }
}

// FormatDate renders a GMT timestamp as a localized, human-friendly string.
// Recent dates read as elapsed time ("2 minutes ago"), older ones as
// progressively more absolute dates ("yesterday at 5:00 pm", "Monday at
// 9:00 am", "March 1 at 9:30 am", "January 10, 2023 at 9:30 am"). Every
// template passes through the catalog, so translations can rephrase them
// wholesale.
func (l *Locale) FormatDate(date time.Time, opts ...FormatOption) string {
	cfg := formatConfig{now: time.Now().UTC(), relative: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if l.conv.absoluteDates {
		cfg.relative = false
	}

	date = date.UTC()
	now := cfg.now.UTC()
	// Round down to now: clock skew puts timestamps slightly in the future.
	if date.After(now) {
		date = now
	}

	offset := time.Duration(cfg.gmtOffset) * time.Minute
	localDate := date.Add(-offset)
	localNow := now.Add(-offset)
	localYesterday := localNow.Add(-24 * time.Hour)

	diff := now.Sub(date)
	days := int(diff / (24 * time.Hour))
	seconds := int((diff % (24 * time.Hour)) / time.Second)

	var format string
	if !cfg.full {
		if cfg.relative && days == 0 {
			switch {
			case seconds < 50:
				return expand(
					l.TranslatePlural("1 second ago", "{{seconds}} seconds ago", seconds),
					vars{"seconds": strconv.Itoa(seconds)})
			case seconds < 50*60:
				minutes := int(math.Round(float64(seconds) / 60))
				return expand(
					l.TranslatePlural("1 minute ago", "{{minutes}} minutes ago", minutes),
					vars{"minutes": strconv.Itoa(minutes)})
			default:
				hours := int(math.Round(float64(seconds) / 3600))
				return expand(
					l.TranslatePlural("1 hour ago", "{{hours}} hours ago", hours),
					vars{"hours": strconv.Itoa(hours)})
			}
		}

		switch {
		case days == 0:
			format = l.Translate("{{time}}")
		case days == 1 && localDate.Day() == localYesterday.Day() && cfg.relative:
			if cfg.shorter {
				format = l.Translate("yesterday")
			} else {
				format = l.Translate("yesterday at {{time}}")
			}
		case days < 5:
			if cfg.shorter {
				format = l.Translate("{{weekday}}")
			} else {
				format = l.Translate("{{weekday}} at {{time}}")
			}
		case days < 334: // 11 months; the same month last year reads ambiguously
			if cfg.shorter {
				format = l.Translate("{{month}} {{day}}")
			} else {
				format = l.Translate("{{month}} {{day}} at {{time}}")
			}
		}
	}

	if format == "" {
		if cfg.shorter {
			format = l.Translate("{{month}} {{day}}, {{year}}")
		} else {
			format = l.Translate("{{month}} {{day}}, {{year}} at {{time}}")
		}
	}

	return expand(format, vars{
		"month":   l.months[localDate.Month()-1],
		"weekday": l.weekdays[isoWeekday(localDate)],
		"day":     strconv.Itoa(localDate.Day()),
		"year":    strconv.Itoa(localDate.Year()),
		"time":    l.clockTime(localDate),
	})
}

// FormatDay renders a GMT timestamp as a day, e.g. "Monday, January 22".
// WithoutWeekday reduces it to "January 22"; WithGMTOffset shifts the day
// boundary the same way FormatDate does. No relative logic applies.
func (l *Locale) FormatDay(date time.Time, opts ...FormatOption) string {
	cfg := formatConfig{weekday: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	localDate := date.UTC().Add(-time.Duration(cfg.gmtOffset) * time.Minute)
	values := vars{
		"month":   l.months[localDate.Month()-1],
		"weekday": l.weekdays[isoWeekday(localDate)],
		"day":     strconv.Itoa(localDate.Day()),
	}

	if cfg.weekday {
		return expand(l.Translate("{{weekday}}, {{month}} {{day}}"), values)
	}
	return expand(l.Translate("{{month}} {{day}}"), values)
}

// List joins parts into a localized enumeration: "A, B and C", "A and B", or
// the single element for one-element lists. The separator before the final
// conjunction comes from the locale's conventions.
func (l *Locale) List(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}

	return expand(l.Translate("{{commas}} and {{last}}"), vars{
		"commas": strings.Join(parts[:len(parts)-1], l.conv.listSeparator),
		"last":   parts[len(parts)-1],
	})
}

// FriendlyNumber renders an integer with thousands grouping for locales that
// use it ("1,234,567" under en/en_US); all other locales get the plain
// decimal string.
func (l *Locale) FriendlyNumber(value int64) string {
	s := strconv.FormatInt(value, 10)
	if !l.conv.groupDigits {
		return s
	}

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	groups := make([]string, 0, len(s)/3+1)
	for i := len(s); i > 0; i -= 3 {
		start := max(0, i-3)
		groups = append([]string{s[start:i]}, groups...)
	}

	return sign + strings.Join(groups, ",")
}

// isoWeekday converts Go's Sunday-first weekday to a Monday-first index.
func isoWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func (l *Locale) clockTime(t time.Time) string {
	hour, minute := t.Hour(), t.Minute()

	switch l.conv.clock {
	case clock12:
		marker := "am"
		if hour >= 12 {
			marker = "pm"
		}
		return fmt.Sprintf("%d:%02d %s", twelveHour(hour), minute, marker)
	case clockHalfDay:
		marker := "上午"
		if hour >= 12 {
			marker = "下午"
		}
		return fmt.Sprintf("%s%d:%02d", marker, twelveHour(hour), minute)
	default:
		return fmt.Sprintf("%d:%02d", hour, minute)
	}
}

func twelveHour(hour int) int {
	if h := hour % 12; h != 0 {
		return h
	}
	return 12
}
