// Package admintext переводит текстовые поля админки в структуры конфигурации и обратно.
//
// Одна строка - один период:
//
//	2025-07-01 to 2025-07-14 | School holidays            (заблокированные даты)
//	2025-07-01 to 2025-07-14 | 690 | Ski season            (сезонные тарифы)
//
// Одна дата без "to" означает период из одного дня. Пустые строки пропускаются.
package admintext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

const (
	fieldSeparator = "|"
	rangeSeparator = " to "
)

var rangeSplitter = regexp.MustCompile(`(?i)\s+to\s+`)

// newID генератор идентификаторов сезонных тарифов
var newID = uuid.NewString

// ParseBlockedDates разбирает заблокированные даты, по одному периоду на строку
func ParseBlockedDates(text string) ([]domain.BlockedRange, error) {
	result := make([]domain.BlockedRange, 0)

	for lineNo, line := range lines(text) {
		if line == "" {
			continue
		}

		fields := splitFields(line)
		if len(fields) > 2 {
			return nil, fmt.Errorf("%w %d: expected \"start to end | note\"", ErrInvalidLine, lineNo+1)
		}

		start, end, err := parseRange(fields[0], lineNo+1)
		if err != nil {
			return nil, err
		}

		blocked := domain.BlockedRange{Start: start, End: end}
		if len(fields) == 2 {
			blocked.Note = fields[1]
		}
		result = append(result, blocked)
	}

	return result, nil
}

// FormatBlockedDates обратное преобразование для редактора
func FormatBlockedDates(blocked []domain.BlockedRange) string {
	out := make([]string, 0, len(blocked))
	for _, b := range blocked {
		line := formatRange(b.Start, b.End)
		if b.Note != "" {
			line += " " + fieldSeparator + " " + b.Note
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// ParseCustomRates разбирает сезонные тарифы. Порядок строк сохраняется:
// при пересечении периодов действует первый
func ParseCustomRates(text string) ([]domain.CustomRatePeriod, error) {
	result := make([]domain.CustomRatePeriod, 0)

	for lineNo, line := range lines(text) {
		if line == "" {
			continue
		}

		fields := splitFields(line)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("%w %d: expected \"start to end | rate | label\"", ErrInvalidLine, lineNo+1)
		}

		start, end, err := parseRange(fields[0], lineNo+1)
		if err != nil {
			return nil, err
		}

		rate, err := strconv.ParseFloat(strings.TrimPrefix(fields[1], "$"), 64)
		if err != nil || rate <= 0 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrInvalidRate, lineNo+1, fields[1])
		}

		period := domain.CustomRatePeriod{
			ID:        newID(),
			StartDate: start,
			EndDate:   end,
			Rate:      rate,
		}
		if len(fields) == 3 {
			period.Label = fields[2]
		}
		result = append(result, period)
	}

	return result, nil
}

// FormatCustomRates обратное преобразование для редактора
func FormatCustomRates(periods []domain.CustomRatePeriod) string {
	out := make([]string, 0, len(periods))
	for _, p := range periods {
		line := formatRange(p.StartDate, p.EndDate) + " " + fieldSeparator + " " + strconv.FormatFloat(p.Rate, 'f', -1, 64)
		if p.Label != "" {
			line += " " + fieldSeparator + " " + p.Label
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func lines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i := range raw {
		raw[i] = strings.TrimSpace(raw[i])
	}
	return raw
}

func splitFields(line string) []string {
	fields := strings.Split(line, fieldSeparator)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func parseRange(value string, lineNo int) (types.Date, types.Date, error) {
	parts := rangeSplitter.Split(strings.TrimSpace(value), -1)
	if len(parts) > 2 || parts[0] == "" {
		return types.Date{}, types.Date{}, fmt.Errorf("%w %d: expected \"YYYY-MM-DD to YYYY-MM-DD\"", ErrInvalidLine, lineNo)
	}

	start, err := types.ParseDate(parts[0])
	if err != nil {
		return types.Date{}, types.Date{}, fmt.Errorf("%w: line %d: %v", ErrInvalidDate, lineNo, err)
	}

	end := start
	if len(parts) == 2 {
		end, err = types.ParseDate(parts[1])
		if err != nil {
			return types.Date{}, types.Date{}, fmt.Errorf("%w: line %d: %v", ErrInvalidDate, lineNo, err)
		}
	}

	if end.Before(start) {
		return types.Date{}, types.Date{}, fmt.Errorf("%w: line %d: %s to %s", ErrInvalidRange, lineNo, start, end)
	}

	return start, end, nil
}

func formatRange(start, end types.Date) string {
	if start.Equal(end) {
		return start.String()
	}
	return start.String() + rangeSeparator + end.String()
}
