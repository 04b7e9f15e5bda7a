package analysis

import (
	"time"

	"github.com/Gabrielkempp/biasi/src/utils"
)

// Range is an inclusive date interval. A Start after End matches nothing.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, bounds included.
func (r Range) Contains(t time.Time) bool {
	d := utils.Midnight(t)
	return !d.Before(utils.Midnight(r.Start)) && !d.After(utils.Midnight(r.End))
}

// FilterByDate keeps the records whose date lies inside the range. Records
// without a date (zero time) are excluded.
func FilterByDate[T any](items []T, date func(T) time.Time, r Range) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		d := date(it)
		if d.IsZero() {
			continue
		}
		if r.Contains(d) {
			out = append(out, it)
		}
	}
	return out
}

// Period presets offered by every dashboard's date selector.
const (
	PresetEsteMes    = "este_mes"
	PresetMesPassado = "mes_passado"
	PresetEsteAno    = "este_ano"
	PresetTudo       = "tudo"
)

// ResolvePreset translates a preset name into a concrete range, clamped to
// the data's own bounds so the selector never extends past what the sheet
// holds. Unknown presets fall back to the full data range.
func ResolvePreset(preset string, now, dataMin, dataMax time.Time) Range {
	today := utils.Midnight(now)
	dataMin = utils.Midnight(dataMin)
	dataMax = utils.Midnight(dataMax)

	switch preset {
	case PresetEsteMes:
		firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return Range{Start: laterOf(firstOfMonth, dataMin), End: earlierOf(today, dataMax)}
	case PresetMesPassado:
		firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		lastMonthEnd := firstOfMonth.AddDate(0, 0, -1)
		lastMonthStart := time.Date(lastMonthEnd.Year(), lastMonthEnd.Month(), 1, 0, 0, 0, 0, today.Location())
		return Range{Start: laterOf(lastMonthStart, dataMin), End: earlierOf(lastMonthEnd, dataMax)}
	case PresetEsteAno:
		firstOfYear := time.Date(today.Year(), 1, 1, 0, 0, 0, 0, today.Location())
		return Range{Start: laterOf(firstOfYear, dataMin), End: earlierOf(today, dataMax)}
	default:
		return Range{Start: dataMin, End: dataMax}
	}
}

// DataBounds finds the earliest and latest dated record. ok is false when
// no record carries a date.
func DataBounds[T any](items []T, date func(T) time.Time) (min, max time.Time, ok bool) {
	for _, it := range items {
		d := date(it)
		if d.IsZero() {
			continue
		}
		if !ok {
			min, max, ok = d, d, true
			continue
		}
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}
	return min, max, ok
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
