package services

import (
	"sort"
	"time"

	"github.com/Gabrielkempp/biasi/src/analysis"
	"github.com/Gabrielkempp/biasi/src/models"
)

// sortedLabelValues turns a grouped result into chart slices ordered by
// value descending, label ascending on ties. limit <= 0 keeps everything.
func sortedLabelValues(groups map[string]float64, limit int) []models.LabelValue {
	out := make([]models.LabelValue, 0, len(groups))
	for k, v := range groups {
		out = append(out, models.LabelValue{Label: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Label < out[j].Label
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// orderedLabelValues emits groups in a caller-given label order, keeping
// zero entries so charts show every slot.
func orderedLabelValues(groups map[string]float64, order []string) []models.LabelValue {
	out := make([]models.LabelValue, 0, len(order))
	for _, label := range order {
		out = append(out, models.LabelValue{Label: label, Value: groups[label]})
	}
	return out
}

// resolveRange picks the concrete date window for a query against the
// data's own bounds. Explicit bounds win over the preset; an open-ended
// side is clamped to the data's own extremity.
func resolveRange[T any](q PeriodQuery, now time.Time, items []T, date func(T) time.Time) analysis.Range {
	dataMin, dataMax, ok := analysis.DataBounds(items, date)

	if !q.Start.IsZero() || !q.End.IsZero() {
		start, end := q.Start, q.End
		if start.IsZero() {
			start = dataMin
			if !ok {
				start = end
			}
		}
		if end.IsZero() {
			end = dataMax
			if !ok {
				end = start
			}
		}
		return analysis.Range{Start: start, End: end}
	}

	if !ok {
		return analysis.Range{Start: now, End: now}
	}
	return analysis.ResolvePreset(q.Preset, now, dataMin, dataMax)
}
