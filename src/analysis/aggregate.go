package analysis

// GroupSum sums a value per key over a record slice. An empty input yields
// an empty map.
func GroupSum[T any](items []T, key func(T) string, value func(T) float64) map[string]float64 {
	out := make(map[string]float64)
	for _, it := range items {
		out[key(it)] += value(it)
	}
	return out
}

// GroupMean averages a value per key.
func GroupMean[T any](items []T, key func(T) string, value func(T) float64) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, it := range items {
		k := key(it)
		sums[k] += value(it)
		counts[k]++
	}
	out := make(map[string]float64, len(sums))
	for k, s := range sums {
		out[k] = s / float64(counts[k])
	}
	return out
}

// GroupCount counts records per key.
func GroupCount[T any](items []T, key func(T) string) map[string]int {
	out := make(map[string]int)
	for _, it := range items {
		out[key(it)]++
	}
	return out
}

// SumValues totals the values of a grouped result.
func SumValues(groups map[string]float64) float64 {
	var total float64
	for _, v := range groups {
		total += v
	}
	return total
}

// PercentOfTotal converts grouped sums to percentages of their grand total.
// A zero or negative total maps every share to 0 rather than dividing by
// zero.
func PercentOfTotal(groups map[string]float64) map[string]float64 {
	total := SumValues(groups)
	out := make(map[string]float64, len(groups))
	for k, v := range groups {
		if total <= 0 {
			out[k] = 0
		} else {
			out[k] = v / total * 100
		}
	}
	return out
}

// MaxGroup returns the key with the largest value. Ties resolve to the
// lexicographically smallest key so results are stable across runs.
func MaxGroup(groups map[string]float64) (string, float64, bool) {
	return pickGroup(groups, func(v, best float64) bool { return v > best })
}

// MinGroup returns the key with the smallest value, with the same
// tie-breaking as MaxGroup.
func MinGroup(groups map[string]float64) (string, float64, bool) {
	return pickGroup(groups, func(v, best float64) bool { return v < best })
}

func pickGroup(groups map[string]float64, better func(v, best float64) bool) (string, float64, bool) {
	var (
		bestKey string
		bestVal float64
		found   bool
	)
	for k, v := range groups {
		if !found || better(v, bestVal) || (v == bestVal && k < bestKey) {
			bestKey, bestVal, found = k, v, true
		}
	}
	return bestKey, bestVal, found
}
