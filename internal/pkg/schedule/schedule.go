// Package schedule turns raw weekly slot strings into the human-readable
// ranges used by the assignment notification email.
package schedule

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidSlot is returned when a slot token does not follow the
// "<day letter>-<hour>" format.
var ErrInvalidSlot = errors.New("invalid schedule slot")

// dayNames maps the single-letter day codes used by the frontend to their
// Spanish names, in week order.
var dayNames = map[string]string{
	"L": "Lunes",
	"M": "Martes",
	"X": "Miércoles",
	"J": "Jueves",
	"V": "Viernes",
	"S": "Sábado",
	"D": "Domingo",
}

var dayOrder = []string{"L", "M", "X", "J", "V", "S", "D"}

// Describe parses a comma-separated slot list such as "L-16,L-17,M-18" and
// groups consecutive hours per day into readable ranges: a slot covers one
// hour, so L-16 and L-17 collapse into "Lunes de 16:00 a 18:00". Days are
// reported in week order; hours within a day in ascending order.
func Describe(raw string) (string, error) {
	hoursByDay, err := parseSlots(raw)
	if err != nil {
		return "", err
	}

	var parts []string
	for _, day := range dayOrder {
		hours, ok := hoursByDay[day]
		if !ok {
			continue
		}
		sort.Ints(hours)
		for _, r := range groupConsecutive(hours) {
			parts = append(parts, fmt.Sprintf("%s de %02d:00 a %02d:00", dayNames[day], r.start, r.end+1))
		}
	}

	return strings.Join(parts, "; "), nil
}

func parseSlots(raw string) (map[string][]int, error) {
	hoursByDay := make(map[string][]int)
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		day, hourStr, found := strings.Cut(token, "-")
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, token)
		}

		day = strings.ToUpper(strings.TrimSpace(day))
		if _, ok := dayNames[day]; !ok {
			return nil, fmt.Errorf("%w: unknown day in %q", ErrInvalidSlot, token)
		}

		hour, err := strconv.Atoi(strings.TrimSpace(hourStr))
		if err != nil || hour < 0 || hour > 23 {
			return nil, fmt.Errorf("%w: bad hour in %q", ErrInvalidSlot, token)
		}

		hoursByDay[day] = append(hoursByDay[day], hour)
	}
	return hoursByDay, nil
}

type hourRange struct {
	start, end int
}

// groupConsecutive collapses a sorted hour list into inclusive ranges,
// skipping duplicates.
func groupConsecutive(hours []int) []hourRange {
	var ranges []hourRange
	for _, h := range hours {
		if n := len(ranges); n > 0 {
			last := &ranges[n-1]
			if h == last.end || h == last.end+1 {
				last.end = h
				continue
			}
		}
		ranges = append(ranges, hourRange{start: h, end: h})
	}
	return ranges
}
