// Package dates resolves the target date for a solve: free-form
// command line words against the board's labels, falling back to the
// current day, plus the date-derived naming of export files.
package dates

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/dotypuzzle/doty/pkg/puzzle"
)

var separators = regexp.MustCompile(`[;,\s]+`)

var monthNames = []string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

var weekdayNames = map[string]bool{
	"SUN": true, "MON": true, "TUE": true, "WED": true, "THU": true, "FRI": true, "SAT": true,
}

// Normalize maps a free-form date word to board label format: leading
// zeros stripped, uppercased, truncated to 3 characters. "Monday"
// becomes "MON", "01" becomes "1".
func Normalize(word string) string {
	word = strings.ToUpper(strings.TrimLeft(word, "0"))
	runes := []rune(word)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return string(runes)
}

// Resolve picks the target date. The arguments are joined, split at
// any run of spaces, commas or semicolons, and normalized; words that
// name board cells count as date components. Exactly three matches
// select a custom date in argument order; anything else falls back to
// now (weekday, month, day of month). The returned cells parallel the
// labels.
func Resolve(args []string, board *puzzle.Board, now time.Time) ([]string, []puzzle.Cell, error) {
	var labels []string
	for _, word := range separators.Split(strings.Join(args, " "), -1) {
		normalized := Normalize(word)
		if _, ok := board.Locate(normalized); ok {
			labels = append(labels, normalized)
		}
	}
	if len(labels) != 3 {
		labels = []string{
			Normalize(now.Format("Mon")),
			Normalize(now.Format("January")),
			Normalize(strconv.Itoa(now.Day())),
		}
	}

	cells := make([]puzzle.Cell, len(labels))
	for i, label := range labels {
		cell, ok := board.Locate(label)
		if !ok {
			return nil, nil, errors.Errorf("date label %q is not on the board", label)
		}
		cells[i] = cell
	}
	return labels, cells, nil
}

// ExportPrefix names export files for one instance: the current year,
// then the resolved labels reordered to month ordinal, day number,
// weekday, all zero-padded to two digits. Lexicographic file order
// equals calendar order.
func ExportPrefix(labels []string, now time.Time) string {
	type element struct {
		group int
		text  string
	}

	elements := make([]element, 0, len(labels))
	for _, label := range labels {
		switch {
		case monthOrdinal(label) > 0:
			elements = append(elements, element{group: 0, text: fmt.Sprintf("%02d", monthOrdinal(label))})
		case weekdayNames[label]:
			elements = append(elements, element{group: 2, text: label})
		default:
			text := label
			if len(text) < 2 {
				text = "0" + text
			}
			elements = append(elements, element{group: 1, text: text})
		}
	}
	sort.SliceStable(elements, func(i, j int) bool { return elements[i].group < elements[j].group })

	parts := make([]string, 0, len(elements)+1)
	parts = append(parts, now.Format("2006"))
	for _, e := range elements {
		parts = append(parts, e.text)
	}
	return strings.Join(parts, "_")
}

func monthOrdinal(label string) int {
	for i, name := range monthNames {
		if name == label {
			return i + 1
		}
	}
	return 0
}
