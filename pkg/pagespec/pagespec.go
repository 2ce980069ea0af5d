// Package pagespec parses the two text grammars the application accepts:
// split group specs ("1,4;2-3;5-6") and move pairs ("2,3"). Input is 1-based,
// output is 0-based; range validation against a concrete document happens at
// the call site.
package pagespec

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrSyntax is returned for input that does not match the grammar.
var ErrSyntax = errors.New("pagespec: malformed page specification")

// ParseGroups parses a split specification. Groups are separated by ";",
// items within a group by ",". An item is a single 1-based page number or an
// inclusive "start-end" range. Duplicate pages within a group collapse and
// each group comes back in ascending order.
func ParseGroups(text string) ([][]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty input", ErrSyntax)
	}

	var groups [][]int
	for _, part := range strings.Split(text, ";") {
		pages := make(map[int]struct{})

		for _, segment := range strings.Split(part, ",") {
			segment = strings.TrimSpace(segment)

			if start, end, ok := strings.Cut(segment, "-"); ok {
				from, err := parseNum(start)
				if err != nil {
					return nil, err
				}
				to, err := parseNum(end)
				if err != nil {
					return nil, err
				}
				// A reversed range selects nothing, matching
				// the inclusive [from, to] reading.
				for p := from; p <= to; p++ {
					pages[p-1] = struct{}{}
				}
				continue
			}

			p, err := parseNum(segment)
			if err != nil {
				return nil, err
			}
			pages[p-1] = struct{}{}
		}

		group := make([]int, 0, len(pages))
		for p := range pages {
			group = append(group, p)
		}
		sort.Ints(group)
		groups = append(groups, group)
	}

	return groups, nil
}

// ParseMove parses a "source,target" move pair and returns both as 0-based
// indices.
func ParseMove(text string) (source, target int, err error) {
	nums := strings.Split(strings.TrimSpace(text), ",")
	if len(nums) != 2 {
		return 0, 0, fmt.Errorf("%w: want \"source,target\", got %q", ErrSyntax, text)
	}

	s, err := parseNum(nums[0])
	if err != nil {
		return 0, 0, err
	}
	t, err := parseNum(nums[1])
	if err != nil {
		return 0, 0, err
	}
	return s - 1, t - 1, nil
}

// parseNum accepts the grammar's NUMBER: unsigned digits only.
func parseNum(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a page number", ErrSyntax, s)
	}
	return n, nil
}
