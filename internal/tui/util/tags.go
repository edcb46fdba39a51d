package util

import (
	"autoformat/internal/mask"
	"autoformat/internal/tui/state"
)

// ComputeTags calculates the status chips for a field given its raw value,
// its capacity (-1 when no input template is active), the outcome of the
// last edit and whether the static view is showing.
//
// The returned slice preserves a stable order:
//   Static, Rejected, (Plain | Empty | Complete | Partial), Raw Len
//
// Rules:
// - Static reflects the view, not the value.
// - Rejected is only present right after an edit that overflowed.
// - Exactly one of Plain, Empty, Complete, Partial is present; Plain wins
//   when there is no template.
// - Raw Len is always included (counter).
func ComputeTags(raw string, capacity int, last mask.Outcome, static bool) []state.Tag {
	n := runeLen(raw)
	tags := make([]state.Tag, 0, 4)

	// 1) Static
	if static {
		tags = append(tags, state.Tag{Kind: state.STATIC_VIEW})
	}

	// 2) Rejected
	if last == mask.Rejected {
		tags = append(tags, state.Tag{Kind: state.REJECTED})
	}

	// 3) Fill level
	switch {
	case capacity < 0:
		tags = append(tags, state.Tag{Kind: state.PLAIN})
	case n == 0:
		tags = append(tags, state.Tag{Kind: state.EMPTY, Max: capacity})
	case n >= capacity:
		tags = append(tags, state.Tag{Kind: state.COMPLETE, Value: n, Max: capacity})
	default:
		tags = append(tags, state.Tag{Kind: state.PARTIAL, Value: n, Max: capacity})
	}

	// 4) Raw length
	tags = append(tags, state.Tag{Kind: state.RAW_LEN, Value: n})
	return tags
}

// runeLen returns the length of s in runes (Unicode code points).
func runeLen(s string) int {
	return len([]rune(s))
}
