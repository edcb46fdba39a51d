package state

// TagKind enumerates the status chips shown under the field.
type TagKind int

const (
	// Stable ordering for display: Static, Rejected, Plain|Empty|Complete|Partial, Raw Len
	STATIC_VIEW TagKind = iota
	REJECTED
	PLAIN
	EMPTY
	COMPLETE
	PARTIAL
	RAW_LEN
)

// Tag represents a single status chip. Value and Max are used for counters
// (e.g., filled placeholders out of capacity). Non-numeric tags leave them 0.
type Tag struct {
	Kind  TagKind
	Value int
	Max   int
}
