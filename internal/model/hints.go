package model

// HintKind tags the decoded type of a hint value.
type HintKind int

const (
	HintByte HintKind = iota
	HintInt
	HintString
	HintBool
)

// HintValue is one hint entry decoded at the bus boundary. Only the field
// matching Kind is meaningful; values of any other wire type are discarded
// before a HintValue is ever built.
type HintValue struct {
	Kind HintKind
	Byte byte
	Int  int32
	Str  string
	Bool bool
}

// Hints maps hint keys to their decoded values.
type Hints map[string]HintValue

// UrgencyKey is the only hint key the daemon inspects.
const UrgencyKey = "urgency"

// Urgency returns the value of the "urgency" hint if present with byte kind.
func (h Hints) Urgency() (byte, bool) {
	v, ok := h[UrgencyKey]
	if !ok || v.Kind != HintByte {
		return 0, false
	}

	return v.Byte, true
}
