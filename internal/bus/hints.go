package bus

import (
	"github.com/godbus/dbus/v5"

	"github.com/aliskhannn/notifyd/internal/model"
)

// decodeHints converts the wire-level hints map into the typed model.Hints.
// Decoding happens once, here at the boundary: entries whose variant carries
// anything other than a byte, int32, string or bool are discarded, so the
// rest of the daemon never probes dynamic types.
func decodeHints(raw map[string]dbus.Variant) model.Hints {
	if len(raw) == 0 {
		return nil
	}

	hints := make(model.Hints, len(raw))

	for key, variant := range raw {
		switch v := variant.Value().(type) {
		case byte:
			hints[key] = model.HintValue{Kind: model.HintByte, Byte: v}
		case int32:
			hints[key] = model.HintValue{Kind: model.HintInt, Int: v}
		case string:
			hints[key] = model.HintValue{Kind: model.HintString, Str: v}
		case bool:
			hints[key] = model.HintValue{Kind: model.HintBool, Bool: v}
		}
	}

	return hints
}
