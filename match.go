package investmate

import (
	"fmt"
	"strings"
)

// MatchMode defines how an asset id selects ledger lines on edit and remove.
type MatchMode int

const (
	// MatchExact selects lines whose id field equals the id.
	MatchExact MatchMode = iota
	// MatchPrefix selects lines starting with the id followed by the
	// delimiter, as older versions matched them. Id "1" does not select
	// "10,..." lines, but an id holding the delimiter such as "1,Gold" selects
	// the "1,Gold,..." lines of asset "1".
	MatchPrefix
)

func (m MatchMode) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchPrefix:
		return "prefix"
	default:
		return "unknown"
	}
}

// ParseMatchMode parses a string into a MatchMode.
func ParseMatchMode(s string) (MatchMode, error) {
	switch s {
	case "exact":
		return MatchExact, nil
	case "prefix":
		return MatchPrefix, nil
	default:
		return 0, fmt.Errorf("unknown match mode: %q", s)
	}
}

// matches reports whether the ledger line selects the asset id.
func (m MatchMode) matches(id, line string) bool {
	if m == MatchPrefix {
		return strings.HasPrefix(line, id+string(Delimiter))
	}
	key, ok := firstField(line)
	return ok && key == id
}
