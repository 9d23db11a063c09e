package graph

import "fmt"

// RelationshipKind classifies the directed coupling from one class to another.
// Values are ordered by strength; NONE is the zero value.
type RelationshipKind int

const (
	NONE RelationshipKind = iota
	GENERAL
	HAS_A
	HAS_MANY
	IMPLEMENTS
	IS_A
)

func (k RelationshipKind) String() string {
	switch k {
	case NONE:
		return "NONE"
	case GENERAL:
		return "GENERAL"
	case HAS_A:
		return "HAS_A"
	case HAS_MANY:
		return "HAS_MANY"
	case IMPLEMENTS:
		return "IMPLEMENTS"
	case IS_A:
		return "IS_A"
	default:
		return fmt.Sprintf("RelationshipKind(%d)", int(k))
	}
}

// Describe returns a short human label used by reports
func (k RelationshipKind) Describe() string {
	switch k {
	case GENERAL:
		return "uses"
	case HAS_A:
		return "has a"
	case HAS_MANY:
		return "has many"
	case IMPLEMENTS:
		return "implements"
	case IS_A:
		return "extends"
	default:
		return "none"
	}
}

func (k RelationshipKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
