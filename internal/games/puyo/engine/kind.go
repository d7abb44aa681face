// Package engine implements the rules of the falling-pair puzzle: the well,
// the active pair, landing, group matching, gravity, chain scoring and level
// progression. It has no terminal, storage or wall-clock dependencies; time
// enters only through Session.Advance.
package engine

// Kind identifies the type of a piece. The zero value is an empty cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindDog
	KindCat
	KindRabbit
	KindFox
	KindBear

	kindSentinel // must stay last
)

// KindCount is the number of spawnable kinds.
const KindCount = int(kindSentinel) - 1

// AllKinds returns every spawnable kind in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, KindCount)
	for k := KindDog; k < kindSentinel; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// IsEmpty reports whether k denotes an empty cell.
func (k Kind) IsEmpty() bool {
	return k == KindNone
}

// Valid reports whether k is a spawnable kind.
func (k Kind) Valid() bool {
	return k > KindNone && k < kindSentinel
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindDog:
		return "dog"
	case KindCat:
		return "cat"
	case KindRabbit:
		return "rabbit"
	case KindFox:
		return "fox"
	case KindBear:
		return "bear"
	default:
		return "unknown"
	}
}

// Char returns a single ASCII letter for the kind, used by text dumps and tests.
func (k Kind) Char() byte {
	switch k {
	case KindDog:
		return 'D'
	case KindCat:
		return 'C'
	case KindRabbit:
		return 'R'
	case KindFox:
		return 'F'
	case KindBear:
		return 'B'
	default:
		return '.'
	}
}

// KindFromChar is the inverse of Char. Unknown letters map to KindNone.
func KindFromChar(c byte) Kind {
	switch c {
	case 'D':
		return KindDog
	case 'C':
		return KindCat
	case 'R':
		return KindRabbit
	case 'F':
		return KindFox
	case 'B':
		return KindBear
	default:
		return KindNone
	}
}
