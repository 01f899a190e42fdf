package wordtree

// Kind identifies which variant a Symbol holds.
type Kind uint8

const (
	// KindBegin marks the root of a tree.
	KindBegin Kind = iota
	// KindLetter is one character of a word.
	KindLetter
	// KindEnd marks that the path leading to it spells a complete word.
	KindEnd
)

// Symbol is one element of a path through a WordTree: a letter or one of the two
// structural markers. Symbols are comparable with ==.
type Symbol struct {
	kind Kind
	char rune
}

var (
	// BeginWord is held only by the root of a tree.
	BeginWord = Symbol{kind: KindBegin}
	// EndWord terminates every stored word.
	EndWord = Symbol{kind: KindEnd}
)

// Letter returns the symbol for the character r.
func Letter(r rune) Symbol {
	return Symbol{kind: KindLetter, char: r}
}

func (s Symbol) Kind() Kind { return s.kind }

// Rune returns the character of a letter symbol, or zero for the markers.
func (s Symbol) Rune() rune { return s.char }

func (s Symbol) IsLetter() bool { return s.kind == KindLetter }

func (s Symbol) String() string {
	switch s.kind {
	case KindBegin:
		return "^"
	case KindEnd:
		return "$"
	default:
		return string(s.char)
	}
}
