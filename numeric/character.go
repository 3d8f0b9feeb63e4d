package numeric

// Character is a single decoded code point together with the number of
// bytes its original encoding occupied.
//
// The size is not always the code point's UTF-8 re-encoding length: an
// ASCII reader reports size 1 for every byte including non-ASCII bytes
// read in permissive mode, and a UTF-16 surrogate pair reports size 4.
type Character struct {
	r    rune
	size int
}

// NewCharacter constructs a Character from a decoded rune and the byte
// size of its original encoding.
func NewCharacter(r rune, size int) Character {
	return Character{r: r, size: size}
}

// Rune returns the decoded code point.
func (c Character) Rune() rune { return c.r }

// Size returns the byte size of the original encoding.
func (c Character) Size() int { return c.size }

// Equal reports whether two Characters hold the same code point. Size is
// not part of equality: two readers that decode the same code point via
// different encodings still produced "the same character".
func (c Character) Equal(other Character) bool {
	return c.r == other.r
}
