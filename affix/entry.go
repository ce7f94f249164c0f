package affix

// Kind distinguishes a prefix rule from a suffix rule. The two share a
// common Entry layout; only the end of the word they examine, and
// whether a reversed search key is maintained, differs (spec.md Design
// Note: "model as a tagged variant or a common record plus a direction
// tag").
type Kind uint8

const (
	// Prefix entries strip/append at the front of a word and test
	// conditions front-to-back.
	Prefix Kind = iota
	// Suffix entries strip/append at the end of a word and test
	// conditions back-to-front.
	Suffix
)

func (k Kind) String() string {
	if k == Prefix {
		return "prefix"
	}
	return "suffix"
}

// noEntry is the sentinel index meaning "no such entry" in the
// index-based linked lists below, replacing the source's NULL pointers
// (spec.md Design Note: "Raw pointer chains → arena + indices").
const noEntry = int32(-1)

// Entry is a single compiled affix rule: either a prefix or a suffix
// entry, selected by Kind. All string fields are borrowed views into the
// Store's arena; Entry never owns heap memory of its own.
type Entry struct {
	Kind         Kind
	Flag         byte
	Strip        []byte
	Append       []byte
	CrossProduct bool
	Cond         Condition

	// key is the sort/search key: Append for a prefix entry, the
	// reversal of Append for a suffix entry.
	key []byte

	// Index-based linkage, all referring to positions in the owning
	// Store's entries slice. -1 (noEntry) means "no link".
	flagNext int32 // next entry sharing Flag, in by-flag bucket
	keyNext  int32 // next entry in by-key bucket, insertion-sorted by key
	nextEq   int32 // next entry whose key is a leading superset of this one's
	nextNE   int32 // next entry to try when this one's key does not match
}

// Key returns the entry's search key (Append for a prefix, the reversal
// of Append for a suffix).
func (e *Entry) Key() []byte { return e.key }

// newEntry builds an Entry and computes its search key: Append itself
// for a prefix, or its byte-reversal for a suffix (spec.md §3: "the
// append key sort order is lexicographic over append for prefixes and
// append_reversed for suffixes").
func newEntry(kind Kind, flag byte, strip, appnd []byte, cross bool, cond Condition) Entry {
	key := appnd
	if kind == Suffix {
		key = reverseBytes(appnd)
	}
	return Entry{
		Kind:         kind,
		Flag:         flag,
		Strip:        strip,
		Append:       appnd,
		CrossProduct: cross,
		Cond:         cond,
		key:          key,
	}
}

func reverseBytes(b []byte) []byte {
	r := make([]byte, len(b))
	for i, c := range b {
		r[len(b)-1-i] = c
	}
	return r
}

// matchConditionsAgainstRoot reports whether root satisfies e's
// condition bitmap. For a prefix entry this tests root's first
// NumConds() bytes, slot n against root[n]; for a suffix entry it tests
// root's last NumConds() bytes, with the slots laid over that tail in
// pattern order, so the last slot always tests root's final byte.
//
// root must already have at least NumConds() bytes, which callers
// establish via their own length checks before calling this.
func (e *Entry) matchConditionsAgainstRoot(root []byte) bool {
	n := e.Cond.NumConds()
	if n == 0 {
		return true
	}
	if e.Kind == Prefix {
		for i := 0; i < n; i++ {
			if !e.Cond.Allows(i, root[i]) {
				return false
			}
		}
		return true
	}
	// Slot s of the pattern (0-indexed, left to right) tests the
	// character at distance (n-1-s) from the end: the last pattern
	// element always lands on the word's final byte, matching the
	// source's back-to-front conds[]/cp walk (affentry.cpp).
	last := len(root) - 1
	for i := 0; i < n; i++ {
		if !e.Cond.Allows(i, root[last-(n-1-i)]) {
			return false
		}
	}
	return true
}

// stripSurface reconstructs the root candidate implied by applying e in
// reverse to a surface word: for a prefix entry, strip ++ word[len(Append):];
// for a suffix entry, word[:len(word)-len(Append)] ++ strip. It reports
// ok=false when the surface word is too short for e's Append/Strip/
// condition lengths to apply at all (spec.md §4.4's tmpl/stripl/numConds
// guard), without yet checking the condition bitmap itself.
func (e *Entry) stripSurface(word []byte, dst []byte) (root []byte, tmpl int, ok bool) {
	appndl := len(e.Append)
	stripl := len(e.Strip)
	tmpl = len(word) - appndl
	if tmpl <= 0 || tmpl+stripl < e.Cond.NumConds() {
		return nil, tmpl, false
	}

	dst = dst[:0]
	if e.Kind == Prefix {
		dst = append(dst, e.Strip...)
		dst = append(dst, word[appndl:]...)
	} else {
		dst = append(dst, word[:tmpl]...)
		dst = append(dst, e.Strip...)
	}
	return dst, tmpl + stripl, true
}

// addToRoot applies e to root, producing the surface form e would
// generate, honoring the expander's limit (spec.md §4.7).
//
// matched reports whether e's conditions hold against root at all; when
// matched is false the other return values are meaningless and the
// caller should try the next rule. When matched is true, blocked
// distinguishes the source's EMPTY sentinel (conditions held, but for a
// suffix entry the retained portion of root, len(root)-len(Strip), is
// limit bytes or longer) from an actual surface form in surface. limit <= 0 disables the
// limit check entirely (used for prefix entries, which spec.md does not
// bound).
func (e *Entry) addToRoot(root []byte, limit int, dst []byte) (surface []byte, blocked bool, matched bool) {
	stripl := len(e.Strip)
	if len(root) <= stripl || len(root) < e.Cond.NumConds() {
		return nil, false, false
	}
	if !e.matchConditionsAgainstRoot(root) {
		return nil, false, false
	}

	if e.Kind == Prefix {
		dst = dst[:0]
		dst = append(dst, e.Append...)
		dst = append(dst, root[stripl:]...)
		return dst, false, true
	}

	alen := len(root) - stripl
	if limit > 0 && alen >= limit {
		return nil, true, true
	}
	dst = dst[:0]
	dst = append(dst, root[:alen]...)
	dst = append(dst, e.Append...)
	return dst, false, true
}
