// Package bulkmatch wraps github.com/coregx/ahocorasick to give the
// affix package a cheap pre-filter over many affix rules at once: rather
// than walking every rule's by-key subset tree for a word that plainly
// cannot contain any known append string, BulkMunch first asks a single
// multi-pattern automaton whether any candidate appears anywhere in the
// word at all. This mirrors coregex's own use of the same library
// (meta.Engine's ahoCorasick field) to bypass per-literal scanning when
// a word is large and the rule set is large.
package bulkmatch

import "github.com/coregx/ahocorasick"

// Matcher answers "could word possibly contain one of a fixed set of
// affix append strings anywhere?" A negative answer is a sound
// certificate that no affix rule keyed by one of those strings can
// apply to word at any boundary; a positive answer is not a guarantee,
// only a reason to fall through to the real per-rule check.
type Matcher struct {
	auto *ahocorasick.Automaton
}

// Build compiles an automaton over keys. Empty keys are skipped (an
// empty append string is not a meaningful literal to search for); if
// that leaves nothing to build, Build returns a nil *Matcher, and
// MayContain conservatively always reports true.
func Build(keys [][]byte) (*Matcher, error) {
	builder := ahocorasick.NewBuilder()
	n := 0
	for _, k := range keys {
		if len(k) == 0 {
			continue
		}
		builder.AddPattern(k)
		n++
	}
	if n == 0 {
		return nil, nil
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Matcher{auto: auto}, nil
}

// MayContain reports whether word might contain one of the Matcher's
// keys anywhere. A nil Matcher (no usable keys were compiled in)
// conservatively always returns true.
func (m *Matcher) MayContain(word []byte) bool {
	if m == nil || m.auto == nil {
		return true
	}
	return m.auto.IsMatch(word)
}
