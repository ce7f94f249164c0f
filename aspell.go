// Package aspell provides a convenience wrapper over the affix engine in
// package affix: loading a compiled affix Store once and a Dictionary of
// known roots, then exposing the everyday spell-check operations
// (checking a surface word, munching it back to its root, expanding a
// root into every surface form) without requiring callers to juggle the
// Store/Dictionary/Checker trio themselves.
//
// Manager carries no behavior of its own beyond construction and
// delegation to package affix, mirroring how coregex.Regex wraps
// meta.Engine.
//
// Basic usage:
//
//	store, err := aspell.LoadAffixFile(r, "UTF-8")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dict := affix.NewMemDictionary()
//	dict.Add("bake", "D")
//	m := aspell.NewManager(dict, store)
//
//	if m.Check([]byte("baked")) {
//	    fmt.Println("correctly spelled")
//	}
package aspell

import (
	"io"

	"github.com/rivy-t/aspell-affix/affix"
)

// LoadAffixFile parses an affix rule file under affix.DefaultConfig,
// delegating directly to affix.ParseFile. It exists so callers of this
// package never need to import package affix solely to call ParseFile.
func LoadAffixFile(r io.Reader, dataEncoding string) (*affix.Store, error) {
	return affix.ParseFile(r, dataEncoding)
}

// LoadAffixFileWithConfig is LoadAffixFile with a caller-supplied
// affix.Config, governing limits like MaxWordLen and MaxAffixEntries for
// every Manager built over the resulting Store.
func LoadAffixFileWithConfig(r io.Reader, dataEncoding string, config affix.Config) (*affix.Store, error) {
	return affix.ParseFileWithConfig(r, dataEncoding, config)
}

// Manager bundles a compiled affix Store with a Dictionary of known
// roots and exposes the engine's operations as simple methods.
//
// A Manager is safe for concurrent read-only use once constructed: both
// the Store and Dictionary it wraps are expected to be immutable after
// setup, per affix's concurrency model.
type Manager struct {
	checker *affix.Checker
	store   *affix.Store
}

// NewManager builds a Manager over dict and store. Both must outlive the
// Manager.
func NewManager(dict affix.Dictionary, store *affix.Store) *Manager {
	return &Manager{
		checker: affix.NewChecker(dict, store),
		store:   store,
	}
}

// Check reports whether word is a correctly spelled surface form.
func (m *Manager) Check(word []byte) bool {
	_, ok := m.checker.AffixCheck(word)
	return ok
}

// CheckGuess behaves like Check, but additionally returns every near-miss
// CheckInfo recorded while deciding, for suggestion generation.
func (m *Manager) CheckGuess(word []byte) (affix.CheckInfo, *affix.GuessInfo, bool) {
	return m.checker.AffixCheckGuess(word)
}

// Munch decomposes word into every (root, affix) pair the Manager's
// Store can explain, independent of whether Dictionary actually contains
// the resulting root.
func (m *Manager) Munch(word []byte) *affix.CheckList {
	return affix.Munch(word, m.store)
}

// BulkMunch is Munch applied to many words at once, accelerated by the
// Store's cached Aho-Corasick pre-filter.
func (m *Manager) BulkMunch(words [][]byte) []*affix.CheckList {
	return affix.BulkMunch(words, m.store)
}

// Expand generates every surface form a root carrying flags can take
// under the Manager's Store, bounded by limit (see affix.Expand for the
// meaning of limit <= 0 and the per-entry length cutoff).
func (m *Manager) Expand(root []byte, flags []byte, limit int) []affix.WordAff {
	return affix.Expand(root, flags, m.store, limit)
}

// Store returns the Manager's underlying compiled affix Store, for
// callers that need direct access to affix package operations.
func (m *Manager) Store() *affix.Store { return m.store }
