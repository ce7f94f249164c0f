package affix

import "bytes"

// WordEntry is what a Dictionary hands back for a successful lookup: the
// root word as actually stored (which may differ in case from the
// query) and the set of affix flags it carries.
type WordEntry struct {
	Root  []byte
	Flags []byte
}

// HasFlag reports whether w's flag set contains flag, mirroring the
// source's TESTAFF(aff, achar) macro (a strchr over the flag string).
func (w WordEntry) HasFlag(flag byte) bool {
	return bytes.IndexByte(w.Flags, flag) >= 0
}

// Dictionary is the external collaborator the affix engine consults to
// decide whether a stripped candidate root is a real word, and with
// which flags. Dictionary file I/O and on-disk hash formats are out of
// scope for this package (spec.md §1); Dictionary is the seam other
// code is expected to implement against a real word store.
type Dictionary interface {
	// Lookup reports whether word is a known root, and if so its
	// WordEntry.
	Lookup(word []byte) (WordEntry, bool)
}

// SoundslikeDictionary is the approximate-match counterpart to
// Dictionary, used by suggestion generation (out of scope for this
// package beyond the interface itself — spec.md §6).
type SoundslikeDictionary interface {
	SoundslikeLookup(word []byte) ([]WordEntry, bool)
}

// MemDictionary is a minimal in-memory reference Dictionary
// implementation, supplied so the engine is directly testable and
// usable without a real Aspell on-disk hash dictionary (spec.md §4.10).
// It is not a substitute for that on-disk format, which remains out of
// scope.
type MemDictionary struct {
	words       map[string]WordEntry
	soundslikes map[string][]WordEntry
}

// NewMemDictionary creates an empty in-memory dictionary.
func NewMemDictionary() *MemDictionary {
	return &MemDictionary{
		words:       make(map[string]WordEntry),
		soundslikes: make(map[string][]WordEntry),
	}
}

// Add registers root with the given flags. Root is stored as given
// (case preserved); Lookup matches only the exact bytes given here,
// matching AffixMgr's expectation that case normalization already
// happened (see CasePattern / affix_check).
func (d *MemDictionary) Add(root string, flags string) {
	d.words[root] = WordEntry{Root: []byte(root), Flags: []byte(flags)}
}

// AddSoundslike registers root under the given phonetic key for
// SoundslikeLookup. The phonetic algorithm itself is out of scope; this
// is a raw key->entries index for tests and callers that already have
// keys computed.
func (d *MemDictionary) AddSoundslike(key string, root string, flags string) {
	d.soundslikes[key] = append(d.soundslikes[key], WordEntry{Root: []byte(root), Flags: []byte(flags)})
}

// Lookup implements Dictionary.
func (d *MemDictionary) Lookup(word []byte) (WordEntry, bool) {
	w, ok := d.words[string(word)]
	return w, ok
}

// SoundslikeLookup implements SoundslikeDictionary.
func (d *MemDictionary) SoundslikeLookup(word []byte) ([]WordEntry, bool) {
	w, ok := d.soundslikes[string(word)]
	return w, ok
}

// AlwaysTrueDictionary is the "always-true" lookup mode spec.md §3/§4.6
// describes: every candidate root is treated as present, with an empty
// flag set. Munch and BulkMunch use it to enumerate every decomposition
// the rule set can explain, independent of whether any real dictionary
// contains the result.
type AlwaysTrueDictionary struct{}

// Lookup always succeeds, echoing word back as its own root with no
// flags.
func (AlwaysTrueDictionary) Lookup(word []byte) (WordEntry, bool) {
	return WordEntry{Root: word}, true
}

// MultiDictionary fans a lookup out over several dictionaries and
// aggregates the result, mirroring LookupInfo::lookup's multi-dictionary
// path in affentry.cpp: when more than one dictionary contains the word,
// their flag sets are concatenated in reverse match order, without
// deduplication. The source itself flags this as a known wart ("FIXME:
// avoid adding duplicate flags"); this type preserves that behavior
// rather than silently fixing it, per spec.md §9's open question.
type MultiDictionary struct {
	Dicts []Dictionary
}

// Lookup implements Dictionary.
func (m MultiDictionary) Lookup(word []byte) (WordEntry, bool) {
	var found bool
	var root []byte
	var flags []byte
	for _, d := range m.Dicts {
		w, ok := d.Lookup(word)
		if !ok {
			continue
		}
		found = true
		root = w.Root
		if flags == nil {
			flags = append([]byte(nil), w.Flags...)
		} else {
			// Prepend this match's flags ahead of the flags already
			// accumulated, matching append_aff's tmp = o.aff ++ s.aff.
			merged := make([]byte, 0, len(flags)+len(w.Flags))
			merged = append(merged, w.Flags...)
			merged = append(merged, flags...)
			flags = merged
		}
	}
	if !found {
		return WordEntry{}, false
	}
	return WordEntry{Root: root, Flags: flags}, true
}
