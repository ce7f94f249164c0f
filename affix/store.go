package affix

import (
	"bytes"
	"sync"

	"github.com/rivy-t/aspell-affix/internal/arena"
	"github.com/rivy-t/aspell-affix/internal/bulkmatch"
)

// Store holds every compiled prefix and suffix Entry for one affix file,
// indexed two ways per spec.md §3: by flag byte, and by append key
// (reversed for suffixes), the latter augmented with subset-traversal
// links that let Checker prune its search in O(len(word)) instead of
// O(number of rules).
//
// A Store is built once, by ParseFile, and is immutable and safe for
// concurrent read-only use afterward (spec.md §5). All rule-owned
// strings are borrowed views into store's arena.
type Store struct {
	entries []Entry
	arena   *arena.Arena
	config  Config

	pfxByFlag [256]int32
	sfxByFlag [256]int32
	pfxByKey  [256]int32
	sfxByKey  [256]int32

	maxStrip       int
	maxStripByFlag [256]int

	// matcherOnce/cachedMatcher back BulkMunch's Aho-Corasick pre-filter
	// (affix/bulkmunch.go). The automaton is built at most once per
	// Store, the first time BulkMunch is called on it, and then lives
	// exactly as long as the Store itself — no separate global cache to
	// leak.
	matcherOnce   sync.Once
	cachedMatcher *bulkmatch.Matcher
}

// newStore builds a Store configured with DefaultConfig. Used by
// ParseFile and by tests that don't need to exercise a non-default
// Config.
func newStore() *Store {
	return newStoreWithConfig(DefaultConfig())
}

// newStoreWithConfig builds a Store governed by cfg, used by
// ParseFileWithConfig.
func newStoreWithConfig(cfg Config) *Store {
	s := &Store{arena: arena.New(0), config: cfg}
	for i := range s.pfxByFlag {
		s.pfxByFlag[i] = noEntry
		s.sfxByFlag[i] = noEntry
		s.pfxByKey[i] = noEntry
		s.sfxByKey[i] = noEntry
	}
	return s
}

// entryCount reports how many entries have been inserted so far, used to
// enforce Config.MaxAffixEntries during parsing.
func (s *Store) entryCount() int { return len(s.entries) }

// intern copies str into the store's arena and returns a stable view
// over it, so Entry.Strip/Entry.Append never individually heap-allocate
// and can outlive the parser's own line buffers.
func (s *Store) intern(str string) []byte {
	return s.arena.PutString(str)
}

// MaxStrip returns the longest Strip string over every entry in the
// store, used by the expander to decide how much of a word a suffix
// application could possibly shorten.
func (s *Store) MaxStrip() int { return s.maxStrip }

// MaxStripForFlag returns the longest Strip string over every entry
// carrying the given flag.
func (s *Store) MaxStripForFlag(flag byte) int { return s.maxStripByFlag[flag] }

// Entry returns the compiled entry at idx. Valid only after the Store
// has finished building (ParseFile has returned); entries never move
// once building completes.
func (s *Store) Entry(idx int32) *Entry { return &s.entries[idx] }

// insert appends e to the store and threads it into the by-flag and
// by-key index structures, mirroring AffixMgr::build_pfxlist /
// build_sfxlist (affix.cpp). It returns the index e was stored at.
func (s *Store) insert(e Entry) int32 {
	idx := int32(len(s.entries))
	e.flagNext = noEntry
	e.keyNext = noEntry
	e.nextEq = noEntry
	e.nextNE = noEntry
	if e.Kind == Suffix && len(e.key) > 0 {
		e.key = s.arena.Put(e.key)
	}
	s.entries = append(s.entries, e)

	byFlag, byKey := &s.pfxByFlag, &s.pfxByKey
	if e.Kind == Suffix {
		byFlag, byKey = &s.sfxByFlag, &s.sfxByKey
	}

	flag := e.Flag
	s.entries[idx].flagNext = byFlag[flag]
	byFlag[flag] = idx

	if len(e.Strip) > s.maxStrip {
		s.maxStrip = len(e.Strip)
	}
	if len(e.Strip) > s.maxStripByFlag[flag] {
		s.maxStripByFlag[flag] = len(e.Strip)
	}

	key := e.key
	if len(key) == 0 {
		s.entries[idx].keyNext = byKey[0]
		byKey[0] = idx
		return idx
	}

	first := key[0]
	head := byKey[first]
	if head == noEntry || bytes.Compare(key, s.entries[head].key) <= 0 {
		s.entries[idx].keyNext = head
		byKey[first] = idx
		return idx
	}

	prev := head
	cur := s.entries[head].keyNext
	for cur != noEntry && bytes.Compare(key, s.entries[cur].key) > 0 {
		prev = cur
		cur = s.entries[cur].keyNext
	}
	s.entries[prev].keyNext = idx
	s.entries[idx].keyNext = cur
	return idx
}

// isLeadingSubset reports whether key is a leading subset (literal byte
// prefix) of candidate, mirroring the source's isSubset helper.
func isLeadingSubset(key, candidate []byte) bool {
	return bytes.HasPrefix(candidate, key)
}

// wireSubsetLinks computes next_eq/next_ne for every entry in every
// non-empty by-key bucket, exactly mirroring
// AffixMgr::process_pfx_order / process_sfx_order (affix.cpp): a first
// pass sets next_ne to the first later entry whose key is not a
// superset of the current one, and next_eq to the immediately following
// entry when it is such a superset; a second "tightening" pass nulls
// next_ne at the end of each maximal superset run, so the search
// terminates there rather than continuing past it needlessly.
func (s *Store) wireSubsetLinks() {
	s.wireSubsetLinksFor(&s.pfxByKey)
	s.wireSubsetLinksFor(&s.sfxByKey)
}

func (s *Store) wireSubsetLinksFor(byKey *[256]int32) {
	for i := 1; i < 256; i++ {
		head := byKey[i]
		if head == noEntry {
			continue
		}

		for ptr := head; ptr != noEntry; ptr = s.entries[ptr].keyNext {
			key := s.entries[ptr].key

			nptr := s.entries[ptr].keyNext
			for nptr != noEntry && isLeadingSubset(key, s.entries[nptr].key) {
				nptr = s.entries[nptr].keyNext
			}
			s.entries[ptr].nextNE = nptr
			s.entries[ptr].nextEq = noEntry

			if next := s.entries[ptr].keyNext; next != noEntry && isLeadingSubset(key, s.entries[next].key) {
				s.entries[ptr].nextEq = next
			}
		}

		for ptr := head; ptr != noEntry; ptr = s.entries[ptr].keyNext {
			key := s.entries[ptr].key
			mptr := noEntry
			nptr := s.entries[ptr].keyNext
			for nptr != noEntry && isLeadingSubset(key, s.entries[nptr].key) {
				mptr = nptr
				nptr = s.entries[nptr].keyNext
			}
			if mptr != noEntry {
				s.entries[mptr].nextNE = noEntry
			}
		}
	}
}

// appendKeys returns every distinct, non-empty Append string across all
// entries, plus whether any entry has an empty Append (in which case a
// literal-substring pre-filter over these keys would be unsound, since
// an empty append string "matches" unconditionally).
func (s *Store) appendKeys() (keys [][]byte, hasEmpty bool) {
	seen := make(map[string]bool)
	for i := range s.entries {
		e := &s.entries[i]
		if len(e.Append) == 0 {
			hasEmpty = true
			continue
		}
		k := string(e.Append)
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, e.Append)
	}
	return keys, hasEmpty
}

// flagEntries returns every entry index sharing flag, most-recently-
// inserted first (the reverse of insertion order, matching the source's
// head-insertion lists).
func (s *Store) flagEntries(kind Kind, flag byte) []int32 {
	byFlag := &s.pfxByFlag
	if kind == Suffix {
		byFlag = &s.sfxByFlag
	}
	var out []int32
	for idx := byFlag[flag]; idx != noEntry; idx = s.entries[idx].flagNext {
		out = append(out, idx)
	}
	return out
}
