package affix

// CheckInfo records how a surface word was confirmed correct: which
// prefix and/or suffix entry applied, and the root word the dictionary
// actually holds. Mirrors CheckInfo in wordinfo.hpp.
type CheckInfo struct {
	Root []byte
	Case CasePattern

	HasPrefix bool
	PreFlag   byte
	PreAdd    []byte
	PreStrip  []byte

	HasSuffix bool
	SufFlag   byte
	SufAdd    []byte
	SufStrip  []byte
}

// GuessInfo accumulates near-miss CheckInfo values recorded while a check
// fails to confirm a word outright: either a stripped candidate was
// found in the dictionary but didn't carry the needed flag, or (in
// Munch's always-true lookup mode) every condition-satisfying
// decomposition the rule set can produce. Mirrors GuessInfo/CheckList in
// wordinfo.hpp, using a growable slice in place of the source's
// intrusive linked list.
type GuessInfo struct {
	Guesses []CheckInfo
}

func (g *GuessInfo) addGuess(root []byte, cp CasePattern) int {
	g.Guesses = append(g.Guesses, CheckInfo{Root: root, Case: cp})
	return len(g.Guesses) - 1
}

// CheckList is the result of Munch/BulkMunch: every (root, affix)
// decomposition the rule set can explain for a word, independent of
// whether any real dictionary contains the result (spec.md §4.6/§4.9).
type CheckList struct {
	Decompositions []CheckInfo
}

// Checker ties a Dictionary (the source of truth for root words) to a
// compiled affix Store, and implements the prefix/suffix/cross-product
// search described in spec.md §4.4/§4.5. Mirrors AffixMgr's
// prefix_check/suffix_check/affix_check (affix.cpp), generalized from
// AffixMgr's single fixed dictionary field to an injected Dictionary.
type Checker struct {
	Dict  Dictionary
	Store *Store
}

// NewChecker builds a Checker over dict and store. Both must outlive the
// Checker; store must already be fully parsed (ParseFile returned).
func NewChecker(dict Dictionary, store *Store) *Checker {
	return &Checker{Dict: dict, Store: store}
}

// AffixCheck reports whether word is a correctly spelled surface form
// under the engine's rules, given Dictionary as the source of known
// roots. Mirrors AffixMgr::affix_check.
func (c *Checker) AffixCheck(word []byte) (CheckInfo, bool) {
	return c.check(word, nil)
}

// AffixCheckGuess behaves like AffixCheck, but additionally records
// every near-miss encountered along the way into the returned
// *GuessInfo, for suggestion generation.
func (c *Checker) AffixCheckGuess(word []byte) (CheckInfo, *GuessInfo, bool) {
	gi := &GuessInfo{}
	ci, ok := c.check(word, gi)
	return ci, gi, ok
}

func (c *Checker) check(word []byte, gi *GuessInfo) (CheckInfo, bool) {
	if len(word) > c.Store.config.MaxWordLen {
		return CheckInfo{}, false
	}

	cp := ClassifyCase(word)
	pword, sword := word, word
	switch cp {
	case FirstUpper:
		pword = lowerFirst(word)
	case AllUpper:
		lower := lowerAll(word)
		pword, sword = lower, lower
	}

	var ci CheckInfo
	if c.prefixCheck(pword, cp, &ci, gi) {
		return ci, true
	}
	if c.suffixCheck(sword, cp, &ci, gi, false, noEntry) {
		return ci, true
	}
	return CheckInfo{}, false
}

// prefixCheck mirrors AffixMgr::prefix_check: the zero-length-key bucket
// is tried unconditionally, then the general case walks the by-key
// subset tree rooted at word's first byte.
func (c *Checker) prefixCheck(word []byte, cp CasePattern, ci *CheckInfo, gi *GuessInfo) bool {
	store := c.Store
	for idx := store.pfxByKey[0]; idx != noEntry; idx = store.entries[idx].keyNext {
		if c.checkPrefixEntry(idx, word, cp, ci, gi) {
			return true
		}
	}
	if len(word) == 0 {
		return false
	}
	ptr := store.pfxByKey[word[0]]
	for ptr != noEntry {
		e := &store.entries[ptr]
		if isLeadingSubset(e.key, word) {
			if c.checkPrefixEntry(ptr, word, cp, ci, gi) {
				return true
			}
			ptr = e.nextEq
		} else {
			ptr = e.nextNE
		}
	}
	return false
}

// suffixCheck mirrors AffixMgr::suffix_check. cross reports whether this
// call is itself a cross-product probe launched from a matched prefix
// entry, in which case pairedPrefix names that prefix entry, only
// cross-product suffix entries are tried, and the looked-up root must
// carry the prefix entry's flag as well as the suffix's own
// (TESTAFF(word.aff, ppfx->flag)).
func (c *Checker) suffixCheck(word []byte, cp CasePattern, ci *CheckInfo, gi *GuessInfo, cross bool, pairedPrefix int32) bool {
	store := c.Store
	for idx := store.sfxByKey[0]; idx != noEntry; idx = store.entries[idx].keyNext {
		if c.checkSuffixEntry(idx, word, cp, ci, gi, cross, pairedPrefix) {
			return true
		}
	}
	if len(word) == 0 {
		return false
	}
	ptr := store.sfxByKey[word[len(word)-1]]
	for ptr != noEntry {
		e := &store.entries[ptr]
		if isRevSubset(e.key, word) {
			if c.checkSuffixEntry(ptr, word, cp, ci, gi, cross, pairedPrefix) {
				return true
			}
			ptr = e.nextEq
		} else {
			ptr = e.nextNE
		}
	}
	return false
}

// isRevSubset reports whether key (already stored reversed) matches
// word's trailing len(key) bytes read back-to-front, mirroring
// AffixMgr::isRevSubset.
func isRevSubset(key, word []byte) bool {
	if len(key) > len(word) {
		return false
	}
	last := len(word) - 1
	for i, kb := range key {
		if word[last-i] != kb {
			return false
		}
	}
	return true
}

// checkPrefixEntry applies one prefix entry against word, mirroring
// PfxEntry::check. It returns true only when the entry yields a
// confirmed match (written into ci); unconfirmed near-misses are
// instead appended to gi, matching the source's CheckInfo/GuessInfo
// split.
func (c *Checker) checkPrefixEntry(idx int32, word []byte, cp CasePattern, ci *CheckInfo, gi *GuessInfo) bool {
	e := &c.Store.entries[idx]
	root, _, ok := e.stripSurface(word, nil)
	if !ok || !e.matchConditionsAgainstRoot(root) {
		return false
	}

	we, found := c.Dict.Lookup(root)
	if found {
		if we.HasFlag(e.Flag) {
			ci.Root = we.Root
			ci.Case = cp
			ci.HasPrefix = true
			ci.PreFlag, ci.PreAdd, ci.PreStrip = e.Flag, e.Append, e.Strip
			return true
		}
		if gi != nil {
			gidx := gi.addGuess(we.Root, cp)
			gi.Guesses[gidx].HasPrefix = true
			gi.Guesses[gidx].PreFlag, gi.Guesses[gidx].PreAdd, gi.Guesses[gidx].PreStrip = e.Flag, e.Append, e.Strip
		}
		return false
	}

	if !e.CrossProduct {
		return false
	}
	rootCopy := append([]byte(nil), root...)
	oldLen := 0
	if gi != nil {
		oldLen = len(gi.Guesses)
	}
	if c.suffixCheck(rootCopy, cp, ci, gi, true, idx) {
		ci.HasPrefix = true
		ci.PreFlag, ci.PreAdd, ci.PreStrip = e.Flag, e.Append, e.Strip
		return true
	}
	if gi != nil {
		for i := oldLen; i < len(gi.Guesses); i++ {
			gi.Guesses[i].HasPrefix = true
			gi.Guesses[i].PreFlag, gi.Guesses[i].PreAdd, gi.Guesses[i].PreStrip = e.Flag, e.Append, e.Strip
		}
	}
	return false
}

// checkSuffixEntry applies one suffix entry against word, mirroring
// SfxEntry::check. When cross is set, a match additionally requires the
// looked-up root to carry pairedPrefix's flag (the cross-product
// allowance test).
func (c *Checker) checkSuffixEntry(idx int32, word []byte, cp CasePattern, ci *CheckInfo, gi *GuessInfo, cross bool, pairedPrefix int32) bool {
	e := &c.Store.entries[idx]
	if cross && !e.CrossProduct {
		return false
	}
	root, _, ok := e.stripSurface(word, nil)
	if !ok || !e.matchConditionsAgainstRoot(root) {
		return false
	}

	we, found := c.Dict.Lookup(root)
	if !found {
		return false
	}

	hasFlag := we.HasFlag(e.Flag)
	if hasFlag && cross && pairedPrefix != noEntry {
		hasFlag = we.HasFlag(c.Store.entries[pairedPrefix].Flag)
	}
	if hasFlag {
		ci.Root = we.Root
		ci.Case = cp
		ci.HasSuffix = true
		ci.SufFlag, ci.SufAdd, ci.SufStrip = e.Flag, e.Append, e.Strip
		return true
	}
	if gi != nil {
		gidx := gi.addGuess(we.Root, cp)
		gi.Guesses[gidx].HasSuffix = true
		gi.Guesses[gidx].SufFlag, gi.Guesses[gidx].SufAdd, gi.Guesses[gidx].SufStrip = e.Flag, e.Append, e.Strip
	}
	return false
}
