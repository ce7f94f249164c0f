package affix

// Munch enumerates every (root, affix-flag) decomposition store's rules
// can explain for word, independent of any real dictionary: it drives
// Checker's prefix/suffix search with an AlwaysTrueDictionary so every
// condition-satisfying strip is accepted as a "found" root, which (since
// AlwaysTrueDictionary reports no flags at all) always lands in the
// GuessInfo near-miss path rather than ever confirming a match. Mirrors
// AffixMgr::munch (affix.cpp).
//
// AllUpper words return an empty list without scanning, matching the
// source's early return. Unlike AffixCheck, Munch does not lower-case
// the word before the prefix pass; it only skips the prefix pass
// entirely when the case pattern is FirstUpper (again matching the
// source, which runs prefix_check only "if (cp != FirstUpper)").
func Munch(word []byte, store *Store) *CheckList {
	cl := &CheckList{}
	if len(word) > store.config.MaxWordLen {
		return cl
	}

	cp := ClassifyCase(word)
	if cp == AllUpper {
		return cl
	}

	c := &Checker{Dict: AlwaysTrueDictionary{}, Store: store}
	gi := &GuessInfo{}
	var ci CheckInfo
	if cp != FirstUpper {
		c.prefixCheck(word, cp, &ci, gi)
	}
	c.suffixCheck(word, cp, &ci, gi, false, noEntry)

	cl.Decompositions = gi.Guesses
	return cl
}
