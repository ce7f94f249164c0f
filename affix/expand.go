package affix

// WordAff is one surface form an expansion produced, paired with the
// suffix flags from the original flag set that remain unconsumed
// ("residual") by that expansion: either because no rule for that flag
// matched, or because the matching rule was blocked by limit. Mirrors
// WordAff in wordinfo.hpp.
type WordAff struct {
	Surface []byte
	Flags   []byte
}

// Expand generates every surface form root+each flag in flags implies,
// mirroring AffixMgr::expand/expand_suffix (affix.cpp):
//
//  1. Flags that name a suffix entry are remembered (suf); those whose
//     head entry additionally allows cross-product are remembered again
//     in a second list (csuf).
//  2. Each flag that names a prefix entry is tried against every entry
//     in Store's by-flag bucket for that flag (PfxEntry.add has no
//     limit); the first entry whose conditions match wins, producing a
//     new WordAff carrying csuf (if that entry allows cross-product) or
//     no flags at all.
//  3. If limit > 0, every so-far-produced WordAff (root's own entry and
//     each prefixed form) whose length minus Store's MaxStrip is already
//     >= limit is left untouched; the rest have their Flags suffix-
//     expanded via SfxEntry.add(word, limit), which may return a real
//     new surface form (flag consumed, dropped from the residual list),
//     nothing (flag retained, try the next entry for that flag), or the
//     EMPTY sentinel (conditions held but the part of word the rule
//     keeps, len(word)-len(Strip), is already >= limit — flag
//     retained, stop trying further
//     entries for that flag). Suffix-expansion is applied once per
//     originally-produced form; its own output forms are not
//     recursively re-expanded.
//
// limit <= 0 skips step 3 entirely (the un-suffixed root and prefixed
// forms are returned with their full, unexpanded suffix flag sets),
// matching the source's "if (limit == 0) return head;" early return.
func Expand(root []byte, flags []byte, store *Store, limit int) []WordAff {
	var suf, csuf []byte
	for _, f := range flags {
		if store.sfxByFlag[f] == noEntry {
			continue
		}
		suf = append(suf, f)
		if store.entries[store.sfxByFlag[f]].CrossProduct {
			csuf = append(csuf, f)
		}
	}

	out := []WordAff{{Surface: append([]byte(nil), root...), Flags: suf}}

	for _, f := range flags {
		for idx := store.pfxByFlag[f]; idx != noEntry; idx = store.entries[idx].flagNext {
			e := &store.entries[idx]
			surface, _, matched := e.addToRoot(root, 0, nil)
			if !matched {
				continue
			}
			var resultFlags []byte
			if e.CrossProduct {
				resultFlags = csuf
			}
			out = append(out, WordAff{Surface: append([]byte(nil), surface...), Flags: resultFlags})
			break
		}
	}

	if limit <= 0 {
		return out
	}

	boundary := len(out)
	for i := 0; i < boundary; i++ {
		if len(out[i].Surface)-store.maxStrip >= limit {
			continue
		}
		newAff, spawned := expandSuffix(out[i].Surface, out[i].Flags, store, limit)
		out[i].Flags = newAff
		out = append(out, spawned...)
	}
	return out
}

// expandSuffix applies every suffix flag in aff against word once,
// mirroring AffixMgr::expand_suffix's inner while loop. It returns the
// residual flag list (flags not resolved into a new surface form) and
// the WordAff values the resolved flags produced.
func expandSuffix(word []byte, aff []byte, store *Store, limit int) (residual []byte, spawned []WordAff) {
	for _, f := range aff {
		if len(word)-store.maxStripByFlag[f] >= limit {
			residual = append(residual, f)
			continue
		}

		resolved := false
		for idx := store.sfxByFlag[f]; idx != noEntry; idx = store.entries[idx].flagNext {
			e := &store.entries[idx]
			surface, blocked, matched := e.addToRoot(word, limit, nil)
			if !matched {
				continue
			}
			if blocked {
				break
			}
			spawned = append(spawned, WordAff{Surface: append([]byte(nil), surface...)})
			resolved = true
			break
		}
		if !resolved {
			residual = append(residual, f)
		}
	}
	return residual, spawned
}
