package affix

import "github.com/rivy-t/aspell-affix/internal/bulkmatch"

// matcherFor returns store's cached Aho-Corasick pre-filter, building it
// at most once via store.matcherOnce. The matcher's lifetime is tied to
// the Store it was built for — once store becomes unreachable, so does
// its matcher, unlike a process-wide cache keyed by *Store.
func matcherFor(store *Store) *bulkmatch.Matcher {
	store.matcherOnce.Do(func() {
		keys, hasEmpty := store.appendKeys()
		if hasEmpty {
			return
		}
		// Build errors are treated as "no usable pre-filter": BulkMunch
		// always falls back to scanning every word in full, which is
		// still correct, just without the acceleration.
		m, _ := bulkmatch.Build(keys)
		store.cachedMatcher = m
	})
	return store.cachedMatcher
}

// BulkMunch runs Munch over every word in words, using an Aho-Corasick
// pre-filter (spec.md §4.9) to skip the full prefix/suffix subset-tree
// walk for words that cannot possibly contain any rule's append string
// anywhere. For every i, BulkMunch(words, store)[i] is required to equal
// Munch(words[i], store) exactly (see affix/bulkmunch_test.go for the
// differential check) — the pre-filter only ever turns a would-be-empty
// scan into an early return, never changes a nonempty result.
//
// When store's Config has EnableBulkMunchIndex set to false, the
// pre-filter is skipped entirely and every word goes straight to Munch.
func BulkMunch(words [][]byte, store *Store) []*CheckList {
	out := make([]*CheckList, len(words))
	if !store.config.EnableBulkMunchIndex {
		for i, w := range words {
			out[i] = Munch(w, store)
		}
		return out
	}

	m := matcherFor(store)
	for i, w := range words {
		if !m.MayContain(w) {
			out[i] = &CheckList{}
			continue
		}
		out[i] = Munch(w, store)
	}
	return out
}
