package affix

import "testing"

func decompositionsEqual(a, b []CheckInfo) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if string(a[i].Root) != string(b[i].Root) ||
			a[i].HasPrefix != b[i].HasPrefix || a[i].PreFlag != b[i].PreFlag ||
			string(a[i].PreAdd) != string(b[i].PreAdd) || string(a[i].PreStrip) != string(b[i].PreStrip) ||
			a[i].HasSuffix != b[i].HasSuffix || a[i].SufFlag != b[i].SufFlag ||
			string(a[i].SufAdd) != string(b[i].SufAdd) || string(a[i].SufStrip) != string(b[i].SufStrip) {
			return false
		}
	}
	return true
}

// TestBulkMunchMatchesPerWordMunch is the differential property from
// SPEC_FULL.md §8 property 8: BulkMunch's Aho-Corasick pre-filter must
// never change the result Munch would have produced on its own.
func TestBulkMunchMatchesPerWordMunch(t *testing.T) {
	store := buildSfxDStore(t)
	words := [][]byte{
		[]byte("baked"),
		[]byte("cried"),
		[]byte("played"),
		[]byte("walked"),
		[]byte("bakeed"),
		[]byte("zzz"),
		[]byte("BAKED"),
		[]byte(""),
	}

	bulk := BulkMunch(words, store)
	for i, w := range words {
		want := Munch(w, store)
		if !decompositionsEqual(bulk[i].Decompositions, want.Decompositions) {
			t.Errorf("word %q: BulkMunch = %+v, want %+v (per-word Munch)", w, bulk[i].Decompositions, want.Decompositions)
		}
	}
}

func TestBulkMunchSkipsWordsWithNoPossibleAffixKey(t *testing.T) {
	store := buildSfxDStore(t)
	out := BulkMunch([][]byte{[]byte("zzz")}, store)
	if len(out[0].Decompositions) != 0 {
		t.Fatalf("expected no decompositions for a word containing none of the append strings, got %+v", out[0].Decompositions)
	}
}

// TestMatcherForCachesPerStore confirms the Aho-Corasick automaton is
// built once per Store (via Store.matcherOnce) and that two distinct
// Stores never share one: the cache lives on the Store itself rather
// than behind a process-wide map keyed by *Store, which would otherwise
// keep every Store ever passed to BulkMunch reachable forever.
func TestMatcherForCachesPerStore(t *testing.T) {
	s1 := buildSfxDStore(t)
	s2 := buildSfxDStore(t)

	m1a := matcherFor(s1)
	m1b := matcherFor(s1)
	if m1a != m1b {
		t.Fatal("expected matcherFor(s1) to return the same cached *Matcher on repeated calls")
	}

	m2 := matcherFor(s2)
	if m1a == m2 {
		t.Fatal("expected distinct Stores to get distinct matchers, not a shared cache entry")
	}
}
