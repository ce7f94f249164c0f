package affix

import "testing"

// buildHappyStore builds a tiny store with one prefix flag 'U' (un-) and
// the SFX D family from store_test.go, both cross-product enabled,
// sufficient to exercise prefix, suffix, and cross-product checking.
func buildHappyStore(t *testing.T) *Store {
	t.Helper()
	s := newStore()
	c, err := compileCondition(".")
	if err != nil {
		t.Fatal(err)
	}
	s.insert(newEntry(Prefix, 'U', nil, []byte("un"), true, c))
	s.insert(newTestSuffixEntry('D', "", "d", "e"))
	s.insert(newTestSuffixEntry('D', "y", "ied", "[^aeiou]y"))
	s.insert(newTestSuffixEntry('D', "", "ed", "[^ey]"))
	s.insert(newTestSuffixEntry('D', "", "ed", "[aeiou]y"))
	s.wireSubsetLinks()
	return s
}

func TestCheckerSuffixMatch(t *testing.T) {
	dict := NewMemDictionary()
	dict.Add("bake", "D")
	c := NewChecker(dict, buildHappyStore(t))

	ci, ok := c.AffixCheck([]byte("baked"))
	if !ok {
		t.Fatal("expected baked to check out")
	}
	if string(ci.Root) != "bake" || !ci.HasSuffix || ci.SufFlag != 'D' {
		t.Fatalf("unexpected CheckInfo: %+v", ci)
	}
}

func TestCheckerPrefixMatch(t *testing.T) {
	dict := NewMemDictionary()
	dict.Add("happy", "U")
	c := NewChecker(dict, buildHappyStore(t))

	ci, ok := c.AffixCheck([]byte("unhappy"))
	if !ok {
		t.Fatal("expected unhappy to check out")
	}
	if string(ci.Root) != "happy" || !ci.HasPrefix || ci.PreFlag != 'U' {
		t.Fatalf("unexpected CheckInfo: %+v", ci)
	}
}

func TestCheckerCrossProductMatch(t *testing.T) {
	// "cried" is not itself a dictionary root, but stripping the prefix and
	// then cross-checking the suffix against "uncried" should find a
	// dictionary entry for "cry" that carries both U and D.
	dict := NewMemDictionary()
	dict.Add("cry", "UD")
	c := NewChecker(dict, buildHappyStore(t))

	ci, ok := c.AffixCheck([]byte("uncried"))
	if !ok {
		t.Fatal("expected uncried to check out via cross-product")
	}
	if string(ci.Root) != "cry" || !ci.HasPrefix || !ci.HasSuffix {
		t.Fatalf("unexpected CheckInfo: %+v", ci)
	}
}

func TestCheckerRejectsUnknownRoot(t *testing.T) {
	dict := NewMemDictionary()
	c := NewChecker(dict, buildHappyStore(t))
	if _, ok := c.AffixCheck([]byte("baked")); ok {
		t.Fatal("expected check to fail: dictionary has no root")
	}
}

func TestCheckerRejectsMissingFlag(t *testing.T) {
	dict := NewMemDictionary()
	dict.Add("bake", "") // root known, but doesn't carry D
	c := NewChecker(dict, buildHappyStore(t))
	if _, ok := c.AffixCheck([]byte("baked")); ok {
		t.Fatal("expected check to fail: root lacks the D flag")
	}
}

func TestCheckerGuessRecordsNearMiss(t *testing.T) {
	dict := NewMemDictionary()
	dict.Add("bake", "") // known root, wrong flag: should land in GuessInfo
	c := NewChecker(dict, buildHappyStore(t))

	_, gi, ok := c.AffixCheckGuess([]byte("baked"))
	if ok {
		t.Fatal("expected check to fail")
	}
	if len(gi.Guesses) == 0 {
		t.Fatal("expected at least one near-miss guess")
	}
	if string(gi.Guesses[0].Root) != "bake" || gi.Guesses[0].SufFlag != 'D' {
		t.Fatalf("unexpected guess: %+v", gi.Guesses[0])
	}
}

func TestCheckerCasePreservation(t *testing.T) {
	dict := NewMemDictionary()
	dict.Add("happy", "U")
	c := NewChecker(dict, buildHappyStore(t))

	ci, ok := c.AffixCheck([]byte("Unhappy"))
	if !ok {
		t.Fatal("expected Unhappy to check out")
	}
	if ci.Case != FirstUpper {
		t.Fatalf("Case = %v, want FirstUpper", ci.Case)
	}
	got := GetWord(ci)
	if string(got) != "Unhappy" {
		t.Fatalf("GetWord = %q, want %q", got, "Unhappy")
	}
}

func TestGetWordSuffixOnly(t *testing.T) {
	ci := CheckInfo{
		Root:      []byte("bake"),
		Case:      AllLower,
		HasSuffix: true,
		SufAdd:    []byte("d"),
		SufStrip:  nil,
	}
	got := GetWord(ci)
	if string(got) != "baked" {
		t.Fatalf("GetWord = %q, want %q", got, "baked")
	}
}

func TestGetWordSuffixOnlyFirstUpper(t *testing.T) {
	// No prefix involved: the title-casing still must land on word[0],
	// since the assembled word starts from the dictionary's lower-case
	// root rather than any already-cased surface text.
	ci := CheckInfo{
		Root:      []byte("bake"),
		Case:      FirstUpper,
		HasSuffix: true,
		SufAdd:    []byte("d"),
	}
	got := GetWord(ci)
	if string(got) != "Baked" {
		t.Fatalf("GetWord = %q, want %q", got, "Baked")
	}
}

func TestMunchAllUpperReturnsEmpty(t *testing.T) {
	cl := Munch([]byte("BAKED"), buildHappyStore(t))
	if len(cl.Decompositions) != 0 {
		t.Fatalf("expected no decompositions for all-upper word, got %d", len(cl.Decompositions))
	}
}

func TestMunchEnumeratesDecompositions(t *testing.T) {
	cl := Munch([]byte("baked"), buildHappyStore(t))
	found := false
	for _, d := range cl.Decompositions {
		if string(d.Root) == "bake" && d.SufFlag == 'D' {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a bake/D decomposition among %+v", cl.Decompositions)
	}
}
