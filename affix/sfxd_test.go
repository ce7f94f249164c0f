package affix

import "testing"

// TestSfxDScenarioTable exercises the concrete scenario table from
// spec.md §8: given a dictionary containing bake/cry/play/walk all
// flagged D, each listed surface form should (or should not) check out
// against the corresponding root via the correct sub-rule.
func TestSfxDScenarioTable(t *testing.T) {
	dict := NewMemDictionary()
	dict.Add("bake", "D")
	dict.Add("cry", "D")
	dict.Add("play", "D")
	dict.Add("walk", "D")
	c := NewChecker(dict, buildSfxDStore(t))

	cases := []struct {
		word string
		ok   bool
		root string
	}{
		{"baked", true, "bake"},
		{"cried", true, "cry"},
		{"played", true, "play"},
		{"walked", true, "walk"},
		{"bakeed", false, ""},
	}
	for _, tc := range cases {
		ci, ok := c.AffixCheck([]byte(tc.word))
		if ok != tc.ok {
			t.Errorf("AffixCheck(%q) ok = %v, want %v", tc.word, ok, tc.ok)
			continue
		}
		if ok && string(ci.Root) != tc.root {
			t.Errorf("AffixCheck(%q) root = %q, want %q", tc.word, ci.Root, tc.root)
		}
	}
}
