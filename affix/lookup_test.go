package affix

import "testing"

func TestMemDictionaryLookup(t *testing.T) {
	d := NewMemDictionary()
	d.Add("happy", "UY")
	w, ok := d.Lookup([]byte("happy"))
	if !ok {
		t.Fatal("expected lookup to succeed")
	}
	if string(w.Root) != "happy" || !w.HasFlag('U') || !w.HasFlag('Y') {
		t.Fatalf("unexpected entry: %+v", w)
	}
	if _, ok := d.Lookup([]byte("sad")); ok {
		t.Fatal("expected lookup of unknown word to fail")
	}
}

func TestMemDictionarySoundslikeLookup(t *testing.T) {
	d := NewMemDictionary()
	d.AddSoundslike("HPY", "happy", "UY")
	got, ok := d.SoundslikeLookup([]byte("HPY"))
	if !ok || len(got) != 1 || string(got[0].Root) != "happy" {
		t.Fatalf("SoundslikeLookup = %+v, %v", got, ok)
	}
}

func TestAlwaysTrueDictionary(t *testing.T) {
	w, ok := (AlwaysTrueDictionary{}).Lookup([]byte("xyzzy"))
	if !ok {
		t.Fatal("expected AlwaysTrueDictionary to always succeed")
	}
	if string(w.Root) != "xyzzy" || len(w.Flags) != 0 {
		t.Fatalf("unexpected entry: %+v", w)
	}
}

func TestMultiDictionaryConcatenatesWithoutDedup(t *testing.T) {
	a := NewMemDictionary()
	a.Add("bank", "A")
	b := NewMemDictionary()
	b.Add("bank", "B")
	m := MultiDictionary{Dicts: []Dictionary{a, b}}

	w, ok := m.Lookup([]byte("bank"))
	if !ok {
		t.Fatal("expected lookup to succeed")
	}
	// a is matched first, so its flags are the initial set; b's flags
	// are prepended ahead of a's when merged, per append_aff's order.
	if string(w.Flags) != "BA" {
		t.Fatalf("Flags = %q, want %q", w.Flags, "BA")
	}
}

func TestMultiDictionaryNoMatch(t *testing.T) {
	a := NewMemDictionary()
	m := MultiDictionary{Dicts: []Dictionary{a}}
	if _, ok := m.Lookup([]byte("nope")); ok {
		t.Fatal("expected no match across empty dictionaries")
	}
}
