package affix

import "bytes"

// CasePattern classifies the casing of a surface word before a check or
// expansion, mirroring case_pattern/CasePattern in affix.cpp. Dictionary
// roots are generally stored lower-case; Checker normalizes a query word
// to its CasePattern before consulting the rule tables, then GetWord
// restores the pattern onto the reconstructed result.
type CasePattern uint8

const (
	AllLower CasePattern = iota
	FirstUpper
	AllUpper
	Mixed
)

func isUpperASCII(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLowerASCII(b byte) bool { return b >= 'a' && b <= 'z' }
func toLowerASCII(b byte) byte {
	if isUpperASCII(b) {
		return b + ('a' - 'A')
	}
	return b
}
func toUpperASCII(b byte) byte {
	if isLowerASCII(b) {
		return b - ('a' - 'A')
	}
	return b
}

// ClassifyCase reports word's CasePattern: AllUpper if every cased byte
// is upper-case, FirstUpper if only the first byte is upper-case and the
// rest are lower, AllLower if every cased byte is already lower-case,
// and Mixed otherwise.
func ClassifyCase(word []byte) CasePattern {
	if len(word) == 0 {
		return AllLower
	}
	hasUpper := false
	hasLower := false
	for _, b := range word {
		if isUpperASCII(b) {
			hasUpper = true
		} else if isLowerASCII(b) {
			hasLower = true
		}
	}
	if !hasUpper {
		return AllLower
	}
	if !hasLower {
		return AllUpper
	}
	if isUpperASCII(word[0]) {
		rest := word[1:]
		allLowerRest := true
		for _, b := range rest {
			if isUpperASCII(b) {
				allLowerRest = false
				break
			}
		}
		if allLowerRest {
			return FirstUpper
		}
	}
	return Mixed
}

// lowerAll returns a lower-cased copy of word.
func lowerAll(word []byte) []byte {
	out := make([]byte, len(word))
	for i, b := range word {
		out[i] = toLowerASCII(b)
	}
	return out
}

// lowerFirst returns a copy of word with only its first byte lower-cased.
func lowerFirst(word []byte) []byte {
	out := append([]byte(nil), word...)
	if len(out) > 0 {
		out[0] = toLowerASCII(out[0])
	}
	return out
}

// GetWord reconstructs the surface form a confirmed CheckInfo describes:
// take ci.Root, replace PreStrip at the front with PreAdd (if HasPrefix),
// then replace the trailing SufStrip bytes with SufAdd (if HasSuffix),
// then apply ci.Case (the case pattern of the originally checked word,
// recorded by AffixCheck) to the whole assembled word — title-casing the
// first byte for FirstUpper, or upper-casing every byte for AllUpper.
// Mirrors the reconstruction algorithm in spec.md §4.5/AffixMgr::get_word
// (affix.cpp), applying the case pattern as a final whole-word pass
// rather than per-segment, since the dictionary root (the assembly's
// starting point) is always stored lower-case regardless of prefix or
// suffix involvement.
func GetWord(ci CheckInfo) []byte {
	word := append([]byte(nil), ci.Root...)

	if ci.HasPrefix {
		word = bytes.Join([][]byte{ci.PreAdd, word[len(ci.PreStrip):]}, nil)
	}
	if ci.HasSuffix {
		start := len(word) - len(ci.SufStrip)
		word = bytes.Join([][]byte{word[:start], ci.SufAdd}, nil)
	}

	switch ci.Case {
	case FirstUpper:
		if len(word) > 0 {
			word[0] = toUpperASCII(word[0])
		}
	case AllUpper:
		for i := range word {
			word[i] = toUpperASCII(word[i])
		}
	}

	return word
}
