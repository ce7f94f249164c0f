// Package editdist computes a weighted edit distance between two byte
// strings, bounded to a small number of edit operations (one or two),
// grounded on limit1_edit_distance/limit2_edit_distance in
// l2editdist.cpp. Unlike a general Levenshtein/Damerau-Levenshtein
// implementation, this never allocates an O(len(a)*len(b)) DP table: it
// tries each of the bounded number of edits directly against the common
// suffix of the two strings after their common prefix, which is all the
// aspell suggestion engine ever needs (soundslike keys rarely differ by
// more than a couple of edits).
package editdist

import "github.com/rivy-t/aspell-affix/internal/simd"

// LargeNum is returned as the distance when the two strings are not
// within the bound the called function checks for (mirrors LARGE_NUM in
// leditdist.hpp: effectively "infinite").
const LargeNum = 1 << 16

// Weights assigns a cost to each edit primitive. DelLeft is the cost of
// deleting a character from a, DelRight from b; Sub substitutes one
// character for another; Swap transposes two adjacent characters
// (Damerau-style).
type Weights struct {
	DelLeft  int
	DelRight int
	Sub      int
	Swap     int
}

func at(s []byte, i int) byte {
	if i >= len(s) || i < 0 {
		return 0
	}
	return s[i]
}

// Limit1 computes the edit distance between a and b when it is at most
// one del/sub/swap apart, mirroring limit1_edit_distance. Any pair
// requiring more than one edit operation is reported as LargeNum. aMax
// is the index into a up to which some candidate edit was found to
// match, primarily useful for diagnosing how much of a was consumed.
func Limit1(a, b []byte, w Weights) (dist int, aMax int) {
	ia := commonPrefixLen(a, b)
	ib := ia
	if ia >= len(a) && ib >= len(b) {
		return 0, ia
	}

	if ia >= len(a) {
		ib++
		if ib >= len(b) {
			return w.DelRight, ia
		}
		return LargeNum, ia
	}
	if ib >= len(b) {
		ia++
		if ia >= len(a) {
			return w.DelLeft, ia
		}
		return LargeNum, ia
	}

	min := LargeNum
	amax := ia

	checkRest := func(na, nb, cost int) {
		a0, b0 := na, nb
		for at(a, a0) == at(b, b0) {
			if a0 >= len(a) {
				if cost < min {
					min = cost
				}
				break
			}
			a0++
			b0++
		}
		if amax < a0 {
			amax = a0
		}
	}

	checkRest(ia+1, ib, w.DelLeft)
	checkRest(ia, ib+1, w.DelRight)
	if at(a, ia) == at(b, ib+1) && at(b, ib) == at(a, ia+1) {
		checkRest(ia+2, ib+2, w.Swap)
	} else {
		checkRest(ia+1, ib+1, w.Sub)
	}

	return min, amax
}

// Limit2 computes the edit distance between a and b when it is at most
// two edits apart, mirroring limit2_edit_distance. As with Limit1,
// anything further apart is reported as LargeNum.
func Limit2(a, b []byte, w Weights) (dist int, aMax int) {
	ia := commonPrefixLen(a, b)
	ib := ia
	if ia >= len(a) && ib >= len(b) {
		return 0, ia
	}

	if ia >= len(a) {
		ib++
		if ib >= len(b) {
			return w.DelRight, ia
		}
		ib++
		if ib >= len(b) {
			return 2 * w.DelRight, ia
		}
		return LargeNum, ia
	}
	if ib >= len(b) {
		ia++
		if ia >= len(a) {
			return w.DelLeft, ia
		}
		ia++
		if ia >= len(a) {
			return 2 * w.DelLeft, ia
		}
		return LargeNum, ia
	}

	min := LargeNum
	amax := ia

	check2 := func(na, nb, cost int) {
		aa, bb := na, nb
		for at(a, aa) == at(b, bb) {
			if aa >= len(a) {
				if amax < aa {
					amax = aa
				}
				if cost < min {
					min = cost
				}
				return
			}
			aa++
			bb++
		}

		if aa >= len(a) {
			if amax < aa {
				amax = aa
			}
			if bb >= len(b) {
				// both ended together: nothing further to record
			} else if bb+1 >= len(b) && cost+w.DelRight < min {
				min = cost + w.DelRight
			}
			return
		}
		if bb >= len(b) {
			aa++
			if amax < aa {
				amax = aa
			}
			if aa >= len(a) && cost+w.DelLeft < min {
				min = cost + w.DelLeft
			}
			return
		}

		checkRest := func(na2, nb2, cost2 int) {
			a0, b0 := na2, nb2
			for at(a, a0) == at(b, b0) {
				if a0 >= len(a) {
					if cost2 < min {
						min = cost2
					}
					break
				}
				a0++
				b0++
			}
			if amax < a0 {
				amax = a0
			}
		}

		checkRest(aa+1, bb, cost+w.DelLeft)
		checkRest(aa, bb+1, cost+w.DelRight)
		if at(a, aa) == at(b, bb+1) && at(b, bb) == at(a, aa+1) {
			checkRest(aa+2, bb+2, cost+w.Swap)
		} else {
			checkRest(aa+1, bb+1, cost+w.Sub)
		}
	}

	check2(ia+1, ib, w.DelLeft)
	check2(ia, ib+1, w.DelRight)
	if at(a, ia) == at(b, ib+1) && at(b, ib) == at(a, ia+1) {
		check2(ia+2, ib+2, w.Swap)
	} else {
		check2(ia+1, ib+1, w.Sub)
	}

	return min, amax
}

// accelerationEnabled gates commonPrefixLen's dispatch between the
// SIMD-aware internal/simd path and a plain byte-at-a-time scan. It is a
// process-wide switch, not a per-call option, in the same spirit as
// package simd's hasAVX2 CPU-feature check: a single engine-wide setting
// rather than state threaded through every call. Package affix's
// Config.EnablePrefixAcceleration sets it via SetAccelerationEnabled
// when a Store is built through ParseFileWithConfig.
var accelerationEnabled = true

// SetAccelerationEnabled toggles whether commonPrefixLen uses the
// SIMD-accelerated internal/simd.CommonPrefixLen path. Defaults to
// enabled; callers that never touch this stay on the fast path.
func SetAccelerationEnabled(enabled bool) {
	accelerationEnabled = enabled
}

// commonPrefixLen reports the length of the longest common prefix of a
// and b. Limit1 and Limit2 use it for their initial common-prefix skip.
// It delegates to internal/simd.CommonPrefixLen unless acceleration has
// been disabled via SetAccelerationEnabled, in which case it scans byte
// by byte.
func commonPrefixLen(a, b []byte) int {
	if !accelerationEnabled {
		n := len(a)
		if len(b) < n {
			n = len(b)
		}
		i := 0
		for i < n && a[i] == b[i] {
			i++
		}
		return i
	}
	return simd.CommonPrefixLen(a, b)
}
