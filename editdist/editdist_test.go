package editdist

import "testing"

func stdWeights() Weights {
	return Weights{DelLeft: 1, DelRight: 1, Sub: 1, Swap: 1}
}

func TestLimit1Identical(t *testing.T) {
	dist, _ := Limit1([]byte("cat"), []byte("cat"), stdWeights())
	if dist != 0 {
		t.Fatalf("dist = %d, want 0", dist)
	}
}

func TestLimit1SingleInsert(t *testing.T) {
	// cat -> cast: insert 's' before the final t == deleting from b
	// relative to a, i.e. a single del_right.
	dist, _ := Limit1([]byte("cat"), []byte("cast"), stdWeights())
	if dist != 1 {
		t.Fatalf("dist = %d, want 1", dist)
	}
}

func TestLimit1TooFar(t *testing.T) {
	dist, _ := Limit1([]byte("cat"), []byte("dog"), stdWeights())
	if dist != LargeNum {
		t.Fatalf("dist = %d, want LargeNum", dist)
	}
}

func TestLimit1Swap(t *testing.T) {
	dist, _ := Limit1([]byte("form"), []byte("from"), stdWeights())
	if dist != 1 {
		t.Fatalf("dist = %d, want 1 (adjacent swap)", dist)
	}
}

func TestLimit1Substitute(t *testing.T) {
	dist, _ := Limit1([]byte("cat"), []byte("cot"), stdWeights())
	if dist != 1 {
		t.Fatalf("dist = %d, want 1 (substitution)", dist)
	}
}

func TestLimit1WeightedCosts(t *testing.T) {
	w := Weights{DelLeft: 5, DelRight: 1, Sub: 3, Swap: 2}
	dist, _ := Limit1([]byte("cat"), []byte("cast"), w)
	if dist != w.DelRight {
		t.Fatalf("dist = %d, want %d", dist, w.DelRight)
	}
}

func TestLimit2Identical(t *testing.T) {
	dist, _ := Limit2([]byte("cat"), []byte("cat"), stdWeights())
	if dist != 0 {
		t.Fatalf("dist = %d, want 0", dist)
	}
}

func TestLimit2TwoEdits(t *testing.T) {
	// cat -> bats: substitute c->b, insert s at the end.
	dist, _ := Limit2([]byte("cat"), []byte("bats"), stdWeights())
	if dist == LargeNum {
		t.Fatal("expected a finite distance within the limit-2 budget")
	}
}

func TestLimit2TooFar(t *testing.T) {
	dist, _ := Limit2([]byte("cat"), []byte("elephant"), stdWeights())
	if dist != LargeNum {
		t.Fatalf("dist = %d, want LargeNum", dist)
	}
}

func TestLimit1AMaxReachesEnd(t *testing.T) {
	_, amax := Limit1([]byte("cat"), []byte("cat"), stdWeights())
	if amax != 3 {
		t.Fatalf("amax = %d, want 3 (len of a)", amax)
	}
}
