package merkle

import "testing"

func leaves(n int) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		out[i] = []byte{byte(i), byte(i * 7)}
	}
	return out
}

func TestBuildSingleLeafRootIsLeafHash(t *testing.T) {
	tree := Build(leaves(1))
	want := hashLeaf([]byte{0, 0})
	if tree.Root() != want {
		t.Errorf("root = %x, want %x", tree.Root(), want)
	}
}

func TestLemmaFoldsToRoot(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 7, 8, 16, 17} {
		ls := leaves(n)
		tree := Build(ls)
		for i := 0; i < n; i++ {
			lemma := tree.Lemma(i)
			got := Fold(lemma.LeafHash, lemma.Siblings)
			if got != tree.Root() {
				t.Errorf("n=%d leaf=%d: folded root mismatch", n, i)
			}
		}
	}
}

func TestOddLevelPromotesUnchanged(t *testing.T) {
	// 3 leaves: level0 has 3 nodes, pair(0,1) folds, node 2 promotes
	// unchanged into level1 (which then has 2 nodes and folds to the root).
	ls := leaves(3)
	tree := Build(ls)

	l0 := tree.levels[0]
	l1 := tree.levels[1]
	if len(l1) != 2 {
		t.Fatalf("level 1 length = %d, want 2", len(l1))
	}
	if l1[1] != l0[2] {
		t.Errorf("promoted node = %x, want unchanged leaf hash %x", l1[1], l0[2])
	}
}

func TestDifferentLeavesProduceDifferentRoots(t *testing.T) {
	a := Build(leaves(4)).Root()
	b := Build(leaves(5)).Root()
	if a == b {
		t.Error("different leaf sets produced the same root")
	}
}
