package wavl

import (
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// shape describes a hand-built tree for white-box tests.
type shape struct {
	key, rank   int
	left, right *shape
}

func buildShape(t *testing.T, s *shape) *Tree[int, string] {
	t.Helper()
	tree := newIntTree(t)
	var build func(s *shape, parent ref) ref
	build = func(s *shape, parent ref) ref {
		if s == nil {
			return none
		}
		x := tree.alloc(s.key, strconv.Itoa(s.key))
		tree.nodes[x].rank = s.rank
		tree.nodes[x].parent = parent
		l := build(s.left, x)
		r := build(s.right, x)
		tree.nodes[x].left = l
		tree.nodes[x].right = r
		tree.updateSize(x)
		return x
	}
	tree.root = build(s, none)
	return tree
}

func rankOf(t *testing.T, tree *Tree[int, string], key int) int {
	t.Helper()
	x := tree.find(key)
	if x == none {
		t.Fatalf("key %d not found", key)
	}
	return tree.nodes[x].rank
}

func TestInsertSingleRotation(t *testing.T) {
	tree := newIntTree(t)
	steps := insertAll(t, tree, 1, 2, 3)
	if steps[2] != 3 {
		t.Errorf("expected promotion + rotation (3 steps), got %d", steps[2])
	}
	if k, _ := tree.SelectKey(2); tree.nodes[tree.root].key != k || k != 2 {
		t.Errorf("expected 2 to become root")
	}
	if tree.RootRank() != 1 || rankOf(t, tree, 1) != 0 || rankOf(t, tree, 3) != 0 {
		t.Errorf("unexpected ranks after single rotation")
	}
}

func TestInsertDoubleRotation(t *testing.T) {
	tree := newIntTree(t)
	steps := insertAll(t, tree, 3, 1, 2)
	if steps[2] != 6 {
		t.Errorf("expected promotion + double rotation (6 steps), got %d", steps[2])
	}
	if tree.nodes[tree.root].key != 2 || tree.RootRank() != 1 {
		t.Errorf("expected 2 to become root with rank 1")
	}
}

func TestInsertPromotePropagates(t *testing.T) {
	tree := newIntTree(t)
	steps := insertAll(t, tree, 2, 1, 3, 4)
	if steps[3] != 2 {
		t.Errorf("expected two promotions, got %d", steps[3])
	}
	if tree.RootRank() != 2 || rankOf(t, tree, 3) != 1 {
		t.Errorf("unexpected ranks after promotion walk")
	}
}

func TestDeleteCase1Demote(t *testing.T) {
	tree := newIntTree(t)
	insertAll(t, tree, 2, 1, 3, 4)
	if _, err := tree.Delete(1); err != nil {
		t.Fatal(err)
	}
	n, err := tree.Delete(2)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || tree.RootRank() != 1 {
		t.Errorf("expected a single demotion of the root, got %d steps, rank %d", n, tree.RootRank())
	}
}

func TestDeleteCase2DoubleDemote(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildShape(t, &shape{key: 10, rank: 3,
		left: &shape{key: 5, rank: 0},
		right: &shape{key: 20, rank: 2,
			left:  &shape{key: 15, rank: 0},
			right: &shape{key: 25, rank: 0},
		},
	})
	n := tree.rebalanceDelete(tree.root)
	if n != 2 {
		t.Errorf("expected 2 demotions, got %d", n)
	}
	if rankOf(t, tree, 10) != 2 || rankOf(t, tree, 20) != 1 {
		t.Errorf("unexpected ranks %d/%d", rankOf(t, tree, 10), rankOf(t, tree, 20))
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after double demotion: %v", err)
	}
}

func TestDeleteCase3Rotation(t *testing.T) {
	tree := newIntTree(t)
	insertAll(t, tree, 2, 1, 3, 4)
	n, err := tree.Delete(1)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("expected rotation with extra demotion (4 steps), got %d", n)
	}
	if tree.nodes[tree.root].key != 3 || tree.RootRank() != 2 || rankOf(t, tree, 2) != 0 {
		t.Errorf("unexpected shape after rotation")
	}
}

func TestDeleteCase4DoubleRotation(t *testing.T) {
	tree := newIntTree(t)
	insertAll(t, tree, 2, 1, 4, 3)
	n, err := tree.Delete(1)
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Errorf("expected double rotation (7 steps), got %d", n)
	}
	if tree.nodes[tree.root].key != 3 || tree.RootRank() != 2 {
		t.Errorf("expected 3 to become root with rank 2")
	}
	if rankOf(t, tree, 2) != 0 || rankOf(t, tree, 4) != 0 {
		t.Errorf("expected both children to be leaves of rank 0")
	}
}

func TestDeleteLeafParentBecomesLeaf(t *testing.T) {
	tree := newIntTree(t)
	insertAll(t, tree, 4, 2, 6, 1, 3, 5, 7, 8)
	// 7 has the single child 8
	n, err := tree.Delete(8)
	if err != nil {
		t.Fatal(err)
	}
	if n < 1 {
		t.Errorf("expected at least the forced demotion of 7")
	}
	if rankOf(t, tree, 7) != 0 {
		t.Errorf("expected 7 to be a leaf of rank 0")
	}
}

func TestRotationMaintainsSizes(t *testing.T) {
	tree := buildShape(t, &shape{key: 10, rank: 2,
		left: &shape{key: 5, rank: 1,
			left:  &shape{key: 2, rank: 0},
			right: &shape{key: 7, rank: 0},
		},
		right: &shape{key: 20, rank: 0},
	})
	x := tree.find(5)
	tree.rotateRight(x)
	if tree.root != x || tree.size(x) != 5 || tree.size(tree.find(10)) != 3 {
		t.Fatalf("unexpected sizes after rotation: %d/%d", tree.size(x), tree.size(tree.find(10)))
	}
	if tree.parent(tree.find(7)) != tree.find(10) {
		t.Errorf("inner child not re-parented")
	}
	if rankOf(t, tree, 10) != 1 {
		t.Errorf("expected old parent to be demoted")
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := newIntTree(t)
	insertAll(t, tree, 2, 1, 3)
	tree.nodes[tree.find(1)].rank = 1
	if err := tree.Check(); err == nil {
		t.Errorf("expected rank violation to be detected")
	}
	tree.nodes[tree.find(1)].rank = 0
	tree.nodes[tree.root].size = 7
	if err := tree.Check(); err == nil {
		t.Errorf("expected size violation to be detected")
	}
	tree.nodes[tree.root].size = 3
	tree.nodes[tree.find(3)].key = 0
	if err := tree.Check(); err == nil {
		t.Errorf("expected order violation to be detected")
	}
}

func TestVerifyPanicsOnCorruption(t *testing.T) {
	tree := newIntTree(t)
	insertAll(t, tree, 2, 1, 3)
	tree.nodes[tree.root].rank = 5
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected verify to panic")
		}
	}()
	tree.verify("test")
}
