package btree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New[int, string](Config{MinDegree: 1}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for degree 1, got %v", err)
	}
	if _, err := New[int, string](Config{MinDegree: maxBase + 1}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for degree beyond storage base, got %v", err)
	}
}

func TestNewNormalizesConfig(t *testing.T) {
	tree, err := New[int, string](Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Config().MinDegree != DefaultMinDegree {
		t.Fatalf("expected default minimum degree %d, got %d",
			DefaultMinDegree, tree.Config().MinDegree)
	}
	if tree.Capacity() != 2*DefaultMinDegree-1 {
		t.Fatalf("unexpected capacity %d", tree.Capacity())
	}
}

func TestEmptyTree(t *testing.T) {
	tree, err := New[int, string](Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tree.IsEmpty() {
		t.Fatalf("expected new tree to be empty")
	}
	if tree.Len() != 0 {
		t.Fatalf("expected Len 0 on empty tree, got %d", tree.Len())
	}
	if _, ok := tree.Find(42); ok {
		t.Fatalf("expected miss on empty tree")
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("expected empty tree to validate, got %v", err)
	}
}

func TestInsertAndFindBasic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btree")
	defer teardown()

	tree, err := New[int, string](Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tree.Insert(1, "foo") {
		t.Fatalf("expected insert of key 1 to be net-new")
	}
	if !tree.Insert(42, "bar") {
		t.Fatalf("expected insert of key 42 to be net-new")
	}
	if tree.IsEmpty() {
		t.Fatalf("expected tree to be non-empty after inserts")
	}
	if v, ok := tree.Find(1); !ok || v != "foo" {
		t.Fatalf("Find(1) = %q, %v", v, ok)
	}
	if v, ok := tree.Find(42); !ok || v != "bar" {
		t.Fatalf("Find(42) = %q, %v", v, ok)
	}
	if _, ok := tree.Find(7); ok {
		t.Fatalf("expected miss for absent key 7")
	}
	tree.Clear()
	if !tree.IsEmpty() {
		t.Fatalf("expected tree to be empty after Clear")
	}
	if _, ok := tree.Find(1); ok {
		t.Fatalf("expected miss after Clear")
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed after Clear: %v", err)
	}
}

func TestInsertOverwritesExistingKey(t *testing.T) {
	tree, err := New[int, string](Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tree.Insert(7, "first") {
		t.Fatalf("expected first insert to be net-new")
	}
	if tree.Insert(7, "second") {
		t.Fatalf("expected overwrite of key 7 to return false")
	}
	if v, ok := tree.Find(7); !ok || v != "second" {
		t.Fatalf("Find(7) = %q, %v after overwrite", v, ok)
	}
	if tree.Len() != 1 {
		t.Fatalf("expected a single root key after overwrite, got %d", tree.Len())
	}
}

func TestLenCountsRootKeysOnly(t *testing.T) {
	tree, err := New[int, int](Config{MinDegree: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, k := range []int{4, 5, 6} {
		tree.Insert(k, k)
	}
	if tree.Len() != 3 {
		t.Fatalf("expected Len 3 for a leaf root, got %d", tree.Len())
	}
	tree.Insert(10, 10) // triggers root growth
	if tree.Len() != 1 {
		t.Fatalf("expected Len 1 after root growth, got %d", tree.Len())
	}
}

func TestClearResetsRootOnly(t *testing.T) {
	tree, err := New[int, int](Config{MinDegree: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for k := 0; k < 20; k++ {
		tree.Insert(k, k)
	}
	tree.Clear()
	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Fatalf("expected empty tree after Clear, len=%d", tree.Len())
	}
	for k := 0; k < 20; k++ {
		if _, ok := tree.Find(k); ok {
			t.Fatalf("expected miss for key %d after Clear", k)
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed after Clear: %v", err)
	}
	// The root must be reusable after a reset.
	if !tree.Insert(3, 3) {
		t.Fatalf("expected re-insert after Clear to be net-new")
	}
	if v, ok := tree.Find(3); !ok || v != 3 {
		t.Fatalf("Find(3) = %d, %v after re-insert", v, ok)
	}
}

func TestEqualDeepStructural(t *testing.T) {
	build := func(keys []int) *Tree[int, string] {
		tree, err := New[int, string](Config{MinDegree: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, k := range keys {
			tree.Insert(k, "v")
		}
		return tree
	}
	a := build([]int{4, 5, 6, 10, 11, 12})
	b := build([]int{4, 5, 6, 10, 11, 12})
	if !a.Equal(b) {
		t.Fatalf("expected identically built trees to be equal")
	}
	b.Insert(13, "v")
	if a.Equal(b) {
		t.Fatalf("expected trees to differ after extra insert")
	}
	empty1 := build(nil)
	empty2 := build(nil)
	if !empty1.Equal(empty2) {
		t.Fatalf("expected empty trees to be equal")
	}
}

func TestEqualFuncCustomComparison(t *testing.T) {
	a, _ := New[int, []byte](Config{})
	b, _ := New[int, []byte](Config{})
	a.Insert(1, []byte("x"))
	b.Insert(1, []byte("x"))
	if !a.Equal(b) {
		t.Fatalf("expected DeepEqual-based equality for byte slices")
	}
	sameLen := func(x, y []byte) bool { return len(x) == len(y) }
	b.Insert(1, []byte("y"))
	if !a.EqualFunc(b, sameLen) {
		t.Fatalf("expected custom comparison to consider trees equal")
	}
}
