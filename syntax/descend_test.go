package syntax_test

import (
	"testing"

	"github.com/dshills/treeselect/syntax"
	"github.com/dshills/treeselect/syntax/syntaxtest"
)

// nestedTree models "(a (b) c)":
//
//	root [0,9)
//	  ( [0,1)  a [1,2)  list [3,6)  c [7,8)  ) [8,9)
//	  list: ( [3,4)  b [4,5)  ) [5,6)
func nestedTree() *syntaxtest.Tree {
	inner := syntaxtest.Branch(true,
		syntaxtest.Leaf(3, 4, false),
		syntaxtest.Leaf(4, 5, true),
		syntaxtest.Leaf(5, 6, false),
	)
	root := syntaxtest.Branch(true,
		syntaxtest.Leaf(0, 1, false),
		syntaxtest.Leaf(1, 2, true),
		inner,
		syntaxtest.Leaf(7, 8, true),
		syntaxtest.Leaf(8, 9, false),
	)
	return syntaxtest.NewTree(root)
}

func TestDescendantForRangeCursor(t *testing.T) {
	tree := nestedTree()

	tests := []struct {
		name     string
		offset   syntax.ByteOffset
		wantSpan syntax.Range
		wantNil  bool
	}{
		{"inside leaf", 4, syntax.NewRange(4, 5), false},
		{"inside top-level leaf", 1, syntax.NewRange(1, 2), false},
		{"gap between children", 2, syntax.NewRange(0, 9), false},
		{"start of text", 0, syntax.NewRange(0, 1), false},
		{"past end of text", 9, syntax.Range{}, true},
		{"negative offset", -1, syntax.Range{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tree.NodeAt(tt.offset)
			if tt.wantNil {
				if got != nil {
					t.Errorf("NodeAt(%d) = %v, want nil", tt.offset, syntax.NodeRange(got))
				}
				return
			}
			if got == nil {
				t.Fatalf("NodeAt(%d) = nil, want %v", tt.offset, tt.wantSpan)
			}
			if syntax.NodeRange(got) != tt.wantSpan {
				t.Errorf("NodeAt(%d) span = %v, want %v", tt.offset, syntax.NodeRange(got), tt.wantSpan)
			}
		})
	}
}

// A cursor at an exact node boundary belongs to the following node: spans
// are half-open, so offset 4 is inside b [4,5), not at the end of ( [3,4).
func TestDescendantForRangeBoundaryTieBreak(t *testing.T) {
	tree := nestedTree()

	got := tree.NodeAt(4)
	if got == nil {
		t.Fatal("NodeAt(4) = nil")
	}
	if syntax.NodeRange(got) != syntax.NewRange(4, 5) {
		t.Errorf("NodeAt(4) span = %v, want [4:5) (following node wins)", syntax.NodeRange(got))
	}
}

func TestDescendantForRangeCovering(t *testing.T) {
	tree := nestedTree()

	tests := []struct {
		name     string
		r        syntax.Range
		wantSpan syntax.Range
		wantNil  bool
	}{
		{"exact leaf", syntax.NewRange(4, 5), syntax.NewRange(4, 5), false},
		{"exact nested list", syntax.NewRange(3, 6), syntax.NewRange(3, 6), false},
		{"straddles siblings", syntax.NewRange(1, 5), syntax.NewRange(0, 9), false},
		{"whole text", syntax.NewRange(0, 9), syntax.NewRange(0, 9), false},
		{"beyond root", syntax.NewRange(5, 12), syntax.Range{}, true},
		{"inverted range", syntax.NewRange(6, 3), syntax.Range{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tree.SmallestCovering(tt.r)
			if tt.wantNil {
				if got != nil {
					t.Errorf("SmallestCovering(%v) = %v, want nil", tt.r, syntax.NodeRange(got))
				}
				return
			}
			if got == nil {
				t.Fatalf("SmallestCovering(%v) = nil, want %v", tt.r, tt.wantSpan)
			}
			if syntax.NodeRange(got) != tt.wantSpan {
				t.Errorf("SmallestCovering(%v) span = %v, want %v", tt.r, syntax.NodeRange(got), tt.wantSpan)
			}
		})
	}
}

func TestDescendantForRangeNilRoot(t *testing.T) {
	if syntax.DescendantForRange(nil, syntax.NewRange(0, 1)) != nil {
		t.Error("DescendantForRange(nil) should be nil")
	}

	empty := syntaxtest.NewTree(nil)
	if empty.RootNode() != nil {
		t.Error("empty tree should have nil root")
	}
	if empty.NodeAt(0) != nil {
		t.Error("empty tree NodeAt should be nil")
	}
}

func TestFakeNodeParentWiring(t *testing.T) {
	tree := nestedTree()

	b := tree.NodeAt(4)
	if b == nil {
		t.Fatal("NodeAt(4) = nil")
	}

	parent := b.Parent()
	if parent == nil {
		t.Fatal("leaf should have a parent")
	}
	if syntax.NodeRange(parent) != syntax.NewRange(3, 6) {
		t.Errorf("parent span = %v, want [3:6)", syntax.NodeRange(parent))
	}

	root := parent.Parent()
	if root == nil || root.Parent() != nil {
		t.Error("root should have nil parent")
	}
}
