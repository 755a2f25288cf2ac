package parser

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Tree couples a parsed Python syntax tree with the source it came from.
// The tree is read-only for everything downstream.
type Tree struct {
	Path   string
	Source []byte
	Root   *sitter.Node

	tree *sitter.Tree
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
	}
}

// Parse turns Python source into a Tree. tree-sitter recovers from most
// input, so a root containing ERROR nodes is treated as a parse failure for
// the whole file: the caller gets an error, never a partially analyzed tree.
func Parse(ctx context.Context, path string, src []byte) (*Tree, error) {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())

	st, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	root := st.RootNode()
	if root == nil || root.Type() != KindModule {
		st.Close()
		return nil, fmt.Errorf("parse %s: no module produced", path)
	}
	if root.HasError() {
		st.Close()
		return nil, fmt.Errorf("parse %s: syntax error", path)
	}
	return &Tree{Path: path, Source: src, Root: root, tree: st}, nil
}

// ParseFile reads and parses one file from disk.
func ParseFile(ctx context.Context, path string) (*Tree, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(ctx, path, src)
}
