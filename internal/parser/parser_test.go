package parser

import (
	"context"
	"strings"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
)

const sampleClass = `class Invoice:
    def __init__(self, total):
        self.total = total

    @property
    def amount(self):
        return self.total
`

func mustParse(t *testing.T, src string) *Tree {
	t.Helper()
	tree, err := Parse(context.Background(), "sample.py", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	t.Cleanup(tree.Close)
	return tree
}

func TestParse_Module(t *testing.T) {
	tree := mustParse(t, sampleClass)
	if tree.Root.Type() != KindModule {
		t.Fatalf("root kind = %q, want %q", tree.Root.Type(), KindModule)
	}
	if got := int(tree.Root.NamedChildCount()); got != 1 {
		t.Fatalf("module children = %d, want 1", got)
	}
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse(context.Background(), "broken.py", []byte("def broken(:\n"))
	if err == nil {
		t.Fatal("want error for broken source")
	}
	if !strings.Contains(err.Error(), "broken.py") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestPositions(t *testing.T) {
	tree := mustParse(t, sampleClass)
	class := tree.Root.NamedChild(0)
	if class.Type() != KindClass {
		t.Fatalf("first child = %q, want class", class.Type())
	}
	if Line(class) != 1 || Col(class) != 0 {
		t.Errorf("class at %d:%d, want 1:0", Line(class), Col(class))
	}
	if Name(class, tree.Source) != "Invoice" {
		t.Errorf("class name = %q", Name(class, tree.Source))
	}

	body := BodyStatements(class)
	if len(body) != 2 {
		t.Fatalf("class body statements = %d, want 2", len(body))
	}
	init := body[0]
	if Name(init, tree.Source) != "__init__" {
		t.Fatalf("first method = %q", Name(init, tree.Source))
	}
	if Line(init) != 2 || Col(init) != 4 {
		t.Errorf("__init__ at %d:%d, want 2:4", Line(init), Col(init))
	}
}

func TestDecorators(t *testing.T) {
	tree := mustParse(t, sampleClass)
	class := tree.Root.NamedChild(0)
	body := BodyStatements(class)

	decorated := body[1]
	if decorated.Type() != KindDecorated {
		t.Fatalf("second statement = %q, want decorated_definition", decorated.Type())
	}
	def := decorated.ChildByFieldName("definition")
	names := DecoratorNames(def, tree.Source)
	if len(names) != 1 || names[0] != "property" {
		t.Fatalf("decorator names = %v, want [property]", names)
	}
}

func TestDecoratorName_Forms(t *testing.T) {
	src := `@dataclasses.dataclass(frozen=True)
class Point:
    pass
`
	tree := mustParse(t, src)
	decorated := tree.Root.NamedChild(0)
	def := decorated.ChildByFieldName("definition")
	names := DecoratorNames(def, tree.Source)
	if len(names) != 1 || names[0] != "dataclass" {
		t.Fatalf("decorator names = %v, want [dataclass]", names)
	}
	if DecoratorCall(def, tree.Source, "dataclass") == nil {
		t.Error("DecoratorCall should find the parenthesized form")
	}
}

func TestIsMethod(t *testing.T) {
	src := `class C:
    def value(self):
        pass

    def shared(cls):
        pass

def standalone(data):
    pass
`
	tree := mustParse(t, src)
	class := tree.Root.NamedChild(0)
	body := BodyStatements(class)
	if !IsMethod(body[0], tree.Source) {
		t.Error("value(self) should be a method")
	}
	if !IsMethod(body[1], tree.Source) {
		t.Error("shared(cls) should be a method")
	}
	standalone := tree.Root.NamedChild(1)
	if IsMethod(standalone, tree.Source) {
		t.Error("standalone(data) should not be a method")
	}
}

func TestInAnnotation(t *testing.T) {
	src := `def lookup(key) -> None:
    return None
`
	tree := mustParse(t, src)
	fn := tree.Root.NamedChild(0)
	ret := fn.ChildByFieldName("return_type")
	if ret == nil {
		t.Fatal("no return_type field")
	}
	// the annotation none
	annNone := firstOfKind(ret, KindNone)
	if annNone == nil {
		t.Fatal("no none inside annotation")
	}
	if !InAnnotation(annNone) {
		t.Error("annotation None should be InAnnotation")
	}
	// the returned none
	body := fn.ChildByFieldName("body")
	retNone := firstOfKind(body, KindNone)
	if retNone == nil {
		t.Fatal("no none inside body")
	}
	if InAnnotation(retNone) {
		t.Error("returned None should not be InAnnotation")
	}
}

func firstOfKind(n *sitter.Node, kind string) *sitter.Node {
	if n == nil {
		return nil
	}
	if n.Type() == kind {
		return n
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if found := firstOfKind(n.NamedChild(i), kind); found != nil {
			return found
		}
	}
	return nil
}

func TestIsTestPath(t *testing.T) {
	cases := map[string]bool{
		"pkg/test_models.py": true,
		"pkg/models_test.py": true,
		"pkg/models.py":      false,
		"testdata.py":        false,
	}
	for path, want := range cases {
		if got := IsTestPath(path); got != want {
			t.Errorf("IsTestPath(%q) = %v, want %v", path, got, want)
		}
	}
}
