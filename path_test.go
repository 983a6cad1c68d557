package docproject_test

import (
	"testing"

	docproject "github.com/entamburini/docproject"
)

func TestPathRef_Pointer(t *testing.T) {
	if got := docproject.Root().Pointer(); got != "/" {
		t.Fatalf("root pointer: %q", got)
	}
	p := docproject.Root().Field("items").Index(2).Field("a/b~c")
	if got := p.Pointer(); got != "/items/2/a~1b~0c" {
		t.Fatalf("unexpected pointer: %q", got)
	}
}

func TestPathRef_Warning(t *testing.T) {
	w := docproject.Root().Field("n").Warning(docproject.CodeInvalidType, "boom", "want", "number", "got", "string")
	if w.Path != "/n" || w.Code != docproject.CodeInvalidType {
		t.Fatalf("unexpected warning: %+v", w)
	}
	if w.Params["want"] != "number" || w.Params["got"] != "string" {
		t.Fatalf("params not captured: %v", w.Params)
	}
}
