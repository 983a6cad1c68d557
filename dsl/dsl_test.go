package dsl_test

import (
	"reflect"
	"testing"

	docproject "github.com/entamburini/docproject"
	g "github.com/entamburini/docproject/dsl"
)

func TestBuilder_DeclarationOrderAndMetadata(t *testing.T) {
	sch := g.New().
		Field(g.String("name")).
		Field(g.Repeated(g.Number("scores"))).
		Field(g.Map("addr", g.String("city"), g.GeoPoint("loc"))).
		IDField("id").
		TimestampField("updated").
		MustBuild()

	want := docproject.Schema{
		IDField:        "id",
		TimestampField: "updated",
		Fields: []docproject.Field{
			{Name: "name", Type: docproject.TypeString},
			{Name: "scores", Type: docproject.TypeNumber, Repeated: true},
			{Name: "addr", Type: docproject.TypeMap, Fields: []docproject.Field{
				{Name: "city", Type: docproject.TypeString},
				{Name: "loc", Type: docproject.TypeGeoPoint},
			}},
		},
	}
	if !reflect.DeepEqual(sch, want) {
		t.Fatalf("got %+v want %+v", sch, want)
	}
}

func TestBuilder_RejectsMalformedDefinitions(t *testing.T) {
	if _, err := g.New().Field(docproject.Field{Name: "x", Type: "bogus"}).Build(); err == nil {
		t.Fatalf("expected unknown tag error")
	}
	if _, err := g.New().Field(docproject.Field{Name: "m", Type: docproject.TypeMap}).Build(); err == nil {
		t.Fatalf("expected map-without-fields error")
	}
	if _, err := g.New().Field(docproject.Field{Type: docproject.TypeString}).Build(); err == nil {
		t.Fatalf("expected empty name error")
	}
}

func TestRepeated_DoesNotMutateInput(t *testing.T) {
	f := g.Number("xs")
	_ = g.Repeated(f)
	if f.Repeated {
		t.Fatalf("Repeated must copy, not mutate")
	}
}
