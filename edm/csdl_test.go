package edm_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/odata-toolbox-go/annotation"
	"github.com/damedic/odata-toolbox-go/edm"
	"github.com/damedic/odata-toolbox-go/testdata"
)

func readDemo(t *testing.T) *edm.Model {
	t.Helper()
	m, err := edm.ReadJSON(testdata.ModelReader("demo"))
	if err != nil {
		t.Fatalf("read demo model: %v", err)
	}
	return m
}

func terms(el edm.Element) []string {
	var out []string
	for _, a := range el.Annotations() {
		name := a.Term
		if a.Qualifier != "" {
			name += "#" + a.Qualifier
		}
		out = append(out, name)
	}
	return out
}

func TestReadJSONStructure(t *testing.T) {
	m := readDemo(t)

	var typeNames []string
	for _, et := range m.EntityTypes {
		typeNames = append(typeNames, et.QualifiedName())
	}
	if diff := cmp.Diff([]string{"ODataDemo.Customer", "ODataDemo.Order", "ODataDemo.Address"}, typeNames); diff != "" {
		t.Errorf("entity types mismatch (-want +got):\n%s", diff)
	}

	customer, ok := m.EntityType("ODataDemo.Customer")
	if !ok {
		t.Fatal("Customer not found")
	}
	if diff := cmp.Diff([]string{"ID"}, customer.Key); diff != "" {
		t.Errorf("key mismatch (-want +got):\n%s", diff)
	}

	id, _ := customer.Property("ID")
	name, _ := customer.Property("Name")
	if id.Type != "Edm.Int32" || id.Nullable {
		t.Errorf("ID = %s nullable=%v", id.Type, id.Nullable)
	}
	if name.Type != "Edm.String" || !name.Nullable {
		t.Errorf("Name = %s nullable=%v", name.Type, name.Nullable)
	}
	if diff := cmp.Diff([]string{"Org.OData.Core.V1.Description"}, terms(name)); diff != "" {
		t.Errorf("Name annotations mismatch (-want +got):\n%s", diff)
	}

	orders, ok := customer.NavigationProperty("Orders")
	if !ok {
		t.Fatal("Orders not found")
	}
	if orders.Type != "ODataDemo.Order" || !orders.Collection || orders.Target == nil || orders.Target.Name != "Order" {
		t.Errorf("Orders = %+v", orders)
	}
	addresses, _ := customer.NavigationProperty("Addresses")
	if !addresses.ContainsTarget {
		t.Errorf("Addresses should contain its target")
	}
	if orders.Fallback() != edm.Element(customer) {
		t.Errorf("navigation property should fall back to its declaring type")
	}

	c := m.Container
	if c == nil || c.QualifiedName() != "ODataDemo.Container" {
		t.Fatalf("container = %v", c)
	}
	if len(c.EntitySets) != 2 || len(c.Singletons) != 1 {
		t.Errorf("container has %d entity sets and %d singletons", len(c.EntitySets), len(c.Singletons))
	}
	me, ok := c.Singleton("Me")
	if !ok || me.EntityType != customer || me.Fallback() != edm.Element(customer) {
		t.Errorf("singleton Me = %+v", me)
	}
	if me.Path() != "ODataDemo.Container/Me" {
		t.Errorf("path = %s", me.Path())
	}
}

func TestReadJSONAnnotations(t *testing.T) {
	m := readDemo(t)
	customers, _ := m.Container.EntitySet("Customers")

	want := []string{
		"Org.OData.Capabilities.V1.DeleteRestrictions",
		"Org.OData.Capabilities.V1.InsertRestrictions",
		"Org.OData.Capabilities.V1.UpdateRestrictions",
		"Org.OData.Capabilities.V1.UpdateRestrictions#Internal",
	}
	if diff := cmp.Diff(want, terms(customers)); diff != "" {
		t.Errorf("Customers annotations mismatch (-want +got):\n%s", diff)
	}

	deletes := customers.Annotations()[0].Value
	wantValue := `{Deletable: false, NonDeletableNavigationProperties: [Orders, Addresses]}`
	if deletes.String() != wantValue {
		t.Errorf("DeleteRestrictions = %s; want %s", deletes, wantValue)
	}

	orders, _ := m.Container.EntitySet("Orders")
	want = []string{
		"Org.OData.Capabilities.V1.FilterRestrictions",
		"Org.OData.Capabilities.V1.SearchRestrictions",
		"Org.OData.Capabilities.V1.SortRestrictions",
	}
	if diff := cmp.Diff(want, terms(orders)); diff != "" {
		t.Errorf("external annotations mismatch (-want +got):\n%s", diff)
	}

	customer, _ := m.EntityType("ODataDemo.Customer")
	nav, _ := customer.NavigationProperty("Orders")
	if diff := cmp.Diff([]string{"Org.OData.Capabilities.V1.NavigationRestrictions"}, terms(nav)); diff != "" {
		t.Errorf("navigation property annotations mismatch (-want +got):\n%s", diff)
	}
}

func TestReadJSONValues(t *testing.T) {
	doc := `{
		"$Reference": {"x": {"$Include": [{"$Namespace": "Org.OData.Core.V1", "$Alias": "Core"}]}},
		"NS": {
			"T": {
				"$Kind": "EntityType",
				"@Core.Values": {
					"@type": "#Core.Record",
					"Int": 42,
					"Big": 12345678901234567890,
					"Dec": 1.5,
					"Str": "s",
					"Null": null,
					"Paths": [{"$PropertyPath": "A"}, null, {"$AnnotationPath": "B/@Core.X"}],
					"Nested": {"Flag": true},
					"Inner@Core.Description": "skipped"
				}
			}
		}
	}`
	m, err := edm.ReadJSON(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	a := m.EntityTypes[0].Annotations()[0]
	if a.Term != "Org.OData.Core.V1.Values" {
		t.Errorf("term = %s", a.Term)
	}
	rec, ok := a.Value.(*annotation.Record)
	if !ok {
		t.Fatalf("value = %T", a.Value)
	}
	if rec.Type != "Org.OData.Core.V1.Record" {
		t.Errorf("record type = %s", rec.Type)
	}

	kinds := map[string]annotation.Kind{}
	for _, p := range rec.Properties {
		if p.Value != nil {
			kinds[p.Name] = p.Value.Kind()
		}
	}
	wantKinds := map[string]annotation.Kind{
		"Int":    annotation.KindInt,
		"Big":    annotation.KindDecimal,
		"Dec":    annotation.KindDecimal,
		"Str":    annotation.KindString,
		"Paths":  annotation.KindCollection,
		"Nested": annotation.KindRecord,
	}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Errorf("value kinds mismatch (-want +got):\n%s", diff)
	}

	if _, ok := rec.Property("Null"); ok {
		t.Errorf("null property should be absent")
	}
	paths, ok, err := annotation.GetPaths(rec, "Paths")
	if err != nil || !ok {
		t.Fatalf("GetPaths = %v, %v", ok, err)
	}
	if diff := cmp.Diff([]string{"A", "B/@Core.X"}, paths); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
	d, _, err := annotation.GetDecimal(rec, "Dec")
	if err != nil || d.String() != "1.5" {
		t.Errorf("Dec = %v, %v", d, err)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not an object", `[]`},
		{"truncated", `{"NS": {`},
		{"bad container name", `{"$EntityContainer": 1}`},
		{"dynamic expression", `{"NS": {"T": {"$Kind": "EntityType", "@Core.X": {"$If": [true, 1, 2]}}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := edm.ReadJSON(strings.NewReader(tt.doc)); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}
