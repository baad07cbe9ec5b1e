package resolve_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/damedic/odata-toolbox-go/annotation"
	"github.com/damedic/odata-toolbox-go/capabilities"
	"github.com/damedic/odata-toolbox-go/edm"
	odataerrors "github.com/damedic/odata-toolbox-go/errors"
	"github.com/damedic/odata-toolbox-go/resolve"
)

// countingElement records how often its annotations are inspected.
type countingElement struct {
	name        string
	annotations []annotation.Annotation
	fallback    edm.Element
	calls       int
}

func (e *countingElement) Path() string { return e.name }

func (e *countingElement) Annotations() []annotation.Annotation {
	e.calls++
	return e.annotations
}

func (e *countingElement) Fallback() edm.Element {
	if e.fallback == nil {
		return nil
	}
	return e.fallback
}

func deleteRestrictions(deletable bool, nonDeletable ...string) annotation.Annotation {
	paths := annotation.Collection{}
	for _, p := range nonDeletable {
		paths = append(paths, annotation.Path(p))
	}
	return annotation.Annotation{
		Term: capabilities.TermDeleteRestrictions,
		Value: annotation.NewRecord(
			annotation.Prop("Deletable", annotation.Bool(deletable)),
			annotation.Prop("NonDeletableNavigationProperties", paths),
		),
	}
}

func newResolver(opts ...resolve.Option) *resolve.Resolver {
	opts = append([]resolve.Option{resolve.WithLogger(slog.New(slog.DiscardHandler))}, opts...)
	return resolve.New(capabilities.Registry(), opts...)
}

func TestResolveDirectAnnotation(t *testing.T) {
	customer := edm.NewEntityType("NS", "Customer")
	container := edm.NewEntityContainer("NS", "Container")
	customers := container.AddEntitySet("Customers", customer)
	customers.AddAnnotation(deleteRestrictions(false, "Orders", "Addresses"))

	r := newResolver()
	v, ok, err := r.Resolve(customers, capabilities.TermDeleteRestrictions)
	if err != nil || !ok {
		t.Fatalf("Resolve = %v, %v, %v", v, ok, err)
	}
	d, isDelete := v.(*capabilities.DeleteRestrictions)
	if !isDelete {
		t.Fatalf("resolved %T", v)
	}
	if d.IsDeletable() {
		t.Errorf("IsDeletable = true")
	}
	if !d.IsNonDeletableNavigationProperty("Orders") || d.IsNonDeletableNavigationProperty("Other") {
		t.Errorf("NonDeletableNavigationProperties = %v", d.NonDeletableNavigationProperties)
	}
	if d.Permission != nil {
		t.Errorf("Permission = %v; want absent", d.Permission)
	}
}

func TestResolveFallback(t *testing.T) {
	customer := edm.NewEntityType("NS", "Customer")
	customer.AddAnnotation(deleteRestrictions(false))
	orders := customer.AddNavigationProperty("Orders", edm.NewEntityType("NS", "Order"), true)
	container := edm.NewEntityContainer("NS", "Container")
	customers := container.AddEntitySet("Customers", customer)
	me := container.AddSingleton("Me", customer)

	r := newResolver()
	typeRecord, ok, err := r.Resolve(customer, capabilities.TermDeleteRestrictions)
	if err != nil || !ok {
		t.Fatalf("Resolve(type) = %v, %v, %v", typeRecord, ok, err)
	}

	for _, el := range []edm.Element{customers, me, orders} {
		v, ok, err := r.Resolve(el, capabilities.TermDeleteRestrictions)
		if err != nil || !ok {
			t.Fatalf("Resolve(%s) = %v, %v, %v", el.Path(), v, ok, err)
		}
		if v != typeRecord {
			t.Errorf("Resolve(%s) should return the record of the entity type", el.Path())
		}
	}
}

func TestResolveFallbackStopsAtUnannotatedType(t *testing.T) {
	customer := edm.NewEntityType("NS", "Customer")
	customer.AddAnnotation(deleteRestrictions(false))
	order := edm.NewEntityType("NS", "Order")
	lines := order.AddNavigationProperty("Lines", edm.NewEntityType("NS", "OrderLine"), true)
	customer.AddNavigationProperty("Orders", order, true)
	customers := edm.NewEntityContainer("NS", "Container").AddEntitySet("Customers", customer)

	r := newResolver()
	if _, ok, err := r.Resolve(customers, capabilities.TermDeleteRestrictions); err != nil || !ok {
		t.Errorf("Resolve(Customers) ok=%v err=%v; want the entity type record", ok, err)
	}
	v, ok, err := r.Resolve(lines, capabilities.TermDeleteRestrictions)
	if err != nil || ok || v != nil {
		t.Errorf("Resolve(Order/Lines) = %v, %v, %v; want absent", v, ok, err)
	}
}

func TestResolveNoFallbackForProperties(t *testing.T) {
	customer := edm.NewEntityType("NS", "Customer")
	customer.AddAnnotation(deleteRestrictions(false))
	name := customer.AddProperty("Name", "Edm.String")

	r := newResolver()
	v, ok, err := r.Resolve(name, capabilities.TermDeleteRestrictions)
	if err != nil || ok || v != nil {
		t.Errorf("Resolve(property) = %v, %v, %v; want absent", v, ok, err)
	}
}

func TestResolveDirectOverridesFallback(t *testing.T) {
	customer := edm.NewEntityType("NS", "Customer")
	customer.AddAnnotation(deleteRestrictions(false))
	container := edm.NewEntityContainer("NS", "Container")
	customers := container.AddEntitySet("Customers", customer)
	customers.AddAnnotation(deleteRestrictions(true))

	m := capabilities.NewModel(newResolver())
	d, err := m.DeleteRestrictions(customers)
	if err != nil {
		t.Fatal(err)
	}
	if !d.IsDeletable() {
		t.Errorf("entity set annotation should override the entity type annotation")
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	customer := edm.NewEntityType("NS", "Customer")
	customer.AddAnnotation(deleteRestrictions(false, "Orders"))

	r := newResolver()
	first, _, _ := r.Resolve(customer, capabilities.TermDeleteRestrictions)
	second, _, _ := r.Resolve(customer, capabilities.TermDeleteRestrictions)
	if first != second {
		t.Errorf("repeated resolution returned a different record")
	}
}

func TestResolveCachesWalkedElements(t *testing.T) {
	entityType := &countingElement{name: "NS.Customer", annotations: []annotation.Annotation{deleteRestrictions(false)}}
	entitySet := &countingElement{name: "NS.Container/Customers", fallback: entityType}
	navigation := &countingElement{name: "NS.Customer/Friends", fallback: entityType}

	r := newResolver()
	for range 3 {
		if _, ok, err := r.Resolve(entitySet, capabilities.TermDeleteRestrictions); err != nil || !ok {
			t.Fatalf("Resolve(entity set) = %v, %v", ok, err)
		}
	}
	if _, ok, _ := r.Resolve(entityType, capabilities.TermDeleteRestrictions); !ok {
		t.Fatal("Resolve(entity type) absent")
	}
	if _, ok, _ := r.Resolve(navigation, capabilities.TermDeleteRestrictions); !ok {
		t.Fatal("Resolve(navigation property) absent")
	}

	if entitySet.calls != 1 {
		t.Errorf("entity set annotations inspected %d times; want 1", entitySet.calls)
	}
	if entityType.calls != 1 {
		t.Errorf("entity type annotations inspected %d times; want 1", entityType.calls)
	}
	if navigation.calls != 1 {
		t.Errorf("navigation property annotations inspected %d times; want 1", navigation.calls)
	}

	// absence is cached as well
	for range 2 {
		if _, ok, _ := r.Resolve(entitySet, capabilities.TermCountRestrictions); ok {
			t.Fatal("CountRestrictions should be absent")
		}
	}
	if entitySet.calls != 2 || entityType.calls != 2 {
		t.Errorf("absent term inspected entity set %d, entity type %d times; want 2, 2", entitySet.calls, entityType.calls)
	}
}

func TestResolveUnknownTerm(t *testing.T) {
	el := &countingElement{name: "NS.Customer", annotations: []annotation.Annotation{
		{Term: "Org.OData.Core.V1.Description", Value: annotation.String("customers")},
	}}

	r := newResolver()
	v, ok, err := r.Resolve(el, "Org.OData.Core.V1.Description")
	if err != nil || ok || v != nil {
		t.Errorf("Resolve(unknown term) = %v, %v, %v; want absent", v, ok, err)
	}
	if el.calls != 0 {
		t.Errorf("annotations of unknown term inspected")
	}
	if len(r.Diagnostics()) != 0 {
		t.Errorf("unknown term should not produce diagnostics: %v", r.Diagnostics())
	}
}

func TestResolveNilElement(t *testing.T) {
	r := newResolver()
	_, ok, err := r.Resolve(nil, capabilities.TermDeleteRestrictions)
	if ok || !odataerrors.Is(err, odataerrors.ErrArgumentMissing) {
		t.Errorf("Resolve(nil) = %v, %v; want ErrArgumentMissing", ok, err)
	}
}

func TestResolveMalformedAnnotation(t *testing.T) {
	customer := edm.NewEntityType("NS", "Customer")
	customer.AddAnnotation(deleteRestrictions(false))
	container := edm.NewEntityContainer("NS", "Container")
	customers := container.AddEntitySet("Customers", customer)
	customers.Annotate(capabilities.TermDeleteRestrictions, annotation.Bool(false))

	r := newResolver()
	v, ok, err := r.Resolve(customers, capabilities.TermDeleteRestrictions)
	if err != nil {
		t.Fatalf("malformed annotation must not fail the resolution: %v", err)
	}
	if ok || v != nil {
		t.Errorf("Resolve = %v, %v; want absent", v, ok)
	}

	diags := r.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v; want one", diags)
	}
	if diags[0].Target != "NS.Container/Customers" || diags[0].Term != capabilities.TermDeleteRestrictions {
		t.Errorf("diagnostic = %+v", diags[0])
	}
	if !odataerrors.Is(diags[0], odataerrors.ErrMalformedAnnotation) {
		t.Errorf("diagnostic %v should be a malformed annotation", diags[0])
	}
}

func TestResolveFieldDiagnostics(t *testing.T) {
	customer := edm.NewEntityType("NS", "Customer")
	customer.Annotate(capabilities.TermUpdateRestrictions, annotation.NewRecord(
		annotation.Prop("Updatable", annotation.Bool(false)),
		annotation.Prop("UpdateMethod", annotation.EnumMember("Org.OData.Capabilities.V1.HttpMethod/MERGE")),
	))

	m := capabilities.NewModel(newResolver())
	u, err := m.UpdateRestrictions(customer)
	if err != nil {
		t.Fatal(err)
	}
	if u.IsUpdatable() {
		t.Errorf("IsUpdatable = true")
	}
	if u.UpdateMethod != nil {
		t.Errorf("UpdateMethod = %v; want absent", u.UpdateMethod)
	}
}

func TestResolveNullCollectionElement(t *testing.T) {
	customer := edm.NewEntityType("NS", "Customer")
	customer.Annotate(capabilities.TermDeleteRestrictions, annotation.NewRecord(
		annotation.Prop("Deletable", annotation.Bool(false)),
		annotation.Prop("NonDeletableNavigationProperties", annotation.Collection{annotation.Path("Orders"), nil}),
	))

	r := newResolver()
	m := capabilities.NewModel(r)
	d, err := m.DeleteRestrictions(customer)
	if err != nil {
		t.Fatal(err)
	}
	if d == nil || d.IsDeletable() {
		t.Fatalf("DeleteRestrictions = %+v; want Deletable false", d)
	}
	if d.NonDeletableNavigationProperties != nil {
		t.Errorf("NonDeletableNavigationProperties = %v; want absent", d.NonDeletableNavigationProperties)
	}
	diags := r.Diagnostics()
	if len(diags) != 1 || diags[0].Field != "NonDeletableNavigationProperties" {
		t.Errorf("diagnostics = %v; want the malformed paths field", diags)
	}
}

func TestResolveIgnoresQualifiedAnnotations(t *testing.T) {
	customer := edm.NewEntityType("NS", "Customer")
	customer.AddAnnotation(annotation.Annotation{
		Term:      capabilities.TermDeleteRestrictions,
		Qualifier: "Internal",
		Value:     annotation.NewRecord(annotation.Prop("Deletable", annotation.Bool(false))),
	})

	r := newResolver()
	if _, ok, _ := r.Resolve(customer, capabilities.TermDeleteRestrictions); ok {
		t.Errorf("qualified annotation should be ignored")
	}
}

func TestResolveFallbackCycle(t *testing.T) {
	a := &countingElement{name: "A"}
	b := &countingElement{name: "B", fallback: a}
	a.fallback = b

	r := newResolver()
	v, ok, err := r.Resolve(a, capabilities.TermDeleteRestrictions)
	if err != nil || ok || v != nil {
		t.Errorf("Resolve(cycle) = %v, %v, %v; want absent", v, ok, err)
	}
	if len(r.Diagnostics()) != 1 {
		t.Errorf("diagnostics = %v; want the cycle", r.Diagnostics())
	}
	if _, ok, _ := r.Resolve(b, capabilities.TermDeleteRestrictions); ok {
		t.Errorf("Resolve(b) should be absent")
	}
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("cycle elements inspected %d, %d times; want 1, 1", a.calls, b.calls)
	}
}

func TestResolverID(t *testing.T) {
	id := uuid.MustParse("1c8ad1c0-64e1-4b1b-a02b-7df1f0ef3e59")
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := resolve.New(capabilities.Registry(), resolve.WithID(id), resolve.WithLogger(logger))
	if r.ID() != id {
		t.Errorf("ID = %s; want %s", r.ID(), id)
	}
	if _, _, err := r.Resolve(edm.NewEntityType("NS", "Customer"), "NS.Unknown"); err != nil {
		t.Fatal(err)
	}

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log output %q: %v", buf.String(), err)
	}
	if record["run"] != id.String() || record["term"] != "NS.Unknown" {
		t.Errorf("log record = %v", record)
	}

	if other := newResolver(); other.ID() == uuid.Nil || other.ID() == id {
		t.Errorf("default id = %s", other.ID())
	}
}

func TestResolverMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	customer := edm.NewEntityType("NS", "Customer")
	customer.AddAnnotation(deleteRestrictions(false))
	customer.Annotate(capabilities.TermCountRestrictions, annotation.String("broken"))

	r := newResolver(resolve.WithMeterProvider(provider))
	_, _, _ = r.Resolve(customer, capabilities.TermDeleteRestrictions)
	_, _, _ = r.Resolve(customer, capabilities.TermDeleteRestrictions)
	_, _, _ = r.Resolve(customer, capabilities.TermCountRestrictions)
	_, _, _ = r.Resolve(customer, "NS.Unknown")

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatal(err)
	}

	resolutions := counterValues(t, rm, "odata_resolutions_total", "result")
	if diff := cmp.Diff(map[string]int64{"hit": 2, "miss": 1, "unknown": 1}, resolutions); diff != "" {
		t.Errorf("resolutions mismatch (-want +got):\n%s", diff)
	}
	diagnostics := counterValues(t, rm, "odata_annotation_diagnostics_total", "term")
	if diff := cmp.Diff(map[string]int64{capabilities.TermCountRestrictions: 1}, diagnostics); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func counterValues(t *testing.T, rm metricdata.ResourceMetrics, name, attr string) map[string]int64 {
	t.Helper()
	values := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("%s is %T", name, m.Data)
			}
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value(attribute.Key(attr))
				values[v.AsString()] += dp.Value
			}
		}
	}
	return values
}

func TestDiagnosticsAreCopied(t *testing.T) {
	customer := edm.NewEntityType("NS", "Customer")
	customer.Annotate(capabilities.TermCountRestrictions, annotation.Int(1))

	r := newResolver()
	_, _, _ = r.Resolve(customer, capabilities.TermCountRestrictions)
	diags := r.Diagnostics()
	diags[0].Term = "changed"
	if r.Diagnostics()[0].Term != capabilities.TermCountRestrictions {
		t.Errorf("Diagnostics exposes internal state")
	}
	if !strings.Contains(diags.Error(), "NS.Customer@") {
		t.Errorf("diagnostic message %q should name the target", diags.Error())
	}
}
