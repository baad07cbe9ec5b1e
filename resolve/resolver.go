// Package resolve locates vocabulary annotations on model elements and decodes them into
// typed records.
//
// A Resolver belongs to one conversion run. It memoizes every resolution per element
// and term, so repeated queries return the identical record pointer and the annotations
// of an element are inspected at most once per term:
//
//	r := resolve.New(capabilities.Registry(), resolve.WithLogger(logger))
//	v, ok, err := r.Resolve(entitySet, capabilities.TermDeleteRestrictions)
//
// When an element has no unqualified annotation for the term, the resolver consults the
// element's fallback (for example the entity type of an entity set) and caches the
// result for every element on the way.
//
// A Resolver is not safe for concurrent use; wrap it with [NewShared] to share it
// between goroutines.
package resolve

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/damedic/odata-toolbox-go/annotation"
	"github.com/damedic/odata-toolbox-go/edm"
	odataerrors "github.com/damedic/odata-toolbox-go/errors"
	"github.com/damedic/odata-toolbox-go/vocabulary"
)

type cacheKey struct {
	element edm.Element
	term    string
}

// cacheEntry is a resolved record or, with ok false, a cached absence.
type cacheEntry struct {
	value any
	ok    bool
}

type Resolver struct {
	registry *vocabulary.Registry
	logger   *slog.Logger
	id       uuid.UUID
	metrics  *resolverMetrics

	cache       map[cacheKey]cacheEntry
	diagnostics vocabulary.Diagnostics
}

type Option func(*options)

type options struct {
	logger        *slog.Logger
	meterProvider metric.MeterProvider
	id            uuid.UUID
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMeterProvider sets the meter provider for resolution metrics.
// Without it no metrics are recorded.
func WithMeterProvider(meterProvider metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = meterProvider
	}
}

// WithID sets the run id attached to log records. A random id is used by default.
func WithID(id uuid.UUID) Option {
	return func(o *options) {
		o.id = id
	}
}

// New creates a resolver for the terms of registry.
func New(registry *vocabulary.Registry, opts ...Option) *Resolver {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.meterProvider == nil {
		o.meterProvider = noop.NewMeterProvider()
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}

	return &Resolver{
		registry: registry,
		logger:   o.logger.With("run", o.id.String()),
		id:       o.id,
		metrics:  newResolverMetrics(o.meterProvider),
		cache:    map[cacheKey]cacheEntry{},
	}
}

// ID returns the run id.
func (r *Resolver) ID() uuid.UUID {
	return r.id
}

// Diagnostics returns the diagnostics collected so far, in order of occurrence.
func (r *Resolver) Diagnostics() vocabulary.Diagnostics {
	return append(vocabulary.Diagnostics(nil), r.diagnostics...)
}

// Resolve returns the decoded record of term for el.
//
// The direct unqualified annotation of el wins; otherwise the fallback chain of el is
// walked. A direct annotation that cannot be decoded as a record resolves to absent
// and is reported as diagnostic. Terms without a registered record kind resolve to
// absent. A nil element is an error.
func (r *Resolver) Resolve(el edm.Element, term string) (any, bool, error) {
	if el == nil {
		return nil, false, odataerrors.ArgumentMissing("element")
	}
	kind, ok := r.registry.Lookup(term)
	if !ok {
		r.logger.Debug("no record kind registered for term", "term", term, "target", el.Path())
		r.metrics.recordResolution(term, resultUnknown)
		return nil, false, nil
	}

	e := r.lookup(el, term, kind)
	if e.ok {
		r.metrics.recordResolution(term, resultHit)
	} else {
		r.metrics.recordResolution(term, resultMiss)
	}
	return e.value, e.ok, nil
}

func (r *Resolver) lookup(el edm.Element, term string, kind vocabulary.Descriptor) cacheEntry {
	var (
		walked  []edm.Element
		visited = map[edm.Element]bool{}
		result  cacheEntry
	)

	for current := el; current != nil; current = current.Fallback() {
		if cached, ok := r.cache[cacheKey{current, term}]; ok {
			result = cached
			break
		}
		if visited[current] {
			r.report(vocabulary.Diagnostic{
				Target: el.Path(),
				Term:   term,
				Err:    fmt.Errorf("fallback cycle at %s", current.Path()),
			})
			break
		}
		visited[current] = true
		walked = append(walked, current)

		if a, ok := directAnnotation(current, term); ok {
			result = r.decode(current, kind, a)
			break
		}
	}

	for _, w := range walked {
		r.cache[cacheKey{w, term}] = result
	}
	return result
}

func directAnnotation(el edm.Element, term string) (annotation.Annotation, bool) {
	for _, a := range el.Annotations() {
		if a.Term == term && a.Qualifier == "" {
			return a, true
		}
	}
	return annotation.Annotation{}, false
}

func (r *Resolver) decode(el edm.Element, kind vocabulary.Descriptor, a annotation.Annotation) cacheEntry {
	var diags vocabulary.Diagnostics
	v, err := kind.DecodeAny(a.Value, &diags)
	for _, d := range diags {
		d.Target = el.Path()
		r.report(d)
	}
	if err != nil {
		r.report(vocabulary.Diagnostic{Target: el.Path(), Term: a.Term, Err: err})
		return cacheEntry{}
	}
	return cacheEntry{value: v, ok: true}
}

func (r *Resolver) report(d vocabulary.Diagnostic) {
	r.logger.Warn("error decoding annotation", "target", d.Target, "term", d.Term, "field", d.Field, "err", d.Err)
	r.metrics.recordDiagnostic(d.Term)
	r.diagnostics = append(r.diagnostics, d)
}
