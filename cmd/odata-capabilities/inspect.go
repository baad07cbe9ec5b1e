package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
	"golang.org/x/sync/errgroup"

	"github.com/damedic/odata-toolbox-go/capabilities"
	"github.com/damedic/odata-toolbox-go/edm"
	"github.com/damedic/odata-toolbox-go/openapi"
	"github.com/damedic/odata-toolbox-go/resolve"
	"github.com/damedic/odata-toolbox-go/settings"
)

type inspectOptions struct {
	modelPath    string
	settingsPath string
	envFile      string
	parallel     int
	logLevel     string
}

type report struct {
	Run         string             `json:"run"`
	Settings    *settings.Settings `json:"settings"`
	Targets     []targetReport     `json:"targets"`
	Diagnostics []string           `json:"diagnostics"`
}

type targetReport struct {
	Target       string             `json:"target"`
	Kind         string             `json:"kind"`
	EntityType   string             `json:"entityType"`
	Capabilities map[string]bool    `json:"capabilities"`
	Navigation   []navigationReport `json:"navigation,omitempty"`
	Operations   []operationReport  `json:"operations"`
}

type navigationReport struct {
	Name         string `json:"name"`
	Navigable    bool   `json:"navigable"`
	NonDeletable bool   `json:"nonDeletable"`
	NonCountable bool   `json:"nonCountable"`
}

type operationReport struct {
	Method     string                         `json:"method"`
	Responses  []string                       `json:"responses"`
	Parameters []string                       `json:"parameters,omitempty"`
	Security   *openapi3.SecurityRequirements `json:"security,omitempty"`
}

func runInspect(ctx context.Context, opts inspectOptions, stdout, stderr io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if opts.modelPath == "" {
		return errors.New("missing model file argument")
	}
	if opts.envFile != "" {
		if err := settings.LoadEnvFile(opts.envFile); err != nil {
			return err
		}
	}
	s, err := settings.Load(opts.settingsPath)
	if err != nil {
		return err
	}

	f, err := os.Open(opts.modelPath)
	if err != nil {
		return fmt.Errorf("open model: %w", err)
	}
	defer f.Close()
	model, err := edm.ReadJSON(f)
	if err != nil {
		return fmt.Errorf("read model %s: %w", opts.modelPath, err)
	}
	if model.Container == nil {
		return fmt.Errorf("model %s has no entity container", opts.modelPath)
	}

	resolver := resolve.NewShared(resolve.New(capabilities.Registry(), resolve.WithLogger(logger)))
	inspector := &inspector{caps: capabilities.NewModel(resolver), settings: s}
	logger.Info("inspecting model", "model", opts.modelPath, "run", resolver.ID().String())

	var targets []edm.Element
	for _, set := range model.Container.EntitySets {
		targets = append(targets, set)
	}
	for _, singleton := range model.Container.Singletons {
		targets = append(targets, singleton)
	}

	reports := make([]targetReport, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	if opts.parallel > 0 {
		g.SetLimit(opts.parallel)
	}
	for i, target := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := inspector.inspect(target)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", target.Path(), err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := report{
		Run:         resolver.ID().String(),
		Settings:    s,
		Targets:     reports,
		Diagnostics: []string{},
	}
	for _, d := range resolver.Diagnostics() {
		out.Diagnostics = append(out.Diagnostics, d.Error())
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type inspector struct {
	caps     *capabilities.Model
	settings *settings.Settings
}

type restrictions struct {
	deletes  *capabilities.DeleteRestrictions
	inserts  *capabilities.InsertRestrictions
	updates  *capabilities.UpdateRestrictions
	reads    *capabilities.ReadRestrictions
	counts   *capabilities.CountRestrictions
	filters  *capabilities.FilterRestrictions
	sorts    *capabilities.SortRestrictions
	searches *capabilities.SearchRestrictions
	expands  *capabilities.ExpandRestrictions
	navs     *capabilities.NavigationRestrictions
}

func (in *inspector) restrictions(el edm.Element) (restrictions, error) {
	var (
		r    restrictions
		errs []error
	)
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	var err error
	r.deletes, err = in.caps.DeleteRestrictions(el)
	collect(err)
	r.inserts, err = in.caps.InsertRestrictions(el)
	collect(err)
	r.updates, err = in.caps.UpdateRestrictions(el)
	collect(err)
	r.reads, err = in.caps.ReadRestrictions(el)
	collect(err)
	r.counts, err = in.caps.CountRestrictions(el)
	collect(err)
	r.filters, err = in.caps.FilterRestrictions(el)
	collect(err)
	r.sorts, err = in.caps.SortRestrictions(el)
	collect(err)
	r.searches, err = in.caps.SearchRestrictions(el)
	collect(err)
	r.expands, err = in.caps.ExpandRestrictions(el)
	collect(err)
	r.navs, err = in.caps.NavigationRestrictions(el)
	collect(err)
	return r, errors.Join(errs...)
}

func (in *inspector) inspect(el edm.Element) (targetReport, error) {
	var (
		kind       string
		entityType *edm.EntityType
	)
	switch t := el.(type) {
	case *edm.EntitySet:
		kind, entityType = "entitySet", t.EntityType
	case *edm.Singleton:
		kind, entityType = "singleton", t.EntityType
	default:
		return targetReport{}, fmt.Errorf("unsupported target %T", el)
	}

	r, err := in.restrictions(el)
	if err != nil {
		return targetReport{}, err
	}

	out := targetReport{
		Target: el.Path(),
		Kind:   kind,
		Capabilities: map[string]bool{
			"deletable":      r.deletes.IsDeletable(),
			"insertable":     r.inserts.IsInsertable(),
			"updatable":      r.updates.IsUpdatable(),
			"upsertable":     r.updates.IsUpsertable(),
			"readable":       r.reads.IsReadable(),
			"countable":      r.counts.IsCountable(),
			"filterable":     r.filters.IsFilterable(),
			"requiresFilter": r.filters.IsRequiresFilter(),
			"sortable":       r.sorts.IsSortable(),
			"searchable":     r.searches.IsSearchable(),
			"expandable":     r.expands.IsExpandable(),
			"navigable":      r.navs.IsNavigable(),
		},
	}
	if entityType != nil {
		out.EntityType = entityType.QualifiedName()
		if in.settings.NavigationPropertyDepth > 0 {
			for _, nav := range entityType.NavigationProperties {
				restriction, _ := r.navs.RestrictionFor(nav.Name)
				out.Navigation = append(out.Navigation, navigationReport{
					Name:         nav.Name,
					Navigable:    r.navs.IsNavigable() && restriction.IsNavigable(),
					NonDeletable: r.deletes.IsNonDeletableNavigationProperty(nav.Name),
					NonCountable: r.counts.IsNonCountableNavigationProperty(nav.Name),
				})
			}
		}
	}

	out.Operations, err = in.operations(kind, r)
	return out, err
}

type operationSpec struct {
	method     string
	enabled    bool
	noContent  bool
	permission *capabilities.Permission
	headers    []capabilities.CustomParameter
	options    []capabilities.CustomParameter
}

func (in *inspector) specs(kind string, r restrictions) []operationSpec {
	get := operationSpec{method: http.MethodGet, enabled: r.reads.IsReadable()}
	if r.reads != nil {
		get.permission, get.headers, get.options = r.reads.Permission, r.reads.CustomHeaders, r.reads.CustomQueryOptions
	}
	post := operationSpec{method: http.MethodPost, enabled: kind == "entitySet" && r.inserts.IsInsertable()}
	if r.inserts != nil {
		post.permission, post.headers, post.options = r.inserts.Permission, r.inserts.CustomHeaders, r.inserts.CustomQueryOptions
	}
	update := operationSpec{method: http.MethodPatch, enabled: r.updates.IsUpdatable(), noContent: true}
	if r.updates.IsUpdateMethodPut() {
		update.method = http.MethodPut
	}
	if r.updates != nil {
		update.permission, update.headers, update.options = r.updates.Permission, r.updates.CustomHeaders, r.updates.CustomQueryOptions
	}
	del := operationSpec{method: http.MethodDelete, enabled: kind == "entitySet" && r.deletes.IsDeletable(), noContent: true}
	if r.deletes != nil {
		del.permission, del.headers, del.options = r.deletes.Permission, r.deletes.CustomHeaders, r.deletes.CustomQueryOptions
	}
	return []operationSpec{get, post, update, del}
}

// operations builds an OpenAPI operation per enabled request kind and reports its
// response keys, parameters and security requirements.
func (in *inspector) operations(kind string, r restrictions) ([]operationReport, error) {
	var ops []operationReport
	for _, spec := range in.specs(kind, r) {
		if !spec.enabled {
			continue
		}
		op := openapi3.NewOperation()
		if !spec.noContent {
			op.Responses = &openapi3.Responses{}
			op.Responses.Set("200", &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("Success")})
		}
		if err := openapi.AddErrorResponses(op, in.settings, spec.noContent); err != nil {
			return nil, err
		}
		if err := openapi.AddSecurity(op, spec.permission); err != nil {
			return nil, err
		}
		if in.settings.EnableCustomParameters {
			if err := openapi.AddCustomParameters(op, spec.headers, spec.options); err != nil {
				return nil, err
			}
		}

		o := operationReport{
			Method:    spec.method,
			Responses: openapi.ResponseKeys(op),
			Security:  op.Security,
		}
		for _, p := range op.Parameters {
			o.Parameters = append(o.Parameters, p.Value.In+":"+p.Value.Name)
		}
		ops = append(ops, o)
	}
	return ops, nil
}
