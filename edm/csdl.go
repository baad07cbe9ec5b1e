package edm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/damedic/odata-toolbox-go/annotation"
)

var pathKeys = map[string]bool{
	"$Path":                   true,
	"$PropertyPath":           true,
	"$NavigationPropertyPath": true,
	"$AnnotationPath":         true,
	"$ModelElementPath":       true,
}

type member struct {
	key string
	raw json.RawMessage
}

type reader struct {
	// aliases maps schema and reference aliases to namespaces.
	aliases map[string]string
	model   *Model
	types   map[string]*EntityType
}

// ReadJSON reads a CSDL JSON document.
//
// Entity types, their structural and navigation properties, the entity container with
// its entity sets and singletons, inline annotations and external annotations under
// "$Annotations" are read. Other schema elements are skipped. Term and type names
// using an alias are expanded to the full namespace.
func ReadJSON(r io.Reader) (*Model, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csdl: %w", err)
	}
	root, err := readObject(raw)
	if err != nil {
		return nil, fmt.Errorf("read csdl document: %w", err)
	}

	rd := &reader{
		aliases: map[string]string{},
		model:   &Model{},
		types:   map[string]*EntityType{},
	}

	var containerName string
	var schemas []schema
	for _, m := range root {
		switch {
		case m.key == "$Reference":
			if err := rd.readReferences(m.raw); err != nil {
				return nil, err
			}
		case m.key == "$EntityContainer":
			if err := json.Unmarshal(m.raw, &containerName); err != nil {
				return nil, fmt.Errorf("read $EntityContainer: %w", err)
			}
		case strings.HasPrefix(m.key, "$"):
		default:
			members, err := readObject(m.raw)
			if err != nil {
				// not a schema
				continue
			}
			s := schema{namespace: m.key, members: members}
			for _, sm := range members {
				if sm.key == "$Alias" {
					var alias string
					if err := json.Unmarshal(sm.raw, &alias); err != nil {
						return nil, fmt.Errorf("read $Alias of %s: %w", m.key, err)
					}
					rd.aliases[alias] = m.key
				}
			}
			schemas = append(schemas, s)
		}
	}

	// Entity types first so that navigation properties and entity sets can bind to them.
	pending := map[*EntityType][]member{}
	for _, s := range schemas {
		for _, sm := range s.members {
			kind, members, ok := elementKind(sm)
			if !ok || kind != "EntityType" {
				continue
			}
			t := NewEntityType(s.namespace, sm.key)
			rd.types[t.QualifiedName()] = t
			rd.model.EntityTypes = append(rd.model.EntityTypes, t)
			pending[t] = members
		}
	}
	for _, t := range rd.model.EntityTypes {
		if err := rd.readEntityType(t, pending[t]); err != nil {
			return nil, err
		}
	}

	containerName = rd.qualify(containerName)
	for _, s := range schemas {
		for _, sm := range s.members {
			kind, members, ok := elementKind(sm)
			if !ok || kind != "EntityContainer" {
				continue
			}
			c := NewEntityContainer(s.namespace, sm.key)
			if containerName != "" && c.QualifiedName() != containerName {
				continue
			}
			if err := rd.readContainer(c, members); err != nil {
				return nil, err
			}
			rd.model.Container = c
		}
	}

	for _, s := range schemas {
		for _, sm := range s.members {
			if sm.key != "$Annotations" {
				continue
			}
			if err := rd.readExternalAnnotations(sm.raw); err != nil {
				return nil, err
			}
		}
	}
	return rd.model, nil
}

type schema struct {
	namespace string
	members   []member
}

func elementKind(m member) (string, []member, bool) {
	if strings.HasPrefix(m.key, "$") || strings.HasPrefix(m.key, "@") {
		return "", nil, false
	}
	members, err := readObject(m.raw)
	if err != nil {
		return "", nil, false
	}
	for _, em := range members {
		if em.key == "$Kind" {
			var kind string
			if err := json.Unmarshal(em.raw, &kind); err != nil {
				return "", nil, false
			}
			return kind, members, true
		}
	}
	return "", members, true
}

func (rd *reader) readReferences(raw json.RawMessage) error {
	refs, err := readObject(raw)
	if err != nil {
		return fmt.Errorf("read $Reference: %w", err)
	}
	for _, ref := range refs {
		var r struct {
			Include []struct {
				Namespace string `json:"$Namespace"`
				Alias     string `json:"$Alias"`
			} `json:"$Include"`
		}
		if err := json.Unmarshal(ref.raw, &r); err != nil {
			return fmt.Errorf("read $Reference %s: %w", ref.key, err)
		}
		for _, inc := range r.Include {
			if inc.Alias != "" {
				rd.aliases[inc.Alias] = inc.Namespace
			}
		}
	}
	return nil
}

func (rd *reader) readEntityType(t *EntityType, members []member) error {
	for _, m := range members {
		switch {
		case m.key == "$Key":
			key, err := readKey(m.raw)
			if err != nil {
				return fmt.Errorf("read key of %s: %w", t.Path(), err)
			}
			t.Key = key
		case strings.HasPrefix(m.key, "@"):
			if err := rd.annotate(&t.annotatable, m); err != nil {
				return fmt.Errorf("%s: %w", t.Path(), err)
			}
		case strings.HasPrefix(m.key, "$") || strings.Contains(m.key, "@"):
		default:
			if err := rd.readMember(t, m); err != nil {
				return err
			}
		}
	}
	return nil
}

func (rd *reader) readMember(t *EntityType, m member) error {
	members, err := readObject(m.raw)
	if err != nil {
		return fmt.Errorf("read %s/%s: %w", t.Path(), m.key, err)
	}
	var def struct {
		Kind           string `json:"$Kind"`
		Type           string `json:"$Type"`
		Collection     bool   `json:"$Collection"`
		Nullable       *bool  `json:"$Nullable"`
		ContainsTarget bool   `json:"$ContainsTarget"`
	}
	if err := json.Unmarshal(m.raw, &def); err != nil {
		return fmt.Errorf("read %s/%s: %w", t.Path(), m.key, err)
	}

	var target *annotatable
	switch def.Kind {
	case "NavigationProperty":
		typeName := rd.qualify(def.Type)
		n := t.AddNavigationProperty(m.key, rd.types[typeName], def.Collection)
		n.Type = typeName
		n.ContainsTarget = def.ContainsTarget
		target = &n.annotatable
	case "", "Property":
		typeName := def.Type
		if typeName == "" {
			typeName = "Edm.String"
		}
		p := t.AddProperty(m.key, rd.qualify(typeName))
		p.Nullable = def.Nullable == nil || *def.Nullable
		target = &p.annotatable
	default:
		return nil
	}

	for _, pm := range members {
		if strings.HasPrefix(pm.key, "@") {
			if err := rd.annotate(target, pm); err != nil {
				return fmt.Errorf("%s/%s: %w", t.Path(), m.key, err)
			}
		}
	}
	return nil
}

func (rd *reader) readContainer(c *EntityContainer, members []member) error {
	for _, m := range members {
		if strings.HasPrefix(m.key, "@") {
			if err := rd.annotate(&c.annotatable, m); err != nil {
				return fmt.Errorf("%s: %w", c.Path(), err)
			}
			continue
		}
		if strings.HasPrefix(m.key, "$") || strings.Contains(m.key, "@") {
			continue
		}
		childMembers, err := readObject(m.raw)
		if err != nil {
			return fmt.Errorf("read %s/%s: %w", c.Path(), m.key, err)
		}
		var def struct {
			Type       string `json:"$Type"`
			Collection bool   `json:"$Collection"`
		}
		if err := json.Unmarshal(m.raw, &def); err != nil {
			return fmt.Errorf("read %s/%s: %w", c.Path(), m.key, err)
		}
		// action and function imports carry $Action or $Function instead of $Type
		if def.Type == "" {
			continue
		}

		entityType := rd.types[rd.qualify(def.Type)]
		var target *annotatable
		if def.Collection {
			target = &c.AddEntitySet(m.key, entityType).annotatable
		} else {
			target = &c.AddSingleton(m.key, entityType).annotatable
		}
		for _, cm := range childMembers {
			if strings.HasPrefix(cm.key, "@") {
				if err := rd.annotate(target, cm); err != nil {
					return fmt.Errorf("%s/%s: %w", c.Path(), m.key, err)
				}
			}
		}
	}
	return nil
}

func (rd *reader) readExternalAnnotations(raw json.RawMessage) error {
	targets, err := readObject(raw)
	if err != nil {
		return fmt.Errorf("read $Annotations: %w", err)
	}
	for _, tm := range targets {
		target := rd.lookupTarget(tm.key)
		if target == nil {
			continue
		}
		annotations, err := readObject(tm.raw)
		if err != nil {
			return fmt.Errorf("read $Annotations of %s: %w", tm.key, err)
		}
		for _, am := range annotations {
			if !strings.HasPrefix(am.key, "@") {
				continue
			}
			if err := rd.annotate(target, am); err != nil {
				return fmt.Errorf("%s: %w", tm.key, err)
			}
		}
	}
	return nil
}

// lookupTarget resolves an external annotation target such as "NS.Customer/Orders"
// or "NS.Container/Customers". Unsupported targets yield nil.
func (rd *reader) lookupTarget(path string) *annotatable {
	head, tail, _ := strings.Cut(path, "/")
	head = rd.qualify(head)

	if t, ok := rd.types[head]; ok {
		if tail == "" {
			return &t.annotatable
		}
		if p, ok := t.Property(tail); ok {
			return &p.annotatable
		}
		if n, ok := t.NavigationProperty(tail); ok {
			return &n.annotatable
		}
		return nil
	}

	c := rd.model.Container
	if c == nil || c.QualifiedName() != head {
		return nil
	}
	if tail == "" {
		return &c.annotatable
	}
	if s, ok := c.EntitySet(tail); ok {
		return &s.annotatable
	}
	if s, ok := c.Singleton(tail); ok {
		return &s.annotatable
	}
	return nil
}

func (rd *reader) annotate(target *annotatable, m member) error {
	name := strings.TrimPrefix(m.key, "@")
	term, qualifier, _ := strings.Cut(name, "#")
	value, err := rd.expression(m.raw)
	if err != nil {
		return fmt.Errorf("annotation %s: %w", m.key, err)
	}
	target.AddAnnotation(annotation.Annotation{
		Term:      rd.qualify(term),
		Qualifier: qualifier,
		Value:     value,
	})
	return nil
}

// expression converts a CSDL JSON annotation value. JSON null yields a nil expression.
func (rd *reader) expression(raw json.RawMessage) (annotation.Expression, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}
	switch raw[0] {
	case '{':
		return rd.objectExpression(raw)
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		c := make(annotation.Collection, 0, len(items))
		for _, item := range items {
			e, err := rd.expression(item)
			if err != nil {
				return nil, err
			}
			if e != nil {
				c = append(c, e)
			}
		}
		return c, nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return annotation.String(s), nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		return annotation.Bool(b), nil
	case 'n':
		return nil, nil
	default:
		return numberExpression(string(raw))
	}
}

func numberExpression(s string) (annotation.Expression, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return annotation.Int(i), nil
		}
	}
	d, err := annotation.NewDecimal(s)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (rd *reader) objectExpression(raw json.RawMessage) (annotation.Expression, error) {
	members, err := readObject(raw)
	if err != nil {
		return nil, err
	}
	if len(members) == 1 && pathKeys[members[0].key] {
		var p string
		if err := json.Unmarshal(members[0].raw, &p); err != nil {
			return nil, fmt.Errorf("%s: %w", members[0].key, err)
		}
		return annotation.Path(p), nil
	}

	rec := &annotation.Record{}
	for _, m := range members {
		switch {
		case m.key == "@type" || m.key == "@odata.type":
			var typeName string
			if err := json.Unmarshal(m.raw, &typeName); err != nil {
				return nil, fmt.Errorf("%s: %w", m.key, err)
			}
			rec.Type = rd.qualify(strings.TrimPrefix(typeName, "#"))
		case strings.HasPrefix(m.key, "$"):
			return nil, fmt.Errorf("unsupported expression %s", m.key)
		case strings.Contains(m.key, "@"):
		default:
			value, err := rd.expression(m.raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", m.key, err)
			}
			rec.Properties = append(rec.Properties, annotation.Prop(m.key, value))
		}
	}
	return rec, nil
}

// qualify expands a leading alias in a qualified name.
func (rd *reader) qualify(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return name
	}
	if ns, ok := rd.aliases[name[:i]]; ok {
		return ns + name[i:]
	}
	return name
}

func readKey(raw json.RawMessage) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	key := make([]string, 0, len(items))
	for _, item := range items {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			key = append(key, name)
			continue
		}
		// aliased key properties are written as {"alias": "path"}
		var aliased map[string]string
		if err := json.Unmarshal(item, &aliased); err != nil {
			return nil, err
		}
		for alias := range aliased {
			key = append(key, alias)
		}
	}
	return key, nil
}

// readObject decodes a JSON object keeping its member order.
func readObject(raw []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}
	var members []member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("member %s: %w", key, err)
		}
		members = append(members, member{key: key, raw: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return members, nil
}
