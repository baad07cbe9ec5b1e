// Package ir holds the intermediate representation of a vocabulary that the generators
// work on.
package ir

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Vocabulary is a parsed vocabulary schema.
type Vocabulary struct {
	Namespace string
	Alias     string
	// Terms sorted by name.
	Terms []Term
	// EnumTypes sorted by name.
	EnumTypes []EnumType
}

type Term struct {
	Name        string
	Type        string
	Description string
}

// QualifiedName qualifies name with the namespace of v.
func (v Vocabulary) QualifiedName(name string) string {
	return v.Namespace + "." + name
}

type EnumType struct {
	Name  string
	Flags bool
	// Members ordered by value.
	Members []Member
}

type Member struct {
	Name  string
	Value int64
}

type schemaElement struct {
	Kind        string `json:"$Kind"`
	Type        string `json:"$Type"`
	IsFlags     bool   `json:"$IsFlags"`
	Description string `json:"@Core.Description"`
}

// Parse parses a CSDL JSON document holding a single vocabulary schema.
func Parse(data []byte) (Vocabulary, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return Vocabulary{}, fmt.Errorf("parse vocabulary: %w", err)
	}

	var v Vocabulary
	for key, raw := range doc {
		if strings.HasPrefix(key, "$") {
			continue
		}
		if v.Namespace != "" {
			return Vocabulary{}, fmt.Errorf("more than one schema: %s and %s", v.Namespace, key)
		}
		var err error
		v, err = parseSchema(key, raw)
		if err != nil {
			return Vocabulary{}, err
		}
	}
	if v.Namespace == "" {
		return Vocabulary{}, errors.New("no schema found")
	}
	return v, nil
}

func parseSchema(namespace string, raw json.RawMessage) (Vocabulary, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return Vocabulary{}, fmt.Errorf("schema %s: %w", namespace, err)
	}

	v := Vocabulary{Namespace: namespace}
	if alias, ok := members["$Alias"]; ok {
		if err := json.Unmarshal(alias, &v.Alias); err != nil {
			return Vocabulary{}, fmt.Errorf("schema %s alias: %w", namespace, err)
		}
	}

	for name, raw := range members {
		if strings.ContainsAny(name, "$@") {
			continue
		}
		var el schemaElement
		if err := json.Unmarshal(raw, &el); err != nil {
			return Vocabulary{}, fmt.Errorf("%s.%s: %w", namespace, name, err)
		}
		switch el.Kind {
		case "Term":
			v.Terms = append(v.Terms, Term{
				Name:        name,
				Type:        qualify(el.Type, v.Alias, namespace),
				Description: el.Description,
			})
		case "EnumType":
			enum, err := parseEnumType(name, el.IsFlags, raw)
			if err != nil {
				return Vocabulary{}, fmt.Errorf("%s.%s: %w", namespace, name, err)
			}
			v.EnumTypes = append(v.EnumTypes, enum)
		}
	}

	slices.SortFunc(v.Terms, func(a, b Term) int { return strings.Compare(a.Name, b.Name) })
	slices.SortFunc(v.EnumTypes, func(a, b EnumType) int { return strings.Compare(a.Name, b.Name) })
	return v, nil
}

func parseEnumType(name string, flags bool, raw json.RawMessage) (EnumType, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return EnumType{}, err
	}

	enum := EnumType{Name: name, Flags: flags}
	for key, value := range entries {
		if strings.ContainsAny(key, "$@") {
			continue
		}
		m := Member{Name: key}
		if err := json.Unmarshal(value, &m.Value); err != nil {
			return EnumType{}, fmt.Errorf("member %s: %w", key, err)
		}
		enum.Members = append(enum.Members, m)
	}
	slices.SortFunc(enum.Members, func(a, b Member) int {
		return cmp.Or(cmp.Compare(a.Value, b.Value), strings.Compare(a.Name, b.Name))
	})
	return enum, nil
}

func qualify(name, alias, namespace string) string {
	if alias != "" && strings.HasPrefix(name, alias+".") {
		return namespace + name[len(alias):]
	}
	return name
}
