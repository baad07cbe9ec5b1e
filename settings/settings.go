// Package settings provides the convert settings of a run.
//
// Settings are read from (lowest to highest priority) the defaults in code, an optional
// YAML file and ODATA_* environment variables. They are read-only during a run and
// passed by pointer.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Settings holds the options consulted while converting a model.
type Settings struct {
	// ErrorResponsesAsDefault emits a single "default" error response per operation
	// instead of separate "4XX" and "5XX" responses.
	ErrorResponsesAsDefault bool `yaml:"errorResponsesAsDefault" json:"errorResponsesAsDefault"`
	// ErrorResponseRef is the reference of the shared error response.
	ErrorResponseRef string `yaml:"errorResponseRef" json:"errorResponseRef"`
	// NoContentDescription is the description of "204" responses.
	NoContentDescription string `yaml:"noContentDescription" json:"noContentDescription"`
	// ServiceRoot is the root URL of the described service.
	ServiceRoot string `yaml:"serviceRoot" json:"serviceRoot"`
	// EnableCustomParameters adds CustomHeaders and CustomQueryOptions of capability
	// records as operation parameters.
	EnableCustomParameters bool `yaml:"enableCustomParameters" json:"enableCustomParameters"`
	// NavigationPropertyDepth limits how deep navigation properties are followed.
	NavigationPropertyDepth int `yaml:"navigationPropertyDepth" json:"navigationPropertyDepth"`
}

// Default returns the default settings.
func Default() *Settings {
	return &Settings{
		ErrorResponsesAsDefault: true,
		ErrorResponseRef:        "#/components/responses/error",
		NoContentDescription:    "Success",
		ServiceRoot:             "http://localhost",
		EnableCustomParameters:  true,
		NavigationPropertyDepth: 5,
	}
}

// Load builds settings from the defaults, the YAML file at path (skipped when path is
// empty) and the environment, and validates the result.
func Load(path string) (*Settings, error) {
	s := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open settings: %w", err)
		}
		defer f.Close()
		if err := s.Decode(f); err != nil {
			return nil, fmt.Errorf("read settings %s: %w", path, err)
		}
	}
	s.ApplyEnv()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// Decode overlays the YAML document read from r. Unknown keys are rejected.
func (s *Settings) Decode(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overlays the ODATA_* environment variables.
func (s *Settings) ApplyEnv() {
	s.ErrorResponsesAsDefault = env.GetBool("ODATA_ERROR_RESPONSES_AS_DEFAULT", s.ErrorResponsesAsDefault)
	s.ErrorResponseRef = env.GetString("ODATA_ERROR_RESPONSE_REF", s.ErrorResponseRef)
	s.NoContentDescription = env.GetString("ODATA_NO_CONTENT_DESCRIPTION", s.NoContentDescription)
	s.ServiceRoot = env.GetString("ODATA_SERVICE_ROOT", s.ServiceRoot)
	s.EnableCustomParameters = env.GetBool("ODATA_ENABLE_CUSTOM_PARAMETERS", s.EnableCustomParameters)
	s.NavigationPropertyDepth = env.GetInt("ODATA_NAVIGATION_PROPERTY_DEPTH", s.NavigationPropertyDepth)
}

// LoadEnvFile loads variables from a .env file into the process environment.
// Variables that are already set are not overridden.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func (s *Settings) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.ErrorResponseRef,
			validation.Required.Error("error response reference is required"),
		),
		validation.Field(&s.NoContentDescription,
			validation.Required.Error("no content description is required"),
		),
		validation.Field(&s.ServiceRoot,
			validation.Required.Error("service root is required"),
			validation.By(absoluteURL),
		),
		validation.Field(&s.NavigationPropertyDepth,
			validation.Min(0).Error("navigation property depth must not be negative"),
			validation.Max(10).Error("navigation property depth must be at most 10"),
		),
	)
}

func absoluteURL(value any) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("service root must be an absolute URL")
	}
	return nil
}
