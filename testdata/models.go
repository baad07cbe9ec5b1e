// Package testdata provides CSDL fixtures shared by the package tests.
package testdata

import (
	"bytes"
	"embed"
	"io"
	"path"
)

//go:embed models/*.json vocabularies/*.json
var files embed.FS

// Model returns the raw CSDL JSON of the named fixture model, e.g. "demo".
func Model(name string) []byte {
	return mustRead(path.Join("models", name+".json"))
}

// ModelReader is like Model but returns a reader.
func ModelReader(name string) io.Reader {
	return bytes.NewReader(Model(name))
}

// ModelPath returns the path of the named fixture relative to the testdata directory.
func ModelPath(name string) string {
	return path.Join("models", name+".json")
}

// Vocabulary returns the raw CSDL JSON of the named vocabulary excerpt,
// e.g. "Org.OData.Capabilities.V1".
func Vocabulary(name string) []byte {
	return mustRead(path.Join("vocabularies", name+".json"))
}

func mustRead(name string) []byte {
	b, err := files.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return b
}
