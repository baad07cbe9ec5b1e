// Command generate renders the Go declarations of an OData vocabulary from its CSDL JSON
// document.
package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/damedic/odata-toolbox-go/internal/generate"
	"github.com/damedic/odata-toolbox-go/internal/generate/ir"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate Go declarations for an OData vocabulary",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "vocabulary",
				Usage:    "CSDL JSON document of the vocabulary",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "package",
				Usage:    "Name of the generated package",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Output file, stdout when empty",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(cmd.String("vocabulary"), cmd.String("package"), cmd.String("out"))
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(vocabularyPath, pkgName, out string) error {
	log.Println("reading vocabulary...")
	data, err := os.ReadFile(vocabularyPath)
	if err != nil {
		return err
	}
	v, err := ir.Parse(data)
	if err != nil {
		return err
	}

	log.Printf("generating %d terms and %d enum types...", len(v.Terms), len(v.EnumTypes))
	var buf bytes.Buffer
	if err := generate.Write(&buf, pkgName, v); err != nil {
		return fmt.Errorf("render %s: %w", v.Namespace, err)
	}
	if out == "" {
		_, err = os.Stdout.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(out, buf.Bytes(), 0o644)
}
