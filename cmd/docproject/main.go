// Command docproject projects a JSON document against a schema file and
// prints the sanitized record to stdout. Data-quality warnings are logged to
// stderr; a malformed schema fails the run.
//
// Usage:
//
//	docproject -schema schema.json [-max-depth N] [doc.json]
//
// When no document path is given, the document is read from stdin.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	docproject "github.com/entamburini/docproject"
	"github.com/entamburini/docproject/schemafile"
	"github.com/entamburini/docproject/sink/zerologsink"
	"github.com/entamburini/docproject/source"
)

func main() {
	var schemaPath string
	var maxDepth int
	flag.StringVar(&schemaPath, "schema", "", "path to the schema file (json or yaml)")
	flag.IntVar(&maxDepth, "max-depth", 0, "schema nesting limit (0 = default)")
	flag.Parse()
	if schemaPath == "" {
		fmt.Fprintln(os.Stderr, "docproject: -schema is required")
		flag.Usage()
		os.Exit(2)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	sch, err := schemafile.Load(schemaPath)
	if err != nil {
		fatalf("load schema: %v", err)
	}

	var snap docproject.Snapshot
	if path := flag.Arg(0); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			fatalf("read document: %v", err)
		}
		snap = source.JSONBytes(data)
	} else {
		snap = source.JSONReader(os.Stdin)
	}

	out, _, err := docproject.ProjectDocument(context.Background(), snap, sch.Fields, docproject.ProjectOpt{
		MaxDepth: maxDepth,
		Sink:     zerologsink.New(logger),
	})
	if err != nil {
		fatalf("project: %v", err)
	}

	enc := gojson.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fatalf("encode output: %v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "docproject: "+format+"\n", args...)
	os.Exit(1)
}
