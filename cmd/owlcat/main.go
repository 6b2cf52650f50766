// owlcat reads a Turtle ontology and writes it back out as Turtle, JSON,
// or JSON-LD, optionally consulting a content-addressed store so
// re-running it over the same source text reuses the earlier parse.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/go-json-experiment/json"

	owl "github.com/field33/owlish-sub000"
	"github.com/field33/owlish-sub000/jsonld"
	"github.com/field33/owlish-sub000/serialize"
	"github.com/field33/owlish-sub000/store"
	"github.com/field33/owlish-sub000/turtle"
)

func main() {
	var (
		format    = flag.String("format", "turtle", "output format: turtle, json, or jsonld")
		storePath = flag.String("store", "", "path to a SQLite ontology store; empty disables caching")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] file.ttl\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *format, *storePath); err != nil {
		fmt.Fprintln(os.Stderr, "owlcat:", err)
		os.Exit(1)
	}
}

func run(path, format, storePath string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	parse := func(turtleText string, opts owl.ParserOptions) (*owl.Ontology, error) {
		return owl.Parse(turtleText, turtle.NewDecoder(), opts)
	}

	var o *owl.Ontology
	if storePath != "" {
		s, err := store.NewOntologyStoreSQLite(storePath)
		if err != nil {
			return fmt.Errorf("opening store %s: %w", storePath, err)
		}
		defer s.Close()

		o, err = s.ParseCached(string(data), owl.NewParserOptions(), parse)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	} else {
		o, err = parse(string(data), owl.NewParserOptions())
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := write(o, format); err != nil {
		return err
	}
	summarize(o)
	return nil
}

// summarize writes a human-readable counts line to stderr, so it never
// interferes with piping the chosen format's output on stdout.
func summarize(o *owl.Ontology) {
	fmt.Fprintf(os.Stderr, "owlcat: %s declarations, %s axioms\n",
		humanize.Comma(int64(len(o.Declarations()))), humanize.Comma(int64(len(o.Axioms()))))
}

func write(o *owl.Ontology, format string) error {
	switch format {
	case "turtle":
		_, err := fmt.Println(serialize.ToTurtle(o))
		return err
	case "json":
		data, err := json.Marshal(o)
		if err != nil {
			return fmt.Errorf("marshaling ontology as JSON: %w", err)
		}
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	case "jsonld":
		doc, err := jsonld.OntologyToJSONLD(o)
		if err != nil {
			return fmt.Errorf("converting ontology to JSON-LD: %w", err)
		}
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshaling JSON-LD document: %w", err)
		}
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	default:
		return fmt.Errorf("unknown format %q (want turtle, json, or jsonld)", format)
	}
}
