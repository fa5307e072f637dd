// Command htmltreedump is a thin reference CLI over this module's
// tokenizer, tree-construction driver, and reference sink: read HTML,
// optionally filter it with a CSS selector, and print it back out.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kasuga-html/htmltree/builder"
	"github.com/kasuga-html/htmltree/domsink"
	"github.com/kasuga-html/htmltree/encoding"
	"github.com/kasuga-html/htmltree/htmlserialize"
	"github.com/kasuga-html/htmltree/htmltok"
	"github.com/kasuga-html/htmltree/perr"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	selector     string
	summary      bool
	encodingHint string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, inputPath, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	input, err := readInput(inputPath, stdin)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	decoded, _, err := encoding.Decode(input, cfg.encodingHint)
	if err != nil {
		return fmt.Errorf("decoding input: %w", err)
	}

	sink := domsink.New()
	collector := &perr.Collector{}
	tok := htmltok.New(decoded, htmltok.Options{Reporter: collector})
	b := builder.New(sink, builder.Options{Reporter: collector})
	if err := b.Run(tok); err != nil {
		return fmt.Errorf("parsing HTML: %w", err)
	}

	var root domsink.Node = sink.Doc()
	if cfg.selector != "" {
		elements, err := sink.Doc().Query(cfg.selector)
		if err != nil {
			return fmt.Errorf("invalid selector: %w", err)
		}
		if len(elements) == 0 {
			return nil
		}
		root = elements[0]
	}

	out := htmlserialize.ToHTML(root)
	if _, err := fmt.Fprintln(stdout, out); err != nil {
		return err
	}

	if cfg.summary {
		if err := printGoqueryShapeSummary(out, stdout); err != nil {
			return fmt.Errorf("goquery summary: %w", err)
		}
	}

	if len(collector.Errors) > 0 {
		fmt.Fprintf(stderr, "%d parse error(s):\n", len(collector.Errors))
		for _, e := range collector.Errors {
			fmt.Fprintf(stderr, "  line %d col %d: %s\n", e.Loc.Line, e.Loc.Col, e.Code)
		}
	}
	return nil
}

// printGoqueryShapeSummary reparses the serialized output with
// goquery (itself built on golang.org/x/net/html + cascadia) and
// prints a per-tag element count, giving a second, independently
// computed opinion on the tree's shape.
func printGoqueryShapeSummary(htmlOutput string, stdout io.Writer) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlOutput))
	if err != nil {
		return err
	}
	counts := map[string]int{}
	var order []string
	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		tag := goquery.NodeName(sel)
		if counts[tag] == 0 {
			order = append(order, tag)
		}
		counts[tag]++
	})
	fmt.Fprintln(stdout, "--- element counts ---")
	for _, tag := range order {
		fmt.Fprintf(stdout, "%s: %d\n", tag, counts[tag])
	}
	return nil
}

func parseFlags(args []string, stderr io.Writer) (*config, string, error) {
	fs := flag.NewFlagSet("htmltreedump", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := &config{}
	fs.StringVar(&cfg.selector, "selector", "", "CSS selector to filter output")
	fs.StringVar(&cfg.selector, "s", "", "CSS selector to filter output (shorthand)")
	fs.BoolVar(&cfg.summary, "summary", false, "print a goquery-derived element count summary")
	fs.StringVar(&cfg.encodingHint, "encoding", "", "transport-layer character encoding hint (e.g. utf-8, windows-1252)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: htmltreedump [options] <file>\n\n")
		fmt.Fprintf(stderr, "Arguments:\n  file    HTML file path or '-' for stdin\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		fs.Usage()
		return nil, "", fmt.Errorf("missing input file")
	}
	return cfg, remaining[0], nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
