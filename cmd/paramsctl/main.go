// FILE: cmd/paramsctl/main.go
// paramsctl layers query strings with defaults, appends and invariants files
// and prints the result in one of the params serialization forms.
//
//	paramsctl -defaults handler.toml -format local 'q=solr&rows=10'
//	paramsctl -defaults handler.toml -get hl -field title 'q=solr'
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/lixenwraith/params"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

const usage = `usage: paramsctl [flags] QUERY...

Parses each QUERY as a URL query string, layers the result with the
configured files and prints it.

flags:
`

type options struct {
	defaults   string
	appends    string
	invariants string
	format     string
	get        string
	field      string
	color      string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("paramsctl: ")

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, out, errOut io.Writer) error {
	var opts options
	fs := flag.NewFlagSet("paramsctl", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&opts.defaults, "defaults", "", "defaults file (toml, yaml or json)")
	fs.StringVar(&opts.appends, "appends", "", "appends file")
	fs.StringVar(&opts.invariants, "invariants", "", "invariants file")
	fs.StringVar(&opts.format, "format", "log", "output: query, local, log, list, json, yaml or toml")
	fs.StringVar(&opts.get, "get", "", "print the values of one parameter instead")
	fs.StringVar(&opts.field, "field", "", "field scope for -get (reads f.<field>.<get> first)")
	fs.StringVar(&opts.color, "color", "auto", "colorize list output: auto, always or never")
	fs.Usage = func() {
		fmt.Fprint(errOut, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	var queries []params.Source
	for _, q := range fs.Args() {
		o, err := params.ParseQuery(q)
		if err != nil {
			return err
		}
		queries = append(queries, o)
	}

	p, err := params.NewBuilder().
		WithParams(params.Merge(queries...)).
		WithDefaultsFile(opts.defaults).
		WithAppendsFile(opts.appends).
		WithInvariantsFile(opts.invariants).
		Build()
	if err != nil {
		if !errors.Is(err, params.ErrFileNotFound) {
			return err
		}
		log.Printf("warning: %v", err)
	}

	if opts.get != "" {
		return printValues(out, p, opts)
	}
	return printParams(out, p, opts)
}

func printValues(out io.Writer, p *params.Params, opts options) error {
	values, ok := p.Values(opts.get)
	name := opts.get
	if opts.field != "" {
		name = params.FieldName(opts.field, opts.get)
		values, ok = p.FieldValues(opts.field, opts.get)
	}
	if !ok {
		return &params.MissingError{Name: name}
	}
	for _, v := range values {
		fmt.Fprintln(out, v)
	}
	return nil
}

func printParams(out io.Writer, p *params.Params, opts options) error {
	switch opts.format {
	case "query":
		fmt.Fprintln(out, p.QueryString())
	case "local":
		fmt.Fprintln(out, p.LocalParamsString())
	case "log":
		fmt.Fprintln(out, p.String())
	case "list":
		printList(out, p, useColor(out, opts.color))
	case "json":
		data, err := p.MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case "toml":
		return p.EncodeTOML(out)
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
	return nil
}

// printList writes one "name = value, value" line per parameter
func printList(out io.Writer, p *params.Params, colored bool) {
	nameColor := color.New(color.FgCyan)
	valueColor := color.New(color.FgGreen)
	sepColor := color.New(color.FgHiBlack)
	for _, c := range []*color.Color{nameColor, valueColor, sepColor} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for name, values := range p.All() {
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = valueColor.Sprintf("%q", v)
		}
		fmt.Fprintf(out, "%s %s %s\n",
			nameColor.Sprint(name),
			sepColor.Sprint("="),
			strings.Join(quoted, sepColor.Sprint(", ")))
	}
}

func useColor(out io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
