// File: lixenwraith/params/doc.go

// Package params provides read-only, multi-valued request parameter containers
// for Go services: a mapping from parameter names to one or more string values,
// with default-value layering, per-field overrides, typed coercion and several
// serialization forms.
//
// Features:
//   - A minimal Source contract (Get, Values, Names) with derived accessors on Params
//   - Typed accessors for bool, int, int64, float32 and float64 that keep
//     "absent" distinct from "parses to zero"
//   - Per-field overrides: "f.<field>.<param>" shadows "<param>"
//   - Lazy composition with WrapDefaults and WrapAppended, nestable without copying
//   - Query string, local-params ("{! a=b}") and log-safe string forms
//   - Order preserving JSON, YAML and TOML output
//   - Defaults files in TOML, YAML or JSON and struct binding via mapstructure
//   - Builder for the defaults / appends / invariants request layering
//
// Quick Start:
//
//	req, err := params.ParseQuery("?q=solr&rows=10&f.title.hl=true")
//	if err != nil {
//	    return err
//	}
//
//	p := params.WrapDefaults(req, params.MapParams{"rows": "20", "wt": "json"})
//
//	rows, err := p.PrimitiveInt("rows")   // 10
//	hl, err := p.FieldBoolDefault("title", "hl", false)
//	wt := p.GetDefault("wt", "xml")         // "json"
//
//	log.Printf("request: %s", p)            // q=solr&rows=10&f.title.hl=true&wt=json
//
// Layering (highest to lowest):
//  1. Invariants (always win)
//  2. Request parameters, with appends concatenated after them
//  3. Defaults
//
//	p, err := params.NewBuilder().
//	    WithParams(req).
//	    WithDefaultsFile("handler.toml").
//	    WithInvariants(params.MapParams{"wt": "json"}).
//	    Build()
//
// Errors:
// A value that fails to parse yields a *ParamError matching ErrBadParam; the
// parameter being absent is never an error. Nothing in this package logs.
//
// Thread Safety:
// Containers are read-only and safe for concurrent reads. Composed containers
// add no locking of their own; Ordered guards its state with a sync.RWMutex.
package params
