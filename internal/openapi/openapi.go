// Package openapi documents a route table as an OpenAPI 3 document: one GET
// operation per distinct route template, with its placeholders as path
// parameters and its route name as the operation ID.
package openapi

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/rohanthewiz/urlresolve/consts"
	"github.com/rohanthewiz/urlresolve/core/resolve"
)

var placeholderRE = regexp.MustCompile(consts.PlaceholderExpr)

// Config holds the document metadata.
type Config struct {
	Title       string
	Version     string
	Description string
	Servers     []string
}

// Generator builds OpenAPI documents from route listings.
type Generator struct {
	config Config
}

// NewGenerator returns a Generator, filling in a default title and version.
func NewGenerator(config Config) *Generator {
	if config.Title == "" {
		config.Title = "URL routes"
	}
	if config.Version == "" {
		config.Version = "1.0.0"
	}
	return &Generator{config: config}
}

// Generate documents routes, each of whose templates is placed after prefix.
// When two routes share a template only the first is documented, as only it
// can ever be resolved.
func (g *Generator) Generate(routes []resolve.RouteList, prefix string) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       g.config.Title,
			Version:     g.config.Version,
			Description: g.config.Description,
		},
		Paths: openapi3.NewPaths(),
	}

	for _, srv := range g.config.Servers {
		doc.Servers = append(doc.Servers, &openapi3.Server{URL: srv})
	}

	for _, route := range routes {
		path, params := PathTemplate(prefix + route.Template)
		if doc.Paths.Value(path) != nil {
			continue
		}
		doc.Paths.Set(path, &openapi3.PathItem{Get: g.buildOperation(route, params)})
	}

	return doc
}

func (g *Generator) buildOperation(route resolve.RouteList, params []string) *openapi3.Operation {
	op := &openapi3.Operation{
		Summary:    fmt.Sprintf("Handled by %s", route.HandlerRef),
		Parameters: buildParameters(params),
		Responses:  openapi3.NewResponses(),
		Extensions: map[string]any{"x-handler": route.HandlerRef},
	}

	// Shadowed names reverse to another route.
	if route.Reversible {
		op.OperationID = route.Name
	}

	op.Responses.Set("200", &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: openapi3.Ptr("Resolved"),
		},
	})
	op.Responses.Set("404", &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: openapi3.Ptr("Not Found"),
		},
	})

	return op
}

func buildParameters(names []string) openapi3.Parameters {
	var params openapi3.Parameters
	for _, name := range names {
		params = append(params, &openapi3.ParameterRef{Value: &openapi3.Parameter{
			Name:     name,
			In:       "path",
			Required: true,
			Schema: &openapi3.SchemaRef{
				Value: &openapi3.Schema{
					Type:    &openapi3.Types{"string"},
					Pattern: "^[^/]+$",
				},
			},
		}})
	}
	return params
}

// PathTemplate rewrites `:name` placeholders as OpenAPI `{name}` and returns
// the parameter names in order. A name used more than once gets a numeric
// suffix from its second use on (id, id_2, ...).
func PathTemplate(template string) (string, []string) {
	var names []string
	seen := map[string]int{}

	path := placeholderRE.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1:]
		seen[name]++
		if n := seen[name]; n > 1 {
			name += "_" + strconv.Itoa(n)
		}
		names = append(names, name)
		return "{" + name + "}"
	})

	if !strings.HasPrefix(path, consts.PathSep) {
		path = consts.PathSep + path
	}
	return path, names
}

// Write encodes doc as "json" or "yaml".
func Write(w io.Writer, doc *openapi3.T, format string) error {
	var data []byte
	var err error

	switch strings.ToLower(format) {
	case "yaml", "yml":
		data, err = yaml.Marshal(doc)
	case "json", "":
		data, err = json.MarshalIndent(doc, "", "  ")
	default:
		return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}
