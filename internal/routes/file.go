// Package routes reads route tables from YAML route files and keeps the
// current table available for concurrent lookups while it is reloaded.
package routes

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rohanthewiz/urlresolve"
	"github.com/rohanthewiz/urlresolve/consts"
	"github.com/rohanthewiz/urlresolve/core/resolve"
)

var ErrInvalidRoute = errors.New("routes: invalid route")

// View is the handler of a route file route: the name of a declared view.
type View string

// Catalog hands out the declared views by name.
type Catalog map[string]View

func (c Catalog) Handler(name string) (View, bool) {
	v, ok := c[name]
	return v, ok
}

// File is a parsed route file.
//
//	root: /
//	views: [home, users.show]
//	routes:
//	  - path: ""
//	    view: home
//	    name: home
//	  - path: "users/"
//	    include:
//	      - path: ":id/"
//	        view: users.show
//	        name: user
type File struct {
	Root   string   `yaml:"root,omitempty"`
	Views  []string `yaml:"views"`
	Routes []Route  `yaml:"routes"`
}

// Route is one entry of a route list. It has a View or an Include, never both.
type Route struct {
	Path    string  `yaml:"path"`
	View    string  `yaml:"view,omitempty"`
	Name    string  `yaml:"name,omitempty"`
	Include []Route `yaml:"include,omitempty"`
}

// Parse decodes and validates a route file. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	return Decode(bytes.NewReader(data))
}

// Decode is Parse for a reader.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("routes: decode: %w", err)
	}
	if f.Root == "" {
		f.Root = consts.DefaultRoot
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks route shapes and that every view used is declared.
func (f *File) Validate() error {
	declared := f.Catalog()
	var errs []error
	validate(f.Routes, "routes", declared, &errs)
	return errors.Join(errs...)
}

func validate(list []Route, at string, declared Catalog, errs *[]error) {
	for i, r := range list {
		where := fmt.Sprintf("%s[%d]", at, i)
		hasView, hasInclude := r.View != "", r.Include != nil

		switch {
		case hasView && hasInclude:
			*errs = append(*errs, fmt.Errorf("%w: %s (%q): has both view and include", ErrInvalidRoute, where, r.Path))
		case !hasView && !hasInclude:
			*errs = append(*errs, fmt.Errorf("%w: %s (%q): needs a view or an include", ErrInvalidRoute, where, r.Path))
		case hasView:
			if _, ok := declared[r.View]; !ok {
				*errs = append(*errs, fmt.Errorf("%w: %s (%q): view %q is not declared", ErrInvalidRoute, where, r.Path, r.View))
			}
		case hasInclude:
			if r.Name != "" {
				*errs = append(*errs, fmt.Errorf("%w: %s (%q): an include cannot be named", ErrInvalidRoute, where, r.Path))
			}
			validate(r.Include, where+".include", declared, errs)
		}
	}
}

// Catalog returns the declared views.
func (f *File) Catalog() Catalog {
	c := make(Catalog, len(f.Views))
	for _, v := range f.Views {
		c[v] = View(v)
	}
	return c
}

// Specs converts the routes into specs with symbolic handlers.
func (f *File) Specs() []resolve.Spec[View] {
	return specs(f.Routes)
}

func specs(list []Route) []resolve.Spec[View] {
	out := make([]resolve.Spec[View], 0, len(list))
	for _, r := range list {
		if r.Include != nil {
			out = append(out, resolve.Include(r.Path, specs(r.Include)...))
			continue
		}
		out = append(out, resolve.View[View](r.Path, r.View, r.Name))
	}
	return out
}

// Build builds the file's URL configuration, binding views against the
// declared catalog. opts are applied after the file's own root.
func (f *File) Build(opts ...urlresolve.Option) (*urlresolve.URLs[View], error) {
	all := append([]urlresolve.Option{
		urlresolve.WithRoot(f.Root),
		urlresolve.WithContext(f.Catalog()),
	}, opts...)
	return urlresolve.New(f.Specs(), all...)
}
