package inspect

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/rohanthewiz/element"

	"github.com/rohanthewiz/urlresolve/core/resolve"
)

type routesPage struct {
	Title  string
	Prefix string
	Routes []resolve.RouteList
}

func (p routesPage) Render(b *element.Builder) any {
	b.Html().R(
		b.Head().R(
			b.Title().T(p.Title),
			b.Style().T(`
				body { font-family: Arial, sans-serif; margin: 0 auto; padding: 20px; max-width: 960px; }
				table { border-collapse: collapse; width: 100%; }
				th, td { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
				.shadowed { color: #999; }
			`),
		),
		b.Body().R(
			b.H1().T(p.Title),
			b.P().T(strconv.Itoa(len(p.Routes)), " routes, in resolution order"),
			b.Table().R(
				b.Tr().R(
					b.Th().T("Name"),
					b.Th().T("Template"),
					b.Th().T("Params"),
					b.Th().T("Handler"),
				),
				p.rows(b),
			),
		),
	)
	return nil
}

func (p routesPage) rows(b *element.Builder) any {
	for _, r := range p.Routes {
		routeRow{Prefix: p.Prefix, Route: r}.Render(b)
	}
	return nil
}

type routeRow struct {
	Prefix string
	Route  resolve.RouteList
}

func (r routeRow) Render(b *element.Builder) any {
	var attrs []string
	if !r.Route.Reversible {
		attrs = append(attrs, "class", "shadowed")
	}

	b.Tr(attrs...).R(
		b.Td().T(r.Route.Name),
		b.Td().R(
			b.A("href", "/resolve?path="+url.QueryEscape(r.Prefix+r.Route.Template)).T(r.Prefix+r.Route.Template),
		),
		b.Td().T(strings.Join(r.Route.Params, ", ")),
		b.Td().T(r.Route.HandlerRef),
	)
	return nil
}

// RenderRoutes renders the HTML route listing.
func RenderRoutes(title, prefix string, routes []resolve.RouteList) string {
	b := element.NewBuilder()
	element.RenderComponents(b, routesPage{Title: title, Prefix: prefix, Routes: routes})
	return b.String()
}
