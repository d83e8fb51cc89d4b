package templates

import (
	"fmt"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"blogd/internal/model"
)

type LayoutProps struct {
	Title     string
	BlogTitle string
}

func NavbarComponent(props LayoutProps) g.Node {
	return Nav(Class("nav"),
		Div(Class("nav-left"),
			Div(Class("brand"), A(Href("/blog"), g.Text(props.BlogTitle))),
		),
	)
}

func Layout(props LayoutProps, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(props.Title)),
			),
			Body(
				Div(Class("container"),
					NavbarComponent(props),
					Main(
						g.Group(children),
					),
				),
			),
		),
	)
}

// PostPath is the canonical detail path for a post: publish date plus slug.
func PostPath(post *model.Post) string {
	publish := post.Publish.Time.UTC()
	return fmt.Sprintf("/blog/%d/%02d/%02d/%s",
		publish.Year(), int(publish.Month()), publish.Day(), post.Slug)
}

func publishDate(post *model.Post) string {
	return post.Publish.Time.Format("January 2, 2006")
}
