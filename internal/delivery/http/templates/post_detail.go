package templates

import (
	"fmt"
	"strings"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"blogd/internal/model"
)

func PostDetailPage(blogTitle string, post *model.Post) g.Node {
	paragraphs := strings.Split(post.Body, "\n\n")

	return Layout(LayoutProps{Title: post.Title, BlogTitle: blogTitle},
		Article(Class("post"),
			H1(g.Text(post.Title)),
			P(Class("date"), g.Textf("Published %s", publishDate(post))),
			g.Group(g.Map(paragraphs, func(paragraph string) g.Node {
				return P(g.Text(paragraph))
			})),
		),
		P(
			A(Href(fmt.Sprintf("/blog/%d/share", post.ID)), g.Text("Share this post")),
		),
	)
}
