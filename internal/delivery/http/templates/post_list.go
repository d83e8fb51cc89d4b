package templates

import (
	"fmt"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"blogd/internal/model"
)

func PostListPage(blogTitle string, page *model.PostPage) g.Node {
	return Layout(LayoutProps{Title: blogTitle, BlogTitle: blogTitle},
		H1(g.Text(blogTitle)),
		g.If(len(page.Posts) == 0,
			P(Class("no-posts"), g.Text("There are no posts yet.")),
		),
		g.Group(g.Map(page.Posts, func(post *model.Post) g.Node {
			return Article(Class("post-summary"),
				H2(A(Href(PostPath(post)), g.Text(post.Title))),
				P(Class("date"), g.Textf("Published %s", publishDate(post))),
				P(g.Text(summary(post.Body))),
			)
		})),
		PaginationComponent(page),
	)
}

func PaginationComponent(page *model.PostPage) g.Node {
	return Div(Class("pagination"),
		g.If(page.HasPrev(),
			A(Href(fmt.Sprintf("/blog?page=%d", page.PrevPage())), g.Text("Previous")),
		),
		Span(Class("current"),
			g.Textf("Page %d of %d", page.Number, page.TotalPages),
		),
		g.If(page.HasNext(),
			A(Href(fmt.Sprintf("/blog?page=%d", page.NextPage())), g.Text("Next")),
		),
	)
}

func summary(body string) string {
	const maxLen = 200
	if len(body) <= maxLen {
		return body
	}
	return body[:maxLen] + "…"
}
