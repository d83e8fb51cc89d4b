package templates

import (
	"fmt"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"blogd/internal/model"
)

func SharePostPage(blogTitle string, post *model.Post, form *model.SharePostDTO, fieldErrors map[string]string, deliveryFailed bool) g.Node {
	return Layout(LayoutProps{Title: "Share " + post.Title, BlogTitle: blogTitle},
		H1(g.Textf("Share \"%s\" by e-mail", post.Title)),
		g.If(deliveryFailed,
			P(Class("error notice"), g.Text("Your e-mail could not be sent. Please try again later.")),
		),
		Form(Method("post"), Action(fmt.Sprintf("/blog/%d/share", post.ID)),
			formField("name", "Name", "text", form.Name, fieldErrors),
			formField("email_from", "Your e-mail", "email", form.EmailFrom, fieldErrors),
			formField("email_to", "Recipient e-mail", "email", form.EmailTo, fieldErrors),
			Div(Class("field"),
				Label(For("comments"), g.Text("Comments")),
				Textarea(ID("comments"), Name("comments"), g.Text(form.Comments)),
				fieldError("comments", fieldErrors),
			),
			Button(Type("submit"), g.Text("Send e-mail")),
		),
		P(A(Href(PostPath(post)), g.Text("Back to post"))),
	)
}

func ShareSentPage(blogTitle string, post *model.Post, emailTo string) g.Node {
	return Layout(LayoutProps{Title: "E-mail sent", BlogTitle: blogTitle},
		H1(g.Text("E-mail successfully sent")),
		P(g.Textf("\"%s\" was successfully sent to %s.", post.Title, emailTo)),
		P(A(Href(PostPath(post)), g.Text("Back to post"))),
	)
}

func formField(name, label, inputType, value string, fieldErrors map[string]string) g.Node {
	return Div(Class("field"),
		Label(For(name), g.Text(label)),
		Input(Type(inputType), ID(name), Name(name), Value(value)),
		fieldError(name, fieldErrors),
	)
}

func fieldError(name string, fieldErrors map[string]string) g.Node {
	msg, ok := fieldErrors[name]
	return g.If(ok,
		Span(Class("error"), g.Text(msg)),
	)
}
