package mailer_client

import "context"

type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Client delivers a composed message. Implementations are expected to honor
// the context deadline; callers bound the send with a timeout.
type Client interface {
	Send(ctx context.Context, msg Message) error
}
