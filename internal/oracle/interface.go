package oracle

import "context"

// ClientInterface is the word lookup used by the oracle service.
type ClientInterface interface {
	Explain(ctx context.Context, word string) (string, error)
}

var _ ClientInterface = (*Client)(nil)
