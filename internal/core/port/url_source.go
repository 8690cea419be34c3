package port

import "context"

// URLSourcePort reads search URLs from an input file. A missing file is not
// an error: it yields an empty list and the caller decides whether that is
// fatal for the invocation.
type URLSourcePort interface {
	ReadURLs(ctx context.Context, path string) ([]string, error)
}
