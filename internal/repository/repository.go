package repository

import (
	"context"
	"errors"
)

// DocumentStore is the thin surface over the headless content store:
// one mutation call and one parameterized query call. User-supplied
// values go through params, never into the query string.
type DocumentStore interface {
	Create(ctx context.Context, doc any) (string, error)
	Fetch(ctx context.Context, query string, params map[string]any, out any) error
}

// ImageURLBuilder resolves a stored asset reference into a renderable
// CDN URL at the requested dimensions.
type ImageURLBuilder interface {
	ImageURL(ref string, width, height int) (string, error)
}

var (
	// ErrStoreUnavailable: the store could not be reached at all.
	ErrStoreUnavailable = errors.New("document store unavailable")
	// ErrStoreRejected: the store answered but refused the request.
	ErrStoreRejected = errors.New("document store rejected request")
)
