package service

import "context"

// DocumentSource is the paged document being read
type DocumentSource interface {
	// PageCount returns the number of pages, at least 1
	PageCount(ctx context.Context) (int, error)

	// Path returns the location of the document file for serving to the renderer
	Path() string
}
