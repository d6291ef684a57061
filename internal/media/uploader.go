package media

import (
	"context"
	"io"
)

// Uploader pushes an image to the external media host and returns its public
// URL. The service never stores image bytes itself.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder, filename string) (string, error)
}
