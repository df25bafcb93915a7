package storage

import "context"

// StorageService is the interface for image hosting operations.
type StorageService interface {
	// UploadImage uploads one image (file path, URL or base64 data URI) into
	// the given folder and returns its public URL.
	UploadImage(ctx context.Context, source, folder string) (string, error)
	// UploadImages uploads several images into the given folder and returns
	// their public URLs in order.
	UploadImages(ctx context.Context, sources []string, folder string) ([]string, error)
	// DeleteImage removes a previously uploaded image by its public ID.
	DeleteImage(ctx context.Context, publicID string) error
}
