package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a new CloudinaryStorageService instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &CloudinaryStorageService{cld: cld, cloudName: cloudName}
}

// UploadImage uploads one image into the specified folder and returns its public URL.
func (s *CloudinaryStorageService) UploadImage(ctx context.Context, source, folder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, source, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorageService: failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("CloudinaryStorageService: no URL returned")
	}
	return result.SecureURL, nil
}

// UploadImages uploads several images into the specified folder.
func (s *CloudinaryStorageService) UploadImages(ctx context.Context, sources []string, folder string) ([]string, error) {
	urls := make([]string, 0, len(sources))
	for _, src := range sources {
		url, err := s.UploadImage(ctx, src, folder)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// DeleteImage removes a previously uploaded image by its public ID.
func (s *CloudinaryStorageService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("CloudinaryStorageService: failed to delete image: %w", err)
	}
	return nil
}
