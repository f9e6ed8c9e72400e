package imagestore

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/wwdevkhati/shop-backend/internal/config"
	"github.com/wwdevkhati/shop-backend/pkg/ptr"
)

var _ Uploader = (*CloudinaryUploader)(nil)

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader creates an uploader backed by Cloudinary.
func NewCloudinaryUploader(cfg config.Cloudinary) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("create cloudinary client: %w", err)
	}

	return &CloudinaryUploader{
		cld:    cld,
		folder: cfg.Folder,
	}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, filename string, data io.Reader) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, data, uploader.UploadParams{
		Folder:           u.folder,
		FilenameOverride: filename,
		UseFilename:      ptr.New(true),
		UniqueFilename:   ptr.New(true),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}

	// The SDK reports some upload failures in the result body instead of err.
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}

	return res.SecureURL, nil
}
