package apperr

import "github.com/wwdevkhati/shop-backend/pkg/zerror"

const (
	ValidationErrorCode = "VALIDATION_FAILED"
	NoImagesErrorCode   = "NO_IMAGES_UPLOADED"
	UploadErrorCode     = "IMAGE_UPLOAD_FAILED"
	StoreErrorCode      = "STORE_UNAVAILABLE"
)

var (
	ValidationErr = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	NoImagesErr   = zerror.NewBadRequest(NoImagesErrorCode, "at least one image is required")
	UploadErr     = zerror.NewInternalServerError(UploadErrorCode, "image upload failed, try again later")
	StoreErr      = zerror.NewInternalServerError(StoreErrorCode, "storage unavailable, try again later")
)
