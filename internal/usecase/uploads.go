package usecase

import (
	"context"
	"fmt"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/imaging"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/metrics"
	"go-jobportal-backend/pkg/security"
	"go-jobportal-backend/pkg/storage"
)

const (
	imageMaxDimension = 512
	imageQuality      = 85
)

// prepareResume accepts a parseable PDF within the resume policy.
func prepareResume(ctx context.Context, accountID string, file domain.UploadedFile) error {
	if len(file.Data) == 0 {
		return apperror.BadRequest("Please upload a file")
	}
	if int64(len(file.Data)) > security.ResumePolicy.MaxBytes {
		rejectUpload(ctx, "resume", accountID, "too large")
		return apperror.BadRequest("File size cannot exceed 5MB")
	}
	result := security.ValidateFile(security.ResumePolicy, file.Filename, file.Data)
	if !result.Valid {
		rejectUpload(ctx, "resume", accountID, result.Error)
		return apperror.BadRequest("Only PDF files are allowed")
	}
	if _, err := security.InspectPDF(file.Data); err != nil {
		rejectUpload(ctx, "resume", accountID, err.Error())
		return apperror.BadRequest("Only PDF files are allowed")
	}
	return nil
}

// prepareImage validates a JPEG or PNG and returns it downscaled and re-encoded as JPEG.
func prepareImage(ctx context.Context, kind, accountID string, file domain.UploadedFile) ([]byte, error) {
	if len(file.Data) == 0 {
		return nil, apperror.BadRequest("Please upload a file")
	}
	if int64(len(file.Data)) > security.ImagePolicy.MaxBytes {
		rejectUpload(ctx, kind, accountID, "too large")
		return nil, apperror.BadRequest("File size cannot exceed 2MB")
	}
	result := security.ValidateFile(security.ImagePolicy, file.Filename, file.Data)
	if !result.Valid {
		rejectUpload(ctx, kind, accountID, result.Error)
		return nil, apperror.BadRequest("Only JPEG and PNG images are allowed")
	}
	compressed, err := imaging.CompressImage(file.Data, imageMaxDimension, imageQuality)
	if err != nil {
		rejectUpload(ctx, kind, accountID, err.Error())
		return nil, apperror.BadRequest("Only JPEG and PNG images are allowed")
	}
	return compressed, nil
}

func rejectUpload(ctx context.Context, kind, accountID, reason string) {
	metrics.RecordUpload(kind, false)
	security.DefaultLogger().Log(ctx, security.SecurityEvent{
		Event:        security.EventUploadRejected,
		SubjectType:  "user_id",
		SubjectValue: accountID,
		Details:      map[string]interface{}{"kind": kind, "reason": reason},
	})
}

// replaceFile stores the new object, records it through persist, and only then
// removes the previous object. A failed persist removes the new object instead.
func replaceFile(
	ctx context.Context,
	store domain.FileStorage,
	kind, folder, prefix, ext string,
	data []byte,
	contentType, originalName string,
	old *domain.FileRef,
	persist func(ref *domain.FileRef) error,
) (*domain.FileRef, error) {
	now := time.Now()
	ref := &domain.FileRef{
		Key:          storage.NewKey(folder, prefix, ext),
		OriginalName: originalName,
		UploadedAt:   &now,
	}

	url, err := store.Save(ctx, ref.Key, data, contentType)
	if err != nil {
		metrics.RecordUpload(kind, false)
		return nil, apperror.Internal(fmt.Errorf("store %s: %w", kind, err))
	}
	ref.URL = url

	if err := persist(ref); err != nil {
		if delErr := store.Delete(ctx, ref.Key); delErr != nil {
			logger.Log.Warn("Failed to remove orphaned upload", "key", ref.Key, "error", delErr)
		}
		metrics.RecordUpload(kind, false)
		return nil, internalErr(err)
	}

	if old != nil && old.Key != "" && old.Key != ref.Key {
		if err := store.Delete(ctx, old.Key); err != nil {
			logger.Log.Warn("Failed to delete replaced upload", "key", old.Key, "error", err)
		}
	}
	metrics.RecordUpload(kind, true)
	return ref, nil
}
