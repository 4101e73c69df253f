package usecase

import (
	"errors"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

// internalErr passes application errors through and hides everything else behind a 500.
func internalErr(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.Internal(err)
}

// lookupErr turns domain.ErrNotFound into a 404 carrying msg.
func lookupErr(err error, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(msg)
	}
	return internalErr(err)
}
