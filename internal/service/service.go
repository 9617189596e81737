// Package service implements the business-logic layer: one service per
// entity type, enforcing required fields, default statuses, and the
// ownership contract on top of the record store.
package service

import (
	"errors"

	"amica/internal/models"
	"amica/internal/store"
)

// wrapStoreErr translates store failures into API error kinds. Application
// errors raised inside store callbacks pass through untouched.
func wrapStoreErr(err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, store.ErrUnavailable) {
		return models.NewStorageError(err)
	}
	return models.NewInternalError(err)
}

// applyString overwrites dst when the patch field was supplied.
func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
