package domain

import "errors"

var (
	ErrUploadNotFound   = errors.New("upload not found")
	ErrAnalysisNotFound = errors.New("analysis not found")
	ErrInvalidKind      = errors.New("invalid upload kind")
)
