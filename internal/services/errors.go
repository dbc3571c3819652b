package services

import (
	"errors"
	"fmt"

	apperrors "github.com/Cari-app/cari-quizzies-sub001/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")
	ErrBadRequest       = errors.New("bad request")
	ErrConflict         = errors.New("resource conflict")

	// Quiz specific errors
	ErrQuizNotFound      = errors.New("quiz not found")
	ErrQuizNotEditable   = errors.New("quiz cannot be edited in current status")
	ErrQuizNotPublished  = errors.New("quiz is not published")
	ErrQuizHasNoStages   = errors.New("quiz has no stages")
	ErrStageNotFound     = errors.New("stage not found")
	ErrComponentNotFound = errors.New("component not found")

	// Session specific errors
	ErrSessionNotFound         = errors.New("session not found")
	ErrSessionAlreadySubmitted = errors.New("session already submitted")
	ErrAnswerNotCollectable    = errors.New("component does not collect a response")

	// Component specific errors
	ErrComponentInvalidType = errors.New("invalid component type")
	ErrCustomIDInvalid      = errors.New("invalid custom id format")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

type BusinessRuleError struct {
	Rule    string                 `json:"rule"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (bre *BusinessRuleError) Error() string {
	return fmt.Sprintf("business rule violation (%s): %s", bre.Rule, bre.Message)
}

// ===== ERROR HELPERS =====

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

func NewBusinessRuleError(rule, message string, context map[string]interface{}) *BusinessRuleError {
	return &BusinessRuleError{
		Rule:    rule,
		Message: message,
		Context: context,
	}
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrQuizNotFound) ||
		errors.Is(err, ErrStageNotFound) ||
		errors.Is(err, ErrComponentNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}

// IsConflict checks if error represents a conflict condition
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrSessionAlreadySubmitted)
}
