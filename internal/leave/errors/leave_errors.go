package leaveerrors

import (
	"errors"
	"net/http"

	"hris-console/internal/shared/apperror"
)

// ErrInvalidDuration is absorbed during ingestion and never reaches a user.
var ErrInvalidDuration = errors.New("leave: no computable duration")

// ErrStaleResponse is returned by a board when a newer reload superseded the
// response being delivered.
var ErrStaleResponse = errors.New("leave: response superseded by a newer reload")

var (
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"leave type must be one of annual, absence, sick",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave not found",
		http.StatusNotFound,
	)
	ErrReasonRequired      = apperror.RequiredField("Reason")
	ErrStartDateRequired   = apperror.RequiredField("Start Date")
	ErrEndDateRequired     = apperror.RequiredField("End Date")
	ErrLocationRequired    = apperror.RequiredField("Location")
	ErrDurationRequired    = apperror.RequiredField("Duration")
	ErrInvalidDurationUnit = apperror.InvalidField("Duration Unit")
	ErrInvalidStartDate    = apperror.New(
		apperror.CodeValidation,
		"invalid start_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidEndDate = apperror.New(
		apperror.CodeValidation,
		"invalid end_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidation,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrDurationTooLong = apperror.New(
		apperror.CodeValidation,
		"duration must not exceed 3650 days",
		http.StatusBadRequest,
	)
	ErrSubstituteRequired = apperror.New(
		apperror.CodeValidation,
		"a substitute must be selected before approving annual leave",
		http.StatusBadRequest,
	)
	ErrAlreadyDecided = apperror.New(
		apperror.CodeConflict,
		"leave request has already been decided",
		http.StatusConflict,
	)
	ErrNotDecidable = apperror.New(
		apperror.CodeConflict,
		"leave request cannot be decided in its current state",
		http.StatusConflict,
	)
	ErrAttachmentRequired    = apperror.RequiredField("File")
	ErrAttachmentURLRequired = apperror.RequiredField("Url")
)

// Transport failures. The wrapped cause is kept for logs only.
var (
	ErrFetchFailed            = apperror.UpstreamFailure("load leave requests")
	ErrCreateFailed           = apperror.UpstreamFailure("submit leave request")
	ErrApproveFailed          = apperror.UpstreamFailure("approve leave request")
	ErrRejectFailed           = apperror.UpstreamFailure("reject leave request")
	ErrSearchFailed           = apperror.UpstreamFailure("search employees")
	ErrUploadFailed           = apperror.UpstreamFailure("upload attachment")
	ErrDeleteAttachmentFailed = apperror.UpstreamFailure("delete attachment")

	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate export. Please try again",
		http.StatusInternalServerError,
	)
)

// IsTransport reports whether err came from a failed collaborator call.
func IsTransport(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == apperror.CodeUpstream
}
