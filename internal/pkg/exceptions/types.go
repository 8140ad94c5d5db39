package exceptions

import (
	"fmt"

	"docnet-client/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("%s_%s", constvars.ErrDevCannotDecodeResponse, resource))
	}
	ErrBuildRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBuildRequest)
	}
	ErrBuildMultipartForm = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBuildMultipartForm)
	}
	ErrNetworkFailure = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNetworkFailure, constvars.ErrClientNetworkFailure, constvars.ErrDevSendRequest)
	}
	ErrRateLimiterWait = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNetworkFailure, constvars.ErrClientNetworkFailure, constvars.ErrDevRateLimiterWait)
	}
	ErrUnexpectedStatus = func(statusCode int, body string) *CustomError {
		return WrapWithoutError(statusCode, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("%s_%d: %s", constvars.ErrDevUnexpectedStatus, statusCode, body))
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevDeadlineExceeded)
	}

	ErrInvalidCredentials = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidCredentials, constvars.ErrDevInvalidCredentials)
	}
	ErrEmailAlreadyInUse = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusConflict, constvars.ErrClientEmailAlreadyInUse, constvars.ErrDevEmailAlreadyExists)
	}
	ErrPasswordsDoNotMatch = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientPasswordsDoNotMatch, constvars.ErrDevPasswordsDoNotMatch)
	}
	ErrNMCNotVerified = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientNMCNotVerified, constvars.ErrDevNMCNotVerified)
	}
	ErrSessionInvalidOrExpired = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionInvalidOrExpired)
	}

	ErrAlreadyLiked = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusConflict, constvars.ErrClientAlreadyLiked, constvars.ErrDevAlreadyLiked)
	}
	ErrDonationAlreadyPosted = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusConflict, constvars.ErrClientDonationAlreadyPosted, constvars.ErrDevDonationAlreadyPosted)
	}
	ErrConsultationAlreadyPending = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusConflict, constvars.ErrClientConsultAlreadyPending, constvars.ErrDevConsultAlreadyPending)
	}
)
