package exceptions

import (
	"errors"
	"fmt"
	"runtime"

	"docnet-client/internal/pkg/constvars"
)

// CustomError carries both the message shown at the terminal and the dev
// message that goes to the log. StatusCode is the HTTP status the backend
// answered with, constvars.StatusNetworkFailure when no response arrived, or
// constvars.StatusBadRequest for client-side validation failures.
type CustomError struct {
	StatusCode    int
	ClientMessage string
	DevMessage    string
	Location      Location
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(2),
	}
}

func WrapWithError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    fmt.Sprintf("%s: %s", devMessage, err.Error()),
		Location:      getLocation(2),
	}
}

// StatusOf extracts the HTTP status from an error chain; -1 means the error
// did not come out of this package.
func StatusOf(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return -1
}

func IsConflict(err error) bool {
	return StatusOf(err) == constvars.StatusConflict
}

func IsNetworkFailure(err error) bool {
	return StatusOf(err) == constvars.StatusNetworkFailure
}

// ClientMessageOf returns the terminal-facing message, falling back to a
// generic one for errors that did not come out of this package.
func ClientMessageOf(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApplication
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
