package exceptions

import (
	"errors"
	"fmt"
	"medifax-client/internal/pkg/constvars"
	"runtime"
)

// Kind classifies a failure so the view layer can react to it without
// inspecting transport details.
type Kind string

const (
	KindNetwork    Kind = "network"
	KindAuth       Kind = "auth"
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindDecode     Kind = "decode"
	KindInvariant  Kind = "invariant"
	KindUnknown    Kind = "unknown"
)

type CustomError struct {
	Kind          Kind     `json:"kind"`
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
	cause         error
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

// BuildNewCustomError is meant to be called from the ErrXxx constructors, the
// recorded location is the caller of that constructor.
func BuildNewCustomError(err error, kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		Kind:          kind,
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
		cause:         err,
	}
}

// KindOf reports the kind carried by err, KindUnknown for foreign errors.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return KindUnknown
}

// ClientMessageOf returns the user facing message for err. Foreign errors never
// leak their technical text.
func ClientMessageOf(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.ClientMessage != "" {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApplication
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         "unknown",
			Line:         0,
			FunctionName: "unknown",
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
