package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ToHTTPStatus converts an error code into an HTTP status code.
func ToHTTPStatus(code string) int {
	httpStatus, _ := GetCodeMapping(code)
	return httpStatus
}

// ToHTTPBody builds the JSON body written for err. Internal errors never echo
// their cause to the caller.
func ToHTTPBody(err error) (int, map[string]interface{}) {
	var appErr *AppError
	if As(err, &appErr) {
		status := ToHTTPStatus(appErr.Code())
		body := map[string]interface{}{
			"error": appErr.Message(),
			"code":  appErr.Code(),
		}
		if status >= http.StatusInternalServerError {
			body["error"] = http.StatusText(status)
		}
		if len(appErr.Fields()) > 0 {
			body["fields"] = appErr.Fields()
		}
		return status, body
	}

	if echoErr, ok := err.(*echo.HTTPError); ok {
		msg, ok := echoErr.Message.(string)
		if !ok {
			msg = http.StatusText(echoErr.Code)
		}
		return echoErr.Code, map[string]interface{}{
			"error": msg,
			"code":  httpStatusToCode(echoErr.Code),
		}
	}

	return http.StatusInternalServerError, map[string]interface{}{
		"error": http.StatusText(http.StatusInternalServerError),
		"code":  ErrInternal,
	}
}

func httpStatusToCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrInvalidArgument
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrConflict
	case http.StatusGatewayTimeout:
		return ErrTimeout
	case http.StatusNotImplemented:
		return ErrNotImplemented
	default:
		return ErrInternal
	}
}
