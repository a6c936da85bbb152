package httpserver

import (
	"fmt"
	"strconv"

	"moviesearch/errs"

	"github.com/labstack/echo/v4"
)

const (
	successMessage      = "OK"
	defaultErrorCode    = "100500"
	validationErrorCode = "100010"
)

type APIResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Result  interface{} `json:"result,omitempty"`
	Info    string      `json:"info,omitempty"`
}

func writeSuccess(c echo.Context, status int, result interface{}) error {
	return c.JSON(status, APIResponse{
		Code:    strconv.Itoa(status),
		Message: successMessage,
		Result:  result,
	})
}

func writeList(c echo.Context, status int, data interface{}) error {
	return writeSuccess(c, status, map[string]interface{}{
		"data": data,
	})
}

func writeError(c echo.Context, status int, message, info string, err error) error {
	return c.JSON(status, APIResponse{
		Code:    errorCode(err, status),
		Message: message,
		Info:    info,
	})
}

// errorCode derives the envelope code from the response status. Validation
// failures keep their own code.
func errorCode(err error, status int) string {
	if errs.ErrorCode(err) == errs.EINVALID {
		return validationErrorCode
	}
	if status <= 0 {
		return defaultErrorCode
	}
	return fmt.Sprintf("100%03d", status)
}
