package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	httpError "payment-gateway/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

type Result struct {
	Data  interface{}
	Error error
}

type BaseWrapperModel struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(BaseWrapperModel{
		Success: true,
		Data:    data,
		Message: message,
		Code:    code,
	})
}

func ResponseError(err error, ctx *fiber.Ctx) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	var details interface{}

	var commonErr *httpError.CommonError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &commonErr):
		code = commonErr.Code
		message = commonErr.Message
		details = commonErr.Details
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return ctx.Status(code).JSON(BaseWrapperModel{
		Success: false,
		Data:    nil,
		Message: message,
		Code:    code,
		Details: details,
	})
}

func ConvertString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}

func ConvertInt(v interface{}) int {
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		i, err := strconv.Atoi(val)
		if err != nil {
			return 0
		}
		return i
	}
	return 0
}
