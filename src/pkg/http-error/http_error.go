package httperror

import "net/http"

// CommonError is the error object returned by usecases and rendered by utils.ResponseError.
type CommonError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func newCommonError(code int) *CommonError {
	return &CommonError{Code: code, Message: http.StatusText(code)}
}

func NewBadRequest() *CommonError {
	return newCommonError(http.StatusBadRequest)
}

func NewUnauthorized() *CommonError {
	return newCommonError(http.StatusUnauthorized)
}

func NewForbidden() *CommonError {
	return newCommonError(http.StatusForbidden)
}

func NewNotFound() *CommonError {
	return newCommonError(http.StatusNotFound)
}

func NewConflict() *CommonError {
	return newCommonError(http.StatusConflict)
}

func NewInternalServerError() *CommonError {
	return newCommonError(http.StatusInternalServerError)
}

func NewBadGateway() *CommonError {
	return newCommonError(http.StatusBadGateway)
}

func NewServiceUnavailable() *CommonError {
	return newCommonError(http.StatusServiceUnavailable)
}

// NewStatus builds an error for an arbitrary status, used to relay upstream failures.
func NewStatus(code int) *CommonError {
	if http.StatusText(code) == "" || code < http.StatusBadRequest {
		return NewBadGateway()
	}
	return newCommonError(code)
}
