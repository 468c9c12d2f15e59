package usecase

import (
	"errors"
	"fmt"

	"payment-gateway/src/internal/entity"
	httpError "payment-gateway/src/pkg/http-error"
	"payment-gateway/src/pkg/log"
	"payment-gateway/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// maxScale matches the decimal(18,2) money columns.
const maxScale = 2

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "cpf":
		return "Invalid CPF"
	case "credit_card":
		return "Invalid card number"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	case "len":
		return "Value must have length " + fe.Param()
	case "oneof":
		return "Value must be one of: " + fe.Param()
	case "gt":
		return "Value must be greater than " + fe.Param()
	default:
		return "Invalid value"
	}
}

// validationFailure renders validator errors as a 400 with field details.
func validationFailure(err error) *httpError.CommonError {
	errObj := httpError.NewBadRequest()
	errObj.Message = fmt.Sprintf("validation error: %v", err.Error())

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		details := make([]ValidationError, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			details = append(details, ValidationError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
				Type:    fe.Tag(),
			})
		}
		errObj.Message = "validation error"
		errObj.Details = details
	}
	return errObj
}

func amountFailure(field string, amount decimal.Decimal) *httpError.CommonError {
	if amount.Equal(amount.Round(maxScale)) {
		return nil
	}
	errObj := httpError.NewBadRequest()
	errObj.Message = "validation error"
	errObj.Details = []ValidationError{{
		Field:   field,
		Message: fmt.Sprintf("Value must have at most %d decimal places", maxScale),
		Type:    "scale",
	}}
	return errObj
}

// errorFromDomain maps a ledger error kind onto the transport error object.
func errorFromDomain(err error) *httpError.CommonError {
	var domainErr *entity.Error
	if !errors.As(err, &domainErr) {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "internal server error"
		return errObj
	}

	var errObj *httpError.CommonError
	switch domainErr.Kind {
	case entity.KindNotFound:
		errObj = httpError.NewNotFound()
	case entity.KindInvalidAmount, entity.KindSelfDealing, entity.KindInsufficientFunds,
		entity.KindNotAuthorized, entity.KindRefundFailure:
		errObj = httpError.NewBadRequest()
	case entity.KindForbidden:
		errObj = httpError.NewForbidden()
	case entity.KindUnauthorized:
		errObj = httpError.NewUnauthorized()
	case entity.KindInvalidState, entity.KindConflict:
		errObj = httpError.NewConflict()
	case entity.KindGatewayError:
		errObj = httpError.NewStatus(domainErr.UpstreamStatus)
		if domainErr.UpstreamBody != "" {
			errObj.Details = domainErr.UpstreamBody
		}
	case entity.KindServiceUnavailable:
		errObj = httpError.NewServiceUnavailable()
	case entity.KindBadGateway:
		errObj = httpError.NewBadGateway()
	default:
		errObj = httpError.NewInternalServerError()
		errObj.Message = "internal server error"
		return errObj
	}
	if domainErr.Message != "" {
		errObj.Message = domainErr.Message
	}
	return errObj
}

func failure(logger log.Log, context, scope string, err error) utils.Result {
	errObj := errorFromDomain(err)
	if errObj.Code >= 500 {
		logger.Error(context, err.Error(), scope, utils.ConvertString(errObj.Details))
	} else {
		logger.Info(context, err.Error(), scope, "")
	}
	return utils.Result{Error: errObj}
}
