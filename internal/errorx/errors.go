package errorx

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/joeblew999/plat-welcome/pkg/notify"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// CodeError is a typed error that carries an HTTP status code.
// Logic functions return these so the global error handler can map
// them to the correct HTTP response.
type CodeError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (e *CodeError) Error() string {
	return e.Msg
}

// ErrNotFound returns a 404 error.
func ErrNotFound(msg string) error {
	return &CodeError{Code: http.StatusNotFound, Msg: msg}
}

// ErrBadRequest returns a 400 error.
func ErrBadRequest(msg string) error {
	return &CodeError{Code: http.StatusBadRequest, Msg: msg}
}

// ErrConflict returns a 409 error.
func ErrConflict(msg string) error {
	return &CodeError{Code: http.StatusConflict, Msg: msg}
}

// ErrBadGateway returns a 502 error, used when the mail server refused a message.
func ErrBadGateway(msg string) error {
	return &CodeError{Code: http.StatusBadGateway, Msg: msg}
}

// ErrInternal returns a 500 error.
func ErrInternal(msg string) error {
	return &CodeError{Code: http.StatusInternalServerError, Msg: msg}
}

// FromNotify maps notifier errors to HTTP errors. Unknown errors become 500.
func FromNotify(err error) error {
	if err == nil {
		return nil
	}

	var verr validator.ValidationErrors
	switch {
	case errors.Is(err, notify.ErrUserNotFound):
		return ErrNotFound(err.Error())
	case errors.Is(err, notify.ErrMailDispatch):
		return ErrBadGateway(err.Error())
	case errors.Is(err, notify.ErrInvalidUser),
		errors.Is(err, notify.ErrMissingPassword),
		errors.Is(err, notify.ErrEmptyCredential),
		errors.As(err, &verr):
		return ErrBadRequest(err.Error())
	default:
		return ErrInternal(err.Error())
	}
}

// RegisterErrorHandler installs a global error handler that maps CodeError
// to the correct HTTP status code. Untyped errors become 500.
func RegisterErrorHandler() {
	httpx.SetErrorHandlerCtx(Handle)
}

// Handle converts err to a status code and JSON body.
func Handle(ctx context.Context, err error) (int, any) {
	var ce *CodeError
	if errors.As(err, &ce) {
		if ce.Code >= http.StatusInternalServerError {
			logx.WithContext(ctx).Errorw("Request failed",
				logx.Field("code", ce.Code),
				logx.Field("error", ce.Msg))
		}
		return ce.Code, &CodeError{Code: ce.Code, Msg: ce.Msg}
	}

	logx.WithContext(ctx).Errorf("unexpected error: %v", err)
	return http.StatusInternalServerError, &CodeError{
		Code: http.StatusInternalServerError,
		Msg:  "internal server error",
	}
}
