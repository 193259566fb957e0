// Package api defines the uniform response envelope. Every endpoint replies
// with {success, data} or {success, error:{kind, message}}; the HTTP status
// code and the error kind always agree.
package api

import "github.com/gin-gonic/gin"

type ErrorKind string

const (
	KindUnauthenticated ErrorKind = "unauthenticated"
	KindForbidden       ErrorKind = "forbidden"
	KindNotFound        ErrorKind = "not_found"
	KindValidation      ErrorKind = "validation"
	KindInternal        ErrorKind = "internal"
)

type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

func OK(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

func Fail(c *gin.Context, status int, kind ErrorKind, message string) {
	c.JSON(status, Envelope{Success: false, Error: &Error{Kind: kind, Message: message}})
}

// AbortFail is Fail for middleware: it stops the handler chain as well.
func AbortFail(c *gin.Context, status int, kind ErrorKind, message string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Error: &Error{Kind: kind, Message: message}})
}
