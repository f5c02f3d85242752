// Package api exposes the workspace store over HTTP. Every JSON body is the
// same envelope: {data, error, status}, where status repeats the HTTP
// status code in the body and exactly one of data/error is populated.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Data   any    `json:"data"`
	Error  *Error `json:"error"`
	Status int    `json:"status"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Paginated is the page shape carried in the envelope's data field: the
// page's records plus the paging totals as siblings.
type Paginated struct {
	Data       any `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

const (
	CodeBadRequest     = "BAD_REQUEST"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeNotFound       = "NOT_FOUND"
	CodeNotImplemented = "NOT_IMPLEMENTED"
	CodeInternal       = "INTERNAL"
)

func ok(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Data: data, Status: status})
}

func fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, Response{Error: &Error{Code: code, Message: message}, Status: status})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Response{
		Error:  &Error{Code: CodeBadRequest, Message: "invalid request body", Details: err.Error()},
		Status: http.StatusBadRequest,
	})
}

func notFound(c *gin.Context, what string) {
	fail(c, http.StatusNotFound, CodeNotFound, what+" not found")
}

func notImplemented(c *gin.Context, what string) {
	fail(c, http.StatusNotImplemented, CodeNotImplemented, what+" is not implemented")
}

// paginate slices a page out of items; page numbers start at 1 and an
// out-of-range page returns an empty slice, not an error.
func paginate[T any](items []T, page, pageSize int) Paginated {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Paginated{
		Data:       items[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
