// Package httperror provides the error body for endpoints that respond
// without a resource envelope.
package httperror

type Error struct {
	Message string `json:"error" example:"there is no vendor matching your query"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}
