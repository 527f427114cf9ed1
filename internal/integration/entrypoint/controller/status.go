package controller

import (
	"net/http"
	"strings"
)

// statusForErrorCode maps a domain error code to an HTTP status. Codes follow
// the PREFIX-XXYYYY format where XX is the category: 01 validation, 02
// ineligibility, 03 not found, 04 consistency.
func statusForErrorCode(code string) int {
	_, rest, found := strings.Cut(code, "-")
	if !found || len(rest) < 2 {
		return http.StatusInternalServerError
	}

	switch rest[:2] {
	case "01":
		return http.StatusBadRequest
	case "02":
		return http.StatusUnprocessableEntity
	case "03":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
