package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/willowbrook-labs/sitter-scheduler/internal/httperr"
)

// ======================================================
// ERROR MAPPING
// ======================================================

var businessMessages = map[string]string{
	"invalid_date_or_time":     "Invalid date or time window.",
	"date_in_the_past":         "The requested date has already passed.",
	"unknown_parent":           "Parent not found.",
	"invalid_status":           "Unknown status filter.",
	"request_not_found":        "Booking request not found.",
	"invalid_transition":       "The request is not in a state that allows this action.",
	"no_matching_availability": "The sitter has no published slot covering this window.",
	"time_conflict":            "The sitter already has a confirmed booking in this window.",
}

// mapLifecycleError translates a use case error into an HTTP response.
func mapLifecycleError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	msg, known := businessMessages[code]
	if !known {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch code {
	case "request_not_found":
		httperr.NotFound(c, code, msg)
	case "invalid_transition", "no_matching_availability", "time_conflict":
		httperr.Conflict(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}
