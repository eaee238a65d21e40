// Package dispatcher routes interactions to handlers, and defines the COMMS
// request/reply envelope that carries interactions between services.
package dispatcher

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/morezero/interactions/pkg/codec"
	"github.com/morezero/interactions/pkg/interaction"
)

// Error codes of ErrorDetail.
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeInternalError   = "INTERNAL_ERROR"
)

// InteractionRequest is the JSON envelope for incoming COMMS interaction requests.
// Interaction holds the raw Discord interaction payload.
type InteractionRequest struct {
	ID          string             `json:"id"`
	Interaction json.RawMessage    `json:"interaction"`
	Ctx         *InvocationContext `json:"ctx,omitempty"`
}

// InteractionReply is the JSON envelope for COMMS interaction replies.
type InteractionReply struct {
	ID       string                `json:"id"`
	Ok       bool                  `json:"ok"`
	Response *interaction.Response `json:"response,omitempty"`
	Error    *ErrorDetail          `json:"error,omitempty"`
}

// ErrorDetail holds structured error information.
type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// InvocationContext holds context from the caller.
type InvocationContext struct {
	UserID        string `json:"userId,omitempty"`
	RequestID     string `json:"requestId,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
	Source        string `json:"source,omitempty"`
	DeadlineMs    int    `json:"deadlineMs,omitempty"`
	TimeoutMs     int    `json:"timeoutMs,omitempty"`
}

// Timeout returns the time budget of a request: the caller's deadline (or,
// failing that, its timeout) when that is shorter than def, else def.
func (c *InvocationContext) Timeout(def time.Duration) time.Duration {
	if c == nil {
		return def
	}
	ms := c.DeadlineMs
	if ms <= 0 {
		ms = c.TimeoutMs
	}
	if ms > 0 && time.Duration(ms)*time.Millisecond < def {
		return time.Duration(ms) * time.Millisecond
	}
	return def
}

// DecodeRequest decodes a COMMS message body into an InteractionRequest.
func DecodeRequest(data []byte) (*InteractionRequest, error) {
	var req InteractionRequest
	if err := codec.DecodePayload(data, &req); err != nil {
		return nil, fmt.Errorf("%s - failed to decode request: %w", logPrefix, err)
	}
	return &req, nil
}

// ErrorReply builds a failed reply.
func ErrorReply(id, code, message string, retryable bool) *InteractionReply {
	return &InteractionReply{
		ID: id,
		Ok: false,
		Error: &ErrorDetail{
			Code:      code,
			Message:   message,
			Retryable: retryable,
		},
	}
}
