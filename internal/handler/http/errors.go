// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors produced while reading a request, before any service call.
var (
	// ErrBodyTooLarge is returned when the request body exceeds maxBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrInvalidResourceID is returned when the {id} path segment is not a
	// positive integer. No resource can have such an id, so it maps to 404.
	ErrInvalidResourceID = errors.New("invalid resource id")
)

// Messages written in {"message": ...} error bodies.
const (
	messageNotFound       = "Not found"
	messageInternalError  = "Internal server error"
	messagePayloadTooBig  = "Payload too large"
	messageBadRequestBody = "Bad request"
)
