// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// notes server handlers and the API client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgHealthy is the body message of the liveness endpoint.
	MsgHealthy = "Healthy"

	// MsgNotFound is returned when the requested note does not exist.
	MsgNotFound = "Not found"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgDatabaseError formats the detail of a storage failure.
	// The arguments are the operation ("creating note") and the engine message.
	MsgDatabaseError = "Database error while %s: %s"
)
