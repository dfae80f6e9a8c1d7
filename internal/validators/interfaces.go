// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks note input before it reaches storage.
//
// A [Validator] accepts the create and update payloads, list pagination and
// note ids. Rejected input is reported as a [*ValidationError], which matches
// [ErrValidation] and carries one entry per offending field so the HTTP layer
// can answer 422 with field details.
package validators

import "context"

// Validator validates a value. The optional field names restrict struct
// validation to those Go struct fields; unknown names yield [ErrUnknownField].
type Validator interface {
	Validate(context.Context, any, ...string) error
}
