// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// errListen is returned by run when the HTTP address cannot be bound,
	// e.g. because another process holds it.
	errListen = errors.New("notes HTTP server cannot listen")
)
