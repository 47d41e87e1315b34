// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errServerNotInitialized is returned when the item service is asked to
	// start without a constructed handler or HTTP server.
	errServerNotInitialized = errors.New("http server is not initialized")
)
