// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Kuklin

// Package http contains the HTTP transport layer of the saas-backend
// application: a chi router, endpoint handlers for authentication, blog,
// contact, plans and diagnostics, and the middleware chain (trace IDs,
// request logging, CORS).
package http
