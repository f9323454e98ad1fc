// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// asset-tracker server handlers and by the client that reads their
// responses.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place lets the client map a response back to a typed error.
package app

const (
	// MsgServerRunning is the status reported by the health endpoint.
	MsgServerRunning = "Server is running"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgValidationFailed accompanies the per-field "errors" list of a
	// rejected asset or login request.
	MsgValidationFailed = "Validation failed"

	// MsgInvalidCredentials is returned for an unknown username and for a
	// wrong password alike.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgAccessTokenRequired is returned when an asset route is called
	// without a bearer token.
	MsgAccessTokenRequired = "Access token required"

	// MsgInvalidToken is returned when the bearer token is expired, has a
	// wrong signature or cannot be parsed.
	MsgInvalidToken = "Invalid token"

	// MsgFaultyAssetsCannotBeAllocated is returned when a Faulty asset is
	// written with an assignee.
	MsgFaultyAssetsCannotBeAllocated = "Faulty assets cannot be allocated"

	// MsgAssetIDAlreadyExists is returned when asset_id collides with another
	// record.
	MsgAssetIDAlreadyExists = "Asset ID already exists"

	// MsgAssetNotFound is returned when update or delete targets an unknown
	// id.
	MsgAssetNotFound = "Asset not found"

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "Not found"

	// MsgAssetDeleted confirms a successful delete.
	MsgAssetDeleted = "Asset deleted successfully"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve. Details are only logged.
	MsgInternalServerError = "Internal server error"
)
