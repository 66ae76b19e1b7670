// Package client talks to the remote user-directory API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): Login,
//     ListUsers, GetUser, UpdateUser and DeleteUser.
//  2. An HTTP/JSON implementation (see HTTPClient) whose transport reads the
//     current session token on every request and attaches it as a bearer
//     credential. Without a token the header is omitted; rejection is left to
//     the remote side.
//
// # Error Handling
//
// Every failure matches exactly one of the sentinel errors with errors.Is:
// ErrAuth, ErrNetwork, ErrValidation, ErrNotFound. Remote details (HTTP
// status, the "error" field of the body) are kept in *APIError.
//
// Calls are single request/response exchanges; nothing is retried.
package client
