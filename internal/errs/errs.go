// Package errs defines the error kinds the API reports and the JSON shape
// they are rendered with.
//
// Every client-facing failure is an *HTTPError carrying its Kind, the HTTP
// status and the `{error, message}` body sent to the client.
package errs
