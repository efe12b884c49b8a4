// Package handler is the first layer after the router.
//
// It binds path parameters, reads payloads validated by middleware,
// calls the service layer and writes JSON responses.
package handler
