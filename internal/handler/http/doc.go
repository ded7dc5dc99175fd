// Package http implements the HTTP transport layer of the dev session
// backend.
//
// It exposes route wiring, request handlers, and middleware for the REST
// API the client's session adapter talks to. Cross-cutting concerns such as
// authentication, request tracing, access logging, and payload integrity
// checks are handled in this package before requests are delegated to the
// service layer.
package http
