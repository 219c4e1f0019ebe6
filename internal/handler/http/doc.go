// Package http implements the HTTP transport layer of the circuit records
// API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, CORS, compression and
// bearer authentication are handled in this package before requests are
// delegated to the service layer.
package http
