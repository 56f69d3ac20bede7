// Package http implements the REST surface of the gateway.
//
// It wires the chi router, the JSON and XML handlers and the middleware
// chain (recovery, trace id, access log, CORS, language negotiation, body
// limit) in front of the service layer. Handlers never talk to the upstream
// directly.
package http
