// Package http implements the HTTP transport layer of the notes service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, CORS and response compression are
// handled here before requests are delegated to the service layer. Service
// errors are translated into status codes and JSON bodies by the error
// mapper: validation failures become 422, missing notes 404 and storage
// failures 500.
package http
