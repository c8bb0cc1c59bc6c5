// Package http implements the HTTP transport of the resource service.
//
// It wires the chi router, the request pipeline (body limit, CORS, trace id,
// access log) and the handlers that translate requests into service calls
// and service results into JSON responses.
package http
