// Package fetch downloads the source documents over HTTP.
//
// A [Client] issues a GET with a timeout and a size cap. Non-2xx answers fail
// with [ErrUpstreamStatus] and an empty body with [ErrEmptyPayload]. When the
// URL serves an HTML page instead of a document, the first link to a PDF on
// that page is followed once.
package fetch
