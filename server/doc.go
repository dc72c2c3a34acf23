// Package server exposes the timetable parsers over HTTP.
//
// Routes:
//
//	GET /api/replacements/{group}  replacement rows of a group, per page
//	GET /api/schedule/{group}      weekly timetable of a group, per page
//	GET /healthz                   liveness probe
//
// Every response is JSON with a "success" flag and carries permissive CORS
// headers; OPTIONS requests are answered with 204 before routing.
package server
