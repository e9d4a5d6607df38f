// Package http implements a stand-in for the letters web service.
//
// The handlers serve the same /api/letters routes as the real backend with
// an in-memory [Backend]: uploads are accepted, processing "generates" one
// letter and one appendix per fixture, and documents are served one by one
// or as a ZIP archive. Faults can be injected per route to reproduce server
// errors. The package backs the "stub" CLI command and the end-to-end tests
// of the client.
package http
