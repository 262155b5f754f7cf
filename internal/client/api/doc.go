// Package api wraps outbound calls to the billing backend's REST surface.
// Every operation issues a single request, attaches the bearer credential,
// and normalizes non-success responses into the shared error taxonomy.
// Nothing here retries automatically.
package api
