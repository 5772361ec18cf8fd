// Package server exposes wallet analysis over HTTP. It serves the same
// report payload as the CLI JSON output, plus a health endpoint for
// deployment checks.
package server
