// Package config defines configuration for walletscan.
//
// Configuration flows from three sources, in increasing precedence:
// the optional YAML config file (.walletscan), environment variables
// (optionally loaded from a .env file), and CLI flags. The resulting
// Config struct is passed through the application by value-style
// dependency injection; there is no process-global mutable configuration,
// and in particular the target network is carried per request rather than
// toggled on a shared client.
package config
