// Package report renders exposure reports for output: JSON for tool
// integration, Markdown for documentation and sharing, and a plain-text
// format for terminal display.
package report
