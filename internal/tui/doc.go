// Package tui provides terminal styling and color detection for report output.
package tui
