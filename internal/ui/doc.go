// Package ui provides the color themes shared by the report table, the
// progress spinner and the TUI dashboard.
package ui
