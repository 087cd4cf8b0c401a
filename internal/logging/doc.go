// Package logging provides the structured logging interface used by the
// benchmark layers. Components depend on Logger rather than on a concrete
// backend; zerolog is the default implementation and a std log adapter is
// kept for embedding in programs that already own a *log.Logger.
package logging
