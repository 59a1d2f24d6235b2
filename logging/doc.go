// Package logging builds the slog loggers used by the service binaries.
//
// Lines look like
//
//	2006/01/02 15:04:05 INFO request done component=server status=200
//
// i.e. timestamp, level, message, then key=value attributes. Attributes
// added with Logger.With come before per-record ones; groups prefix keys
// with "name.". Values containing spaces, quotes or '=' are quoted.
//
// The algorithm packages never log; only config, server and cmd do.
package logging
