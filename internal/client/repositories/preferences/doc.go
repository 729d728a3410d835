// Package preferences stores user preferences (currently only the UI
// locale) in the local SQLite database as opaque key/value pairs.
package preferences
