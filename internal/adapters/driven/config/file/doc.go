// Package file provides the TOML-backed configuration store.
//
// Keys are addressed in dot notation ("search.page_size") and written
// back as nested TOML tables.
package file
