// mdbview is a command-line tool and library for reading GoPro media-index
// database files, on-disk instances of the McObject eXtremeDB embedded
// storage engine.
//
// Package mdb implements the read-only decoder: header and version
// detection, page-structure walking, record-slot scanning, and the
// schema-driven field extraction for the single_ex and grouped_ex media
// catalog tables. It opens one buffer, decodes it once, and returns a
// Root value; nothing here mutates the input. The returned Root's page
// bodies are slices of the input buffer, not copies.
package mdb
