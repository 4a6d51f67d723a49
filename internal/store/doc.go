// Package store persists the family tree in SQLite.
//
// The Store owns the database connection, schema initialization and busy
// retries. Imports are written as batches: each CommitImport call records one
// import_batches row and its persons, families and ordered children inside a
// single transaction, so a failed import leaves no partial rows behind.
//
// The schema version lives in SQLite's user_version header field. Schema
// changes bump treeSchemaVersion in schema.go; opening a database that carries
// another version, or foreign tables and no version, fails with
// ErrSchemaMismatch.
package store
