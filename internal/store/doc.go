// Package store provides principal persistence for the SureDrive API server.
//
// # Overview
//
// All principals (admins/general users, drivers, inspectors) live in a single
// principals table with role as the discriminator column. Role-specific
// fields are optional columns: username (required for inspectors) and
// plate_number (required for drivers) are stored as NULL when unset so their
// UNIQUE indexes only bind the principals that carry them.
//
// # Uniqueness
//
// Phone and national ID are unique across every role; username and plate
// number are unique when present. The UNIQUE indexes are the authoritative
// guard against concurrent duplicate registrations - the service layer's
// existence pre-check is only a fast path for friendlier errors. Constraint
// violations surface as the field-specific sentinel errors:
//
//   - ErrDuplicatePhone
//   - ErrDuplicateNationalID
//   - ErrDuplicateUsername
//   - ErrDuplicatePlate
//
// # Implementation
//
// SQLiteStore implements the Store interface using modernc.org/sqlite
// (CGo-free). The schema is created automatically, WAL mode is enabled, and
// timestamps are stored as RFC3339 strings.
package store
