// Package domain defines the core business types for the mailbox service.
//
// Types in this package are validated value objects with no database
// dependencies and no HTTP concerns. They are the shared language between
// handlers, services, and repositories.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - No *sql.DB, no http.Request, no context.Context in struct fields
//   - JSON/DB tags are allowed (they're metadata, not behavior)
//   - Construction goes through NewUser/NewEmail so that every entity in
//     circulation has already passed field validation
package domain
