// Package email implements the mailbox core: sending, fetching, deleting
// messages and computing pagination windows over a recipient's inbox.
//
// The service validates typed input, enforces sender/recipient existence
// against the user directory, and translates (start, stop) index pairs into
// (limit, offset) for bounded fetches. Ordering is a repository guarantee:
// inbox reads come back newest-first and are never re-sorted here.
//
// The repository implementation lives in repository/postgres/.
package email
