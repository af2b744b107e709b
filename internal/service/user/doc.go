// Package user implements account registration.
//
// The service layer contains all business logic for validating and
// registering users. It depends on the repository interface defined in this
// package and should never import from api/.
//
// The repository implementation lives in repository/postgres/.
package user
