// Package profile manages named sets of environment variables kept in a
// secrets.Store.
//
// A profile has no record of its own. It is the set of accounts stored
// under its namespace, "{username}@{package}/{profile}", and exists exactly
// while at least one variable does. Every create is an insert that fails if
// the key exists, and every delete fails if the key is absent.
package profile
