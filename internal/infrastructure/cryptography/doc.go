// Package cryptography implements the credential primitives of the accounts domain:
// bcrypt password hashing, HS256 session tokens and the rotating staff access code.
package cryptography
