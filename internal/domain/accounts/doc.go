// Package accounts defines clients, employees, principals and the contracts for
// registering, authenticating and managing their credentials.
package accounts
