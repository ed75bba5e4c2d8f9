// Package game implements the economy of the Yates idle mining game.
//
// All rules operate on a State value with the current time and, where chance is
// involved, a random source passed in by the caller, so the same inputs always
// produce the same outcome. Persistence and concurrency live in the app layer;
// the only concurrent type here is Market, which is safe for use by multiple goroutines.
package game
