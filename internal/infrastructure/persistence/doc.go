// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store accounts, mail, tasks, budgets,
// purchases and game saves. Repositories validate domain entities before
// writing and map missing rows and unique violations to domain errors.
package persistence
