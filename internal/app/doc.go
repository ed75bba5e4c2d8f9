// Package app implements the application services of the domain packages. Services
// orchestrate repositories, credential primitives, payment gateways and the event
// publisher, and open a tracing span per use case.
package app

import "time"

// clock returns the current time in UTC. Services keep a func field so tests can pin time.
func clock() time.Time {
	return time.Now().UTC()
}
