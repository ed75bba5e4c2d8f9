// Package connector adapts external systems to domain interfaces: the RabbitMQ event
// publisher, the Omise and in-house payment gateways and the Redis session store.
package connector
