// Package domain contains the core domain entities and value objects for aprsbln.
//
// This package represents the innermost layer of the application. It has no
// dependencies on infrastructure concerns (sockets, file system, logging) and
// contains only the protocol's business rules.
//
// # Entities
//
//   - [ConnState]: the four-state APRS-IS connection lifecycle
//   - [Bulletin]: a broadcast message with a single-character ID, payload capped at 67 bytes
//   - [DailyState]: the per-day sent flags that guarantee at-most-once delivery
//   - [ServerEndpoint], [Credentials]: immutable station configuration
//
// Domain entities are testable without mocks or external systems.
package domain
