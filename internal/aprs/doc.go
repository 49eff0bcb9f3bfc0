// Package aprs implements the APRS-IS protocol engine: connection lifecycle
// and logon verification, non-blocking line-framed packet ingestion with
// stalled-socket recovery, inbound packet dispatch, and the time-triggered
// bulletin scheduler.
//
// The engine runs on a single cooperative loop. Nothing in this package
// blocks; every wait condition is a deadline stored in state and compared on
// the next poll. An external task scheduler drives the engine through two
// idempotent entry points, [Engine.PollNetwork] and [Engine.PollBulletins],
// in that order, at a cadence of at least once per minute.
package aprs
