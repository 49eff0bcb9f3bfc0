// Package ports defines the interfaces (ports) that connect the protocol
// engine to infrastructure adapters.
//
// Ports are the boundaries between the application core and the outside
// world. They define what the engine needs from external systems without
// specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [Transport]: the single TCP stream to the APRS-IS server
//   - [Clock]: wall-clock time for triggers and poll deadlines
//   - [ContentSource]: bulletin text lookup
//   - [StateRepository]: persistence of the daily sent flags
//
// The engine (internal/aprs) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (net.Conn, file system, system clock).
//
// This separation enables:
//   - Testing the engine with fake transports and clocks
//   - Swapping infrastructure without changing protocol logic
//   - Clear boundaries and dependency direction
package ports
