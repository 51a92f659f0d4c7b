// Package ports defines the capability interfaces the guest SDK is built on.
// Capability packages (log, db, kv, ai, mutex, jobs) depend only on these
// interfaces; the WASM import adapter and test fakes implement them.
package ports
