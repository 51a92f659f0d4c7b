// Package host runs compiled gojinn functions locally.
//
// It abstracts the underlying WASM engine (wazero), wires WASI stdio to the
// request and response envelopes, and registers the "gojinn" host imports
// backed by caller-supplied hostfuncs.Backends. It is meant for development
// and tests: the shipped backends are in-memory fixtures.
package host
