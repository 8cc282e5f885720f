// Package session persists the authenticated credential behind a small
// key-value interface. The three well-known keys mirror the browser storage
// slots the FarmConnect front end uses, so a Go host and a web host stay
// interchangeable against the same backend.
//
// Two implementations ship: MemoryStore for embedded and test use, and
// RedisStore for hosts that need the credential to outlive the process.
package session
