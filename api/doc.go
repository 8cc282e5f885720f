// Package api is the HTTP client for the FarmConnect backend. It owns wire
// types, endpoint paths, and error mapping; workflow logic stays out.
//
// Requests pass through a transport chain that injects the bearer token and a
// request ID, and that evicts the persisted session when the backend answers
// 401. Rejections carry the backend's detail string verbatim in a
// [*RemoteError]; transport-level failures are wrapped with [ErrNetwork].
package api
