// Package onboard implements the FarmConnect registration and login workflow:
// a multi-step registration wizard with client-side field validation, email
// code verification, and credential bootstrap against the remote FarmConnect
// REST backend.
//
// The package is the public surface. It exposes [Engine], [Registration],
// [Builder], [Config], and value types (ErrorMap, StepDescriptor,
// MetricsSnapshot). Remote calls live in the api sub-package; credential
// persistence lives behind the session.Store interface so the workflow can be
// tested without a real browser-style storage layer.
//
// # Architecture boundaries
//
//   - onboard owns workflow state and validation; it never talks HTTP
//     directly, only through [api.Client].
//   - Credential keys (authToken, user, tokenExpiry) are written only by the
//     session bootstrap path and cleared only by Logout and the API client's
//     unauthorized hook.
//   - A [Registration] value is single-user state. Its methods serialize
//     internally and overlapping duplicate submissions coalesce into one
//     backend call. The [Engine] itself is safe for concurrent use after
//     [Builder.Build].
//
// # What this package must NOT do
//
//   - Retry any remote call automatically; every retry is a caller action.
//   - Trust a locally computed session lifetime when the issued token carries
//     an exp claim.
//   - Renumber wizard steps when the role-details step is absent; displayed
//     step numbers are part of the product contract.
package onboard
