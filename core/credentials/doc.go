// Package credentials stores and validates the bot credential triple.
//
// The triple (token, owner id, optional proxy) lives in the OS keyring under
// a fixed service/account pair, one credential per machine user. Validation
// is split in two explicit steps:
//
//   - Parse: pure structural checks (token present, owner id numeric),
//     producing a Candidate. No I/O.
//   - Authenticate: resolves the Candidate against the live API (getMe) and
//     returns a Credential carrying the bot identity.
//
// Keeping construction free of network calls lets commands fail fast on
// malformed input and lets tests cover parsing without a transport.
package credentials
