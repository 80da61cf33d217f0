// Package crypto provides the symmetric authentication primitives for HailNet.
//
// Design goals:
//   - Single shared 32-byte group key, no handshake and no per-peer state
//   - Truncated HMAC-SHA256 tags (16 bytes on the wire)
//   - Constant-time verification; verify is a total predicate and never
//     reports why an input was rejected
//   - HKDF-SHA256 for deriving group keys from out-of-band secrets
package crypto
