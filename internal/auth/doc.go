// Package auth implements the identity core: password hashing, session
// tokens, and authorization checks.
//
// Passwords are bcrypt-hashed with a tunable cost. Sessions are stateless
// signed JWTs; validity is purely a function of signature and expiry, with no
// server-side session table or revocation list. Authorization is exact role
// match plus resource-owner equality - no hierarchy.
package auth
