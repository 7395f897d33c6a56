// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/lifecycle). This root
// package holds sentinel errors, validation types, and the caller identity
// used for role-scoped visibility.
package domain
