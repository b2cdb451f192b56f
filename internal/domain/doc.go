// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/candidate, domain/agent,
// domain/billing, ...). This root package holds sentinel errors, validation
// types, shared value types (Currency), and domain-level interfaces (Action)
// that are shared across all entities.
package domain
