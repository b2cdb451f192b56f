package ports

import "context"

// CompanyRecord is the registry's view of a company, as translated by the
// ACL adapter.
type CompanyRecord struct {
	RegistryNo string
	Name       string
	Active     bool
}

// RegistryClient defines the client port for the external company registry
// used to verify corporate customers. Implemented by the ACL adapter; called
// by the application layer.
type RegistryClient interface {
	// LookupCompany returns the registry record for the given registration
	// number. Returns domain.ErrNotFound if the registry has no such
	// company and domain.ErrUnavailable if the registry cannot be reached.
	LookupCompany(ctx context.Context, registryNo string) (*CompanyRecord, error)
}
