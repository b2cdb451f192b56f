// Package registry implements the anti-corruption layer translators for the
// national company registry API.
package registry

// CompanyDTO matches the registry's company schema.
type CompanyDTO struct {
	RegistrationNo string `json:"registration_no"`
	CompanyName    string `json:"company_name"`
	Status         string `json:"status"`
	RegisteredAt   string `json:"registered_at"`
}
