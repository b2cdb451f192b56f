package registry

import (
	"strings"

	"github.com/glowtours/backoffice/internal/ports"
)

// statusActive is the only registry status that counts as a going concern.
// Everything else (dissolved, struck-off, suspended) translates to inactive.
const statusActive = "active"

// ToCompanyRecord converts a registry CompanyDTO to the port's company
// record.
func ToCompanyRecord(dto *CompanyDTO) ports.CompanyRecord {
	return ports.CompanyRecord{
		RegistryNo: dto.RegistrationNo,
		Name:       dto.CompanyName,
		Active:     strings.EqualFold(dto.Status, statusActive),
	}
}
