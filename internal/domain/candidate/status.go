package candidate

// Status represents a candidate's position in the recruitment pipeline.
// Unlike the workflow entities, candidate status is set directly through the
// edit form rather than dedicated transition buttons, so any valid status may
// follow any other.
type Status string

const (
	StatusAvailable  Status = "available"
	StatusProcessing Status = "processing"
	StatusHired      Status = "hired"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusProcessing, StatusHired:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
