package material

import (
	"fmt"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

type Status string

const (
	StatusUpToDate    Status = "up-to-date"
	StatusNotUpToDate Status = "not-up-to-date"
)

// DefaultStatus is assigned to materials created without an explicit status.
const DefaultStatus = StatusNotUpToDate

func (Status) Schema(_ huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type: "string",
		Enum: []any{
			string(StatusUpToDate),
			string(StatusNotUpToDate),
		},
		Description: "Whether the attached file is considered current",
		Examples:    []any{StatusNotUpToDate},
	}
}

// Validate rejects anything outside the two known statuses.
func (s Status) Validate() error {
	switch s {
	case StatusUpToDate, StatusNotUpToDate:
		return nil
	}
	return fmt.Errorf("unknown status: %q", string(s))
}

func (s Status) String() string {
	return string(s)
}

// DisplayName returns the badge text, e.g. "not up to date".
func (s Status) DisplayName() string {
	return strings.ReplaceAll(string(s), "-", " ")
}
