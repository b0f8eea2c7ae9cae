package comment

import (
	"fmt"
	"strings"
)

// Status is the visibility state of a submitted comment. The set is closed;
// legacy spellings from older deployments are mapped to the canonical values
// by NormalizeStatus instead of ad hoc string comparison in handlers.
type Status string

const (
	StatusPending Status = "pending"
	StatusVisible Status = "visible"
	StatusHidden  Status = "hidden"
)

var statusAliases = map[string]Status{
	"approved": StatusVisible,
	"rejected": StatusHidden,
	"deleted":  StatusHidden,
}

// NormalizeStatus maps any known spelling, canonical or legacy, to the
// canonical status.
func NormalizeStatus(value string) (Status, error) {
	cleaned := strings.ToLower(strings.TrimSpace(value))
	switch Status(cleaned) {
	case StatusPending, StatusVisible, StatusHidden:
		return Status(cleaned), nil
	}
	if canonical, ok := statusAliases[cleaned]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("unknown comment status %q", value)
}

// SpellingsOf returns every stored spelling that normalizes to the given
// canonical status. Read paths filter with this so rows written by older
// deployments stay reachable.
func SpellingsOf(status Status) []string {
	spellings := []string{string(status)}
	for alias, canonical := range statusAliases {
		if canonical == status {
			spellings = append(spellings, alias)
		}
	}
	return spellings
}

func (s Status) String() string {
	return string(s)
}
