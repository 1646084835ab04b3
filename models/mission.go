package models

import "strings"

// Mission is a field operation as served by the mission-viewing API
type Mission struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Description      *string   `json:"description"`
	Status           string    `json:"status"`
	ChiefID          int       `json:"chief_id,omitempty"`
	ChiefDisplayName string    `json:"chief_display_name,omitempty"`
	CrewCount        int64     `json:"crew_count"`
	CreatedAt        Timestamp `json:"created_at"`
	UpdatedAt        Timestamp `json:"updated_at"`
}

// Brawler is a crew member attached to a mission
type Brawler struct {
	DisplayName         string `json:"display_name"`
	AvatarURL           string `json:"avatar_url"`
	MissionSuccessCount int64  `json:"mission_success_count"`
	MissionJoinedCount  int64  `json:"mission_joined_count"`
}

// Mission statuses known to the API contract.
const (
	StatusOpen    = "OPEN"
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

var styledStatuses = map[string]struct{}{
	strings.ToLower(StatusOpen):    {},
	strings.ToLower(StatusSuccess): {},
	strings.ToLower(StatusFailed):  {},
}

// StatusClass returns the lower-cased status when it has a card style,
// or "" for labels outside the known set.
func StatusClass(status string) string {
	class := strings.ToLower(status)
	if _, ok := styledStatuses[class]; ok {
		return class
	}
	return ""
}
