// Package model provides data transfer objects for the team roster.
package model

import storeModel "github.com/festy23/training_grounds/internal/store/model"

// MembersResponse represents the team roster.
type MembersResponse struct {
	Members []storeModel.TeamMember `json:"members"`
	Total   int                     `json:"total"`
}
