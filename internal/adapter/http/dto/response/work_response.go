package response

import (
	"time"

	"service_engine_x/internal/domain/entities"
)

type EngagementResponse struct {
	ID          string     `json:"id"`
	ClientID    string     `json:"client_id"`
	Name        string     `json:"name"`
	Status      int        `json:"status"`
	StatusLabel string     `json:"status_label"`
	ProposalID  *string    `json:"proposal_id,omitempty"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromEngagement(e entities.Engagement) EngagementResponse {
	return EngagementResponse{
		ID:          e.ID,
		ClientID:    e.ClientID,
		Name:        e.Name,
		Status:      int(e.Status),
		StatusLabel: entities.EngagementStatusLabel(e.Status),
		ProposalID:  e.ProposalID,
		ClosedAt:    e.ClosedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromEngagements(list []entities.Engagement) []EngagementResponse {
	out := make([]EngagementResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEngagement(e))
	}
	return out
}

type ProjectResponse struct {
	ID           string     `json:"id"`
	EngagementID string     `json:"engagement_id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description,omitempty"`
	Status       int        `json:"status"`
	StatusLabel  string     `json:"status_label"`
	Phase        int        `json:"phase"`
	PhaseLabel   string     `json:"phase_label"`
	ServiceID    *string    `json:"service_id,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:           p.ID,
		EngagementID: p.EngagementID,
		Name:         p.Name,
		Description:  p.Description,
		Status:       int(p.Status),
		StatusLabel:  entities.ProjectStatusLabel(p.Status),
		Phase:        int(p.Phase),
		PhaseLabel:   entities.ProjectPhaseLabel(p.Phase),
		ServiceID:    p.ServiceID,
		CompletedAt:  p.CompletedAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromProjects(list []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProject(p))
	}
	return out
}
