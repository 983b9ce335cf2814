package request

import "service_engine_x/internal/usecase"

// Engagements and the projects under them.

type CreateEngagementRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

func (r CreateEngagementRequest) ToInput() usecase.CreateEngagementInput {
	return usecase.CreateEngagementInput{ClientID: r.ClientID, Name: r.Name}
}

type UpdateEngagementRequest struct {
	Name   *string `json:"name"`
	Status *int    `json:"status"`
}

func (r UpdateEngagementRequest) ToInput() usecase.UpdateEngagementInput {
	return usecase.UpdateEngagementInput{Name: r.Name, Status: r.Status}
}

type CreateProjectRequest struct {
	EngagementID string  `json:"engagement_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description"`
	ServiceID    *string `json:"service_id"`
}

func (r CreateProjectRequest) ToInput() usecase.CreateProjectInput {
	return usecase.CreateProjectInput{
		EngagementID: r.EngagementID,
		Name:         r.Name,
		Description:  r.Description,
		ServiceID:    r.ServiceID,
	}
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *int    `json:"status"`
	Phase       *int    `json:"phase"`
}

func (r UpdateProjectRequest) ToInput() usecase.UpdateProjectInput {
	return usecase.UpdateProjectInput{
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		Phase:       r.Phase,
	}
}
