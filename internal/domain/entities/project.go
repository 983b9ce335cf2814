package entities

import "time"

type ProjectStatus int

const (
	ProjectStatusActive    ProjectStatus = 1
	ProjectStatusPaused    ProjectStatus = 2
	ProjectStatusCompleted ProjectStatus = 3
	ProjectStatusCancelled ProjectStatus = 4
)

var ProjectStatusMap = map[ProjectStatus]string{
	ProjectStatusActive:    "Active",
	ProjectStatusPaused:    "Paused",
	ProjectStatusCompleted: "Completed",
	ProjectStatusCancelled: "Cancelled",
}

func ProjectStatusLabel(s ProjectStatus) string {
	if label, ok := ProjectStatusMap[s]; ok {
		return label
	}
	return "Unknown"
}

// ProjectPhase is the ordered delivery progression 1..6.
type ProjectPhase int

const (
	ProjectPhaseKickoff    ProjectPhase = 1
	ProjectPhaseSetup      ProjectPhase = 2
	ProjectPhaseBuild      ProjectPhase = 3
	ProjectPhaseTesting    ProjectPhase = 4
	ProjectPhaseDeployment ProjectPhase = 5
	ProjectPhaseHandoff    ProjectPhase = 6
)

var ProjectPhaseMap = map[ProjectPhase]string{
	ProjectPhaseKickoff:    "Kickoff",
	ProjectPhaseSetup:      "Setup",
	ProjectPhaseBuild:      "Build",
	ProjectPhaseTesting:    "Testing",
	ProjectPhaseDeployment: "Deployment",
	ProjectPhaseHandoff:    "Handoff",
}

// ProjectPhaseTransitions only moves forward one step at a time; Testing may
// regress to Build. Handoff is terminal.
var ProjectPhaseTransitions = map[ProjectPhase][]ProjectPhase{
	ProjectPhaseKickoff:    {ProjectPhaseSetup},
	ProjectPhaseSetup:      {ProjectPhaseBuild},
	ProjectPhaseBuild:      {ProjectPhaseTesting},
	ProjectPhaseTesting:    {ProjectPhaseDeployment, ProjectPhaseBuild},
	ProjectPhaseDeployment: {ProjectPhaseHandoff},
	ProjectPhaseHandoff:    {},
}

func ProjectPhaseLabel(p ProjectPhase) string {
	if label, ok := ProjectPhaseMap[p]; ok {
		return label
	}
	return "Unknown"
}

// CanTransitionProjectPhase is the pure transition check for project phases.
func CanTransitionProjectPhase(current, next ProjectPhase) bool {
	return CanTransition(ProjectPhaseTransitions, current, next)
}

// Project is one deliverable unit of work under an engagement, created from a
// proposal line item or directly via the API.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (org_id-index): org_id
type Project struct {
	ID           string        `json:"id"`
	OrgID        string        `json:"org_id"`
	EngagementID string        `json:"engagement_id"`
	Name         string        `json:"name"`
	Description  *string       `json:"description,omitempty"`
	Status       ProjectStatus `json:"status"`
	Phase        ProjectPhase  `json:"phase"`
	ServiceID    *string       `json:"service_id,omitempty"`
	CompletedAt  *time.Time    `json:"completed_at,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
