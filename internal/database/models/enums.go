package models

// ProjectStatus tracks how far along a team's build is
type ProjectStatus string

const (
	ProjectStatusPlanning ProjectStatus = "Planning"
	ProjectStatusDesign   ProjectStatus = "Design"
	ProjectStatusCoding   ProjectStatus = "Coding"
	ProjectStatusTesting  ProjectStatus = "Testing"
	ProjectStatusDeployed ProjectStatus = "Deployed"
)

// ScoringStatus tracks whether judges have finished with a team
type ScoringStatus string

const (
	ScoringStatusInProgress ScoringStatus = "In Progress"
	ScoringStatusComplete   ScoringStatus = "Complete"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusDesign, ProjectStatusCoding, ProjectStatusTesting, ProjectStatusDeployed:
		return true
	}
	return false
}

// IsValid checks if the ScoringStatus is valid
func (s ScoringStatus) IsValid() bool {
	switch s {
	case ScoringStatusInProgress, ScoringStatusComplete:
		return true
	}
	return false
}
