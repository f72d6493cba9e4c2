package models

type UserType string
type Experience string
type JobStatus string
type ProjectStatus string

const (
	UserTypeFreelancer UserType = "FREELANCER"
	UserTypeClient     UserType = "CLIENT"

	ExperienceBeginner     Experience = "BEGINNER"
	ExperienceIntermediate Experience = "INTERMEDIATE"
	ExperienceAdvanced     Experience = "ADVANCED"

	JobStatusOpen       JobStatus = "OPEN"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusCancelled  JobStatus = "CANCELLED"

	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusCompleted  ProjectStatus = "COMPLETED"
	ProjectStatusCancelled  ProjectStatus = "CANCELLED"
)

func (e Experience) Valid() bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}
