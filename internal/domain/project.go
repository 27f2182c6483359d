package domain

import "time"

type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "Planning"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectCompleted  ProjectStatus = "Completed"
	ProjectOnHold     ProjectStatus = "On Hold"
)

// Project is a team project interns and users can be assigned to.
type Project struct {
	ID               string        `json:"id"`
	ProjectName      string        `json:"projectName"`
	Description      string        `json:"description,omitempty"`
	Status           ProjectStatus `json:"status"`
	StartDate        *time.Time    `json:"startDate,omitempty"`
	EndDate          *time.Time    `json:"endDate,omitempty"`
	ProjectURL       string        `json:"projectUrl,omitempty"`
	RepositoryURL    string        `json:"repositoryUrl,omitempty"`
	DocumentationURL string        `json:"documentationUrl,omitempty"`
	PDFDocuments     []PDFDocument `json:"pdfDocuments"`
	Technologies     []string      `json:"technologies"`
	TeamMembers      []TeamMember  `json:"teamMembers"`
	Manager          *MentorRef    `json:"manager,omitempty"`
	CreatedByID      string        `json:"createdBy,omitempty"`
	UpdatedByID      string        `json:"updatedBy,omitempty"`
	IsActive         bool          `json:"isActive"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

type PDFDocument struct {
	Title        string    `json:"title,omitempty"`
	URL          string    `json:"url"`
	UploadedAt   time.Time `json:"uploadedAt"`
	UploadedByID string    `json:"uploadedBy,omitempty"`
}

// TeamMember may reference either a User or an Intern.
type TeamMember struct {
	MemberID   string     `json:"memberId"`
	MemberType string     `json:"memberType,omitempty"`
	Name       string     `json:"name,omitempty"`
	Role       string     `json:"role,omitempty"`
	JoinedAt   *time.Time `json:"joinedAt,omitempty"`
}
