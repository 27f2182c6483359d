package domain

import "time"

type InternshipStatus string

const (
	InternshipActive     InternshipStatus = "Active"
	InternshipCompleted  InternshipStatus = "Completed"
	InternshipOnLeave    InternshipStatus = "On Leave"
	InternshipTerminated InternshipStatus = "Terminated"
)

// Intern is the richest aggregate of the system: a single document
// carrying personal data, internship state and append-only activity logs.
type Intern struct {
	ID                string            `json:"id"`
	PersonalInfo      PersonalInfo      `json:"personalInfo"`
	InternshipDetails InternshipDetails `json:"internshipDetails"`
	Projects          []InternProject   `json:"projects"`
	DailyComments     []DailyComment    `json:"dailyComments"`
	MeetingNotes      []MeetingNote     `json:"meetingNotes"`
	Skills            Skills            `json:"skills"`
	Performance       Performance       `json:"performance"`
	Documents         []InternDocument  `json:"documents"`
	IsActive          bool              `json:"isActive"`
	CreatedByID       string            `json:"createdBy,omitempty"`
	UpdatedByID       string            `json:"updatedBy,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

type PersonalInfo struct {
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	ProfileImage string     `json:"profileImage,omitempty"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	Address      string     `json:"address,omitempty"`
}

type InternshipDetails struct {
	StartDate  time.Time        `json:"startDate"`
	EndDate    *time.Time       `json:"endDate,omitempty"`
	Duration   string           `json:"duration,omitempty"`
	Department string           `json:"department,omitempty"`
	Position   string           `json:"position,omitempty"`
	Mentor     *MentorRef       `json:"mentor,omitempty"`
	Status     InternshipStatus `json:"status"`
}

type MentorRef struct {
	UserID string `json:"userId"`
	Name   string `json:"name,omitempty"`
}

type InternProject struct {
	ProjectID    string       `json:"projectId,omitempty"`
	ProjectName  string       `json:"projectName,omitempty"`
	Role         string       `json:"role,omitempty"`
	StartDate    *time.Time   `json:"startDate,omitempty"`
	EndDate      *time.Time   `json:"endDate,omitempty"`
	Status       string       `json:"status,omitempty"`
	ProjectURL   string       `json:"projectUrl,omitempty"`
	PDFURL       string       `json:"pdfUrl,omitempty"`
	Description  string       `json:"description,omitempty"`
	Technologies []string     `json:"technologies,omitempty"`
	TeamMembers  []TeamMember `json:"teamMembers,omitempty"`
}

// DailyComment is append-only; AddedBy records the acting identity.
type DailyComment struct {
	Date            time.Time `json:"date"`
	Comment         string    `json:"comment"`
	TaskDescription string    `json:"taskDescription,omitempty"`
	HoursWorked     float64   `json:"hoursWorked,omitempty"`
	Status          string    `json:"status,omitempty"`
	AddedBy         ActorRef  `json:"addedBy"`
	CreatedAt       time.Time `json:"createdAt"`
}

// MeetingNote is append-only; AddedBy records the acting identity.
type MeetingNote struct {
	Date            time.Time  `json:"date"`
	Title           string     `json:"title,omitempty"`
	Agenda          string     `json:"agenda,omitempty"`
	Notes           string     `json:"notes"`
	Attendees       []string   `json:"attendees,omitempty"`
	ActionItems     []string   `json:"actionItems,omitempty"`
	NextMeetingDate *time.Time `json:"nextMeetingDate,omitempty"`
	AddedBy         ActorRef   `json:"addedBy"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type Skills struct {
	Technical []string `json:"technical,omitempty"`
	Soft      []string `json:"soft,omitempty"`
	Learning  []string `json:"learning,omitempty"`
}

type Performance struct {
	OverallRating  float64             `json:"overallRating,omitempty"`
	Punctuality    float64             `json:"punctuality,omitempty"`
	CodeQuality    float64             `json:"codeQuality,omitempty"`
	Communication  float64             `json:"communication,omitempty"`
	Teamwork       float64             `json:"teamwork,omitempty"`
	LastReviewDate *time.Time          `json:"lastReviewDate,omitempty"`
	Reviews        []PerformanceReview `json:"reviews,omitempty"`
}

type PerformanceReview struct {
	ReviewDate *time.Time `json:"reviewDate,omitempty"`
	Rating     float64    `json:"rating,omitempty"`
	Feedback   string     `json:"feedback,omitempty"`
	ReviewedBy *MentorRef `json:"reviewedBy,omitempty"`
}

type InternDocument struct {
	DocumentType string    `json:"documentType,omitempty"`
	DocumentURL  string    `json:"documentUrl"`
	UploadedAt   time.Time `json:"uploadedAt"`
	UploadedByID string    `json:"uploadedBy,omitempty"`
}
