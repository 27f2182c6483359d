package domain

import "time"

type ResourceCategory string

const (
	CategoryTutorial      ResourceCategory = "Tutorial"
	CategoryArticle       ResourceCategory = "Article"
	CategoryVideo         ResourceCategory = "Video"
	CategoryCourse        ResourceCategory = "Course"
	CategoryDocumentation ResourceCategory = "Documentation"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// LearningResource is a shared learning link curated by users.
type LearningResource struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Category    ResourceCategory `json:"category"`
	URL         string           `json:"url"`
	Tags        []string         `json:"tags"`
	Difficulty  Difficulty       `json:"difficulty"`
	CreatedBy   OwnerRef         `json:"createdBy"`
	UpdatedBy   *OwnerRef        `json:"updatedBy,omitempty"`
	IsActive    bool             `json:"isActive"`
	Views       int64            `json:"views"`
	Likes       int64            `json:"likes"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
