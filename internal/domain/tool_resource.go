package domain

import "time"

type ToolCategory string

const (
	ToolCategoryDevOps   ToolCategory = "DevOps"
	ToolCategoryFrontend ToolCategory = "Frontend"
	ToolCategoryBackend  ToolCategory = "Backend"
	ToolCategoryDatabase ToolCategory = "Database"
	ToolCategoryDesign   ToolCategory = "Design"
	ToolCategoryTesting  ToolCategory = "Testing"
)

type Pricing string

const (
	PricingFree       Pricing = "Free"
	PricingFreemium   Pricing = "Freemium"
	PricingPaid       Pricing = "Paid"
	PricingOpenSource Pricing = "Open Source"
)

// ToolResource is a developer tool recommendation shared by users.
type ToolResource struct {
	ID               string       `json:"id"`
	ToolName         string       `json:"toolName"`
	Description      string       `json:"description,omitempty"`
	Category         ToolCategory `json:"category"`
	OfficialURL      string       `json:"officialUrl"`
	DocumentationURL string       `json:"documentationUrl,omitempty"`
	LogoURL          string       `json:"logoUrl,omitempty"`
	Tags             []string     `json:"tags"`
	TechStack        []string     `json:"techStack"`
	Pricing          Pricing      `json:"pricing"`
	Features         []string     `json:"features"`
	UseCases         []string     `json:"useCases"`
	CreatedBy        OwnerRef     `json:"createdBy"`
	UpdatedBy        *OwnerRef    `json:"updatedBy,omitempty"`
	IsActive         bool         `json:"isActive"`
	Rating           int          `json:"rating,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}
