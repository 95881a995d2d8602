package projectstore

import (
	"github.com/echoboard/echoboard/internal/app/system/slug"
	"github.com/echoboard/echoboard/internal/domain/models"
)

// Default workflow status ids for generated project configs.
const (
	StatusIdeation    = "ideation"
	StatusPlanned     = "planned"
	StatusInProgress  = "in-progress"
	StatusCompleted   = "completed"
	StatusClosed      = "closed"
)

// DefaultCategoryID is the single category a generated config starts
// with.
const DefaultCategoryID = "feedback"

// DefaultConfig builds the config a lazily created project starts with:
// one feedback category with a five-status workflow, funding and voting
// enabled, and unrestricted expressions. Name and slug derive from the
// project id.
func DefaultConfig(projectID string) models.Config {
	return models.Config{
		ProjectID: projectID,
		Name:      projectID,
		Slug:      slug.Make(projectID),
		Content: models.Content{
			Categories: []models.Category{
				{
					CategoryID: DefaultCategoryID,
					Name:       "Feedback",
					Workflow: models.Workflow{
						EntryStatus: StatusIdeation,
						Statuses: []models.Status{
							{StatusID: StatusIdeation, Name: "Ideation"},
							{StatusID: StatusPlanned, Name: "Planned"},
							{StatusID: StatusInProgress, Name: "In progress"},
							{StatusID: StatusCompleted, Name: "Completed", DisableFunding: true},
							{StatusID: StatusClosed, Name: "Closed", DisableFunding: true},
						},
					},
					Support: models.Support{
						Fund:    true,
						Vote:    true,
						Express: &models.Expressing{},
					},
				},
			},
		},
	}
}
