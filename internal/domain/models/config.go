package models

// Config is a project's content configuration: categories, workflows,
// tagging, and expression support. It is versioned as a whole; partial
// config edits are not supported.
type Config struct {
	ProjectID string     `json:"project_id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	LogoURL   string     `json:"logo_url,omitempty"`
	Content   Content    `json:"content"`
}

// VersionedConfig pairs a Config with its optimistic-concurrency token.
// The version is replaced with a fresh random token on every successful
// ConfigSet; callers must echo the version they last saw.
type VersionedConfig struct {
	Config  Config `json:"config"`
	Version string `json:"version"`
}

// Content holds the category definitions for a project.
type Content struct {
	Categories []Category `json:"categories"`
}

// Category groups ideas and defines their workflow and support options.
type Category struct {
	CategoryID string   `json:"category_id"`
	Name       string   `json:"name"`
	Workflow   Workflow `json:"workflow"`
	Tags       []Tag    `json:"tags,omitempty"`
	Support    Support  `json:"support"`
}

// Workflow is the set of statuses an idea in this category can hold.
// EntryStatus is assigned to new ideas that do not specify a status.
type Workflow struct {
	EntryStatus string   `json:"entry_status"`
	Statuses    []Status `json:"statuses"`
}

// Status is a single workflow state.
type Status struct {
	StatusID       string `json:"status_id"`
	Name           string `json:"name"`
	DisableFunding bool   `json:"disable_funding,omitempty"`
}

// Tag is a label users can attach to ideas within a category.
type Tag struct {
	TagID string `json:"tag_id"`
	Name  string `json:"name"`
}

// Support configures which forms of prioritization a category allows.
type Support struct {
	Fund    bool        `json:"fund,omitempty"`
	Vote    bool        `json:"vote,omitempty"`
	Express *Expressing `json:"express,omitempty"`
}

// Expressing configures emoji-style reactions. When LimitEmojiSet is
// empty, any expression string is accepted with weight 1; otherwise only
// the listed emojis count, each at its configured weight.
type Expressing struct {
	LimitEmojiSet []EmojiWeight `json:"limit_emoji_set,omitempty"`
}

// EmojiWeight maps a display string to its score contribution.
type EmojiWeight struct {
	Display string  `json:"display"`
	Weight  float64 `json:"weight"`
}

// WeightOf returns the score weight of an expression under this
// configuration: the configured weight when the emoji set is limited
// (0 for unknown expressions), otherwise 1.
func (e *Expressing) WeightOf(expression string) float64 {
	if e == nil || len(e.LimitEmojiSet) == 0 {
		return 1
	}
	for _, ew := range e.LimitEmojiSet {
		if ew.Display == expression {
			return ew.Weight
		}
	}
	return 0
}

// FindCategory returns the category with the given id, or nil.
func (c *Config) FindCategory(categoryID string) *Category {
	for i := range c.Content.Categories {
		if c.Content.Categories[i].CategoryID == categoryID {
			return &c.Content.Categories[i]
		}
	}
	return nil
}

// FindStatus returns the workflow status with the given id, or nil.
func (cat *Category) FindStatus(statusID string) *Status {
	for i := range cat.Workflow.Statuses {
		if cat.Workflow.Statuses[i].StatusID == statusID {
			return &cat.Workflow.Statuses[i]
		}
	}
	return nil
}
