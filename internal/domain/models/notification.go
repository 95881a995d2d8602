package models

import "time"

// Notification is a per-user message about activity on related content.
type Notification struct {
	ProjectID        string    `json:"project_id"`
	NotificationID   string    `json:"notification_id"`
	UserID           string    `json:"user_id"`
	RelatedIdeaID    string    `json:"related_idea_id,omitempty"`
	RelatedCommentID string    `json:"related_comment_id,omitempty"`
	Created          time.Time `json:"created"`
	Description      string    `json:"description"`
}

// NotificationSearchResult is one page of the caller's notifications.
type NotificationSearchResult struct {
	Results []Notification `json:"results"`
	Cursor  string         `json:"cursor,omitempty"`
}
