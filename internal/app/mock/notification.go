package mock

import (
	"github.com/echoboard/echoboard/internal/app/store/projectstore"
	"github.com/echoboard/echoboard/internal/app/system/paging"
	"github.com/echoboard/echoboard/internal/domain/models"
	"github.com/google/uuid"
)

// addNotification appends a notification for the user. Notifications
// only exist in the store; the mock pushes nothing.
func (s *Server) addNotification(p *projectstore.Project, userID, description, relatedIdeaID, relatedCommentID string) {
	p.Notifications = append(p.Notifications, models.Notification{
		ProjectID:        p.Config.Config.ProjectID,
		NotificationID:   uuid.NewString(),
		UserID:           userID,
		RelatedIdeaID:    relatedIdeaID,
		RelatedCommentID: relatedCommentID,
		Created:          s.now(),
		Description:      description,
	})
}

// NotificationSearch pages through the caller's own notifications.
func (s *Server) NotificationSearch(projectID, cursor string) (models.NotificationSearchResult, error) {
	p := s.project(projectID)
	me, err := s.loggedInUser(projectID)
	if err != nil {
		return fail[models.NotificationSearchResult](s, err)
	}

	var mine []models.Notification
	for _, n := range p.Notifications {
		if n.UserID == me.UserID {
			mine = append(mine, n)
		}
	}
	page := paging.Cut(mine, paging.DefaultLimit, cursor)
	return respond(s, models.NotificationSearchResult{Results: page.Results, Cursor: page.Cursor})
}

// NotificationClear removes one of the caller's notifications by id.
// Clearing an unknown or foreign id is a no-op.
func (s *Server) NotificationClear(projectID, notificationID string) error {
	p := s.project(projectID)
	me, err := s.loggedInUser(projectID)
	if err != nil {
		return s.failVoid(err)
	}

	kept := p.Notifications[:0]
	for _, n := range p.Notifications {
		if n.UserID == me.UserID && n.NotificationID == notificationID {
			continue
		}
		kept = append(kept, n)
	}
	p.Notifications = kept
	s.waitLatency()
	return nil
}

// NotificationClearAll removes every notification of the caller.
func (s *Server) NotificationClearAll(projectID string) error {
	p := s.project(projectID)
	me, err := s.loggedInUser(projectID)
	if err != nil {
		return s.failVoid(err)
	}

	kept := p.Notifications[:0]
	for _, n := range p.Notifications {
		if n.UserID == me.UserID {
			continue
		}
		kept = append(kept, n)
	}
	p.Notifications = kept
	s.waitLatency()
	return nil
}
