package handlers

import "darshanam/services/session"

// HandlerBundle collects the wired handlers for route registration.
type HandlerBundle struct {
	Sessions session.SessionService

	Auth         *AuthHandler
	Darshan      *DarshanHandler
	Profile      *ProfileHandler
	Notification *NotificationHandler
}
