// Package constants defines shared context keys used across middleware and handlers.
package constants

const (
	ContextKeyUserEmail = "user_email"
	ContextKeyUserRole  = "user_role"
	ContextKeySessionID = "session_id"
)
