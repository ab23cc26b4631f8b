// Package constants defines shared constant values used across the application.
package constants

const (
	// DefaultPage is the default page number for paginated listings.
	DefaultPage = 1
	// DefaultPageSize is the default number of items per listing page.
	DefaultPageSize = 10
	// MaxPageSize caps the page size a client may request.
	MaxPageSize = 100
)

const (
	// ContextKeyUserID is the gin context key holding the authenticated user ID.
	ContextKeyUserID = "user_id"
)

const (
	// AccessTokenCookie is the cookie name carrying the access token.
	AccessTokenCookie = "access_token"
)
