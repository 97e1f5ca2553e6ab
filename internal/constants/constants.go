package constants

// ContextKeyUserID is the key under which the authenticated user ID is
// stored in both the session and the gin context.
const ContextKeyUserID = "user_id"

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 8

// SessionCookieName is the cookie carrying the session ID.
const SessionCookieName = "ppam_session"

// DateLayout is the wire format for all date-only values (weekStart,
// selectedDate, fromDate, incidencia ranges).
const DateLayout = "2006-01-02"
