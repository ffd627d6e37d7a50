package common

const (
	// IdentityHeaderName is the HTTP header carrying the authenticated
	// username on every call made after the MFA step. The server trusts it
	// as-is; there is no bearer token or cookie session.
	IdentityHeaderName = "X-User-ID"

	// RequestIDHeaderName carries a fresh correlation id per request so
	// client logs can be matched against server logs.
	RequestIDHeaderName = "X-Request-ID"
)
