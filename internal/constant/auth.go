package constant

const (
	// SessionTokenHeader carries the staff session token issued by /auth/login.
	SessionTokenHeader = "X-Dispatchd-Session"

	// SessionKeyPrefix namespaces session tokens in redis.
	SessionKeyPrefix = "session"

	// ContextKeyRequestID is the fiber.Ctx#Locals key for the request id.
	ContextKeyRequestID = "requestID"

	// AdminAuthorizationRealm is the prefix of the Authorization header value
	// expected on admin endpoints.
	AdminAuthorizationRealm = "Bearer"
)
