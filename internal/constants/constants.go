package constants

const (
	// ContextKeyUserID holds the authenticated user's ID in the gin context.
	ContextKeyUserID = "user_id"
	// ContextKeyUserEmail holds the authenticated user's email in the gin context.
	ContextKeyUserEmail = "user_email"
	// ContextKeyRequestID holds the request correlation ID.
	ContextKeyRequestID = "request_id"

	HeaderRequestID = "X-Request-ID"

	// BcryptCost is the work factor used for password hashes.
	BcryptCost = 10
	// MinPasswordLength applies to new passwords.
	MinPasswordLength = 8
	// MinSecretLength applies to JWT signing secrets.
	MinSecretLength = 16

	// TokenIssuer is written to and required in the iss claim.
	TokenIssuer = "taskboard-api"

	AccessTokenKeyPrefix  = "access_token:"
	RefreshTokenKeyPrefix = "refresh_token:"
)
