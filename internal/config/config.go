package config

// Header constants.
const (
	HEADER_KEY_X_ACTOR = "X-Actor"
)

const (
	ENV_KEY_APP_ENV    = "APP_ENV"
	ENV_KEY_LOG_LEVEL  = "LOG_LEVEL"
	ENV_KEY_JWT_SECRET = "JWT_SECRET"
)

type ContextKey uint

const (
	_ ContextKey = iota
	CTX_KEY_ACTOR_ID
	CTX_KEY_ACTOR_NAME
)

const PRESIGN_URL_EXPIRE_MINUTES = 15
