package config

const EnvPrefix = "planetpizza"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names referenced outside envconfig tags (tests, error
// messages for the legacy discrete DB settings).
const (
	EnvAppEnv     = "PLANETPIZZA_APP_ENV"
	EnvPort       = "PLANETPIZZA_APP_PORT"
	EnvDBDSN      = "PLANETPIZZA_DB_DSN"
	EnvDBHost     = "PLANETPIZZA_DB_HOST"
	EnvDBUser     = "PLANETPIZZA_DB_USER"
	EnvDBName     = "PLANETPIZZA_DB_NAME"
	EnvRedisURL   = "PLANETPIZZA_REDIS_URL"
	EnvJWTSecret  = "PLANETPIZZA_JWT_SECRET"
	EnvJWTIssuer  = "PLANETPIZZA_JWT_ISSUER"
	EnvJWTExpMins = "PLANETPIZZA_JWT_EXPIRATION_MINUTES"

	EnvRefreshTokenTTLMinutes = "PLANETPIZZA_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
