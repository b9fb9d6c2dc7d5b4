package config

const (
	EnvPrefix = "PERFUME"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"

	EnvDBDSN  = "PERFUME_DB_DSN"
	EnvDBHost = "PERFUME_DB_HOST"
	EnvDBUser = "PERFUME_DB_USER"
	EnvDBName = "PERFUME_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
