package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Google        GoogleConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PERFUME_APP_ENV" required:"true"`
	Port         string `envconfig:"PERFUME_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"PERFUME_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PERFUME_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"PERFUME_DB_DSN"`
	Driver string `envconfig:"PERFUME_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"PERFUME_DB_HOST"`
	LegacyPort     int    `envconfig:"PERFUME_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"PERFUME_DB_USER"`
	LegacyPassword string `envconfig:"PERFUME_DB_PASSWORD"`
	LegacyName     string `envconfig:"PERFUME_DB_NAME"`
	LegacySSLMode  string `envconfig:"PERFUME_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PERFUME_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PERFUME_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PERFUME_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PERFUME_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DBDriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"PERFUME_REDIS_URL"`
	Address      string        `envconfig:"PERFUME_REDIS_ADDR"`
	Password     string        `envconfig:"PERFUME_REDIS_PASSWORD"`
	DB           int           `envconfig:"PERFUME_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PERFUME_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PERFUME_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PERFUME_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PERFUME_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PERFUME_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"PERFUME_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"PERFUME_JWT_ISSUER" default:"perfume-api"`
	ExpirationMinutes int    `envconfig:"PERFUME_JWT_EXPIRATION_MINUTES" default:"60"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"PERFUME_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"PERFUME_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"PERFUME_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"PERFUME_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"PERFUME_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"PERFUME_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"PERFUME_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"PERFUME_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"PERFUME_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"PERFUME_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"PERFUME_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type GoogleConfig struct {
	ClientID string `envconfig:"PERFUME_GOOGLE_CLIENT_ID"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"PERFUME_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" || db.IsSQLite() {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
