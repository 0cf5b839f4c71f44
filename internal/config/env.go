package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	SessionStoreCookie = "cookie"
	SessionStoreMySQL  = "mysql"
)

type Env struct {
	Server   ServerConfig   `yaml:"server"`
	API      APIConfig      `yaml:"api"`
	Session  SessionConfig  `yaml:"session"`
	Database DatabaseConfig `yaml:"database"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
	Paging   PagingConfig   `yaml:"paging"`
}

type ServerConfig struct {
	AppAddr         string        `yaml:"addr"             env:"APP_ADDR"                env-default:":8080"`
	GinMode         string        `yaml:"gin_mode"         env:"GIN_MODE"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"20s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"20s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// APIConfig points the console at the Tripcater backend.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"TRIPCATER_API_URL"     env-default:"https://admin-demo.tripcater.com/api"`
	Timeout time.Duration `yaml:"timeout"  env:"TRIPCATER_API_TIMEOUT" env-default:"15s"`
}

type SessionConfig struct {
	Store      string        `yaml:"store"       env:"SESSION_STORE"       env-default:"cookie"`
	Secret     string        `yaml:"secret"      env:"SESSION_SECRET"`
	CookieName string        `yaml:"cookie_name" env:"SESSION_COOKIE_NAME" env-default:"tc_admin_session"`
	TTL        time.Duration `yaml:"ttl"         env:"SESSION_TTL"         env-default:"12h"`
	Secure     bool          `yaml:"secure"      env:"SESSION_SECURE"      env-default:"false"`
}

// DatabaseConfig is only used by the mysql session store.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxOpenConns    int           `yaml:"max_open_conns"     env:"DATABASE_MAX_OPEN_CONNS"     env-default:"25"`
	MaxIdleConns    int           `yaml:"max_idle_conns"     env:"DATABASE_MAX_IDLE_CONNS"     env-default:"25"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"  env:"DATABASE_CONN_MAX_LIFETIME"  env-default:"10m"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" env:"DATABASE_CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:3000,http://127.0.0.1:3000"`
}

// Origins splits the comma separated origin list.
func (c CORSConfig) Origins() []string {
	out := []string{}
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

type PagingConfig struct {
	DefaultSize int `yaml:"default_size" env:"PAGE_SIZE_DEFAULT" env-default:"10"`
	MaxSize     int `yaml:"max_size"     env:"PAGE_SIZE_MAX"     env-default:"100"`
}

// LoadEnv reads configuration from CONFIG_PATH (or ./config.yaml when it
// exists) and the environment. Environment values win over the file.
func LoadEnv() (Env, error) {
	var env Env

	path := strings.TrimSpace(os.Getenv("CONFIG_PATH"))
	explicit := path != ""
	if !explicit {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &env); err != nil {
			return env, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return env, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&env); err != nil {
		return env, fmt.Errorf("config: read env: %w", err)
	}

	if err := env.Validate(); err != nil {
		return env, fmt.Errorf("config: validate: %w", err)
	}
	return env, nil
}

func (e Env) Validate() error {
	var errs []error

	if strings.TrimSpace(e.API.BaseURL) == "" {
		errs = append(errs, errors.New("api.base_url is required"))
	}
	if len(e.Session.Secret) < 32 {
		errs = append(errs, errors.New("session.secret must be at least 32 characters"))
	}
	switch e.Session.Store {
	case SessionStoreCookie:
	case SessionStoreMySQL:
		if strings.TrimSpace(e.Database.DSN) == "" {
			errs = append(errs, errors.New("database.dsn is required for the mysql session store"))
		}
	default:
		errs = append(errs, fmt.Errorf("session.store %q is not supported", e.Session.Store))
	}
	if e.Session.TTL <= 0 {
		errs = append(errs, errors.New("session.ttl must be positive"))
	}
	if e.Paging.MaxSize < 1 {
		errs = append(errs, errors.New("paging.max_size must be at least 1"))
	}
	if e.Paging.DefaultSize < 1 || e.Paging.DefaultSize > e.Paging.MaxSize {
		errs = append(errs, fmt.Errorf("paging.default_size must be between 1 and %d", e.Paging.MaxSize))
	}

	return errors.Join(errs...)
}
