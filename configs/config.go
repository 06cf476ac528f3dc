package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type DB struct {
	Driver             string `default:"sqlite"`
	Path               string `default:"brewery-tracker.db"`
	Host               string
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port int `default:"8080"`
}

type Tracker struct {
	Raters             []string `default:"[KC,Jeff,Dave]"`
	ClearDateOnUnvisit bool
	SeedFile           string
}

// Sync controls the background save loop. It is on unless disabled; fig
// cannot default a bool to true.
type Sync struct {
	DisableAutoSync bool
	Interval        time.Duration `default:"30s"`
}

func (s Sync) AutoSync() bool {
	return !s.DisableAutoSync
}

type Integrations struct {
	Untappd   string `default:"https://untappd.com"`
	Geocoder  string `default:"https://nominatim.openstreetmap.org"`
	UserAgent string `default:"BreweryTracker/1.0"`
}

type Auth struct {
	SecretKey string
	Audience  string
	Domain    string
}

type Config struct {
	DB           DB
	Server       Server
	Tracker      Tracker
	Sync         Sync
	Integrations Integrations
	Auth         Auth
}

const envPrefix = "BREWERYTRACKER" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings that depend on each other.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverSQLite:
		if len(c.DB.Path) == 0 {
			return fmt.Errorf("%w: DB.Path is required for the sqlite driver", ErrConfiguration)
		}
	case DriverPostgres:
		var missing []string

		if len(c.DB.Host) == 0 {
			missing = append(missing, "DB.Host")
		}

		if len(c.DB.Password) == 0 {
			missing = append(missing, "DB.Password")
		}

		if len(missing) > 0 {
			return fmt.Errorf("%w: %s required for the postgres driver", ErrConfiguration, strings.Join(missing, ", "))
		}
	default:
		return fmt.Errorf("%w: unknown DB.Driver %q", ErrConfiguration, c.DB.Driver)
	}

	if len(c.Tracker.Raters) == 0 {
		return fmt.Errorf("%w: at least one rater is required", ErrConfiguration)
	}

	if c.Sync.Interval <= 0 {
		return fmt.Errorf("%w: Sync.Interval must be positive", ErrConfiguration)
	}

	return nil
}
