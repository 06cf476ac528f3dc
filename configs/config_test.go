package configs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/BreweryTracker/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal(configs.DriverPostgres, config.DB.Driver)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal([]string{"K", "J", "D"}, config.Tracker.Raters)
	suite.True(config.Tracker.ClearDateOnUnvisit)
	suite.False(config.Sync.AutoSync())
	suite.Equal(time.Minute, config.Sync.Interval)
	suite.Equal("http://untappd.test", config.Integrations.Untappd)
	suite.Equal("http://geocoder.test", config.Integrations.Geocoder)
	suite.Equal("test-agent", config.Integrations.UserAgent)
	suite.Equal("audience", config.Auth.Audience)
	suite.Equal("domain", config.Auth.Domain)
	suite.Equal("secret", config.Auth.SecretKey)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BREWERYTRACKER_DB_DRIVER", "postgres")
	suite.T().Setenv("BREWERYTRACKER_DB_HOST", "test.local")
	suite.T().Setenv("BREWERYTRACKER_DB_PORT", "1234")
	suite.T().Setenv("BREWERYTRACKER_DB_PASSWORD", "test123")
	suite.T().Setenv("BREWERYTRACKER_SERVER_PORT", "666")
	suite.T().Setenv("BREWERYTRACKER_TRACKER_RATERS", "K,J,D")
	suite.T().Setenv("BREWERYTRACKER_SYNC_INTERVAL", "45s")
	suite.T().Setenv("BREWERYTRACKER_AUTH_SECRETKEY", "secret")

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Require().NoError(err)
	suite.Equal(configs.DriverPostgres, config.DB.Driver)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("postgres", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal(666, config.Server.Port)
	suite.Equal([]string{"K", "J", "D"}, config.Tracker.Raters)
	suite.Equal(45*time.Second, config.Sync.Interval)
	suite.Equal("secret", config.Auth.SecretKey)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BREWERYTRACKER_DB_HOST", "env.local")
	suite.T().Setenv("BREWERYTRACKER_DB_PASSWORD", "env123")
	suite.T().Setenv("BREWERYTRACKER_AUTH_SECRETKEY", "envsecret")
	suite.T().Setenv("BREWERYTRACKER_INTEGRATIONS_USERAGENT", "env-agent")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("env123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal("envsecret", config.Auth.SecretKey)
	suite.Equal("env-agent", config.Integrations.UserAgent)
	suite.Equal([]string{"K", "J", "D"}, config.Tracker.Raters)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingFileUsesDefaults() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Require().NoError(err)
	suite.Equal(configs.DriverSQLite, config.DB.Driver)
	suite.Equal("brewery-tracker.db", config.DB.Path)
	suite.Equal(8080, config.Server.Port)
	suite.Equal([]string{"KC", "Jeff", "Dave"}, config.Tracker.Raters)
	suite.False(config.Tracker.ClearDateOnUnvisit)
	suite.True(config.Sync.AutoSync())
	suite.Equal(30*time.Second, config.Sync.Interval)
	suite.Equal("https://untappd.com", config.Integrations.Untappd)
	suite.Equal("https://nominatim.openstreetmap.org", config.Integrations.Geocoder)
	suite.Empty(config.Auth.SecretKey)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOnlyDefaultsAndDisable() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Require().NoError(err)
	suite.True(config.Sync.AutoSync())
	suite.Equal(30*time.Second, config.Sync.Interval)

	suite.T().Setenv("BREWERYTRACKER_SYNC_DISABLEAUTOSYNC", "true")

	config, err = configs.GetConfig("testdata/missing.toml", logger)

	suite.Require().NoError(err)
	suite.False(config.Sync.AutoSync())
	suite.Equal(configs.DriverSQLite, config.DB.Driver)
}

func (suite *ConfigTestSuite) TestGetConfig_PostgresRequiresCredentials() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BREWERYTRACKER_DB_DRIVER", "postgres")

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Nil(config)
	suite.Require().ErrorIs(err, configs.ErrConfiguration)
	suite.EqualError(err, "configuration error: DB.Host, DB.Password required for the postgres driver")
}

func (suite *ConfigTestSuite) TestGetConfig_UnknownDriver() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/unknown_driver.toml", logger)

	suite.Nil(config)
	suite.Require().ErrorIs(err, configs.ErrConfiguration)
	suite.ErrorContains(err, `unknown DB.Driver "mysql"`)
}
