package repository_test

import (
	"database/sql"
	"regexp"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/BreweryTracker/pkg/repository"
)

const (
	selectStoredValue = `SELECT * FROM "stored_values" WHERE key = $1 AND "stored_values"."deleted_at" IS NULL ORDER BY "stored_values"."id" LIMIT $2`
	upsertStoredValue = `^INSERT INTO "stored_values" \("created_at","updated_at","deleted_at","key","value"\) VALUES \(\$1,\$2,\$3,\$4,\$5\) ON CONFLICT \("key"\) DO UPDATE SET (.+) RETURNING "id"`
)

type RepositorySuite struct {
	suite.Suite
	DB           *gorm.DB
	mock         sqlmock.Sqlmock
	observedLogs *observer.ObservedLogs
	repository   repository.Repository
}

func (suite *RepositorySuite) SetupTest() {
	var (
		db              *sql.DB
		err             error
		observedZapCore zapcore.Core
	)

	observedZapCore, suite.observedLogs = observer.New(zap.InfoLevel)
	observedLogger := zap.New(observedZapCore)

	db, suite.mock, err = sqlmock.New()
	suite.Require().NoError(err)

	gormLogger := zapgorm2.New(observedLogger)
	gormLogger.IgnoreRecordNotFoundError = true
	gormLogger.SetAsDefault()

	suite.DB, err = gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{Logger: gormLogger})
	suite.Require().NoError(err)

	suite.repository = repository.Repository{DB: suite.DB, Logger: observedLogger}
}

func (suite *RepositorySuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *RepositorySuite) expectValue(key string, value string) {
	suite.mock.ExpectQuery(regexp.QuoteMeta(selectStoredValue)).
		WithArgs(key, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value"}).AddRow(uint(1), key, value))
}

func (suite *RepositorySuite) expectNoValue(key string) {
	suite.mock.ExpectQuery(regexp.QuoteMeta(selectStoredValue)).
		WithArgs(key, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value"}))
}

func (suite *RepositorySuite) expectUpsert(key string, value any) {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(upsertStoredValue).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, key, value).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(1)))
	suite.mock.ExpectCommit()
}
