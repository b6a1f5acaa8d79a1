package testutil

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/carryint/carryint/internal/config"
	"github.com/carryint/carryint/internal/kv"
	"github.com/carryint/carryint/internal/logger"
	"github.com/carryint/carryint/internal/repository"
	"github.com/carryint/carryint/internal/types"
)

// BaseServiceSuite provides a fresh in-memory stack for service tests:
// every test gets its own blob store, repositories and service params.
type BaseServiceSuite struct {
	suite.Suite

	ctx    context.Context
	cfg    *config.Configuration
	logger *logger.Logger
	repos  *repository.Repositories
}

// SetupTest rebuilds the stack before each test
func (s *BaseServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.cfg = config.GetDefaultConfig()

	log, err := logger.NewLogger(types.LogLevelError)
	s.Require().NoError(err)
	s.logger = log

	store, err := kv.NewBlobStore("", log)
	s.Require().NoError(err)
	s.repos = repository.NewRepositories(store)
}

func (s *BaseServiceSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceSuite) GetConfig() *config.Configuration {
	return s.cfg
}

func (s *BaseServiceSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceSuite) GetRepositories() *repository.Repositories {
	return s.repos
}
