package usecase_test

import (
	"context"

	"github.com/bnema/paneshell/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type stubXDG struct {
	dataDir string
	err     error
}

func (s stubXDG) ConfigDir() (string, error) { return "/cfg", s.err }
func (s stubXDG) DataDir() (string, error)   { return s.dataDir, s.err }
func (s stubXDG) StateDir() (string, error)  { return "/state", s.err }
