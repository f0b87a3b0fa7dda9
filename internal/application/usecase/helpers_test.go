package usecase_test

import (
	"context"
	"time"

	"github.com/bnema/favicache/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

const (
	timeoutShort = 2 * time.Second
	tick         = 5 * time.Millisecond
)
