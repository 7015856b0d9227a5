package sentry

import (
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
)

type SentryInfoData map[string]interface{}

var inited atomic.Bool

// Init enables reporting. An empty dsn leaves Send a no-op.
func Init(dsn string) error {
	if dsn == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		return err
	}
	inited.Store(true)
	return nil
}

// Flush waits for buffered events to be sent.
func Flush() {
	if inited.Load() {
		sentry.Flush(2 * time.Second)
	}
}

func Send(title string, data SentryInfoData, logLevel sentry.Level) {
	if !inited.Load() {
		return
	}

	go func(localHub *sentry.Hub) {
		localHub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetLevel(logLevel)
			scope.SetExtras(data)
		})
		localHub.CaptureMessage(title)
	}(sentry.CurrentHub().Clone())
}

const (
	LevelError   = sentry.LevelError
	LevelWarning = sentry.LevelWarning
)
