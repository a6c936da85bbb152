package sentry

import (
	"fmt"
	"sync/atomic"
	"time"

	"moviesearch/pkg/config"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

// FlushTime bounds how long Fatal waits for buffered events.
var FlushTime = 2 * time.Second

// Sentry builds a single event. It is not safe for concurrent use;
// start a new one per report.
type Sentry struct {
	context       echo.Context
	error         error
	message       string
	level         sentrygo.Level
	extras        map[string]interface{}
	tags          map[string]string
	contextValues map[string]sentrygo.Context
}

func (s *Sentry) WithContext(c echo.Context) *Sentry {
	s.context = c
	return s
}

func (s *Sentry) WithError(err error) *Sentry {
	s.error = err
	return s
}

func (s *Sentry) WithMessage(msg string) *Sentry {
	s.message = msg
	return s
}

func (s *Sentry) WithLevel(level sentrygo.Level) *Sentry {
	s.level = level
	return s
}

func (s *Sentry) WithExtras(extras map[string]interface{}) *Sentry {
	s.extras = extras
	return s
}

func (s *Sentry) WithTags(tags map[string]string) *Sentry {
	s.tags = tags
	return s
}

func (s *Sentry) WithContextValues(values map[string]sentrygo.Context) *Sentry {
	s.contextValues = values
	return s
}

func (s *Sentry) Debug(msg string) { s.WithMessage(msg).WithLevel(sentrygo.LevelDebug).sendMessage() }

func (s *Sentry) Debugf(format string, args ...interface{}) { s.Debug(fmt.Sprintf(format, args...)) }

func (s *Sentry) Info(msg string) { s.WithMessage(msg).WithLevel(sentrygo.LevelInfo).sendMessage() }

func (s *Sentry) Infof(format string, args ...interface{}) { s.Info(fmt.Sprintf(format, args...)) }

func (s *Sentry) Warning(msg string) { s.WithMessage(msg).WithLevel(sentrygo.LevelWarning).sendMessage() }

func (s *Sentry) Warningf(format string, args ...interface{}) { s.Warning(fmt.Sprintf(format, args...)) }

func (s *Sentry) Error(err error) { s.WithError(err).WithLevel(sentrygo.LevelError).sendError() }

func (s *Sentry) Errorf(format string, args ...interface{}) { s.Error(fmt.Errorf(format, args...)) }

// Fatal reports err and flushes; it does not exit the process.
func (s *Sentry) Fatal(err error) {
	s.WithError(err).WithLevel(sentrygo.LevelFatal).sendError()
	sentrygo.Flush(FlushTime)
}

func (s *Sentry) Fatalf(format string, args ...interface{}) { s.Fatal(fmt.Errorf(format, args...)) }

func (s *Sentry) sendMessage() {
	if !enabled() {
		return
	}
	hub := s.getHub()
	hub.WithScope(func(scope *sentrygo.Scope) {
		s.configScope(scope)
		hub.CaptureMessage(s.message)
	})
}

func (s *Sentry) sendError() {
	if !enabled() || s.error == nil {
		return
	}
	hub := s.getHub()
	hub.WithScope(func(scope *sentrygo.Scope) {
		s.configScope(scope)
		hub.CaptureException(s.error)
	})
}

// getHub prefers the request-scoped hub installed by the echo middleware.
func (s *Sentry) getHub() *sentrygo.Hub {
	if s.context != nil {
		if hub := sentryecho.GetHubFromContext(s.context); hub != nil {
			return hub
		}
	}
	return sentrygo.CurrentHub()
}

func (s *Sentry) configScope(scope *sentrygo.Scope) {
	scope.SetLevel(s.level)
	scope.SetExtras(s.extras)
	scope.SetTags(s.tags)
	for key, value := range s.contextValues {
		scope.SetContext(key, value)
	}
	if s.context != nil && s.context.Response().Writer != nil {
		if id := s.context.Response().Header().Get(echo.HeaderXRequestID); id != "" {
			scope.SetTag("request_id", id)
		}
	}
}

var reporting atomic.Bool

// Configure turns reporting on for a non-local environment with a DSN.
// Until it is called nothing is sent.
func Configure(cfg *config.Config) {
	reporting.Store(cfg.SentryDSN != "" && cfg.AppEnv != "local")
}

func enabled() bool {
	return reporting.Load()
}

func WithContext(c echo.Context) *Sentry { return new(Sentry).WithContext(c) }

func WithExtras(extras map[string]interface{}) *Sentry { return new(Sentry).WithExtras(extras) }

func WithTags(tags map[string]string) *Sentry { return new(Sentry).WithTags(tags) }

func WithContextValues(values map[string]sentrygo.Context) *Sentry {
	return new(Sentry).WithContextValues(values)
}

func Debug(msg string)                            { new(Sentry).Debug(msg) }
func Debugf(format string, args ...interface{})   { new(Sentry).Debugf(format, args...) }
func Info(msg string)                             { new(Sentry).Info(msg) }
func Infof(format string, args ...interface{})    { new(Sentry).Infof(format, args...) }
func Warning(msg string)                          { new(Sentry).Warning(msg) }
func Warningf(format string, args ...interface{}) { new(Sentry).Warningf(format, args...) }
func Error(err error)                             { new(Sentry).Error(err) }
func Errorf(format string, args ...interface{})   { new(Sentry).Errorf(format, args...) }
func Fatal(err error)                             { new(Sentry).Fatal(err) }
func Fatalf(format string, args ...interface{})   { new(Sentry).Fatalf(format, args...) }
