package sentry

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"moviesearch/pkg/config"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testDSN = "https://public@sentry.example.com/1"

func configureFor(t *testing.T, env, dsn string) {
	t.Helper()
	Configure(&config.Config{AppEnv: env, SentryDSN: dsn})
	t.Cleanup(func() { reporting.Store(false) })
}

func TestSentry_Builder(t *testing.T) {
	e := echo.New()
	ctx := e.NewContext(nil, nil)
	err := errors.New("catalog unavailable")
	extras := map[string]interface{}{"movie_id": 42}
	tags := map[string]string{"handler": "detail"}
	values := map[string]sentrygo.Context{"query": {"term": "inc"}}

	s := new(Sentry).
		WithContext(ctx).
		WithError(err).
		WithMessage("lookup failed").
		WithLevel(sentrygo.LevelWarning).
		WithExtras(extras).
		WithTags(tags).
		WithContextValues(values)

	assert.Equal(t, ctx, s.context)
	assert.Equal(t, err, s.error)
	assert.Equal(t, "lookup failed", s.message)
	assert.Equal(t, sentrygo.LevelWarning, s.level)
	assert.Equal(t, extras, s.extras)
	assert.Equal(t, tags, s.tags)
	assert.Equal(t, values, s.contextValues)
}

func TestConfigure(t *testing.T) {
	t.Run("disabled until configured", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("SENTRY_DSN", testDSN)

		assert.False(t, enabled())
	})
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		dsn    string
		expect bool
	}{
		{name: "local never sends", env: "local", dsn: testDSN, expect: false},
		{name: "missing dsn never sends", env: "production", dsn: "", expect: false},
		{name: "production with dsn sends", env: "production", dsn: testDSN, expect: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configureFor(t, tt.env, tt.dsn)

			assert.Equal(t, tt.expect, enabled())
		})
	}
}

func TestSentry_ReportingWhenDisabled(t *testing.T) {
	configureFor(t, "local", "")
	originalFlushTime := FlushTime
	FlushTime = 0
	defer func() { FlushTime = originalFlushTime }()

	assert.NotPanics(t, func() {
		Debugf("debug %d", 1)
		Infof("info %d", 2)
		Warningf("warning %d", 3)
		Errorf("error %d", 4)
		Fatalf("fatal %d", 5)
		WithTags(map[string]string{"k": "v"}).Error(errors.New("tagged"))
	})
}

func TestSentry_ErrorWithoutErrorIsIgnored(t *testing.T) {
	configureFor(t, "production", testDSN)

	assert.NotPanics(t, func() {
		new(Sentry).WithLevel(sentrygo.LevelError).sendError()
	})
}

func TestSentry_GetHub(t *testing.T) {
	t.Run("falls back to the current hub", func(t *testing.T) {
		assert.Equal(t, sentrygo.CurrentHub(), new(Sentry).getHub())
	})

	t.Run("uses the request hub when present", func(t *testing.T) {
		e := echo.New()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		hub := sentrygo.CurrentHub().Clone()
		ctx.Set("sentry", hub)

		assert.Same(t, hub, WithContext(ctx).getHub())
	})
}

func TestSentry_ConfigScope(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/movie/1", nil), rec)
	ctx.Response().Header().Set(echo.HeaderXRequestID, "req-1")

	s := WithContext(ctx).
		WithLevel(sentrygo.LevelError).
		WithExtras(map[string]interface{}{"key": "value"}).
		WithTags(map[string]string{"env": "test"}).
		WithContextValues(map[string]sentrygo.Context{"custom": {}})

	scope := sentrygo.NewScope()
	assert.NotPanics(t, func() { s.configScope(scope) })
}
