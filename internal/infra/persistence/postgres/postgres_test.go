package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"outcome/config"
	deliverycontext "outcome/internal/delivery/context"
	"outcome/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "duplicate key", err: gorm.ErrDuplicatedKey, want: "unique constraint violated"},
		{name: "raw unique code", err: errors.New("ERROR: duplicate key value (SQLSTATE 23505)"), want: "unique constraint violated"},
		{name: "foreign key", err: errors.Wrap(gorm.ErrForeignKeyViolated, "insert"), want: "foreign key constraint violated"},
		{name: "check", err: gorm.ErrCheckConstraintViolated, want: "check constraint violated"},
		{name: "not null", err: errors.New(`null value in column "title" violates not-null constraint`), want: "not null constraint violated"},
		{name: "other", err: errors.New("connection refused"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, constraintViolation(tt.err))
		})
	}
}

func newTestGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), &buf
}

func sqlAndRows() (string, int64) {
	return "SELECT * FROM notes", 3
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("query logged in debug", func(t *testing.T) {
		l, buf := newTestGormLogger(true)

		l.Trace(context.Background(), time.Now(), sqlAndRows, nil)

		assert.Contains(t, buf.String(), `"msg":"GORM query"`)
		assert.Contains(t, buf.String(), `"rows":3`)
	})

	t.Run("query quiet outside debug", func(t *testing.T) {
		l, buf := newTestGormLogger(false)

		l.Trace(context.Background(), time.Now(), sqlAndRows, nil)

		assert.Empty(t, buf.String())
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		l, buf := newTestGormLogger(false)

		l.Trace(context.Background(), time.Now(), sqlAndRows, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("failures use request logger", func(t *testing.T) {
		l, _ := newTestGormLogger(false)

		var reqBuf bytes.Buffer
		reqLogger := slog.New(slog.NewJSONHandler(&reqBuf, nil)).With(slog.String("request_id", "req-1"))
		ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

		l.Trace(ctx, time.Now(), sqlAndRows, errors.New("boom"))

		assert.Contains(t, reqBuf.String(), `"msg":"GORM query failed"`)
		assert.Contains(t, reqBuf.String(), `"request_id":"req-1"`)
		assert.Contains(t, reqBuf.String(), `"error":"boom"`)
	})

	t.Run("slow query", func(t *testing.T) {
		l, buf := newTestGormLogger(false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlAndRows, nil)

		assert.Contains(t, buf.String(), `"msg":"GORM slow query"`)
	})

	t.Run("silent", func(t *testing.T) {
		l, buf := newTestGormLogger(true)

		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlAndRows, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}
