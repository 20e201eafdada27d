package logging

import (
	"context"
	"testing"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			p, err := NewProvider(Config{Level: "debug", Format: format})
			require.NoError(t, err)

			logger := p.GetLogger("pipeline")
			require.NotNil(t, logger)
			WithFields(logger, map[string]any{"run_id": "abc"}).Debug("provider ready")
		})
	}
}

func TestNewProviderRejectsUnknownFormat(t *testing.T) {
	_, err := NewProvider(Config{Format: "xml"})
	require.Error(t, err)
}

func TestNilProviderReturnsNoOp(t *testing.T) {
	var p *Provider
	assert.Equal(t, NoOp(), p.GetLogger("x"))
}

func TestAdapterDelegates(t *testing.T) {
	stub := &stubLogger{}
	logger := wrap(stub)

	logger.Trace("t")
	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")
	logger.WithContext(context.Background())

	fields := map[string]any{"path": "a.js"}
	WithFields(logger, fields)
	fields["path"] = "b.js"

	assert.Equal(t, []string{"trace", "debug", "info", "warn", "error"}, stub.calls)
	assert.Len(t, stub.contexts, 1)
	require.Len(t, stub.fields, 1)
	assert.Equal(t, "a.js", stub.fields[0]["path"])
}

func TestWithFieldsOnNoOp(t *testing.T) {
	logger := WithFields(NoOp(), map[string]any{"a": 1})
	assert.Equal(t, NoOp(), logger)
}

type stubLogger struct {
	calls    []string
	fields   []map[string]any
	contexts []context.Context
}

var _ glog.Logger = (*stubLogger)(nil)
var _ glog.FieldsLogger = (*stubLogger)(nil)

func (s *stubLogger) Trace(string, ...any) { s.calls = append(s.calls, "trace") }
func (s *stubLogger) Debug(string, ...any) { s.calls = append(s.calls, "debug") }
func (s *stubLogger) Info(string, ...any)  { s.calls = append(s.calls, "info") }
func (s *stubLogger) Warn(string, ...any)  { s.calls = append(s.calls, "warn") }
func (s *stubLogger) Error(string, ...any) { s.calls = append(s.calls, "error") }
func (s *stubLogger) Fatal(string, ...any) { s.calls = append(s.calls, "fatal") }

func (s *stubLogger) WithContext(ctx context.Context) glog.Logger {
	s.contexts = append(s.contexts, ctx)
	return s
}

func (s *stubLogger) WithFields(fields map[string]any) glog.Logger {
	s.fields = append(s.fields, fields)
	return s
}
