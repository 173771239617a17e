package durations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	staffprefsRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staffprefs"
)

type fakePrefsRepo struct {
	raw []byte
	err error
}

func (f *fakePrefsRepo) GetRaw(_ context.Context, _ int64) ([]byte, error) {
	return f.raw, f.err
}

type noopLogger struct{}

func (noopLogger) Debug(format string, v ...interface{}) {}
func (noopLogger) Warn(format string, v ...interface{})  {}

func TestResolve_OverridePresent(t *testing.T) {
	repo := &fakePrefsRepo{raw: []byte(`{"services":{"42":{"durationMinutes":45}}}`)}
	resolver := NewResolver(repo, noopLogger{})

	got := resolver.Resolve(context.Background(), 1, 42, 30)
	assert.Equal(t, 45, got)
}

func TestResolve_FallbackCases(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		err  error
	}{
		{name: "prefs not found", err: staffprefsRepo.ErrPrefsNotFound},
		{name: "repository error", err: errors.New("connection refused")},
		{name: "empty document", raw: []byte{}},
		{name: "malformed json", raw: []byte(`{"services":`)},
		{name: "missing service key", raw: []byte(`{"services":{"7":{"durationMinutes":45}}}`)},
		{name: "missing duration field", raw: []byte(`{"services":{"42":{}}}`)},
		{name: "zero duration", raw: []byte(`{"services":{"42":{"durationMinutes":0}}}`)},
		{name: "negative duration", raw: []byte(`{"services":{"42":{"durationMinutes":-15}}}`)},
		{name: "unexpected value type", raw: []byte(`{"services":{"42":{"durationMinutes":"45"}}}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePrefsRepo{raw: tt.raw, err: tt.err}
			resolver := NewResolver(repo, noopLogger{})

			got := resolver.Resolve(context.Background(), 1, 42, 30)
			assert.Equal(t, 30, got)
		})
	}
}

func TestResolve_IgnoresExtraKeys(t *testing.T) {
	repo := &fakePrefsRepo{raw: []byte(`{"theme":"dark","services":{"42":{"durationMinutes":90,"color":"red"}}}`)}
	resolver := NewResolver(repo, noopLogger{})

	got := resolver.Resolve(context.Background(), 1, 42, 30)
	assert.Equal(t, 90, got)
}
