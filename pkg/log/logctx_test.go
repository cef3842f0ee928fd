package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// Тесты меняют slog.Default(), поэтому намеренно НЕ используют t.Parallel().

func newSilent() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestFrom_ReturnsDefault — без логгера в контексте From отдаёт slog.Default().
func TestFrom_ReturnsDefault(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	def := newSilent()
	slog.SetDefault(def)

	require.Equal(t, def, From(context.Background()))
}

// TestIntoAndFrom_RoundTrip — Into/From возвращают тот же логгер.
func TestIntoAndFrom_RoundTrip(t *testing.T) {
	l := newSilent()
	ctx := Into(context.Background(), l)

	require.Equal(t, l, From(ctx))
}

// TestFrom_IgnoresNilLogger — *slog.Logger(nil) в контексте не ломает From.
func TestFrom_IgnoresNilLogger(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	def := newSilent()
	slog.SetDefault(def)

	var nilLogger *slog.Logger
	ctx := context.WithValue(context.Background(), ctxKey{}, nilLogger)

	require.Equal(t, def, From(ctx))
}

// TestWith_AddsAttrsToChildOnly — атрибуты видны только в дочернем контексте.
func TestWith_AddsAttrsToChildOnly(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	parent := Into(context.Background(), base)
	child := With(parent, slog.String("catalog_id", "abc"))

	From(child).Info("child")
	require.Contains(t, buf.String(), "catalog_id=abc")

	buf.Reset()
	From(parent).Info("parent")
	require.NotContains(t, buf.String(), "catalog_id")
}

// TestWith_NoAttrs_ReturnsSameContext — без атрибутов контекст не оборачивается.
func TestWith_NoAttrs_ReturnsSameContext(t *testing.T) {
	ctx := Into(context.Background(), newSilent())
	require.Equal(t, ctx, With(ctx))
}

// TestInto_NilKeepsParentLogger — Into(nil) не прячет логгер родителя.
func TestInto_NilKeepsParentLogger(t *testing.T) {
	l := newSilent()
	parent := Into(context.Background(), l)

	child := Into(parent, nil)

	require.Equal(t, parent, child)
	require.Equal(t, l, From(child))
}
