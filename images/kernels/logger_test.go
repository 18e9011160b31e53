package kernels

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	src := solidBuffer(t, 4, 4, [4]uint8{1, 2, 3, 4})
	_, err := Blur(src, Options{XRadius: 2, Channels: ChannelR})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "kernels: blur plan")
	assert.Contains(t, out, "kernels: restored unblurred channels")
	assert.Contains(t, out, "channels=GBA")
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
