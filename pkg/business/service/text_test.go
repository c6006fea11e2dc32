package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"commerceadmin_api/pkg/business/service"
)

func TestTruncateText(t *testing.T) {
	ts := service.NewTextService()

	require.Equal(t, "short", ts.TruncateText("short", 100))
	require.Equal(t, "hel...", ts.TruncateText("hello world", 3))
	require.Equal(t, "", ts.TruncateText("", 10))
}

func TestStripHTML(t *testing.T) {
	ts := service.NewTextService()

	require.Equal(t, "Pickup trucks", ts.StripHTML("<p>Pickup <b>trucks</b></p>"))
	require.Equal(t, "see", ts.StripHTML("see https://example.com/specs"))
}

func TestFormatFileSize(t *testing.T) {
	ts := service.NewTextService()

	require.Equal(t, "0 Bytes", ts.FormatFileSize(0))
	require.Equal(t, "1 KB", ts.FormatFileSize(1024))
	require.Equal(t, "1.5 MB", ts.FormatFileSize(1572864))
}

func TestFormatDate(t *testing.T) {
	ts := service.NewTextService()

	require.Equal(t, "", ts.FormatDate(time.Time{}))
	stamp := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	require.Equal(t, "Mar 5, 2024 14:30", ts.FormatDate(stamp))
}

func TestIsValidURL(t *testing.T) {
	ts := service.NewTextService()

	require.True(t, ts.IsValidURL("https://example.com/image.png"))
	require.False(t, ts.IsValidURL("not a url"))
	require.False(t, ts.IsValidURL("/relative/path"))
}
