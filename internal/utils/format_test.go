package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "user.name@sub.domain.org", "x@y.co"}
	for _, v := range valid {
		assert.True(t, IsValidEmail(v), v)
	}

	invalid := []string{"", "plain", "no-at.com", "missing@dot", "two@@a.com", "spaces in@a.com"}
	for _, v := range invalid {
		assert.False(t, IsValidEmail(v), v)
	}
}

func TestStripExtension(t *testing.T) {
	assert.Equal(t, "report", StripExtension("report.pdf"))
	assert.Equal(t, "archive.tar", StripExtension("archive.tar.gz"))
	assert.Equal(t, "README", StripExtension("README"))
	assert.Equal(t, "", StripExtension(""))
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "512 B", FormatFileSize(512))
	assert.Equal(t, "1.00 KB", FormatFileSize(1024))
	assert.Equal(t, "2.50 MB", FormatFileSize(2621440))
	assert.Equal(t, "1.00 GB", FormatFileSize(1073741824))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "7 Mar 2025", FormatDate(ts))
}
