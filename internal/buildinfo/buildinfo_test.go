package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "dev", "unknown"
	assert.Equal(t, "dev", Short())

	Commit = "0123456789abcdef"
	assert.Equal(t, "0123456", Short())

	Version = "v0.3.1"
	assert.Equal(t, "v0.3.1", Short())
	assert.Contains(t, String(), "sparkcalc v0.3.1 (commit 0123456789abcdef")
}
