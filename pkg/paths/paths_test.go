package paths

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gestured/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeDirectory(t *testing.T) {
	t.Run("uses HOME when set", func(t *testing.T) {
		t.Setenv("HOME", "/home/testuser")

		home, err := HomeDirectory()
		require.NoError(t, err)
		assert.Equal(t, "/home/testuser", home)
	})

	t.Run("falls back to user database when HOME is empty", func(t *testing.T) {
		t.Setenv("HOME", "")

		home, err := HomeDirectory()
		if err != nil {
			// Some minimal environments have no passwd record either;
			// then the error must carry the resolution code.
			assert.True(t, errors.IsErrorCode(err, errors.ErrHomeResolve))
			return
		}
		assert.NotEmpty(t, home)
	})
}

func TestUserConfigFile(t *testing.T) {
	got := UserConfigFile("/home/alice")
	want := filepath.Join("/home/alice", ".config", "gestured", "gestured.conf")
	assert.Equal(t, want, got)
}

func TestUserConfigDir(t *testing.T) {
	got := UserConfigDir("/home/alice")
	want := filepath.Join("/home/alice", ".config", "gestured")
	assert.Equal(t, want, got)
}

func TestSystemDefaultConfigFile(t *testing.T) {
	assert.Equal(t, "/usr/share/gestured/gestured.conf", SystemDefaultConfigFile())
}
