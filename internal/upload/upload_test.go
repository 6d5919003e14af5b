package upload_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelhub/backend/internal/upload"
)

// TestSanitizeFilename covers path stripping and unsafe character
// replacement.
func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name kept", "leak.png", "leak.png"},
		{"spaces replaced", "my photo.png", "my_photo.png"},
		{"path stripped", "../../etc/passwd", "passwd"},
		{"windows path stripped", `C:\temp\shot.jpg`, "shot.jpg"},
		{"unsafe chars replaced", "a<b>c?.png", "a_b_c_.png"},
		{"nothing safe left", "???", ""},
		{"dot segments trimmed", "..", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, upload.SanitizeFilename(tt.input))
		})
	}
}

// TestSave_StoresTimestampPrefixedFile verifies the stored name format
// and that bytes land on disk.
func TestSave_StoresTimestampPrefixedFile(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	store, err := upload.NewStore(dir)
	require.NoError(t, err)

	// Act
	stored, err := store.Save(strings.NewReader("image-bytes"), "leak report.png")

	// Assert
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stored, "_leak_report.png"), "stored name was %q", stored)

	data, err := os.ReadFile(filepath.Join(dir, stored))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

// TestSave_RejectsEmptySanitisedName verifies uploads whose names
// sanitise to nothing are refused with the sentinel error.
func TestSave_RejectsEmptySanitisedName(t *testing.T) {
	store, err := upload.NewStore(t.TempDir())
	require.NoError(t, err)

	stored, err := store.Save(strings.NewReader("x"), "???")

	assert.ErrorIs(t, err, upload.ErrUnsafeName)
	assert.Empty(t, stored)
}

// TestPath_RejectsTraversal verifies retrieval names cannot escape the
// blob area.
func TestPath_RejectsTraversal(t *testing.T) {
	store, err := upload.NewStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "..", "../secret", "a/b.png", "./x"} {
		_, err := store.Path(name)
		assert.ErrorIs(t, err, upload.ErrBadFilename, "name %q should be rejected", name)
	}

	path, err := store.Path("123_leak.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.Dir(), "123_leak.png"), path)
}
