package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gerejaku_backend/internals/configs"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "sunday_sermon.mp3", sanitizeFilename("sunday sermon.mp3"))
	assert.Equal(t, "a_b_c.pdf", sanitizeFilename("a/b\\c.pdf"))
	assert.Equal(t, "notes-2024.txt", sanitizeFilename("notes-2024.txt"))
}

func TestGenerateUniqueKeyShape(t *testing.T) {
	key := GenerateUniqueKey("sermons/abc", "slides deck.pdf")

	require.True(t, strings.HasPrefix(key, "sermons/abc/"), "key %q", key)
	rest := strings.TrimPrefix(key, "sermons/abc/")

	// yyyymmdd-uuid-sanitizedname
	assert.True(t, strings.HasPrefix(rest, time.Now().Format("20060102")+"-"), "key %q", key)
	assert.True(t, strings.HasSuffix(rest, "-slides_deck.pdf"), "key %q", key)

	// two keys for the same filename never collide
	assert.NotEqual(t, key, GenerateUniqueKey("sermons/abc", "slides deck.pdf"))
}

func TestKeyFromPublicURL(t *testing.T) {
	oldURL := configs.SupabaseProjectURL
	configs.SupabaseProjectURL = "https://demo.supabase.co"
	t.Cleanup(func() { configs.SupabaseProjectURL = oldURL })

	key := "avatars/20240101-abc-photo.webp"
	got, ok := KeyFromPublicURL("avatars", PublicURL("avatars", key))
	require.True(t, ok)
	assert.Equal(t, key, got)

	// foreign and malformed URLs are not ours to clean up
	_, ok = KeyFromPublicURL("avatars", "https://elsewhere.example/avatars/x.webp")
	assert.False(t, ok)
	_, ok = KeyFromPublicURL("sermons", PublicURL("avatars", key))
	assert.False(t, ok)
	_, ok = KeyFromPublicURL("avatars", "https://demo.supabase.co/storage/v1/object/public/avatars/")
	assert.False(t, ok)
}

func TestTrimExt(t *testing.T) {
	assert.Equal(t, "photo", trimExt("photo.jpg"))
	assert.Equal(t, "archive.tar", trimExt("archive.tar.gz"))
	assert.Equal(t, "noext", trimExt("noext"))
	assert.Equal(t, ".hidden", trimExt(".hidden"))
}
