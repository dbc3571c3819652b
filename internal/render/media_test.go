package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbedURL_YouTubeDialects(t *testing.T) {
	cases := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
	}
	for _, raw := range cases {
		embed, ok := EmbedURL(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", embed, raw)
	}
}

func TestEmbedURL_Vimeo(t *testing.T) {
	embed, ok := EmbedURL("https://vimeo.com/123456789")
	assert.True(t, ok)
	assert.Equal(t, "https://player.vimeo.com/video/123456789", embed)

	embed, ok = EmbedURL("https://vimeo.com/video/987654")
	assert.True(t, ok)
	assert.Equal(t, "https://player.vimeo.com/video/987654", embed)
}

func TestEmbedURL_LoomWistiaPanda(t *testing.T) {
	embed, ok := EmbedURL("https://www.loom.com/share/abc123DEF")
	assert.True(t, ok)
	assert.Equal(t, "https://www.loom.com/embed/abc123DEF", embed)

	embed, ok = EmbedURL("https://company.wistia.com/medias/xyz789")
	assert.True(t, ok)
	assert.Equal(t, "https://fast.wistia.net/embed/iframe/xyz789", embed)

	embed, ok = EmbedURL("https://player.pandavideo.com.br/embed/?v=abc-def-123")
	assert.True(t, ok)
	assert.Equal(t, "https://player.pandavideo.com.br/embed/?v=abc-def-123", embed)
}

func TestEmbedURL_UnknownDialect(t *testing.T) {
	_, ok := EmbedURL("https://example.com/video/1")
	assert.False(t, ok)

	_, ok = EmbedURL("")
	assert.False(t, ok)
}

func TestIsEmoji(t *testing.T) {
	assert.True(t, IsEmoji("🎉"))
	assert.True(t, IsEmoji("👍🏽"))
	assert.False(t, IsEmoji(""))
	assert.False(t, IsEmoji("https://x.com/a.png"))
	assert.False(t, IsEmoji("image.png"))
	assert.False(t, IsEmoji("hello"))
}

func TestIsMediaFile(t *testing.T) {
	assert.True(t, IsMediaFile("https://cdn.example.com/clip.mp4"))
	assert.True(t, IsMediaFile("https://cdn.example.com/clip.WEBM?token=1"))
	assert.False(t, IsMediaFile("https://www.youtube.com/watch?v=dQw4w9WgXcQ"))
}

func TestIsHTTPURL(t *testing.T) {
	assert.True(t, IsHTTPURL("https://example.com/embed"))
	assert.True(t, IsHTTPURL("http://example.com"))
	assert.False(t, IsHTTPURL("javascript:alert(1)"))
	assert.False(t, IsHTTPURL("/relative/path"))
	assert.False(t, IsHTTPURL(""))
}
