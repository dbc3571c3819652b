package render

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Media reference fields are opaque strings: a remote URL, or a short
// emoji literal. The renderer only decides how to show them; uploading and
// validating is the media picker's job.

var mediaFilePattern = regexp.MustCompile(`(?i)\.(mp4|webm|ogg)(\?.*)?$`)

// IsEmoji reports whether a media reference is an emoji glyph rather than
// a URL: at most 4 runes and no URL shape.
func IsEmoji(ref string) bool {
	if ref == "" || utf8.RuneCountInString(ref) > 4 {
		return false
	}
	if strings.ContainsAny(ref, "./:") {
		return false
	}
	return true
}

// IsMediaFile reports whether a URL points at a directly playable file.
func IsMediaFile(raw string) bool {
	return mediaFilePattern.MatchString(raw)
}

var (
	youtubeWatch  = regexp.MustCompile(`(?:youtube\.com/watch\?(?:.*&)?v=|youtube\.com/shorts/)([A-Za-z0-9_-]{6,})`)
	youtubeShort  = regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{6,})`)
	youtubeEmbed  = regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{6,})`)
	vimeoPattern  = regexp.MustCompile(`vimeo\.com/(?:video/)?(\d+)`)
	loomPattern   = regexp.MustCompile(`loom\.com/(?:share|embed)/([A-Za-z0-9]+)`)
	wistiaPattern = regexp.MustCompile(`wistia\.com/medias/([A-Za-z0-9]+)`)
	pandaPattern  = regexp.MustCompile(`pandavideo\.com(?:\.br)?/embed/\?v=([A-Za-z0-9-]+)`)
)

// EmbedURL rewrites a known video-page URL to its canonical embeddable
// iframe URL. The second return is false when the dialect is unknown; the
// caller then falls back to a raw iframe or a <video> element.
func EmbedURL(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	if m := youtubeEmbed.FindStringSubmatch(raw); m != nil {
		return "https://www.youtube.com/embed/" + m[1], true
	}
	if m := youtubeWatch.FindStringSubmatch(raw); m != nil {
		return "https://www.youtube.com/embed/" + m[1], true
	}
	if m := youtubeShort.FindStringSubmatch(raw); m != nil {
		return "https://www.youtube.com/embed/" + m[1], true
	}
	if m := vimeoPattern.FindStringSubmatch(raw); m != nil {
		return "https://player.vimeo.com/video/" + m[1], true
	}
	if m := loomPattern.FindStringSubmatch(raw); m != nil {
		return "https://www.loom.com/embed/" + m[1], true
	}
	if m := wistiaPattern.FindStringSubmatch(raw); m != nil {
		return "https://fast.wistia.net/embed/iframe/" + m[1], true
	}
	if m := pandaPattern.FindStringSubmatch(raw); m != nil {
		return "https://player.pandavideo.com.br/embed/?v=" + m[1], true
	}

	return "", false
}

// IsHTTPURL reports whether a string parses as an absolute http(s) URL.
func IsHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
