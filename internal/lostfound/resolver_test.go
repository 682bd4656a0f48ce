package lostfound_test

import (
	"testing"

	"github.com/Sadman-26/Metro-Rail-Project/internal/lostfound"

	"github.com/stretchr/testify/assert"
)

func TestResolveImageURL_NilAndEmpty(t *testing.T) {
	assert.Equal(t, lostfound.PlaceholderImage, lostfound.ResolveImageURL(nil))

	empty := ""
	assert.Equal(t, lostfound.PlaceholderImage, lostfound.ResolveImageURL(&empty))
}

func TestResolveImageURL_Branches(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"absolute https URL unchanged", "https://x/y.jpg", "https://x/y.jpg"},
		{"absolute http URL unchanged", "http://example.com/img.png", "http://example.com/img.png"},
		{"absolute site path unchanged", "/images/a.jpg", "/images/a.jpg"},
		{"other absolute path unchanged", "/media/uploads/b.png", "/media/uploads/b.png"},
		{"bare filename prefixed", "purse.jpg", "/images/purse.jpg"},
		{"filename with spaces prefixed", "Screenshot 2025-05-02.jpg.png", "/images/Screenshot 2025-05-02.jpg.png"},
		{"relative subpath treated as bare", "lost_items/wallet.jpg", "/images/lost_items/wallet.jpg"},
		{"scheme-like but not http prefixed", "ftp://host/a.jpg", "/images/ftp://host/a.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := tt.ref
			assert.Equal(t, tt.want, lostfound.ResolveImageURL(&ref))
		})
	}
}

// Every non-empty string without an http scheme or leading slash must
// resolve to prefix + input, byte for byte.
func TestResolveImageURL_PrefixProperty(t *testing.T) {
	inputs := []string{"a", "cat.jpg", "x y z", "https.jpg", "http.png", "képek.jpg"}
	for _, in := range inputs {
		ref := in
		assert.Equal(t, lostfound.ImagePrefix+in, lostfound.ResolveImageURL(&ref))
	}
}
