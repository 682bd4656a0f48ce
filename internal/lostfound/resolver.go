package lostfound

import "strings"

const (
	// PlaceholderImage is served when an item has no usable reference.
	PlaceholderImage = "/images/cat.jpg"
	// PlaceholderFilename is stored when a create supplies no image.
	PlaceholderFilename = "cat.jpg"
	// ImagePrefix is prepended to bare filenames at read time.
	ImagePrefix = "/images/"
)

// ResolveImageURL maps a stored image reference to a display URL. The
// reference may be nil/empty (placeholder), an absolute URL or absolute
// site path (returned unchanged), or a bare filename (prefixed). Every
// string falls into exactly one branch; there is no failure mode.
func ResolveImageURL(ref *string) string {
	if ref == nil || *ref == "" {
		return PlaceholderImage
	}
	url := *ref
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	if strings.HasPrefix(url, "/") {
		return url
	}
	return ImagePrefix + url
}
