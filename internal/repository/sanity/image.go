package sanity

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"

	"bakehouse-api/internal/repository"
)

// Asset refs look like image-<assetId>-<width>x<height>-<format>.
var imageRefPattern = regexp.MustCompile(`^image-([A-Za-z0-9]+)-(\d+x\d+)-([a-z0-9]+)$`)

// ImageURL turns a stored asset reference into a CDN URL cropped to the
// requested dimensions.
func (c *Client) ImageURL(ref string, width, height int) (string, error) {
	m := imageRefPattern.FindStringSubmatch(ref)
	if m == nil {
		return "", errors.Errorf("malformed image asset ref %q", ref)
	}
	return fmt.Sprintf(
		"https://cdn.sanity.io/images/%s/%s/%s-%s.%s?w=%d&h=%d&fit=crop",
		c.projectID, c.dataset, m[1], m[2], m[3], width, height,
	), nil
}

var _ repository.ImageURLBuilder = (*Client)(nil)
