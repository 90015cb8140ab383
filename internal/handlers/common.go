package handlers

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// pathParam extracts and percent-decodes a route parameter, so hobby names
// with spaces survive the round trip through a URL path.
func pathParam(c *fiber.Ctx, key string) (string, error) {
	raw := c.Params(key)
	if raw == "" {
		return "", fmt.Errorf("missing path parameter %q", key)
	}

	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("invalid path parameter %q: %w", key, err)
	}
	return decoded, nil
}
