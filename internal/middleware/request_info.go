package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const (
	IPContextKey        = "ip_address"
	UserAgentContextKey = "user_agent"
)

// RequestInfo stores the caller IP (honoring Cloudflare's header) and the
// User-Agent for later audit logging.
func RequestInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.Get("CF-Connecting-IP")
		if ip == "" {
			ip = c.IP()
		}

		c.Locals(IPContextKey, ip)
		c.Locals(UserAgentContextKey, c.Get("User-Agent"))

		return c.Next()
	}
}

func GetRequestIP(c *fiber.Ctx) string {
	ip, _ := c.Locals(IPContextKey).(string)
	return ip
}

func GetRequestUserAgent(c *fiber.Ctx) string {
	ua, _ := c.Locals(UserAgentContextKey).(string)
	return ua
}
