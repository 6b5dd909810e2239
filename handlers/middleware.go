package handlers

import "github.com/gofiber/fiber/v2"

// CORS stamps the permissive cross-origin headers on every response and
// answers OPTIONS preflight with an empty 204 before the router runs.
// The stock cors middleware only emits Allow-Methods/Allow-Headers on
// preflight responses, so the headers are set by hand here.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", "*")
		c.Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")
		c.Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}
