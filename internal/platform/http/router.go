package http

import "github.com/gofiber/fiber/v2"

// Module is implemented by each feature module; Register mounts its routes
// under the shared /api prefix.
type Module interface {
	Register(r fiber.Router)
}
