package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"
)

const (
	// VisitorKey is both the session key and the Locals key holding the
	// visitor id.
	VisitorKey = "visitor_id"
)

// Visitor makes sure every request belongs to an anonymous visitor whose
// id lives in the session. The id keys the visitor's search history.
// Must run after the session middleware.
func Visitor(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	id, _ := sess.Get(VisitorKey).(string)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
		sess.Set(VisitorKey, id)
	}

	c.Locals(VisitorKey, id)
	return c.Next()
}

// VisitorID returns the visitor id set by Visitor, or "" if it did not run.
func VisitorID(c fiber.Ctx) string {
	id, _ := c.Locals(VisitorKey).(string)
	return id
}
