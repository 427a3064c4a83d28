package handlers

import (
	"github.com/gofiber/fiber/v3"

	"brewfinder/internal/search"
)

// isHTMX reports whether the request was issued by HTMX and expects a
// fragment instead of a full page.
func isHTMX(c fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

// BindSearchForm reads the search form from the body of a POST or the
// query string otherwise. The app's struct validator runs as part of
// binding.
func BindSearchForm(c fiber.Ctx) (search.Form, error) {
	var form search.Form

	var err error
	if c.Method() == fiber.MethodPost {
		err = c.Bind().Form(&form)
	} else {
		err = c.Bind().Query(&form)
	}
	if err != nil {
		return search.Form{}, fiber.NewError(fiber.StatusBadRequest, "Invalid search form")
	}

	return form, nil
}
