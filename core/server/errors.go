package server

import (
	"errors"
	"fmt"
	"html"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

const errorPage = `<!DOCTYPE html>
<html>
<head><title>%d %s</title></head>
<body>
<h1>%d %s</h1>
<p>%s</p>
</body>
</html>
`

// ErrorHandler renders request errors as a minimal HTML page.
// Errors that are not *fiber.Error become 500 Internal Server Error.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := http.StatusText(code)

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	status := http.StatusText(code)
	if status == "" {
		status = "Error"
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(code).SendString(fmt.Sprintf(errorPage, code, status, code, status, html.EscapeString(message)))
}
