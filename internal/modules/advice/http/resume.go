package http

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const maxResumeSize = 5 * 1024 * 1024 // 5MB

func (m *Module) uploadResume(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	fh, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No file uploaded"})
	}
	if fh.Size > maxResumeSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "File too large (5MB limit)"})
	}
	if strings.ToLower(filepath.Ext(fh.Filename)) != ".pdf" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Only PDF files are allowed"})
	}

	// Text extraction is simulated; a PDF parser would slot in here.
	text := extractTextFromPDF()

	analysis, err := m.svc.AnalyzeResume(c.Context(), userID, text)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to process resume"})
	}
	return c.JSON(fiber.Map{
		"message":  "Resume processed successfully",
		"analysis": analysis,
	})
}

func extractTextFromPDF() string {
	return `
John Doe
Software Engineer
john.doe@email.com
(555) 123-4567

EXPERIENCE
Senior Software Engineer - Tech Corp (2020-2023)
- Developed web applications using React, Node.js, and MongoDB
- Led a team of 5 developers
- Implemented CI/CD pipelines using Docker and AWS

Software Engineer - StartupXYZ (2018-2020)
- Built full-stack applications
- Worked with JavaScript, Python, and SQL

EDUCATION
Bachelor of Science in Computer Science
University of Technology (2014-2018)

SKILLS
JavaScript, React, Node.js, Python, MongoDB, AWS, Docker, Git
`
}
