package http

import (
	"errors"
	"strconv"

	"resume-builder/internal/model"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// Fixed download file name for the produced artifact.
const downloadName = "resume.pdf"

type Handler struct {
	session *usecase.Session
	preview *usecase.PreviewEngine
}

func NewHandler(s *usecase.Session, p *usecase.PreviewEngine) *Handler {
	return &Handler{session: s, preview: p}
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/resume", h.GetResume)
	app.Put("/resume", h.PutResume)
	app.Get("/resume/preview", h.GetPreview)
	app.Put("/resume/preview/page", h.PutPreviewPage)
	app.Put("/resume/preview/width", h.PutPreviewWidth)
	app.Get("/resume/download", h.Download)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	return c.JSON(h.session.Document())
}

// PutResume applies a full edited document. Field-level validation failures
// surface with their path so the form can show them inline.
func (h *Handler) PutResume(c *fiber.Ctx) error {
	if err := h.session.Apply(c.Body()); err != nil {
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": ve.Message, "path": ve.Path})
		}
		var ves model.ValidationErrors
		if errors.As(err, &ves) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": ves.Error(), "fields": ves})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) GetPreview(c *fiber.Ctx) error {
	pdf, page, pages := h.preview.Snapshot()
	if pdf == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "preview not ready"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set("X-Current-Page", strconv.Itoa(page))
	c.Set("X-Page-Count", strconv.Itoa(pages))
	return c.Send(pdf)
}

type pageReq struct {
	Direction string `json:"direction"`
}

// PutPreviewPage steps the displayed page. Out-of-range requests clamp,
// they never fail.
func (h *Handler) PutPreviewPage(c *fiber.Ctx) error {
	var req pageReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	var page int
	switch req.Direction {
	case "next":
		page = h.preview.Next()
	case "prev":
		page = h.preview.Prev()
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "direction must be next or prev"})
	}
	return c.JSON(fiber.Map{"currentPage": page, "pageCount": h.preview.PageCount()})
}

type widthReq struct {
	Width int `json:"width"`
}

func (h *Handler) PutPreviewWidth(c *fiber.Ctx) error {
	var req widthReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return c.JSON(fiber.Map{"width": h.preview.SetViewportWidth(req.Width)})
}

func (h *Handler) Download(c *fiber.Ctx) error {
	pdf, _, _ := h.preview.Snapshot()
	if pdf == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no document rendered yet"})
	}
	c.Attachment(downloadName)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}

