package handlers

import (
	"bytes"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/Isaiahshap/pulse/internal/models"
	"github.com/Isaiahshap/pulse/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type scheduleService interface {
	Days() []string
	Slots() []string
	Lookup(day, slot string) []models.ScheduleClass
	Day(day string) models.DaySchedule
	Week() []models.DaySchedule
	ExportWorkbook(w io.Writer) error
}

type ScheduleHandler struct {
	service scheduleService
}

func NewScheduleHandler(service scheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

func (h *ScheduleHandler) Week(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"days":     h.service.Days(),
		"slots":    h.service.Slots(),
		"schedule": h.service.Week(),
	})
}

// Day never fails: unknown names answer with three empty slots.
func (h *ScheduleHandler) Day(c *fiber.Ctx) error {
	return c.JSON(h.service.Day(canonicalDay(c.Params("day"))))
}

func (h *ScheduleHandler) Slot(c *fiber.Ctx) error {
	day := canonicalDay(c.Params("day"))
	slot := c.Params("slot")
	if canonical, ok := services.CanonicalSlot(slot); ok {
		slot = canonical
	}

	return c.JSON(fiber.Map{
		"day":     day,
		"slot":    slot,
		"classes": h.service.Lookup(day, slot),
	})
}

func (h *ScheduleHandler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.ExportWorkbook(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to export schedule"})
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pulse-schedule.xlsx"`)
	return c.Send(buf.Bytes())
}

func canonicalDay(raw string) string {
	if day, ok := services.CanonicalDay(raw); ok {
		return day
	}
	return raw
}
