package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"telefood/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// OrderHandler handles HTTP requests for orders on the admin API.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/export", h.HandleExportOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Patch("/:id/paid", h.HandleMarkPaid)
}

// OrderView is an order with its total computed against the current catalog.
type OrderView struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Products  []uint    `json:"products"`
	CreatedAt time.Time `json:"created_at"`
	Review    string    `json:"review"`
	Paid      bool      `json:"paid"`
	Total     float64   `json:"total"`
}

// HandleGetOrders lists all orders with their totals, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		total, _, err := h.service.Total(order.Content)
		if err != nil {
			log.Printf("Error computing total for order %d: %v", order.ID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not compute order totals",
				"error":   err.Error(),
			})
		}
		views = append(views, OrderView{
			ID:        order.ID,
			UserID:    order.UserID,
			Products:  order.Content.Products,
			CreatedAt: order.CreatedAt,
			Review:    order.Review,
			Paid:      order.Paid,
			Total:     total,
		})
	}
	return c.JSON(views)
}

// HandleGetOrderByID retrieves a single order.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Order id must be numeric",
			"error":   err.Error(),
		})
	}

	order, err := h.service.GetOrderByID(uint(id))
	if err != nil {
		log.Printf("Error getting order %d: %v", id, err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with id %d not found", id),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}

// HandleMarkPaid sets the paid flag on an order.
func (h *OrderHandler) HandleMarkPaid(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Order id must be numeric",
			"error":   err.Error(),
		})
	}

	if err := h.service.MarkPaid(uint(id)); err != nil {
		log.Printf("Error marking order %d paid: %v", id, err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with id %d not found", id),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update order",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %d marked as paid", id),
	})
}

// HandleExportOrders streams all orders as an Excel workbook.
func (h *OrderHandler) HandleExportOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting orders for export: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Orders"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"ID", "User ID", "Created At", "Items", "Total", "Paid", "Review"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, order := range orders {
		total, lines, err := h.service.Total(order.Content)
		if err != nil {
			log.Printf("Error computing total for order %d: %v", order.ID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not compute order totals",
				"error":   err.Error(),
			})
		}
		items := make([]string, 0, len(lines))
		for _, line := range lines {
			items = append(items, fmt.Sprintf("%s x%d", line.Product.Name, line.Quantity))
		}
		values := []interface{}{
			order.ID,
			order.UserID,
			order.CreatedAt.Format(time.RFC3339),
			strings.Join(items, ", "),
			total,
			order.Paid,
			order.Review,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("Error writing orders workbook: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not build export file",
			"error":   err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="orders.xlsx"`)
	return c.Send(buf.Bytes())
}
