package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"telefood/internal/models"
	"telefood/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxReviewLen caps stored review text. Longer input is truncated, not
// rejected.
const maxReviewLen = 500

// OrderLine is one priced line of a cart or order: a distinct product with
// its quantity and subtotal.
type OrderLine struct {
	Product  models.Product
	Quantity int
	Subtotal float64
}

// OrderEventPublisher publishes order lifecycle events to the message queue.
type OrderEventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
}

// OrderService handles checkout, order listing, totals and reviews.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	catalogRepo repositories.CatalogRepository
	events      OrderEventPublisher
}

// NewOrderService creates a new OrderService. The events publisher may be nil
// when no message queue is configured.
func NewOrderService(orderRepo repositories.OrderRepository, catalogRepo repositories.CatalogRepository, events OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		events:      events,
	}
}

// Checkout snapshots the user's cart into an order and resets the cart. A
// (nil, nil) result means the cart was empty and nothing happened. On success
// an order.created event is published best effort; a queue failure is logged
// and never fails the checkout.
func (s *OrderService) Checkout(userID uint) (*models.Order, error) {
	order, err := s.orderRepo.Checkout(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to checkout cart for user %d: %w", userID, err)
	}
	if order == nil {
		return nil, nil
	}

	if s.events != nil {
		event := map[string]interface{}{
			"event_id":   uuid.New().String(),
			"order_id":   order.ID,
			"user_id":    order.UserID,
			"products":   order.Content.Products,
			"created_at": order.CreatedAt.Format(time.RFC3339),
		}
		if err := s.events.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: failed to publish order created event for order %d: %v", order.ID, err)
		}
	}
	return order, nil
}

// Total prices a content sequence: repeated ids count as quantity, prices are
// looked up at read time. Ids missing from the catalog are skipped silently.
// Lines keep the first-seen order of distinct ids.
func (s *OrderService) Total(content models.CartContent) (float64, []OrderLine, error) {
	counts := make(map[uint]int, len(content.Products))
	var seen []uint
	for _, id := range content.Products {
		if counts[id] == 0 {
			seen = append(seen, id)
		}
		counts[id]++
	}

	var total float64
	lines := make([]OrderLine, 0, len(seen))
	for _, id := range seen {
		product, err := s.catalogRepo.GetProductByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return 0, nil, err
		}
		subtotal := product.Price * float64(counts[id])
		lines = append(lines, OrderLine{Product: *product, Quantity: counts[id], Subtotal: subtotal})
		total += subtotal
	}
	return total, lines, nil
}

// OrdersByUser retrieves the user's orders, newest first.
func (s *OrderService) OrdersByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// GetAllOrders retrieves all orders for the admin API.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order.
func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// AttachReview trims the text, truncates it to 500 characters and overwrites
// any previous review on the order. Unknown orders report not found.
func (s *OrderService) AttachReview(orderID uint, text string) error {
	text = strings.TrimSpace(text)
	if runes := []rune(text); len(runes) > maxReviewLen {
		text = string(runes[:maxReviewLen])
	}
	return s.orderRepo.UpdateReview(orderID, text)
}

// MarkPaid sets the order's paid flag.
func (s *OrderService) MarkPaid(orderID uint) error {
	return s.orderRepo.UpdatePaid(orderID, true)
}
