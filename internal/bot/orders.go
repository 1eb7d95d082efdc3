package bot

import (
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telefood/internal/models"
)

// mskZone is the display timezone for order timestamps.
var mskZone = time.FixedZone("MSK", 3*60*60)

// showOrders lists the user's orders newest first, one message per order,
// with its total, its review if present, and a review button.
func (b *Bot) showOrders(chatID int64, user *models.User) {
	orders, err := b.orders.OrdersByUser(user.ID)
	if err != nil {
		log.Printf("Failed to load orders for user %d: %v", user.ID, err)
		b.sendText(chatID, msgStorageError)
		return
	}
	if len(orders) == 0 {
		b.sendWithMainMenu(chatID, "У вас пока нет заказов.")
		return
	}

	for _, order := range orders {
		total, lines, err := b.orders.Total(order.Content)
		if err != nil {
			log.Printf("Failed to total order %d: %v", order.ID, err)
			b.sendText(chatID, msgStorageError)
			return
		}

		var sb strings.Builder
		created := order.CreatedAt.In(mskZone).Format("02.01.2006 15:04")
		fmt.Fprintf(&sb, "<b>Заказ №%d</b> от %s (мск)\n", order.ID, created)
		for _, line := range lines {
			fmt.Fprintf(&sb, "%s x%d = %.2f₽\n", html.EscapeString(line.Product.Name), line.Quantity, line.Subtotal)
		}
		fmt.Fprintf(&sb, "Итого: %.2f₽\n", total)
		if order.Review != "" {
			fmt.Fprintf(&sb, "💬 Отзыв: <i>«%s»</i>", html.EscapeString(order.Review))
		}

		markup := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("✍️ Оставить отзыв", fmt.Sprintf("review_%d", order.ID)),
			),
		)
		b.sendHTML(chatID, sb.String(), markup)
	}
}
