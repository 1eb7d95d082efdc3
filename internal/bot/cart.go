package bot

import (
	"errors"
	"fmt"
	"html"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"

	"telefood/internal/models"
)

// showCart renders the cart with per-line subtotals and the checkout buttons.
func (b *Bot) showCart(chatID int64, user *models.User) {
	cart, err := b.carts.Get(user.ID)
	if err != nil {
		log.Printf("Failed to load cart for user %d: %v", user.ID, err)
		b.sendText(chatID, msgStorageError)
		return
	}
	if cart.Content.IsEmpty() {
		b.sendWithMainMenu(chatID, "Корзина пуста.")
		return
	}

	total, lines, err := b.orders.Total(cart.Content)
	if err != nil {
		log.Printf("Failed to total cart for user %d: %v", user.ID, err)
		b.sendText(chatID, msgStorageError)
		return
	}

	var sb strings.Builder
	sb.WriteString("<b>🛒 Корзина:</b>\n")
	for _, line := range lines {
		fmt.Fprintf(&sb, "%s x%d = %.2f₽\n", html.EscapeString(line.Product.Name), line.Quantity, line.Subtotal)
	}
	fmt.Fprintf(&sb, "\n<b>Итого: %.2f₽</b>", total)

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Оформить заказ", "checkout"),
			tgbotapi.NewInlineKeyboardButtonData("🗑 Очистить корзину", "clear_cart"),
		),
	)
	b.sendHTML(chatID, sb.String(), markup)
}

func (b *Bot) addToCart(chatID int64, callbackID string, user *models.User, productID uint) {
	if err := b.carts.AddProduct(user.ID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			b.answerCallback(callbackID, "Товар не найден.")
			return
		}
		log.Printf("Failed to add product %d for user %d: %v", productID, user.ID, err)
		b.answerCallback(callbackID, "")
		b.sendText(chatID, msgStorageError)
		return
	}
	b.answerCallback(callbackID, "Добавлено в корзину.")
}

func (b *Bot) clearCart(chatID int64, callbackID string, user *models.User) {
	if err := b.carts.Clear(user.ID); err != nil {
		log.Printf("Failed to clear cart for user %d: %v", user.ID, err)
		b.answerCallback(callbackID, "")
		b.sendText(chatID, msgStorageError)
		return
	}
	b.answerCallback(callbackID, "")
	b.sendWithMainMenu(chatID, "Корзина очищена.")
}

// checkout turns the cart into an order and asks for a payment method. An
// empty cart is not an error, just nothing to order.
func (b *Bot) checkout(chatID int64, callbackID string, user *models.User) {
	order, err := b.orders.Checkout(user.ID)
	if err != nil {
		log.Printf("Failed to checkout for user %d: %v", user.ID, err)
		b.answerCallback(callbackID, "")
		b.sendText(chatID, "Ошибка при оформлении заказа.")
		return
	}
	b.answerCallback(callbackID, "")
	if order == nil {
		b.sendWithMainMenu(chatID, "Корзина пуста.")
		return
	}
	b.sendWithMainMenu(chatID, fmt.Sprintf("✅ Заказ №%d оформлен!", order.ID))
	b.askPaymentMethod(chatID, order.ID)
}

func (b *Bot) askPaymentMethod(chatID int64, orderID uint) {
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💳 Онлайн", fmt.Sprintf("pay_online_%d", orderID)),
			tgbotapi.NewInlineKeyboardButtonData("💵 Наличными", fmt.Sprintf("pay_cash_%d", orderID)),
		),
	)
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Выберите способ оплаты для заказа №%d:", orderID))
	msg.ReplyMarkup = markup
	b.send(msg)
}

// payOnline records the paid flag and acknowledges with the placeholder
// message. No payment provider is wired in yet.
func (b *Bot) payOnline(chatID int64, callbackID string, orderID uint) {
	if err := b.orders.MarkPaid(orderID); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to mark order %d paid: %v", orderID, err)
	}
	b.answerCallback(callbackID, "")
	b.sendText(chatID, fmt.Sprintf("Вы выбрали оплату онлайн для заказа №%d. (Заглушка)", orderID))
}

func (b *Bot) payCash(chatID int64, callbackID string, orderID uint) {
	b.answerCallback(callbackID, "")
	b.sendText(chatID, fmt.Sprintf("Вы выбрали оплату наличными для заказа №%d. (Заглушка)", orderID))
}
