package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telefood/internal/models"
)

// Start runs the polling loop until the context is cancelled. Updates are
// handled one at a time: the loop is the serialization point for all cart
// read-modify-writes, so two taps from the same user can never interleave.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	log.Printf("Bot @%s started polling", b.Username())
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(update.Message)
	}
}

// handleMessage routes one incoming message. Commands and the fixed keyboard
// labels win over conversation state; only leftover free text is consumed by
// an awaiting chat.
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	if message.From == nil || message.Chat == nil {
		return
	}
	chatID := message.Chat.ID

	user, err := b.users.Resolve(message.From.ID, message.From.FirstName)
	if err != nil {
		log.Printf("Failed to resolve user %d: %v", message.From.ID, err)
		b.sendText(chatID, msgStorageError)
		return
	}

	if message.IsCommand() {
		b.handleCommand(chatID, user, message.Command())
		return
	}

	text := strings.TrimSpace(message.Text)
	switch text {
	case labelMenu:
		b.showMenu(chatID)
		return
	case labelCart:
		b.showCart(chatID, user)
		return
	case labelOrders:
		b.showOrders(chatID, user)
		return
	}

	if strings.HasPrefix(text, "Отзыв") {
		if orderID, ok := parseReviewRequest(text); ok {
			b.startReview(chatID, orderID)
		} else {
			b.sendText(chatID, "Формат: Отзыв <номер_заказа>")
		}
		return
	}

	if reply, consumed := b.consumeAwaitedText(chatID, user, text); consumed {
		b.sendWithMainMenu(chatID, reply)
		return
	}

	b.sendWithMainMenu(chatID, "Выберите пункт меню.")
}

func (b *Bot) handleCommand(chatID int64, user *models.User, command string) {
	switch command {
	case "start":
		log.Printf("User %s (id %d) started the bot", user.Name, user.ID)
		b.sendWithMainMenu(chatID, fmt.Sprintf("Добро пожаловать, %s, в TeleFood!", user.Name))
	case "feedback":
		b.startFeedback(chatID)
	default:
		b.sendText(chatID, "Неизвестная команда.")
	}
}

// handleCallback dispatches one inline button tap. Every accepted callback is
// answered so the client stops showing a spinner.
func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	if query.From == nil || query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID

	action, err := parseCallback(query.Data)
	if err != nil {
		log.Printf("Rejected callback from %d: %v", query.From.ID, err)
		b.answerCallback(query.ID, "")
		return
	}

	user, err := b.users.Resolve(query.From.ID, query.From.FirstName)
	if err != nil {
		log.Printf("Failed to resolve user %d: %v", query.From.ID, err)
		b.answerCallback(query.ID, "")
		b.sendText(chatID, msgStorageError)
		return
	}

	switch action.Kind {
	case actionAddProduct:
		b.addToCart(chatID, query.ID, user, action.ID)
	case actionCheckout:
		b.checkout(chatID, query.ID, user)
	case actionClearCart:
		b.clearCart(chatID, query.ID, user)
	case actionPayOnline:
		b.payOnline(chatID, query.ID, action.ID)
	case actionPayCash:
		b.payCash(chatID, query.ID, action.ID)
	case actionReview:
		b.answerCallback(query.ID, "")
		b.startReview(chatID, action.ID)
	}
}

// parseReviewRequest recognizes the free-text review trigger "Отзыв <номер>".
func parseReviewRequest(text string) (uint, bool) {
	rest, ok := strings.CutPrefix(text, "Отзыв ")
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(strings.TrimSpace(rest), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
