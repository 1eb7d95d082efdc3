package bot

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telefood/internal/services"
)

// Fixed reply-keyboard labels. Free text equal to one of these is routed
// before any conversation state is consulted.
const (
	labelMenu   = "🍽️ Меню"
	labelCart   = "🛒 Корзина"
	labelOrders = "📦 Мои заказы"
)

const msgStorageError = "Что-то пошло не так. Попробуйте ещё раз."

// Bot wires Telegram updates to the food-ordering services.
type Bot struct {
	api      *tgbotapi.BotAPI
	users    *services.UserService
	catalog  *services.CatalogService
	carts    *services.CartService
	orders   *services.OrderService
	states   *stateTracker
	mainMenu tgbotapi.ReplyKeyboardMarkup
}

// New creates the bot handler for the given API token.
func New(token string, users *services.UserService, catalog *services.CatalogService, carts *services.CartService, orders *services.OrderService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return &Bot{
		api:      api,
		users:    users,
		catalog:  catalog,
		carts:    carts,
		orders:   orders,
		states:   newStateTracker(),
		mainMenu: mainMenuKeyboard(),
	}, nil
}

// Username returns the bot's username from Telegram API state.
func (b *Bot) Username() string {
	return b.api.Self.UserName
}

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(labelMenu),
			tgbotapi.NewKeyboardButton(labelCart),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(labelOrders),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendWithMainMenu(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = b.mainMenu
	b.send(msg)
}

func (b *Bot) sendHTML(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	b.send(msg)
}

func (b *Bot) answerCallback(id, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}
