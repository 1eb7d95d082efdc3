package bot

import (
	"fmt"
	"html"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// showMenu sends one message per non-empty category, with an add button per
// product. Categories without products are skipped entirely.
func (b *Bot) showMenu(chatID int64) {
	sections, err := b.catalog.Menu()
	if err != nil {
		log.Printf("Failed to load menu: %v", err)
		b.sendText(chatID, msgStorageError)
		return
	}
	if len(sections) == 0 {
		b.sendWithMainMenu(chatID, "Меню пока пусто.")
		return
	}

	for _, section := range sections {
		var sb strings.Builder
		fmt.Fprintf(&sb, "<b>%s</b>\n", html.EscapeString(section.Category.Name))
		rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(section.Products))
		for _, product := range section.Products {
			fmt.Fprintf(&sb, "%s — %.2f₽\n", html.EscapeString(product.Name), product.Price)
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("➕ "+product.Name, fmt.Sprintf("add_%d", product.ID)),
			))
		}
		b.sendHTML(chatID, sb.String(), tgbotapi.NewInlineKeyboardMarkup(rows...))
	}
}
