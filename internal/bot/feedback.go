package bot

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"telefood/internal/models"
)

// startFeedback puts the chat into the awaiting-feedback state; the next free
// text message is consumed as general feedback.
func (b *Bot) startFeedback(chatID int64) {
	b.states.set(chatID, chatState{kind: stateAwaitingFeedback})
	b.sendText(chatID, "Напишите ваш отзыв о сервисе:")
}

// startReview puts the chat into the awaiting-review state for one order.
// The order is not checked here; a bad id surfaces when the review text
// arrives.
func (b *Bot) startReview(chatID int64, orderID uint) {
	b.states.set(chatID, chatState{kind: stateAwaitingReview, orderID: orderID})
	b.sendText(chatID, fmt.Sprintf("Напишите отзыв для заказа №%d:", orderID))
}

// consumeAwaitedText resolves a free-text message against the chat's
// conversation state. The state entry is removed whatever the outcome, so a
// failed review attempt does not leave the chat stuck. Returns the reply to
// send and whether the text was consumed.
func (b *Bot) consumeAwaitedText(chatID int64, user *models.User, text string) (string, bool) {
	state, ok := b.states.pop(chatID)
	if !ok {
		return "", false
	}

	switch state.kind {
	case stateAwaitingFeedback:
		log.Printf("Feedback from %s (id %d): %s", user.Name, user.ID, text)
		return "Спасибо за отзыв!", true
	case stateAwaitingReview:
		if err := b.orders.AttachReview(state.orderID, text); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Sprintf("Заказ №%d не найден.", state.orderID), true
			}
			log.Printf("Failed to attach review to order %d: %v", state.orderID, err)
			return msgStorageError, true
		}
		return "Спасибо за отзыв!", true
	}
	return "", false
}
