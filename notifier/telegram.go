// Package notifier tells the kitchen about new orders outside the dashboards.
package notifier

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"

	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/utils"
)

// Sender is the part of *tgbotapi.BotAPI used here.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Telegram struct {
	bot     Sender
	chatIDs []int64
}

// NewTelegram connects the bot. It returns nil, nil when not configured so
// callers can pass the result straight through.
func NewTelegram(token string, chatIDs []int64) (*Telegram, error) {
	if token == "" || len(chatIDs) == 0 {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	utils.InfoLogger.Printf("Telegram notifications enabled as @%s", bot.Self.UserName)
	return NewTelegramWithSender(bot, chatIDs), nil
}

func NewTelegramWithSender(bot Sender, chatIDs []int64) *Telegram {
	return &Telegram{bot: bot, chatIDs: chatIDs}
}

func (t *Telegram) NotifyNewOrder(ctx context.Context, order models.Order) error {
	text := NewOrderText(order)
	var failed []string
	for _, chatID := range t.chatIDs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := t.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			failed = append(failed, fmt.Sprintf("%d: %v", chatID, err))
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("telegram send failed for %s", strings.Join(failed, "; "))
	}
	return nil
}

func NewOrderText(order models.Order) string {
	branch := order.BranchID
	if b, ok := models.FindBranch(order.BranchID); ok {
		branch = b.Name
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "New order %s\n", shortID(order.ID))
	fmt.Fprintf(&sb, "Branch: %s\n", branch)
	fmt.Fprintf(&sb, "Customer: %s (%s)\n", order.CustomerName, order.CustomerPhone)
	fmt.Fprintf(&sb, "Total: %s (%s)", utils.FormatINR(decimal.NewFromFloat(order.TotalAmount)), order.PaymentMethod)
	return sb.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return "#" + strings.ToUpper(id[:8])
	}
	return "#" + strings.ToUpper(id)
}
