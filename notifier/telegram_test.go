package notifier_test

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/notifier"
)

type fakeSender struct {
	sent   []tgbotapi.MessageConfig
	failOn int64
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	msg := c.(tgbotapi.MessageConfig)
	if msg.ChatID == f.failOn {
		return tgbotapi.Message{}, errors.New("chat not found")
	}
	f.sent = append(f.sent, msg)
	return tgbotapi.Message{}, nil
}

func sampleOrder() models.Order {
	return models.Order{
		ID:            "3f2a9c1e-5b7d-4e2a-9c1e-5b7d4e2a9c1e",
		CustomerName:  "Asha Rao",
		CustomerPhone: "9876543210",
		BranchID:      "br2",
		TotalAmount:   1365,
		PaymentMethod: models.PaymentCashOnDelivery,
	}
}

func TestNewOrderText(t *testing.T) {
	text := notifier.NewOrderText(sampleOrder())
	assert.Contains(t, text, "New order #3F2A9C1E")
	assert.Contains(t, text, "Branch: Jubilee Hills")
	assert.Contains(t, text, "Asha Rao (9876543210)")
	assert.Contains(t, text, "₹1,365.00 (Cash on Delivery)")
}

func TestNotifyNewOrder(t *testing.T) {
	sender := &fakeSender{}
	tg := notifier.NewTelegramWithSender(sender, []int64{11, 22})

	require.NoError(t, tg.NotifyNewOrder(context.Background(), sampleOrder()))
	require.Len(t, sender.sent, 2)
	assert.Equal(t, int64(11), sender.sent[0].ChatID)
	assert.Equal(t, int64(22), sender.sent[1].ChatID)
}

func TestNotifyNewOrderReportsFailedChats(t *testing.T) {
	sender := &fakeSender{failOn: 22}
	tg := notifier.NewTelegramWithSender(sender, []int64{11, 22, 33})

	err := tg.NotifyNewOrder(context.Background(), sampleOrder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "22")
	assert.Len(t, sender.sent, 2)
}

func TestNewTelegramDisabledWithoutConfig(t *testing.T) {
	tg, err := notifier.NewTelegram("", []int64{1})
	assert.NoError(t, err)
	assert.Nil(t, tg)

	tg, err = notifier.NewTelegram("token", nil)
	assert.NoError(t, err)
	assert.Nil(t, tg)
}
