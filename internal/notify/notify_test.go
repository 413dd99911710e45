package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"safari-booking/internal/data/entity"
)

type recordingSender struct {
	sent []Message
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg Message) error {
	s.sent = append(s.sent, msg)
	return s.err
}

func TestBookingReceived_EscapesVisitorInput(t *testing.T) {
	sender := &recordingSender{}
	n := NewNotifier(sender, "ops@safari.test, owner@safari.test", zap.NewNop())

	err := n.BookingReceived(context.Background(), &entity.Booking{
		ID:                12,
		FullName:          "<b>Jane</b>",
		Email:             "jane@x.com",
		Phone:             "+1555",
		NumberOfTravelers: 2,
	})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, []string{"ops@safari.test", "owner@safari.test"}, msg.To)
	assert.Equal(t, "jane@x.com", msg.ReplyTo)
	assert.Contains(t, msg.Subject, "#12")
	assert.Contains(t, msg.HTML, "&lt;b&gt;Jane&lt;/b&gt;")
	assert.NotContains(t, msg.HTML, "<b>Jane</b>")
}

func TestBookingReceived_OmitsUnusableReplyTo(t *testing.T) {
	sender := &recordingSender{}
	n := NewNotifier(sender, "ops@safari.test", zap.NewNop())

	err := n.BookingReceived(context.Background(), &entity.Booking{ID: 3, FullName: "Jane", Email: "jane", Phone: "+1555"})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Empty(t, sender.sent[0].ReplyTo)
	assert.Contains(t, sender.sent[0].HTML, "jane")
}

func TestContactReceived_NoRecipientsSkipsSend(t *testing.T) {
	sender := &recordingSender{}
	n := NewNotifier(sender, " ", zap.NewNop())

	err := n.ContactReceived(context.Background(), &entity.ContactMessage{ID: 1, Name: "Ann", Message: "Hi"})

	require.NoError(t, err)
	assert.Empty(t, sender.sent)
}

func TestContactReceived_WrapsSenderError(t *testing.T) {
	boom := errors.New("smtp down")
	sender := &recordingSender{err: boom}
	n := NewNotifier(sender, "ops@safari.test", zap.NewNop())

	err := n.ContactReceived(context.Background(), &entity.ContactMessage{ID: 1, Name: "Ann", Message: "line1\nline2"})

	require.ErrorIs(t, err, boom)
	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].HTML, "line1<br>line2")
}

func TestLogSender_NeverFails(t *testing.T) {
	assert.NoError(t, NewLogSender(zap.NewNop()).Send(context.Background(), Message{Subject: "x"}))
}
