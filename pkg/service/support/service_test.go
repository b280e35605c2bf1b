package support_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/gibraltarbank/gibraltar/pkg/config"
	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/service/support"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *support.Service {
	return support.New(&config.Support{
		AgentName:   "Sarah",
		TypingDelay: 1500 * time.Millisecond,
		MaxMessages: 20,
	}, slog.Default())
}

func TestStartChat_SeedsWelcome(t *testing.T) {
	svc := newService()
	userID := uuid.New()

	chat := svc.StartChat(userID)
	require.Len(t, chat.Messages, 1)
	assert.Equal(t, support.SenderSupport, chat.Messages[0].SenderType)
	assert.Contains(t, chat.Messages[0].Body, "Hello! I'm Sarah from Gibraltar Support.")
	assert.Equal(t, userID, chat.UserID)
}

func TestAsk_AppendsQuestionAndScriptedAnswer(t *testing.T) {
	svc := newService()
	userID := uuid.New()
	chat := svc.StartChat(userID)

	updated, err := svc.Ask(userID, chat.ID, "qa-1")
	require.NoError(t, err)
	require.Len(t, updated.Messages, 3)

	question := updated.Messages[1]
	assert.Equal(t, support.SenderUser, question.SenderType)
	assert.Equal(t, "Pending Mobile Deposit", question.Subject)
	assert.Equal(t, "Why is my mobile deposit still pending?", question.Body)

	answer := updated.Messages[2]
	assert.Equal(t, support.SenderSupport, answer.SenderType)
	assert.Equal(t, "Re: Pending Mobile Deposit", answer.Subject)
	assert.Contains(t, answer.Body, "typically processed within 1 business day")
	assert.EqualValues(t, 1500, answer.TypingDelayMS)
}

func TestAsk_UnknownTopic(t *testing.T) {
	svc := newService()
	userID := uuid.New()
	chat := svc.StartChat(userID)

	_, err := svc.Ask(userID, chat.ID, "qa-99")
	assert.ErrorIs(t, err, domain.ErrChatNotFound)
}

func TestSay_RepliesWithTicket(t *testing.T) {
	svc := newService()
	userID := uuid.New()
	chat := svc.StartChat(userID)

	updated, err := svc.Say(userID, chat.ID, "I lost my debit card")
	require.NoError(t, err)
	require.Len(t, updated.Messages, 3)

	assert.Equal(t, "I lost my debit card", updated.Messages[1].Body)
	reply := updated.Messages[2]
	assert.Equal(t, "Re: Customer Inquiry", reply.Subject)
	assert.Regexp(t, `your support ticket is #\d{5}\.$`, reply.Body)
}

func TestSay_BlankBodyIsNoOp(t *testing.T) {
	svc := newService()
	userID := uuid.New()
	chat := svc.StartChat(userID)

	updated, err := svc.Say(userID, chat.ID, "   ")
	require.NoError(t, err)
	assert.Len(t, updated.Messages, 1)
}

func TestMessageLimit(t *testing.T) {
	svc := support.New(&config.Support{
		AgentName:   "Sarah",
		TypingDelay: time.Millisecond,
		MaxMessages: 5,
	}, slog.Default())
	userID := uuid.New()
	chat := svc.StartChat(userID)

	// Welcome plus two exchanges fills the five-message cap.
	_, err := svc.Say(userID, chat.ID, "first")
	require.NoError(t, err)
	_, err = svc.Say(userID, chat.ID, "second")
	require.NoError(t, err)

	_, err = svc.Say(userID, chat.ID, "third")
	assert.ErrorIs(t, err, domain.ErrChatLimitReached)
	_, err = svc.Ask(userID, chat.ID, "qa-2")
	assert.ErrorIs(t, err, domain.ErrChatLimitReached)
}

func TestOwnershipEnforced(t *testing.T) {
	svc := newService()
	owner := uuid.New()
	chat := svc.StartChat(owner)
	intruder := uuid.New()

	_, err := svc.History(intruder, chat.ID)
	assert.ErrorIs(t, err, domain.ErrChatNotFound)
	_, err = svc.Say(intruder, chat.ID, "hello")
	assert.ErrorIs(t, err, domain.ErrChatNotFound)
	err = svc.Reset(intruder, chat.ID)
	assert.ErrorIs(t, err, domain.ErrChatNotFound)
}

func TestReset_DiscardsConversation(t *testing.T) {
	svc := newService()
	userID := uuid.New()
	chat := svc.StartChat(userID)

	require.NoError(t, svc.Reset(userID, chat.ID))
	_, err := svc.History(userID, chat.ID)
	assert.ErrorIs(t, err, domain.ErrChatNotFound)
}

func TestSnapshotIsolation(t *testing.T) {
	svc := newService()
	userID := uuid.New()
	chat := svc.StartChat(userID)

	chat.Messages[0].Body = "tampered"
	fresh, err := svc.History(userID, chat.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "tampered", fresh.Messages[0].Body)
}
