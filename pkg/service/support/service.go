// Package support implements the in-app support chat. Conversations are
// held in memory per session; replies come from a canned assistance catalog
// or a generic ticket acknowledgement.
package support

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/gibraltarbank/gibraltar/pkg/config"
	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/google/uuid"
)

// SenderType identifies who sent a chat message.
type SenderType string

const (
	SenderUser    SenderType = "User"
	SenderSupport SenderType = "Support"
)

// Message is one entry in a support conversation.
type Message struct {
	ID         uuid.UUID  `json:"id"`
	ChatID     uuid.UUID  `json:"chat_id"`
	Subject    string     `json:"subject"`
	Body       string     `json:"body"`
	SenderType SenderType `json:"sender_type"`
	SentAt     time.Time  `json:"sent_at"`
	// TypingDelayMS tells clients how long to show the typing indicator
	// before rendering a support reply.
	TypingDelayMS int64 `json:"typing_delay_ms,omitempty"`
}

// Chat is one support conversation.
type Chat struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Messages []Message `json:"messages"`
}

// Topic is one canned assistance entry.
type Topic struct {
	ID       string `json:"id"`
	Subject  string `json:"subject"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Topics is the quick assistance catalog, in display order.
var Topics = []Topic{
	{
		ID:       "qa-1",
		Subject:  "Pending Mobile Deposit",
		Question: "Why is my mobile deposit still pending?",
		Answer:   "Mobile check deposits with Gibraltar are typically processed within 1 business day. However, some deposits may take longer depending on the time of submission, check amount, and account history. If your deposit is still pending after 24 hours, check for email updates or contact Gibraltar customer service at 1-800-935-9935.",
	},
	{
		ID:       "qa-2",
		Subject:  "Wire Transfer Timing",
		Question: "How long does a wire transfer take with Gibraltar?",
		Answer:   "Domestic wire transfers are typically completed the same business day if submitted before the cut-off time (4 PM ET). International wires may take 1-5 business days depending on the recipient's bank and country. Gibraltar provides tracking for wire transfers in your online banking portal under 'Account Activity.'",
	},
	{
		ID:       "qa-3",
		Subject:  "Bank Statement Access",
		Question: "How do I view or download my Gibraltar bank statements?",
		Answer:   "To access your statements:\n\n1. Log in to the Gibraltar Mobile App or online at Gibraltar.com\n2. Select your account\n3. Click on 'Download' Transaction history \n\nYou can access up to 7 years of past statements.",
	},
	{
		ID:       "qa-4",
		Subject:  "Transaction Dispute",
		Question: "How do I dispute a charge on my Gibraltar account?",
		Answer:   "To dispute a charge:\n\n1. Log in to your Gibraltar account\n2. Go to the transaction in question\n3. Click 'Messages' and follow the prompts\n\nAlternatively, you can call Gibraltar customer service or visit a local branch. Most disputes are resolved within 10 business days.",
	},
	{
		ID:       "qa-5",
		Subject:  "ATM Withdrawal Limit",
		Question: "What is my daily ATM withdrawal limit with Gibraltar?",
		Answer:   "Gibraltar ATM withdrawal limits vary based on your account type:\n\n- Gibraltar Total Checking: Up to $500/day\n- Gibraltar Premier Plus Checking: Up to $1,000/day\n- Gibraltar Private Client: Higher limits may apply\n\nYou can view or request a limit increase by calling Gibraltar support or visiting a branch.",
	},
	{
		ID:       "qa-7",
		Subject:  "Direct Deposit Setup",
		Question: "How do I set up direct deposit with Gibraltar?",
		Answer:   "To set up direct deposit:\n\n1. Log in to your Gibraltar account\n2. You'll need your Gibraltar routing number and account number, which are both available in your online banking profile.",
	},
	{
		ID:       "qa-8",
		Subject:  "Overdraft Protection",
		Question: "Does Gibraltar offer overdraft protection?",
		Answer:   "Yes, Gibraltar offers overdraft protection by linking a savings account or credit card to your checking account. You can enroll in overdraft services via the Gibraltar app or website. Standard overdraft fees apply unless you opt out of coverage for certain transactions.",
	},
}

// Service keeps conversations in memory, guarded by a single mutex. The
// chat is deliberately ephemeral: a restart clears every conversation.
type Service struct {
	cfg    *config.Support
	logger *slog.Logger

	mu    sync.Mutex
	chats map[uuid.UUID]*Chat
}

// New creates a support chat service.
func New(cfg *config.Support, logger *slog.Logger) *Service {
	return &Service{
		cfg:    cfg,
		logger: logger,
		chats:  make(map[uuid.UUID]*Chat),
	}
}

// StartChat opens a fresh conversation for the user, seeded with the
// welcome message.
func (s *Service) StartChat(userID uuid.UUID) *Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat := &Chat{ID: uuid.New(), UserID: userID}
	chat.Messages = append(chat.Messages, Message{
		ID:         uuid.New(),
		ChatID:     chat.ID,
		Subject:    "Welcome to Support",
		Body:       fmt.Sprintf("Hello! I'm %s from Gibraltar Support. Please select a topic below for immediate assistance, or type your question for personalized help.", s.cfg.AgentName),
		SenderType: SenderSupport,
		SentAt:     time.Now().UTC(),
	})
	s.chats[chat.ID] = chat
	s.logger.Debug("chat started", "chat_id", chat.ID, "user_id", userID)
	return snapshot(chat)
}

// Ask appends the canned question identified by topicID and its scripted
// answer to the conversation.
func (s *Service) Ask(
	userID, chatID uuid.UUID,
	topicID string,
) (*Chat, error) {
	topic, ok := findTopic(topicID)
	if !ok {
		return nil, domain.ErrChatNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	chat, err := s.chatFor(userID, chatID)
	if err != nil {
		return nil, err
	}
	if err := s.checkLimit(chat); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	chat.Messages = append(chat.Messages,
		Message{
			ID:         uuid.New(),
			ChatID:     chat.ID,
			Subject:    topic.Subject,
			Body:       topic.Question,
			SenderType: SenderUser,
			SentAt:     now,
		},
		Message{
			ID:            uuid.New(),
			ChatID:        chat.ID,
			Subject:       "Re: " + topic.Subject,
			Body:          topic.Answer,
			SenderType:    SenderSupport,
			SentAt:        now,
			TypingDelayMS: s.cfg.TypingDelay.Milliseconds(),
		},
	)
	return snapshot(chat), nil
}

// Say appends a free-text message and a ticket acknowledgement reply.
func (s *Service) Say(
	userID, chatID uuid.UUID,
	body string,
) (*Chat, error) {
	body = strings.TrimSpace(body)

	s.mu.Lock()
	defer s.mu.Unlock()

	chat, err := s.chatFor(userID, chatID)
	if err != nil {
		return nil, err
	}
	if body == "" {
		return snapshot(chat), nil
	}
	if err := s.checkLimit(chat); err != nil {
		return nil, err
	}

	ticket := 10000 + rand.Intn(90000)
	reply := fmt.Sprintf("Thank you for your message. A Gibraltar representative will respond shortly. For reference, your support ticket is #%d.", ticket)

	now := time.Now().UTC()
	chat.Messages = append(chat.Messages,
		Message{
			ID:         uuid.New(),
			ChatID:     chat.ID,
			Subject:    "Customer Inquiry",
			Body:       body,
			SenderType: SenderUser,
			SentAt:     now,
		},
		Message{
			ID:            uuid.New(),
			ChatID:        chat.ID,
			Subject:       "Re: Customer Inquiry",
			Body:          reply,
			SenderType:    SenderSupport,
			SentAt:        now,
			TypingDelayMS: s.cfg.TypingDelay.Milliseconds(),
		},
	)
	return snapshot(chat), nil
}

// History returns the conversation, enforcing ownership.
func (s *Service) History(userID, chatID uuid.UUID) (*Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat, err := s.chatFor(userID, chatID)
	if err != nil {
		return nil, err
	}
	return snapshot(chat), nil
}

// Reset discards the conversation so the client can start a new one.
func (s *Service) Reset(userID, chatID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.chatFor(userID, chatID); err != nil {
		return err
	}
	delete(s.chats, chatID)
	return nil
}

// chatFor resolves a chat and enforces ownership. Callers must hold the
// mutex.
func (s *Service) chatFor(userID, chatID uuid.UUID) (*Chat, error) {
	chat, ok := s.chats[chatID]
	if !ok || chat.UserID != userID {
		return nil, domain.ErrChatNotFound
	}
	return chat, nil
}

// checkLimit enforces the per-conversation message cap. Callers must hold
// the mutex.
func (s *Service) checkLimit(chat *Chat) error {
	if len(chat.Messages) >= s.cfg.MaxMessages {
		return fmt.Errorf(
			"you've reached the maximum message limit (%d), please start a new chat: %w",
			s.cfg.MaxMessages, domain.ErrChatLimitReached,
		)
	}
	return nil
}

func snapshot(chat *Chat) *Chat {
	out := &Chat{ID: chat.ID, UserID: chat.UserID}
	out.Messages = make([]Message, len(chat.Messages))
	copy(out.Messages, chat.Messages)
	return out
}

func findTopic(id string) (Topic, bool) {
	for _, t := range Topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}
