package conversation

import (
	"strings"
	"time"

	"chatdeck/internal/logger"
)

// DefaultReplyDelay is the simulated latency before an assistant reply
// resolves.
const DefaultReplyDelay = 1500 * time.Millisecond

// PendingReply is a scheduled assistant turn. The caller delivers it back to
// the store via Resolve after Delay has elapsed. The epoch captured at submit
// time lets the store discard replies whose conversation was truncated in
// the meantime.
type PendingReply struct {
	Seq   uint64
	Epoch uint64
	Delay time.Duration

	reply Reply
	msg   Message
}

// Store owns the ordered message log for one active conversation and the
// simulated-reply machinery around it.
//
// User-message appends are synchronous and strictly ordered by call order.
// Assistant replies resolve asynchronously; the store buffers out-of-order
// resolutions and appends them in submission order, so overlapping reply
// timers can never interleave.
type Store struct {
	id       string
	messages []Message
	code     string // running code buffer for the code panel

	epoch    uint64 // bumped on every truncation; invalidates pending replies
	nextSeq  uint64 // sequence assigned to the next submitted reply
	flushSeq uint64 // sequence of the next reply to append
	stash    map[uint64]PendingReply

	delay time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithReplyDelay overrides the simulated reply latency.
func WithReplyDelay(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.delay = d
		}
	}
}

// WithSeed preloads the conversation with messages (the demo opening
// exchange). Seeded code messages also prime the code buffer.
func WithSeed(messages []Message) Option {
	return func(s *Store) {
		s.Reset(messages)
	}
}

// NewStore creates a conversation store for the given conversation ID.
func NewStore(id string, opts ...Option) *Store {
	s := &Store{
		id:    id,
		stash: make(map[uint64]PendingReply),
		delay: DefaultReplyDelay,
		code:  LandingPageHTML,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the conversation ID.
func (s *Store) ID() string {
	return s.id
}

// Messages returns a copy of the message log in display order.
func (s *Store) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages in the log.
func (s *Store) Len() int {
	return len(s.messages)
}

// Typing reports whether at least one assistant reply is outstanding.
func (s *Store) Typing() bool {
	return s.flushSeq < s.nextSeq
}

// Code returns the running code buffer shown in the code panel.
func (s *Store) Code() string {
	return s.code
}

// Reset replaces the entire log with seed messages and cancels anything
// pending. Used when switching or restarting conversations.
func (s *Store) Reset(messages []Message) {
	s.messages = make([]Message, len(messages))
	copy(s.messages, messages)
	s.invalidatePending()

	// Prime the code buffer from the most recent seeded code message so the
	// CSS branch of reply derivation has content to work with.
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].IsCode() {
			s.code = s.messages[i].Content
			break
		}
	}
}

// Submit appends a user message and returns the pending simulated reply for
// the caller to schedule. Empty or whitespace-only input is rejected with a
// nil pending reply and no state change.
func (s *Store) Submit(text string) *PendingReply {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	s.messages = append(s.messages, NewUserMessage(text))

	reply := DeriveReply(text, s.code)
	pending := &PendingReply{
		Seq:   s.nextSeq,
		Epoch: s.epoch,
		Delay: s.delay,
		reply: reply,
		msg:   NewAssistantMessage(reply.Content, reply.Type, reply.Language),
	}
	s.nextSeq++

	logger.Debug("Conversation %s: submitted seq=%d epoch=%d type=%s panel=%q",
		s.id, pending.Seq, pending.Epoch, reply.Type, reply.Panel)
	return pending
}

// Resolve delivers a pending reply back to the store after its delay.
// Stale replies (submitted before a truncation) are discarded. Replies that
// arrive ahead of an earlier outstanding one are stashed and appended once
// their turn comes, so the returned panel requests are always in submission
// order.
func (s *Store) Resolve(p PendingReply) []PanelRequest {
	if p.Epoch != s.epoch {
		logger.Debug("Conversation %s: discarding stale reply seq=%d (epoch %d != %d)",
			s.id, p.Seq, p.Epoch, s.epoch)
		return nil
	}

	s.stash[p.Seq] = p

	var panels []PanelRequest
	for {
		next, ok := s.stash[s.flushSeq]
		if !ok {
			break
		}
		delete(s.stash, s.flushSeq)
		s.flushSeq++

		s.messages = append(s.messages, next.msg)
		if next.reply.newCode != "" {
			s.code = next.reply.newCode
		}
		if next.reply.Panel != PanelNone {
			panels = append(panels, next.reply.Panel)
		}
	}
	return panels
}

// Retry finds the nearest user message strictly before messageID, truncates
// the log from that message onward, and re-submits its content. It is a
// silent no-op when messageID is unknown, is the first message, or has no
// preceding user message.
func (s *Store) Retry(messageID string) *PendingReply {
	target := -1
	for i, m := range s.messages {
		if m.ID == messageID {
			target = i
			break
		}
	}
	if target <= 0 {
		return nil
	}

	userIdx := -1
	for i := target - 1; i >= 0; i-- {
		if s.messages[i].Sender == SenderUser {
			userIdx = i
			break
		}
	}
	if userIdx < 0 {
		logger.Debug("Conversation %s: retry of %s ignored, no preceding user message", s.id, messageID)
		return nil
	}

	content := s.messages[userIdx].Content
	s.messages = s.messages[:userIdx]
	s.invalidatePending()

	logger.Debug("Conversation %s: retrying from index %d", s.id, userIdx)
	return s.Submit(content)
}

// Edit replaces the content of the identified message in place. The message
// keeps its ID, sender and timestamp, and no reply is regenerated. Unknown
// IDs are ignored.
func (s *Store) Edit(messageID, content string) bool {
	for i := range s.messages {
		if s.messages[i].ID == messageID {
			s.messages[i].Content = content
			return true
		}
	}
	return false
}

// invalidatePending cancels the logical effect of every outstanding reply:
// anything submitted before this point resolves into the void.
func (s *Store) invalidatePending() {
	s.epoch++
	s.flushSeq = s.nextSeq
	s.stash = make(map[uint64]PendingReply)
}
