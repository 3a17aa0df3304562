package services

import (
	"log/slog"
	"time"

	"chatboard/domain"
	"chatboard/errors"
	"chatboard/store"
)

type IMessageService interface {
	Post(channelID int, username, text string) ([]domain.Message, error)
	Timeline(channelID int) ([]domain.Message, error)
}

// MessageService owns per-member message append and the cross-member
// aggregation that produces a channel's chronological timeline.
type MessageService struct {
	gate *store.Gate
	log  *slog.Logger

	// maxContentLength bounds message text when set; nil means unbounded.
	maxContentLength *int
}

func NewMessageService(gate *store.Gate, maxContentLength *int, log *slog.Logger) *MessageService {
	return &MessageService{gate: gate, maxContentLength: maxContentLength, log: log}
}

// Post appends a message to the sender's own list inside the channel.
// The sender must already be a member; posting never auto-joins. The
// returned slice is the freshly aggregated timeline.
func (s *MessageService) Post(channelID int, username, text string) ([]domain.Message, error) {
	if s.maxContentLength != nil && len(text) > *s.maxContentLength {
		return nil, errors.ErrContentTooLong
	}

	var timeline []domain.Message
	err := s.gate.Update(func(doc *domain.Document) error {
		channel, ok := doc.ChannelByID(channelID)
		if !ok {
			return errors.ErrChannelNotFound
		}
		member, ok := channel.MemberByUsername(username)
		if !ok {
			return errors.ErrMemberNotFound
		}

		member.Messages = append(member.Messages, domain.Message{
			ID:        len(member.Messages) + 1,
			Username:  username,
			Text:      text,
			Timestamp: time.Now().UTC(),
		})
		timeline = channel.Timeline()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("message posted", "channel", channelID, "username", username)
	return timeline, nil
}

// Timeline derives the channel's full message history on demand; the
// merged order is never stored.
func (s *MessageService) Timeline(channelID int) ([]domain.Message, error) {
	var timeline []domain.Message
	err := s.gate.View(func(doc domain.Document) error {
		channel, ok := doc.ChannelByID(channelID)
		if !ok {
			return errors.ErrChannelNotFound
		}
		timeline = channel.Timeline()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return timeline, nil
}
