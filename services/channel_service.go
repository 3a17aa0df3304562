package services

import (
	"log/slog"

	"chatboard/domain"
	"chatboard/errors"
	"chatboard/store"

	"github.com/samber/lo"
)

type IChannelService interface {
	Create(name string, memberUsernames []string, creator string) (domain.Channel, error)
	Get(id int) (domain.Channel, error)
	List() ([]domain.Channel, error)
	Join(id int, username string) (domain.Channel, error)
	RemoveMember(id int, username string) (domain.Channel, error)
}

type ChannelService struct {
	gate *store.Gate
	log  *slog.Logger
}

func NewChannelService(gate *store.Gate, log *slog.Logger) *ChannelService {
	return &ChannelService{gate: gate, log: log}
}

// Create builds one member per entry of memberUsernames, in order, each
// with id = position+1. Duplicate usernames in the initial list are kept
// as duplicate members; the historical behavior is preserved.
func (s *ChannelService) Create(name string, memberUsernames []string, creator string) (domain.Channel, error) {
	var created domain.Channel
	err := s.gate.Update(func(doc *domain.Document) error {
		members := lo.Map(memberUsernames, func(username string, index int) domain.Member {
			return domain.NewMember(index+1, username)
		})
		created = domain.Channel{
			ID:      len(doc.Channels) + 1,
			Name:    name,
			Creator: creator,
			Members: members,
		}
		doc.Channels = append(doc.Channels, created)
		return nil
	})
	if err != nil {
		return domain.Channel{}, err
	}

	s.log.Info("channel created", "name", name, "id", created.ID, "members", len(created.Members))
	return created, nil
}

func (s *ChannelService) Get(id int) (domain.Channel, error) {
	var channel domain.Channel
	err := s.gate.View(func(doc domain.Document) error {
		found, ok := doc.ChannelByID(id)
		if !ok {
			return errors.ErrChannelNotFound
		}
		channel = *found
		return nil
	})
	return channel, err
}

func (s *ChannelService) List() ([]domain.Channel, error) {
	var channels []domain.Channel
	err := s.gate.View(func(doc domain.Document) error {
		channels = append([]domain.Channel{}, doc.Channels...)
		return nil
	})
	return channels, err
}

// Join adds a member with id = len(members)+1. Joining twice fails with
// ErrAlreadyMember and leaves the roster untouched.
func (s *ChannelService) Join(id int, username string) (domain.Channel, error) {
	var updated domain.Channel
	err := s.gate.Update(func(doc *domain.Document) error {
		channel, ok := doc.ChannelByID(id)
		if !ok {
			return errors.ErrChannelNotFound
		}
		if channel.HasMember(username) {
			return errors.ErrAlreadyMember
		}
		channel.Members = append(channel.Members, domain.NewMember(len(channel.Members)+1, username))
		updated = *channel
		return nil
	})
	if err != nil {
		return domain.Channel{}, err
	}

	s.log.Info("member joined channel", "channel", id, "username", username)
	return updated, nil
}

// RemoveMember drops every member with the given username. Removing an
// absent username is not an error; member ids are not renumbered.
func (s *ChannelService) RemoveMember(id int, username string) (domain.Channel, error) {
	var updated domain.Channel
	err := s.gate.Update(func(doc *domain.Document) error {
		channel, ok := doc.ChannelByID(id)
		if !ok {
			return errors.ErrChannelNotFound
		}
		channel.Members = lo.Filter(channel.Members, func(m domain.Member, _ int) bool {
			return m.Username != username
		})
		updated = *channel
		return nil
	})
	if err != nil {
		return domain.Channel{}, err
	}

	s.log.Info("member removed from channel", "channel", id, "username", username)
	return updated, nil
}
