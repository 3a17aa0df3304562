package services

import (
	"testing"

	"chatboard/errors"

	"github.com/stretchr/testify/require"
)

func TestChannelService_Create(t *testing.T) {
	svc := NewChannelService(newTestGate(t), testLogger())

	t.Run("assigns positional member ids", func(t *testing.T) {
		req := require.New(t)

		channel, err := svc.Create("general", []string{"alice", "bob"}, "alice")
		req.NoError(err)
		req.Equal(1, channel.ID)
		req.Equal("general", channel.Name)
		req.Equal("alice", channel.Creator)
		req.Len(channel.Members, 2)
		req.Equal(1, channel.Members[0].ID)
		req.Equal("alice", channel.Members[0].Username)
		req.Equal(2, channel.Members[1].ID)
		req.Equal("bob", channel.Members[1].Username)
		req.Empty(channel.Members[0].Messages)
	})

	t.Run("channel ids are sequential", func(t *testing.T) {
		req := require.New(t)

		channel, err := svc.Create("random", nil, "bob")
		req.NoError(err)
		req.Equal(2, channel.ID)
		req.Empty(channel.Members)
	})

	t.Run("duplicate initial usernames produce duplicate members", func(t *testing.T) {
		req := require.New(t)

		channel, err := svc.Create("dupes", []string{"alice", "alice"}, "alice")
		req.NoError(err)
		req.Len(channel.Members, 2)
		req.Equal(channel.Members[0].Username, channel.Members[1].Username)
	})
}

func TestChannelService_GetAndList(t *testing.T) {
	req := require.New(t)
	svc := NewChannelService(newTestGate(t), testLogger())

	created, err := svc.Create("general", []string{"alice"}, "alice")
	req.NoError(err)

	found, err := svc.Get(created.ID)
	req.NoError(err)
	req.Equal(created, found)

	_, err = svc.Get(42)
	req.ErrorIs(err, errors.ErrChannelNotFound)

	channels, err := svc.List()
	req.NoError(err)
	req.Len(channels, 1)
	req.Equal("general", channels[0].Name)
}

func TestChannelService_Join(t *testing.T) {
	req := require.New(t)
	svc := NewChannelService(newTestGate(t), testLogger())

	channel, err := svc.Create("general", []string{"alice", "bob"}, "alice")
	req.NoError(err)

	t.Run("new member appended with next id", func(t *testing.T) {
		updated, err := svc.Join(channel.ID, "carol")
		req.NoError(err)
		req.Len(updated.Members, 3)
		req.Equal(3, updated.Members[2].ID)
		req.Equal("carol", updated.Members[2].Username)
	})

	t.Run("joining twice fails and keeps the roster", func(t *testing.T) {
		_, err := svc.Join(channel.ID, "carol")
		req.ErrorIs(err, errors.ErrAlreadyMember)

		current, err := svc.Get(channel.ID)
		req.NoError(err)
		req.Len(current.Members, 3)
	})

	t.Run("unknown channel fails", func(t *testing.T) {
		_, err := svc.Join(42, "dave")
		req.ErrorIs(err, errors.ErrChannelNotFound)
	})
}

func TestChannelService_RemoveMember(t *testing.T) {
	req := require.New(t)
	svc := NewChannelService(newTestGate(t), testLogger())

	channel, err := svc.Create("general", []string{"alice", "bob", "carol"}, "alice")
	req.NoError(err)

	updated, err := svc.RemoveMember(channel.ID, "bob")
	req.NoError(err)
	req.Len(updated.Members, 2)
	req.False(updated.HasMember("bob"))

	// Remaining ids are untouched, so they are no longer dense.
	req.Equal(1, updated.Members[0].ID)
	req.Equal(3, updated.Members[1].ID)

	t.Run("removal is idempotent", func(t *testing.T) {
		again, err := svc.RemoveMember(channel.ID, "bob")
		req.NoError(err)
		req.Equal(updated.Members, again.Members)
	})

	t.Run("unknown channel fails", func(t *testing.T) {
		_, err := svc.RemoveMember(42, "bob")
		req.ErrorIs(err, errors.ErrChannelNotFound)
	})
}
