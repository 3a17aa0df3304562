package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestChannel_Timeline_OrdersAcrossMembers(t *testing.T) {
	req := require.New(t)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	channel := Channel{
		ID:   1,
		Name: "general",
		Members: []Member{
			{ID: 1, Username: "alice", Messages: []Message{
				{ID: 1, Username: "alice", Text: "hi", Timestamp: at},
				{ID: 2, Username: "alice", Text: "again", Timestamp: at.Add(2 * time.Second)},
			}},
			{ID: 2, Username: "bob", Messages: []Message{
				{ID: 1, Username: "bob", Text: "yo", Timestamp: at.Add(1 * time.Second)},
			}},
		},
	}

	timeline := channel.Timeline()
	req.Len(timeline, 3)
	req.Equal("hi", timeline[0].Text)
	req.Equal("yo", timeline[1].Text)
	req.Equal("again", timeline[2].Text)
}

func TestChannel_Timeline_EqualTimestampsKeepRosterOrder(t *testing.T) {
	req := require.New(t)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	channel := Channel{
		Members: []Member{
			{ID: 1, Username: "alice", Messages: []Message{
				{ID: 1, Username: "alice", Text: "first", Timestamp: at},
			}},
			{ID: 2, Username: "bob", Messages: []Message{
				{ID: 1, Username: "bob", Text: "second", Timestamp: at},
			}},
		},
	}

	timeline := channel.Timeline()
	req.Len(timeline, 2)
	req.Equal("first", timeline[0].Text)
	req.Equal("second", timeline[1].Text)
}

func TestChannel_Timeline_EmptyRoster(t *testing.T) {
	channel := Channel{Members: []Member{}}
	require.Empty(t, channel.Timeline())
}

func TestChannel_MemberByUsername(t *testing.T) {
	req := require.New(t)
	channel := Channel{Members: []Member{NewMember(1, "alice"), NewMember(2, "bob")}}

	member, ok := channel.MemberByUsername("bob")
	req.True(ok)
	req.Equal(2, member.ID)

	_, ok = channel.MemberByUsername("carol")
	req.False(ok)
	req.True(channel.HasMember("alice"))
	req.False(channel.HasMember("carol"))
}

func TestDocument_Lookups(t *testing.T) {
	req := require.New(t)
	doc := Document{
		Users:    []User{{ID: 1, Username: "alice"}},
		Channels: []Channel{{ID: 1, Name: "general"}},
	}

	user, ok := doc.UserByUsername("alice")
	req.True(ok)
	req.Equal(1, user.ID)

	// Case-sensitive exact match only.
	_, ok = doc.UserByUsername("Alice")
	req.False(ok)

	channel, ok := doc.ChannelByID(1)
	req.True(ok)
	req.Equal("general", channel.Name)

	_, ok = doc.ChannelByID(42)
	req.False(ok)
}
