package domain

import "sort"

// Member is a channel-scoped participant record, distinct from a User
// account. Each member owns its own ordered message list. Member IDs are
// unique only within the owning channel and are not renumbered after a
// removal, so they stop being dense once someone leaves.
type Member struct {
	ID       int       `json:"id"`
	Username string    `json:"username"`
	Messages []Message `json:"messages"`
}

// Channel holds a roster of members. The persisted field is named "users"
// to stay compatible with the historical data file layout.
type Channel struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Creator string   `json:"creator"`
	Members []Member `json:"users"`
}

// NewMember builds a member with an empty message list so the persisted
// form always carries "messages": [] rather than null.
func NewMember(id int, username string) Member {
	return Member{ID: id, Username: username, Messages: []Message{}}
}

// MemberByUsername returns a pointer into the roster; within one channel
// usernames are unique across members.
func (c *Channel) MemberByUsername(username string) (*Member, bool) {
	for i := range c.Members {
		if c.Members[i].Username == username {
			return &c.Members[i], true
		}
	}
	return nil, false
}

func (c *Channel) HasMember(username string) bool {
	_, ok := c.MemberByUsername(username)
	return ok
}

// Timeline derives the channel's canonical message history. It is never
// stored: every read concatenates the members' lists in roster order and
// stable-sorts by timestamp, so equal instants keep roster order followed
// by per-member insertion order.
func (c *Channel) Timeline() []Message {
	total := 0
	for i := range c.Members {
		total += len(c.Members[i].Messages)
	}
	timeline := make([]Message, 0, total)
	for i := range c.Members {
		timeline = append(timeline, c.Members[i].Messages...)
	}
	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].Timestamp.Before(timeline[j].Timestamp)
	})
	return timeline
}
