// Package domain contains core concepts of the messaging backend.
// This file defines the Document, the single persisted root object.
// No runtime, network, or storage logic should be added here.
package domain

// Document is the whole persisted state: every operation loads it,
// mutates it in memory, and writes it back in full.
type Document struct {
	Users    []User    `json:"users"`
	Channels []Channel `json:"channels"`
}

// EmptyDocument is the state a fresh (or self-healed) store starts from.
func EmptyDocument() Document {
	return Document{
		Users:    []User{},
		Channels: []Channel{},
	}
}

// ChannelByID returns a pointer into the document so callers can mutate
// the channel in place during a load-modify-save cycle.
func (d *Document) ChannelByID(id int) (*Channel, bool) {
	for i := range d.Channels {
		if d.Channels[i].ID == id {
			return &d.Channels[i], true
		}
	}
	return nil, false
}

// UserByUsername performs a case-sensitive exact match.
func (d *Document) UserByUsername(username string) (*User, bool) {
	for i := range d.Users {
		if d.Users[i].Username == username {
			return &d.Users[i], true
		}
	}
	return nil, false
}
