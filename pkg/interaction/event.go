// Package interaction defines the inbound interaction event and the outbound
// interaction response, in Discord's wire format.
package interaction

import (
	"encoding/json"
	"fmt"
)

// EventType is the interaction type tag.
type EventType int

const (
	EventPing                EventType = 1
	EventApplicationCommand  EventType = 2
	EventMessageComponent    EventType = 3
	EventCommandAutocomplete EventType = 4
	EventModalSubmit         EventType = 5
)

func (t EventType) String() string {
	switch t {
	case EventPing:
		return "ping"
	case EventApplicationCommand:
		return "command"
	case EventMessageComponent:
		return "component"
	case EventCommandAutocomplete:
		return "autocomplete"
	case EventModalSubmit:
		return "modal"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// User is the subset of a Discord user this module reads.
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name,omitempty"`
	Bot        bool   `json:"bot,omitempty"`
}

// Member is a guild member. Only present for interactions inside a guild.
type Member struct {
	User  *User    `json:"user,omitempty"`
	Nick  string   `json:"nick,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// Event is an inbound interaction. Data is nil when the interaction carries no
// data (pings) or when its type is not one this package decodes.
type Event struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	Type          EventType `json:"type"`
	Data          Data      `json:"data,omitempty"`
	GuildID       string    `json:"guild_id,omitempty"`
	ChannelID     string    `json:"channel_id,omitempty"`
	Member        *Member   `json:"member,omitempty"`
	User          *User     `json:"user,omitempty"`
	Token         string    `json:"token"`
	Locale        string    `json:"locale,omitempty"`
	Version       int       `json:"version"`
}

// rawEvent mirrors Event with undecoded data.
type rawEvent struct {
	ID            string          `json:"id"`
	ApplicationID string          `json:"application_id"`
	Type          EventType       `json:"type"`
	Data          json.RawMessage `json:"data,omitempty"`
	GuildID       string          `json:"guild_id,omitempty"`
	ChannelID     string          `json:"channel_id,omitempty"`
	Member        *Member         `json:"member,omitempty"`
	User          *User           `json:"user,omitempty"`
	Token         string          `json:"token"`
	Locale        string          `json:"locale,omitempty"`
	Version       int             `json:"version"`
}

// UnmarshalJSON decodes the data field according to the interaction type.
func (e *Event) UnmarshalJSON(b []byte) error {
	var raw rawEvent
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	data, err := decodeData(raw.Type, raw.Data)
	if err != nil {
		return fmt.Errorf("interaction %s: %w", raw.ID, err)
	}
	*e = Event{
		ID:            raw.ID,
		ApplicationID: raw.ApplicationID,
		Type:          raw.Type,
		Data:          data,
		GuildID:       raw.GuildID,
		ChannelID:     raw.ChannelID,
		Member:        raw.Member,
		User:          raw.User,
		Token:         raw.Token,
		Locale:        raw.Locale,
		Version:       raw.Version,
	}
	return nil
}

// Invoker returns the user who triggered the interaction, or nil.
func (e *Event) Invoker() *User {
	if e.Member != nil && e.Member.User != nil {
		return e.Member.User
	}
	return e.User
}

// Clone returns a deep copy of the event.
func (e *Event) Clone() Event {
	c := *e
	if e.Data != nil {
		c.Data = e.Data.clone()
	}
	if e.Member != nil {
		m := *e.Member
		m.User = cloneUser(e.Member.User)
		m.Roles = cloneStrings(e.Member.Roles)
		c.Member = &m
	}
	c.User = cloneUser(e.User)
	return c
}

func cloneUser(u *User) *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
