package interaction

import "encoding/json"

// ResponseType is the interaction callback type.
type ResponseType int

const (
	ResponsePong                             ResponseType = 1
	ResponseChannelMessageWithSource         ResponseType = 4
	ResponseDeferredChannelMessageWithSource ResponseType = 5
	ResponseDeferredMessageUpdate            ResponseType = 6
	ResponseUpdateMessage                    ResponseType = 7
	ResponseAutocompleteResult               ResponseType = 8
	ResponseModal                            ResponseType = 9
)

// MessageFlags is the message flag bitfield.
type MessageFlags int

// MessageFlagsEphemeral makes a response visible only to the invoking user.
const MessageFlagsEphemeral MessageFlags = 1 << 6

// Embed is a rich message embed.
type Embed struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Color       int    `json:"color,omitempty"`
}

// Choice is an autocomplete choice.
type Choice struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// ResponseData is the optional payload of a response. Modal responses use
// CustomID, Title and Components; message responses use the rest.
type ResponseData struct {
	Flags      MessageFlags `json:"flags,omitempty"`
	Content    string       `json:"content,omitempty"`
	Embeds     []Embed      `json:"embeds,omitempty"`
	Choices    []Choice     `json:"choices,omitempty"`
	CustomID   string       `json:"custom_id,omitempty"`
	Title      string       `json:"title,omitempty"`
	Components []Component  `json:"components,omitempty"`
}

func (d *ResponseData) UnmarshalJSON(b []byte) error {
	type alias ResponseData
	var raw struct {
		*alias
		Components []json.RawMessage `json:"components"`
	}
	raw.alias = (*alias)(d)
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Components == nil {
		d.Components = nil
		return nil
	}
	components, err := decodeComponents(raw.Components)
	if err != nil {
		return err
	}
	d.Components = components
	return nil
}

// Response is the outbound reply to an interaction.
type Response struct {
	Type ResponseType  `json:"type"`
	Data *ResponseData `json:"data,omitempty"`
}

// IntoResponse returns r itself.
func (r Response) IntoResponse() Response { return r }

// Ephemeral reports whether the response carries the ephemeral flag.
func (r Response) Ephemeral() bool {
	return r.Data != nil && r.Data.Flags&MessageFlagsEphemeral != 0
}
