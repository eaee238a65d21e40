package interaction

import (
	"encoding/json"
	"fmt"
)

// Data is the interaction payload. The set of variants is closed:
// *CommandData, *ComponentData and *ModalSubmitData.
type Data interface {
	// Kind reports which interaction type the payload belongs to.
	Kind() EventType
	clone() Data
}

// CommandOptionType is the type of an application command option.
type CommandOptionType int

const (
	OptionSubCommand      CommandOptionType = 1
	OptionSubCommandGroup CommandOptionType = 2
	OptionString          CommandOptionType = 3
	OptionInteger         CommandOptionType = 4
	OptionBoolean         CommandOptionType = 5
	OptionUser            CommandOptionType = 6
	OptionChannel         CommandOptionType = 7
	OptionRole            CommandOptionType = 8
	OptionMentionable     CommandOptionType = 9
	OptionNumber          CommandOptionType = 10
	OptionAttachment      CommandOptionType = 11
)

// CommandOption is one option of a slash command. Subcommands and groups
// carry nested Options and no Value.
type CommandOption struct {
	Name    string            `json:"name"`
	Type    CommandOptionType `json:"type"`
	Value   json.RawMessage   `json:"value,omitempty"`
	Focused bool              `json:"focused,omitempty"`
	Options []CommandOption   `json:"options,omitempty"`
}

func (o CommandOption) clone() CommandOption {
	c := o
	if o.Value != nil {
		c.Value = append(json.RawMessage(nil), o.Value...)
	}
	c.Options = cloneOptions(o.Options)
	return c
}

func cloneOptions(opts []CommandOption) []CommandOption {
	if opts == nil {
		return nil
	}
	out := make([]CommandOption, len(opts))
	for i, o := range opts {
		out[i] = o.clone()
	}
	return out
}

// CommandData is the payload of application command and autocomplete
// interactions.
type CommandData struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     int             `json:"type"`
	TargetID string          `json:"target_id,omitempty"`
	Options  []CommandOption `json:"options,omitempty"`
}

// Kind reports EventApplicationCommand; autocomplete interactions share the
// variant and are told apart by Event.Type.
func (d *CommandData) Kind() EventType { return EventApplicationCommand }

func (d *CommandData) clone() Data {
	c := *d
	c.Options = cloneOptions(d.Options)
	return &c
}

// ComponentData is the payload of a message component interaction.
type ComponentData struct {
	CustomID      string        `json:"custom_id"`
	ComponentType ComponentType `json:"component_type"`
	Values        []string      `json:"values,omitempty"`
}

func (d *ComponentData) Kind() EventType { return EventMessageComponent }

func (d *ComponentData) clone() Data {
	c := *d
	c.Values = cloneStrings(d.Values)
	return &c
}

// ModalSubmitData is the payload of a modal submission: the modal's own
// custom_id plus the submitted component tree.
type ModalSubmitData struct {
	CustomID   string      `json:"custom_id"`
	Components []Component `json:"components"`
}

func (d *ModalSubmitData) Kind() EventType { return EventModalSubmit }

func (d *ModalSubmitData) clone() Data {
	c := *d
	c.Components = cloneComponents(d.Components)
	return &c
}

// UnmarshalJSON decodes the component tree.
func (d *ModalSubmitData) UnmarshalJSON(b []byte) error {
	var raw struct {
		CustomID   string            `json:"custom_id"`
		Components []json.RawMessage `json:"components"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	components, err := decodeComponents(raw.Components)
	if err != nil {
		return err
	}
	d.CustomID = raw.CustomID
	d.Components = components
	return nil
}

func decodeData(t EventType, raw json.RawMessage) (Data, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	switch t {
	case EventApplicationCommand, EventCommandAutocomplete:
		var d CommandData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode command data: %w", err)
		}
		return &d, nil
	case EventMessageComponent:
		var d ComponentData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode component data: %w", err)
		}
		return &d, nil
	case EventModalSubmit:
		var d ModalSubmitData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode modal submit data: %w", err)
		}
		return &d, nil
	default:
		return nil, nil
	}
}
