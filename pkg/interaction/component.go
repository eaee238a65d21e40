package interaction

import (
	"encoding/json"
	"fmt"
)

// ComponentType is Discord's component type tag.
type ComponentType int

const (
	ComponentActionRow         ComponentType = 1
	ComponentButton            ComponentType = 2
	ComponentStringSelect      ComponentType = 3
	ComponentTextInput         ComponentType = 4
	ComponentUserSelect        ComponentType = 5
	ComponentRoleSelect        ComponentType = 6
	ComponentMentionableSelect ComponentType = 7
	ComponentChannelSelect     ComponentType = 8
	ComponentTextDisplay       ComponentType = 10
	ComponentLabel             ComponentType = 18
	ComponentFileUpload        ComponentType = 19
)

// Component is a node of a component tree. The set of node types is closed:
// *Label, *ActionRow, *TextInput, *SelectMenu, *Button and *Inert.
type Component interface {
	json.Marshaler
	Type() ComponentType
	cloneComponent() Component
}

// Label wraps exactly one child component.
type Label struct {
	ID          int       `json:"id,omitempty"`
	Label       string    `json:"label,omitempty"`
	Description string    `json:"description,omitempty"`
	Component   Component `json:"component"`
}

func (l *Label) Type() ComponentType { return ComponentLabel }

func (l *Label) MarshalJSON() ([]byte, error) {
	type alias Label
	return json.Marshal(struct {
		Type ComponentType `json:"type"`
		*alias
	}{ComponentLabel, (*alias)(l)})
}

func (l *Label) cloneComponent() Component {
	c := *l
	if l.Component != nil {
		c.Component = l.Component.cloneComponent()
	}
	return &c
}

// ActionRow holds a sequence of child components.
type ActionRow struct {
	ID         int         `json:"id,omitempty"`
	Components []Component `json:"components"`
}

func (r *ActionRow) Type() ComponentType { return ComponentActionRow }

func (r *ActionRow) MarshalJSON() ([]byte, error) {
	type alias ActionRow
	a := (*alias)(r)
	if a.Components == nil {
		a = &alias{ID: r.ID, Components: []Component{}}
	}
	return json.Marshal(struct {
		Type ComponentType `json:"type"`
		*alias
	}{ComponentActionRow, a})
}

func (r *ActionRow) cloneComponent() Component {
	c := *r
	c.Components = cloneComponents(r.Components)
	return &c
}

// TextInputStyle selects a single-line or paragraph text input.
type TextInputStyle int

const (
	TextInputShort     TextInputStyle = 1
	TextInputParagraph TextInputStyle = 2
)

// TextInput is a single-value leaf. On submission only CustomID and Value are
// populated; the remaining fields describe the input when sending a modal.
type TextInput struct {
	ID          int            `json:"id,omitempty"`
	CustomID    string         `json:"custom_id"`
	Value       string         `json:"value,omitempty"`
	Style       TextInputStyle `json:"style,omitempty"`
	Label       string         `json:"label,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	Required    bool           `json:"required,omitempty"`
	MinLength   int            `json:"min_length,omitempty"`
	MaxLength   int            `json:"max_length,omitempty"`
}

func (t *TextInput) Type() ComponentType { return ComponentTextInput }

func (t *TextInput) MarshalJSON() ([]byte, error) {
	type alias TextInput
	return json.Marshal(struct {
		Type ComponentType `json:"type"`
		*alias
	}{ComponentTextInput, (*alias)(t)})
}

func (t *TextInput) cloneComponent() Component {
	c := *t
	return &c
}

// ButtonStyle is the look of a button.
type ButtonStyle int

const (
	ButtonPrimary   ButtonStyle = 1
	ButtonSecondary ButtonStyle = 2
	ButtonSuccess   ButtonStyle = 3
	ButtonDanger    ButtonStyle = 4
	ButtonLink      ButtonStyle = 5
)

// Button is a message button. It never appears in a modal submission.
type Button struct {
	ID       int         `json:"id,omitempty"`
	Style    ButtonStyle `json:"style"`
	Label    string      `json:"label,omitempty"`
	CustomID string      `json:"custom_id,omitempty"`
	URL      string      `json:"url,omitempty"`
	Disabled bool        `json:"disabled,omitempty"`
}

func (b *Button) Type() ComponentType { return ComponentButton }

func (b *Button) MarshalJSON() ([]byte, error) {
	type alias Button
	return json.Marshal(struct {
		Type ComponentType `json:"type"`
		*alias
	}{ComponentButton, (*alias)(b)})
}

func (b *Button) cloneComponent() Component {
	c := *b
	return &c
}

// SelectOption is one choice of a string select.
type SelectOption struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Default     bool   `json:"default,omitempty"`
}

// SelectMenu is a multi-value leaf: any of the select menus, or a file upload
// (whose values are attachment IDs). Kind holds the concrete component type.
type SelectMenu struct {
	Kind        ComponentType  `json:"-"`
	ID          int            `json:"id,omitempty"`
	CustomID    string         `json:"custom_id"`
	Values      []string       `json:"values,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	Options     []SelectOption `json:"options,omitempty"`
	MinValues   *int           `json:"min_values,omitempty"`
	MaxValues   *int           `json:"max_values,omitempty"`
}

func (s *SelectMenu) Type() ComponentType { return s.Kind }

func (s *SelectMenu) MarshalJSON() ([]byte, error) {
	type alias SelectMenu
	return json.Marshal(struct {
		Type ComponentType `json:"type"`
		*alias
	}{s.Kind, (*alias)(s)})
}

func (s *SelectMenu) cloneComponent() Component {
	c := *s
	c.Values = cloneStrings(s.Values)
	if s.Options != nil {
		c.Options = append([]SelectOption(nil), s.Options...)
	}
	return &c
}

// Inert is a component that carries no submitted value: text displays and
// any component type this package does not know. Raw keeps the original JSON.
type Inert struct {
	Kind ComponentType
	Raw  json.RawMessage
}

func (n *Inert) Type() ComponentType { return n.Kind }

func (n *Inert) MarshalJSON() ([]byte, error) {
	if len(n.Raw) > 0 {
		return n.Raw, nil
	}
	return json.Marshal(struct {
		Type ComponentType `json:"type"`
	}{n.Kind})
}

func (n *Inert) cloneComponent() Component {
	c := *n
	if n.Raw != nil {
		c.Raw = append(json.RawMessage(nil), n.Raw...)
	}
	return &c
}

func cloneComponents(cs []Component) []Component {
	if cs == nil {
		return nil
	}
	out := make([]Component, len(cs))
	for i, c := range cs {
		if c != nil {
			out[i] = c.cloneComponent()
		}
	}
	return out
}

// DecodeComponent decodes one component node, recursing into labels and
// action rows.
func DecodeComponent(raw json.RawMessage) (Component, error) {
	var head struct {
		Type ComponentType `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, fmt.Errorf("decode component: %w", err)
	}

	switch head.Type {
	case ComponentLabel:
		var v struct {
			ID          int             `json:"id"`
			Label       string          `json:"label"`
			Description string          `json:"description"`
			Component   json.RawMessage `json:"component"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode label: %w", err)
		}
		l := &Label{ID: v.ID, Label: v.Label, Description: v.Description}
		if len(v.Component) > 0 && string(v.Component) != "null" {
			child, err := DecodeComponent(v.Component)
			if err != nil {
				return nil, err
			}
			l.Component = child
		}
		return l, nil
	case ComponentActionRow:
		var v struct {
			ID         int               `json:"id"`
			Components []json.RawMessage `json:"components"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode action row: %w", err)
		}
		children, err := decodeComponents(v.Components)
		if err != nil {
			return nil, err
		}
		return &ActionRow{ID: v.ID, Components: children}, nil
	case ComponentTextInput:
		var t TextInput
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("decode text input: %w", err)
		}
		return &t, nil
	case ComponentButton:
		var b Button
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("decode button: %w", err)
		}
		return &b, nil
	case ComponentStringSelect, ComponentUserSelect, ComponentRoleSelect,
		ComponentMentionableSelect, ComponentChannelSelect, ComponentFileUpload:
		var s SelectMenu
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode select: %w", err)
		}
		s.Kind = head.Type
		return &s, nil
	default:
		return &Inert{Kind: head.Type, Raw: append(json.RawMessage(nil), raw...)}, nil
	}
}

func decodeComponents(raws []json.RawMessage) ([]Component, error) {
	out := make([]Component, 0, len(raws))
	for _, r := range raws {
		c, err := DecodeComponent(r)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
