package extract

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/morezero/interactions/pkg/codec"
	"github.com/morezero/interactions/pkg/interaction"
)

type feedbackForm struct {
	Topic string   `json:"topic"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`
}

func modalEvent(customID string, components ...interaction.Component) *interaction.Event {
	return &interaction.Event{
		ID:   "int-1",
		Type: interaction.EventModalSubmit,
		Data: &interaction.ModalSubmitData{CustomID: customID, Components: components},
	}
}

func TestModal_NoInteractionData(t *testing.T) {
	ev := &interaction.Event{ID: "int-1", Type: interaction.EventPing}

	_, rej := Modal[struct{}, feedbackForm]().Extract(context.Background(), ev, struct{}{})
	if rej == nil {
		t.Fatal("extract:modal_test - expected rejection, got nil")
	}
	if !errors.Is(rej, ErrNoInteractionData) {
		t.Errorf("extract:modal_test - rejection = %v, want ErrNoInteractionData", rej)
	}
}

func TestModal_WrongInteractionData(t *testing.T) {
	others := []interaction.Data{
		&interaction.CommandData{Name: "ping"},
		&interaction.ComponentData{CustomID: "button"},
	}

	for _, data := range others {
		ev := &interaction.Event{ID: "int-1", Type: data.Kind(), Data: data}
		_, rej := Modal[struct{}, feedbackForm]().Extract(context.Background(), ev, struct{}{})
		if !errors.Is(rej, ErrWrongInteractionData) {
			t.Errorf("extract:modal_test - %T: rejection = %v, want ErrWrongInteractionData", data, rej)
		}
	}
}

func TestModal_RejectionIsEphemeralReport(t *testing.T) {
	_, rej := Modal[struct{}, feedbackForm]().Extract(context.Background(), &interaction.Event{}, struct{}{})

	resp := rej.IntoResponse()
	if !resp.Ephemeral() {
		t.Error("extract:modal_test - expected ephemeral response")
	}
	if resp.Data.Embeds[0].Description != "No interaction data" {
		t.Errorf("extract:modal_test - description = %q, want %q", resp.Data.Embeds[0].Description, "No interaction data")
	}
}

func TestFlatten_LastWriteWins(t *testing.T) {
	got := Flatten([]interaction.Component{
		&interaction.ActionRow{Components: []interaction.Component{
			&interaction.TextInput{CustomID: "x", Value: "a"},
			&interaction.TextInput{CustomID: "x", Value: "b"},
		}},
	})

	want := map[string]any{"x": "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extract:modal_test - Flatten = %v, want %v", got, want)
	}
}

func TestFlatten_LabelWrappingRowWrappingSelect(t *testing.T) {
	got := Flatten([]interaction.Component{
		&interaction.Label{Component: &interaction.ActionRow{Components: []interaction.Component{
			&interaction.SelectMenu{Kind: interaction.ComponentStringSelect, CustomID: "tags", Values: []string{"a", "b"}},
		}}},
	})

	want := map[string]any{"tags": []string{"a", "b"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extract:modal_test - Flatten = %v, want %v", got, want)
	}
}

func TestFlatten_LeafKinds(t *testing.T) {
	got := Flatten([]interaction.Component{
		&interaction.Label{Component: &interaction.TextInput{CustomID: "topic", Value: "bugs"}},
		&interaction.Inert{Kind: interaction.ComponentTextDisplay},
		&interaction.Label{},
		&interaction.SelectMenu{Kind: interaction.ComponentUserSelect, CustomID: "users", Values: []string{"u-1"}},
		&interaction.SelectMenu{Kind: interaction.ComponentFileUpload, CustomID: "files"},
		&interaction.Inert{Kind: 99},
	})

	want := map[string]any{
		"topic": "bugs",
		"users": []string{"u-1"},
		"files": []string{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extract:modal_test - Flatten = %v, want %v", got, want)
	}
}

func TestModal_Decodes(t *testing.T) {
	ev := modalEvent("feedback:submit",
		&interaction.Label{Component: &interaction.TextInput{CustomID: "topic", Value: "bugs"}},
		&interaction.ActionRow{Components: []interaction.Component{&interaction.TextInput{CustomID: "body", Value: "it broke"}}},
		&interaction.Label{Component: &interaction.SelectMenu{Kind: interaction.ComponentStringSelect, CustomID: "tags", Values: []string{"ui"}}},
	)

	got, rej := Modal[struct{}, feedbackForm]().Extract(context.Background(), ev, struct{}{})
	if rej != nil {
		t.Fatalf("extract:modal_test - unexpected rejection: %v", rej)
	}
	if got.CustomID != "feedback:submit" {
		t.Errorf("extract:modal_test - CustomID = %q, want %q", got.CustomID, "feedback:submit")
	}
	want := feedbackForm{Topic: "bugs", Body: "it broke", Tags: []string{"ui"}}
	if !reflect.DeepEqual(got.Data, want) {
		t.Errorf("extract:modal_test - Data = %+v, want %+v", got.Data, want)
	}
}

func TestModal_DecodeFailure(t *testing.T) {
	type numeric struct {
		Count int `json:"count"`
	}
	ev := modalEvent("m", &interaction.TextInput{CustomID: "count", Value: "three"})

	_, rej := Modal[struct{}, numeric]().Extract(context.Background(), ev, struct{}{})
	if !errors.Is(rej, ErrDecodeFailure) {
		t.Fatalf("extract:modal_test - rejection = %v, want ErrDecodeFailure", rej)
	}
	var derr *DataError
	if !errors.As(rej, &derr) || derr.Err == nil {
		t.Errorf("extract:modal_test - expected wrapped decode error, got %#v", rej)
	}
	if rej.Error() != "Could not deserialize custom modal struct" {
		t.Errorf("extract:modal_test - Error() = %q", rej.Error())
	}
}

func TestModal_RoundTripIsLossless(t *testing.T) {
	type allKinds struct {
		Title    string   `json:"title"`
		Colors   []string `json:"colors"`
		Users    []string `json:"users"`
		Roles    []string `json:"roles"`
		Mentions []string `json:"mentions"`
		Channels []string `json:"channels"`
		Files    []string `json:"files"`
	}
	want := allKinds{
		Title:    "hello",
		Colors:   []string{"red", "blue"},
		Users:    []string{"u-1"},
		Roles:    []string{"r-1", "r-2"},
		Mentions: []string{"u-2"},
		Channels: []string{"c-1"},
		Files:    []string{"att-1"},
	}
	sel := func(kind interaction.ComponentType, id string, values []string) interaction.Component {
		return &interaction.Label{Component: &interaction.SelectMenu{Kind: kind, CustomID: id, Values: values}}
	}
	ev := modalEvent("all",
		&interaction.Label{Component: &interaction.TextInput{CustomID: "title", Value: want.Title}},
		sel(interaction.ComponentStringSelect, "colors", want.Colors),
		sel(interaction.ComponentUserSelect, "users", want.Users),
		sel(interaction.ComponentRoleSelect, "roles", want.Roles),
		sel(interaction.ComponentMentionableSelect, "mentions", want.Mentions),
		sel(interaction.ComponentChannelSelect, "channels", want.Channels),
		sel(interaction.ComponentFileUpload, "files", want.Files),
	)

	got, rej := Modal[struct{}, allKinds]().Extract(context.Background(), ev, struct{}{})
	if rej != nil {
		t.Fatalf("extract:modal_test - unexpected rejection: %v", rej)
	}
	if !reflect.DeepEqual(got.Data, want) {
		t.Fatalf("extract:modal_test - Data = %+v, want %+v", got.Data, want)
	}

	data, err := codec.EncodePayload(got.Data)
	if err != nil {
		t.Fatalf("extract:modal_test - encode: %v", err)
	}
	var again allKinds
	if err := codec.DecodePayload(data, &again); err != nil {
		t.Fatalf("extract:modal_test - decode: %v", err)
	}
	if !reflect.DeepEqual(again, want) {
		t.Errorf("extract:modal_test - re-decoded = %+v, want %+v", again, want)
	}
}

func TestModal_DoesNotMutateEvent(t *testing.T) {
	ev := modalEvent("m", &interaction.TextInput{CustomID: "topic", Value: "bugs"})
	before := ev.Clone()

	for i := 0; i < 2; i++ {
		if _, rej := Modal[struct{}, feedbackForm]().Extract(context.Background(), ev, struct{}{}); rej != nil {
			t.Fatalf("extract:modal_test - run %d: unexpected rejection: %v", i, rej)
		}
	}
	if !reflect.DeepEqual(*ev, before) {
		t.Error("extract:modal_test - event changed by extraction")
	}
}
