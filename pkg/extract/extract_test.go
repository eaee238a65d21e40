package extract

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/morezero/interactions/pkg/interaction"
	"github.com/morezero/interactions/pkg/respond"
)

type appState struct {
	Name    string
	Counter *int
}

// probe records the order in which extractors run.
type probe struct {
	calls []string
}

func (p *probe) ok(name string) Extractor[appState, string] {
	return Func[appState, string](func(context.Context, *interaction.Event, appState) (string, respond.Rejection) {
		p.calls = append(p.calls, name)
		return name, nil
	})
}

func (p *probe) fail(name string) Extractor[appState, string] {
	return Func[appState, string](func(context.Context, *interaction.Event, appState) (string, respond.Rejection) {
		p.calls = append(p.calls, name)
		return "", respond.ResponseRejection{Response: respond.Ephemeral(name + " failed")}
	})
}

func TestEvent_ReturnsCopy(t *testing.T) {
	ev := modalEvent("m", &interaction.TextInput{CustomID: "topic", Value: "bugs"})

	got, rej := Event[appState]().Extract(context.Background(), ev, appState{})
	if rej != nil {
		t.Fatalf("extract:extract_test - unexpected rejection: %v", rej)
	}
	if !reflect.DeepEqual(got, *ev) {
		t.Fatalf("extract:extract_test - copy differs from event")
	}

	got.Data.(*interaction.ModalSubmitData).CustomID = "changed"
	if ev.Data.(*interaction.ModalSubmitData).CustomID != "m" {
		t.Error("extract:extract_test - changing the copy changed the event")
	}
}

func TestSharedState(t *testing.T) {
	n := 1
	state := appState{Name: "bot", Counter: &n}

	got, rej := SharedState[appState]().Extract(context.Background(), &interaction.Event{}, state)
	if rej != nil {
		t.Fatalf("extract:extract_test - unexpected rejection: %v", rej)
	}
	if got.Value.Name != "bot" {
		t.Errorf("extract:extract_test - Name = %q, want %q", got.Value.Name, "bot")
	}
	*got.Value.Counter++
	if n != 2 {
		t.Errorf("extract:extract_test - pointer inside state not shared, n = %d", n)
	}
}

func TestOptional(t *testing.T) {
	tests := []struct {
		name      string
		ev        *interaction.Event
		wantValid bool
	}{
		{name: "no data", ev: &interaction.Event{Type: interaction.EventPing}},
		{name: "wrong data", ev: &interaction.Event{Type: interaction.EventApplicationCommand, Data: &interaction.CommandData{Name: "ping"}}},
		{name: "modal", ev: modalEvent("m", &interaction.TextInput{CustomID: "topic", Value: "bugs"}), wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rej := Optional(Modal[appState, feedbackForm]()).Extract(context.Background(), tt.ev, appState{})
			if rej != nil {
				t.Fatalf("extract:extract_test - Optional never rejects, got %v", rej)
			}
			if got.Valid != tt.wantValid {
				t.Errorf("extract:extract_test - Valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if tt.wantValid && got.Value.Data.Topic != "bugs" {
				t.Errorf("extract:extract_test - Topic = %q, want %q", got.Value.Data.Topic, "bugs")
			}
		})
	}
}

func TestFallible(t *testing.T) {
	got, rej := Fallible(Modal[appState, feedbackForm]()).Extract(context.Background(), &interaction.Event{}, appState{})
	if rej != nil {
		t.Fatalf("extract:extract_test - Fallible never rejects, got %v", rej)
	}
	if got.Ok() {
		t.Fatal("extract:extract_test - expected failed result")
	}
	if !errors.Is(got.Rejection, ErrNoInteractionData) {
		t.Errorf("extract:extract_test - Rejection = %v, want ErrNoInteractionData", got.Rejection)
	}

	got, _ = Fallible(Modal[appState, feedbackForm]()).Extract(context.Background(), modalEvent("m"), appState{})
	if !got.Ok() {
		t.Errorf("extract:extract_test - expected success, got %v", got.Rejection)
	}
}

func TestJoin_RunsInOrder(t *testing.T) {
	p := &probe{}

	got, rej := Join3(p.ok("a"), p.ok("b"), p.ok("c")).Extract(context.Background(), &interaction.Event{}, appState{})
	if rej != nil {
		t.Fatalf("extract:extract_test - unexpected rejection: %v", rej)
	}
	if got != (Tuple3[string, string, string]{V1: "a", V2: "b", V3: "c"}) {
		t.Errorf("extract:extract_test - tuple = %+v", got)
	}
	if !reflect.DeepEqual(p.calls, []string{"a", "b", "c"}) {
		t.Errorf("extract:extract_test - calls = %v", p.calls)
	}
}

func TestJoin_ShortCircuits(t *testing.T) {
	p := &probe{}

	_, rej := Join3(p.ok("a"), p.fail("b"), p.ok("c")).Extract(context.Background(), &interaction.Event{}, appState{})
	if rej == nil {
		t.Fatal("extract:extract_test - expected rejection")
	}
	if !reflect.DeepEqual(p.calls, []string{"a", "b"}) {
		t.Errorf("extract:extract_test - calls = %v, want [a b]", p.calls)
	}
	if got := rej.IntoResponse().Data.Content; got != "b failed" {
		t.Errorf("extract:extract_test - content = %q, want %q", got, "b failed")
	}
}

func TestJoin_ConvertsDataError(t *testing.T) {
	_, rej := Join2(SharedState[appState](), Modal[appState, feedbackForm]()).Extract(context.Background(), &interaction.Event{}, appState{})

	if rej.Error() != "No interaction data" {
		t.Errorf("extract:extract_test - Error() = %q", rej.Error())
	}
	if !rej.IntoResponse().Ephemeral() {
		t.Error("extract:extract_test - expected ephemeral response")
	}
}

func TestCommand(t *testing.T) {
	type recentOpts struct {
		Limit int    `json:"limit"`
		Guild string `json:"guild"`
	}
	ev := &interaction.Event{
		Type: interaction.EventApplicationCommand,
		Data: &interaction.CommandData{
			Name: "feedback",
			Options: []interaction.CommandOption{{
				Name: "admin",
				Type: interaction.OptionSubCommandGroup,
				Options: []interaction.CommandOption{{
					Name: "recent",
					Type: interaction.OptionSubCommand,
					Options: []interaction.CommandOption{
						{Name: "limit", Type: interaction.OptionInteger, Value: []byte(`5`)},
						{Name: "guild", Type: interaction.OptionString, Value: []byte(`"g-1"`)},
					},
				}},
			}},
		},
	}

	got, rej := Command[appState, recentOpts]().Extract(context.Background(), ev, appState{})
	if rej != nil {
		t.Fatalf("extract:extract_test - unexpected rejection: %v", rej)
	}
	if got.Name != "feedback" {
		t.Errorf("extract:extract_test - Name = %q", got.Name)
	}
	if !reflect.DeepEqual(got.Path, []string{"admin", "recent"}) {
		t.Errorf("extract:extract_test - Path = %v", got.Path)
	}
	if got.Options != (recentOpts{Limit: 5, Guild: "g-1"}) {
		t.Errorf("extract:extract_test - Options = %+v", got.Options)
	}
}

func TestCommand_Rejections(t *testing.T) {
	type opts struct {
		Limit int `json:"limit"`
	}
	tests := []struct {
		name string
		ev   *interaction.Event
		want error
	}{
		{name: "no data", ev: &interaction.Event{}, want: ErrNoInteractionData},
		{name: "modal data", ev: modalEvent("m"), want: ErrWrongInteractionData},
		{
			name: "bad option",
			ev: &interaction.Event{Data: &interaction.CommandData{Options: []interaction.CommandOption{
				{Name: "limit", Type: interaction.OptionString, Value: []byte(`"ten"`)},
			}}},
			want: ErrDecodeFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rej := Command[appState, opts]().Extract(context.Background(), tt.ev, appState{})
			if !errors.Is(rej, tt.want) {
				t.Errorf("extract:extract_test - rejection = %v, want %v", rej, tt.want)
			}
		})
	}
}

func TestComponent(t *testing.T) {
	values := []string{"one"}
	ev := &interaction.Event{
		Type: interaction.EventMessageComponent,
		Data: &interaction.ComponentData{CustomID: "pick", ComponentType: interaction.ComponentStringSelect, Values: values},
	}

	got, rej := Component[appState]().Extract(context.Background(), ev, appState{})
	if rej != nil {
		t.Fatalf("extract:extract_test - unexpected rejection: %v", rej)
	}
	if got.CustomID != "pick" || got.Type != interaction.ComponentStringSelect {
		t.Errorf("extract:extract_test - got %+v", got)
	}
	got.Values[0] = "changed"
	if values[0] != "one" {
		t.Error("extract:extract_test - Values aliases the event")
	}
}

func TestInvoker(t *testing.T) {
	member := &interaction.Member{User: &interaction.User{ID: "u-1", Username: "guild-user"}}
	tests := []struct {
		name    string
		ev      *interaction.Event
		wantID  string
		wantErr bool
	}{
		{name: "guild member", ev: &interaction.Event{Member: member}, wantID: "u-1"},
		{name: "direct message", ev: &interaction.Event{User: &interaction.User{ID: "u-2"}}, wantID: "u-2"},
		{name: "nobody", ev: &interaction.Event{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rej := Invoker[appState]().Extract(context.Background(), tt.ev, appState{})
			if tt.wantErr {
				if !errors.Is(rej, ErrNoInvoker) {
					t.Errorf("extract:extract_test - rejection = %v, want ErrNoInvoker", rej)
				}
				return
			}
			if rej != nil {
				t.Fatalf("extract:extract_test - unexpected rejection: %v", rej)
			}
			if got.ID != tt.wantID {
				t.Errorf("extract:extract_test - ID = %q, want %q", got.ID, tt.wantID)
			}
		})
	}
}
