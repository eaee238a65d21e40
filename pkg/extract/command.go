package extract

import (
	"context"
	"encoding/json"

	"github.com/morezero/interactions/pkg/codec"
	"github.com/morezero/interactions/pkg/interaction"
	"github.com/morezero/interactions/pkg/respond"
)

// CommandInput is a decoded slash command. Path lists the subcommand group
// and subcommand names that were invoked, outermost first.
type CommandInput[T any] struct {
	Name    string
	Path    []string
	Options T
}

// Command extracts a CommandInput[T] from application command and
// autocomplete interactions. Option values, including those nested under
// subcommands, are keyed by option name and decoded into T the same way Modal
// decodes modal fields.
func Command[S, T any]() Extractor[S, CommandInput[T]] {
	return Func[S, CommandInput[T]](func(_ context.Context, ev *interaction.Event, _ S) (CommandInput[T], respond.Rejection) {
		cd, derr := requireData[*interaction.CommandData](ev)
		if derr != nil {
			return CommandInput[T]{}, derr
		}

		values := make(map[string]any, len(cd.Options))
		var path []string
		flattenOptions(cd.Options, values, &path)

		var opts T
		if err := codec.Restructure(values, &opts); err != nil {
			return CommandInput[T]{}, &DataError{Kind: ErrDecodeFailure, Err: err}
		}
		return CommandInput[T]{Name: cd.Name, Path: path, Options: opts}, nil
	})
}

func flattenOptions(opts []interaction.CommandOption, out map[string]any, path *[]string) {
	for _, o := range opts {
		switch o.Type {
		case interaction.OptionSubCommand, interaction.OptionSubCommandGroup:
			*path = append(*path, o.Name)
			flattenOptions(o.Options, out, path)
		default:
			if len(o.Value) > 0 {
				out[o.Name] = json.RawMessage(o.Value)
			}
		}
	}
}
