// Command arity generates the fixed-arity variants of extract.Join and
// handler.Handle.
//
//	go run ./internal/gen/arity -kind join -out pkg/extract/join_gen.go
//	go run ./internal/gen/arity -kind handler -out pkg/handler/handler_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

// MaxArity is the largest number of extractors a handler or join accepts.
const MaxArity = 15

var numberWords = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
}

// arity describes one generated variant.
type arity struct {
	N int
}

func (a arity) Word() string { return numberWords[a.N] }

func (a arity) Indexes() []int {
	out := make([]int, a.N)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func (a arity) join(pattern, sep string) string {
	parts := make([]string, a.N)
	for i := range parts {
		parts[i] = strings.ReplaceAll(pattern, "#", fmt.Sprint(i+1))
	}
	return strings.Join(parts, sep)
}

// TypeParams is "T1, T2, ..., TN".
func (a arity) TypeParams() string { return a.join("T#", ", ") }

// ExtractorParams is "e1 extract.Extractor[S, T1], ...".
func (a arity) ExtractorParams(qual string) string {
	return a.join("e# "+qual+"Extractor[S, T#]", ", ")
}

// Values is "v1, v2, ..., vN".
func (a arity) Values() string { return a.join("v#", ", ") }

const header = `// Code generated by internal/gen/arity. DO NOT EDIT.

`

const joinTemplate = header + `package extract

import (
	"context"

	"github.com/morezero/interactions/pkg/interaction"
	"github.com/morezero/interactions/pkg/respond"
)
{{range $a := .}}
// Tuple{{.N}} holds the values of a Join{{.N}}.
type Tuple{{.N}}[{{.TypeParams}} any] struct {
{{- range .Indexes}}
	V{{.}} T{{.}}
{{- end}}
}

// Join{{.N}} runs {{.Word}} extractors in order as one extractor. The first
// rejection is converted to a response on the spot and returned as a
// respond.ResponseRejection; the extractors after it do not run.
func Join{{.N}}[S, {{.TypeParams}} any]({{.ExtractorParams ""}}) Extractor[S, Tuple{{.N}}[{{.TypeParams}}]] {
	return Func[S, Tuple{{.N}}[{{.TypeParams}}]](func(ctx context.Context, ev *interaction.Event, state S) (Tuple{{.N}}[{{.TypeParams}}], respond.Rejection) {
		var out Tuple{{.N}}[{{.TypeParams}}]
		var rej respond.Rejection
{{- range .Indexes}}
		if out.V{{.}}, rej = e{{.}}.Extract(ctx, ev, state); rej != nil {
			return Tuple{{$a.N}}[{{$a.TypeParams}}]{}, respond.ResponseRejection{Response: rej.IntoResponse()}
		}
{{- end}}
		return out, nil
	})
}
{{end}}`

const handlerTemplate = header + `package handler

import (
	"context"

	"github.com/morezero/interactions/pkg/extract"
	"github.com/morezero/interactions/pkg/interaction"
	"github.com/morezero/interactions/pkg/respond"
)
{{range .}}
// Handle{{.N}} lifts fn into a Handler. The arguments of fn come from the
// given extractors, run left to right; the first rejection becomes the
// response and fn is not called.
func Handle{{.N}}[S, {{.TypeParams}} any, R respond.Responder]({{.ExtractorParams "extract."}}, fn func(context.Context, {{.TypeParams}}) (R, error)) Handler[S] {
	return Func[S](func(ctx context.Context, ev interaction.Event, state S) interaction.Response {
{{- range .Indexes}}
		v{{.}}, rej := e{{.}}.Extract(ctx, &ev, state)
		if rej != nil {
			return rej.IntoResponse()
		}
{{- end}}
		out, err := fn(ctx, {{.Values}})
		return respond.Result(out, err)
	})
}
{{end}}`

func main() {
	kind := flag.String("kind", "", "what to generate: join or handler")
	out := flag.String("out", "", "output file")
	flag.Parse()

	var (
		src  string
		from int
	)
	switch *kind {
	case "join":
		src, from = joinTemplate, 2
	case "handler":
		src, from = handlerTemplate, 1
	default:
		log.Fatalf("arity: unknown -kind %q (use join or handler)", *kind)
	}
	if *out == "" {
		log.Fatal("arity: -out is required")
	}

	var arities []arity
	for n := from; n <= MaxArity; n++ {
		arities = append(arities, arity{N: n})
	}

	tmpl := template.Must(template.New(*kind).Parse(src))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		log.Fatalf("arity: execute template: %v", err)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("arity: format output: %v\n%s", err, buf.Bytes())
	}
	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("arity: write %s: %v", *out, err)
	}
}
