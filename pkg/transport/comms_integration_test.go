package transport

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	commsserver "github.com/nats-io/nats-server/v2/server"
	comms "github.com/nats-io/nats.go"

	"github.com/morezero/interactions/pkg/dispatcher"
	"github.com/morezero/interactions/pkg/extract"
	"github.com/morezero/interactions/pkg/handler"
	"github.com/morezero/interactions/pkg/interaction"
	"github.com/morezero/interactions/pkg/respond"
)

const commsTestPrefix = "transport:comms_integration_test"

// startTestServer starts an in-process NATS server for testing.
func startTestServer(t *testing.T, port int) (*comms.Conn, func()) {
	t.Helper()

	ns, err := commsserver.NewServer(&commsserver.Options{
		Host:   "127.0.0.1",
		Port:   port,
		NoLog:  true,
		NoSigs: true,
	})
	if err != nil {
		t.Fatalf("%s - failed to create server: %v", commsTestPrefix, err)
	}

	go ns.Start()
	if !ns.ReadyForConnections(10 * time.Second) {
		t.Fatalf("%s - server failed to start", commsTestPrefix)
	}

	nc, err := comms.Connect(ns.ClientURL(), comms.Timeout(5*time.Second))
	if err != nil {
		ns.Shutdown()
		t.Fatalf("%s - failed to connect: %v", commsTestPrefix, err)
	}

	return nc, func() {
		nc.Close()
		ns.Shutdown()
		ns.WaitForShutdown()
	}
}

type surveyForm struct {
	Answer string `json:"answer"`
}

func surveyRouter() *dispatcher.Router[struct{}] {
	return dispatcher.NewRouter(struct{}{}, nil).
		Modal("survey", handler.Handle1(extract.Modal[struct{}, surveyForm](),
			func(_ context.Context, m extract.ModalSubmit[surveyForm]) (interaction.Response, error) {
				return respond.Ephemeral("You said " + m.Data.Answer), nil
			}))
}

func request(t *testing.T, nc *comms.Conn, subject string, body []byte) *dispatcher.InteractionReply {
	t.Helper()
	msg, err := nc.Request(subject, body, 5*time.Second)
	if err != nil {
		t.Fatalf("%s - request failed: %v", commsTestPrefix, err)
	}
	var reply dispatcher.InteractionReply
	if err := json.Unmarshal(msg.Data, &reply); err != nil {
		t.Fatalf("%s - failed to decode reply: %v", commsTestPrefix, err)
	}
	return &reply
}

func TestComms_RequestReply(t *testing.T) {
	nc, cleanup := startTestServer(t, 14250)
	defer cleanup()

	c := NewComms(nc, surveyRouter(), nil)
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("%s - Start: %v", commsTestPrefix, err)
	}
	defer c.Stop(context.Background())

	body := []byte(`{
		"id": "req-1",
		"interaction": {
			"id": "int-1", "type": 5,
			"data": {"custom_id": "survey", "components": [
				{"type": 18, "component": {"type": 4, "custom_id": "answer", "value": "yes"}}
			]}
		},
		"ctx": {"timeoutMs": 1000}
	}`)
	reply := request(t, nc, "interactions.v1.dispatch", body)

	if !reply.Ok || reply.ID != "req-1" {
		t.Fatalf("%s - reply = %+v (error %+v)", commsTestPrefix, reply, reply.Error)
	}
	if reply.Response == nil || reply.Response.Data.Content != "You said yes" || !reply.Response.Ephemeral() {
		t.Errorf("%s - response = %+v", commsTestPrefix, reply.Response)
	}
}

func TestComms_QueueSubscription(t *testing.T) {
	nc, cleanup := startTestServer(t, 14251)
	defer cleanup()

	c := NewComms(nc, surveyRouter(), &CommsOpts{Subject: "bots.survey", Queue: "survey-workers"})
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("%s - Start: %v", commsTestPrefix, err)
	}
	defer c.Stop(context.Background())

	// Missing fields decode to their zero value.
	reply := request(t, nc, "bots.survey", []byte(`{"id":"req-2","interaction":{"id":"int-2","type":5,"data":{"custom_id":"survey","components":[]}}}`))
	if !reply.Ok {
		t.Fatalf("%s - reply = %+v", commsTestPrefix, reply.Error)
	}
	if reply.Response.Data.Content != "You said " {
		t.Errorf("%s - content = %q", commsTestPrefix, reply.Response.Data.Content)
	}

	reply = request(t, nc, "bots.survey", []byte(`{"id":"req-3","interaction":{"id":"int-3","type":2,"data":{"name":"survey"}}}`))
	if !reply.Ok || !reply.Response.Ephemeral() {
		t.Fatalf("%s - reply = %+v", commsTestPrefix, reply)
	}
	if got := reply.Response.Data.Embeds[0].Description; got != "Unknown interaction: command:survey" {
		t.Errorf("%s - description = %q", commsTestPrefix, got)
	}
}

func TestComms_InvalidRequest(t *testing.T) {
	nc, cleanup := startTestServer(t, 14252)
	defer cleanup()

	c := NewComms(nc, surveyRouter(), nil)
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("%s - Start: %v", commsTestPrefix, err)
	}
	defer c.Stop(context.Background())

	reply := request(t, nc, c.Subject(), []byte(`{broken`))
	if reply.Ok || reply.Error == nil || reply.Error.Code != dispatcher.CodeInvalidRequest {
		t.Errorf("%s - reply = %+v", commsTestPrefix, reply)
	}

	reply = request(t, nc, c.Subject(), []byte(`{"id":"req-4"}`))
	if reply.Ok || reply.Error == nil || reply.Error.Code != dispatcher.CodeInvalidArgument || reply.ID != "req-4" {
		t.Errorf("%s - reply = %+v", commsTestPrefix, reply)
	}
}

func TestComms_StopUnsubscribes(t *testing.T) {
	nc, cleanup := startTestServer(t, 14253)
	defer cleanup()

	c := NewComms(nc, surveyRouter(), nil)
	if err := c.Stop(context.Background()); err != nil {
		t.Errorf("%s - Stop before Start: %v", commsTestPrefix, err)
	}
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("%s - Start: %v", commsTestPrefix, err)
	}
	if err := c.Stop(context.Background()); err != nil {
		t.Fatalf("%s - Stop: %v", commsTestPrefix, err)
	}

	if _, err := nc.Request(c.Subject(), []byte(`{}`), 200*time.Millisecond); err == nil {
		t.Errorf("%s - expected no responder after Stop", commsTestPrefix)
	}
}
