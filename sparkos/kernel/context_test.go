package kernel

import "testing"

func TestContextRecvNeedsRight(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightSend | RightRecv)
	if !cap.Valid() {
		t.Fatal("expected valid capability")
	}

	ctx := &Context{k: k, taskID: 1}
	if res := ctx.SendToCapResult(cap.Restrict(RightSend), 1, []byte("x"), Capability{}); res != SendOK {
		t.Fatalf("expected SendOK, got %s", res)
	}

	if _, ok := ctx.TryRecv(cap.Restrict(RightSend)); ok {
		t.Fatal("expected TryRecv without recv right to fail")
	}
	msg, ok := ctx.TryRecv(cap.Restrict(RightRecv))
	if !ok {
		t.Fatal("expected message")
	}
	if got := string(msg.Payload()); got != "x" {
		t.Fatalf("expected payload x, got %q", got)
	}
	if _, ok := ctx.TryRecv(cap.Restrict(RightRecv)); ok {
		t.Fatal("expected empty mailbox")
	}
}

func TestContextSendChecksCapabilities(t *testing.T) {
	k := New()
	a := k.NewEndpoint(RightSend | RightRecv)
	b := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}

	tests := []struct {
		name string
		from Capability
		to   Capability
		want SendResult
	}{
		{"ok", a, b, SendOK},
		{"invalid from", Capability{}, b, SendErrInvalidFromCap},
		{"from recv only", a.Restrict(RightRecv), b, SendErrFromNoSendRight},
		{"invalid to", a, Capability{}, SendErrInvalidToCap},
		{"to recv only", a, b.Restrict(RightRecv), SendErrToNoSendRight},
	}
	for _, tt := range tests {
		if got := ctx.SendCapResult(tt.from, tt.to, 1, nil, Capability{}); got != tt.want {
			t.Fatalf("%s: expected %s, got %s", tt.name, tt.want, got)
		}
	}

	msg, ok := ctx.TryRecv(b)
	if !ok || msg.From != a.ep || msg.To != b.ep {
		t.Fatalf("expected message from %d to %d, got %+v", a.ep, b.ep, msg)
	}
}

func TestContextSendLimits(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}

	if res := ctx.SendToCapResult(cap, 1, make([]byte, MaxMessageBytes+1), Capability{}); res != SendErrPayloadTooLarge {
		t.Fatalf("expected SendErrPayloadTooLarge, got %s", res)
	}
	for i := 0; i < mailboxSlots; i++ {
		if res := ctx.SendToCapResult(cap, 1, []byte("x"), Capability{}); res != SendOK {
			t.Fatalf("expected SendOK filling queue, got %s", res)
		}
	}
	if res := ctx.SendToCapResult(cap, 1, []byte("y"), Capability{}); res != SendErrQueueFull {
		t.Fatalf("expected SendErrQueueFull, got %s", res)
	}
}

func TestMessagePayloadClampsLen(t *testing.T) {
	var msg Message
	msg.Len = MaxMessageBytes + 10
	if got := len(msg.Payload()); got != MaxMessageBytes {
		t.Fatalf("expected payload length %d, got %d", MaxMessageBytes, got)
	}
}

func TestRestrictNeverWidens(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightRecv)
	if got := cap.Restrict(RightSend); got.Valid() {
		t.Fatal("expected restrict to a missing right to be invalid")
	}
	if got := cap.Restrict(RightSend | RightRecv); got != cap {
		t.Fatalf("expected %+v, got %+v", cap, got)
	}
}
