package cache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestRedis_BypassMode(t *testing.T) {
	// nothing listens here, so the cache comes up in bypass mode
	r := NewRedis("127.0.0.1:1", "", zap.NewNop())

	ctx := context.Background()
	var out map[string]string
	hit, err := r.GetJSON(ctx, "market:test:key", &out)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if hit {
		t.Fatal("expected miss in bypass mode")
	}

	if err := r.SetJSON(ctx, "market:test:key", map[string]string{"a": "b"}, time.Minute); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestRedis_NilReceiverBypasses(t *testing.T) {
	var r *Redis

	hit, err := r.GetJSON(context.Background(), "k", nil)
	if err != nil || hit {
		t.Fatalf("expected silent miss, got hit=%v err=%v", hit, err)
	}
	if err := r.SetJSON(context.Background(), "k", nil, 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
