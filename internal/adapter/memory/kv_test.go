package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

func TestKV_GetMissing(t *testing.T) {
	t.Parallel()

	_, err := NewKV().Get(context.Background(), "myDeck")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestKV_SetGet_CopiesValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := NewKV()

	in := []byte(`[]`)
	if err := kv.Set(ctx, "k", in); err != nil {
		t.Fatalf("Set: %v", err)
	}
	in[0] = 'x'

	got, err := kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "[]" {
		t.Fatalf("stored value was aliased: %q", got)
	}

	got[0] = 'y'
	again, _ := kv.Get(ctx, "k")
	if string(again) != "[]" {
		t.Fatalf("returned value was aliased: %q", again)
	}
}

func TestKV_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewKV().Set(ctx, "k", nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
