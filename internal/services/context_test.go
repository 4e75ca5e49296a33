package services_test

import (
	"context"
	"testing"

	"fillercount/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithShow(ctx, "naruto")
	ctx = services.WithCategory(ctx, "filler")
	ctx = services.WithRequestID(ctx, "req-123")

	if show, ok := services.ShowFromContext(ctx); !ok || show != "naruto" {
		t.Fatalf("unexpected show: %v %v", show, ok)
	}
	if category, ok := services.CategoryFromContext(ctx); !ok || category != "filler" {
		t.Fatalf("unexpected category: %v %v", category, ok)
	}
	if rid, ok := services.RequestIDFromContext(ctx); !ok || rid != "req-123" {
		t.Fatalf("unexpected request id: %v %v", rid, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithShow(ctx, "")
	ctx = services.WithCategory(ctx, "")
	if _, ok := services.ShowFromContext(ctx); ok {
		t.Fatal("expected no show value")
	}
	if _, ok := services.CategoryFromContext(ctx); ok {
		t.Fatal("expected no category value")
	}
}
