package artifact

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fed-sentiment/internal/domain"
)

func TestResolver_DispatchesByKind(t *testing.T) {
	images := &StubLoader{}
	tables := &StubLoader{Tables: map[string]domain.Table{"final": {Header: []string{"tone"}}}}
	r := NewResolver(images, tables)
	ctx := context.Background()

	got, err := r.Load(ctx, domain.ArtifactRef{Name: "final", Kind: domain.ArtifactTable})
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	if diff := cmp.Diff([]string{"tone"}, got.Table.Header); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}

	if _, err := r.Load(ctx, domain.ArtifactRef{Name: "graph1", Kind: domain.ArtifactImage}); err != nil {
		t.Fatalf("load image: %v", err)
	}

	if diff := cmp.Diff([]string{"graph1"}, images.Calls()); diff != "" {
		t.Fatalf("image calls mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"final"}, tables.Calls()); diff != "" {
		t.Fatalf("table calls mismatch (-want +got):\n%s", diff)
	}
}

func TestResolver_UnknownKind(t *testing.T) {
	r := NewResolver(&StubLoader{}, nil)
	if _, err := r.Load(context.Background(), domain.ArtifactRef{Name: "x", Kind: "video"}); !errors.Is(err, ErrUnsupportedKind) {
		t.Fatalf("expected ErrUnsupportedKind, got %v", err)
	}
	if _, err := r.Load(context.Background(), domain.ArtifactRef{Name: "final", Kind: domain.ArtifactTable}); !errors.Is(err, ErrUnsupportedKind) {
		t.Fatalf("expected ErrUnsupportedKind without table loader, got %v", err)
	}
}
