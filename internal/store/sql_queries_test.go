package store

import (
	"strings"
	"testing"
)

func TestBuildListPublishedQuery(t *testing.T) {
	query, args, err := buildListPublishedQuery(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"FROM blog_posts", "published = $1", "ORDER BY created_at DESC, id DESC", "LIMIT 10"} {
		if !strings.Contains(query, want) {
			t.Errorf("expected query to contain %q, got %q", want, query)
		}
	}

	if len(args) != 1 || args[0] != true {
		t.Errorf("expected args [true], got %v", args)
	}
}
