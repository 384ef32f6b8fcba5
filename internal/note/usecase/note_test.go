package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"funbook/internal/note"
	"funbook/internal/note/usecase"
	"funbook/pkg/markdown"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock content repository for testing
type mockContentRepo struct {
	raw string
	err error
}

func (m *mockContentRepo) FetchRaw(ctx context.Context, ref string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.raw, nil
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	renderer := markdown.NewRenderer()

	t.Run("renders with front matter stripped", func(t *testing.T) {
		repo := &mockContentRepo{raw: "---\nscore: 9\n---\n# Title\ntext"}
		uc := usecase.New(&mockLogger{}, repo, renderer)

		n, err := uc.Load(ctx, "https://github.com/funloss/funKnowledge/blob/main/dune.md")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(n.HTML, `<h1 id="heading-0">Title</h1>`) {
			t.Errorf("unexpected html: %s", n.HTML)
		}
		if strings.Contains(n.HTML, "score: 9") {
			t.Errorf("front matter leaked into html: %s", n.HTML)
		}
		if n.Meta["score"] != 9 {
			t.Errorf("unexpected metadata: %v", n.Meta)
		}
	})

	t.Run("outline derives from stripped text", func(t *testing.T) {
		repo := &mockContentRepo{raw: "---\nfoo: bar\n---\n# A\nsome text\n## B\n"}
		uc := usecase.New(&mockLogger{}, repo, renderer)

		n, err := uc.Load(ctx, "ref")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(n.Outline) != 2 {
			t.Fatalf("expected 2 headings, got %d", len(n.Outline))
		}
		if n.Outline[0].ID != "heading-0" || n.Outline[1].ID != "heading-2" {
			t.Errorf("outline ids must match rendered ids: %+v", n.Outline)
		}
		if !strings.Contains(n.HTML, `id="heading-0"`) || !strings.Contains(n.HTML, `id="heading-2"`) {
			t.Errorf("rendered ids missing: %s", n.HTML)
		}
	})

	t.Run("empty reference", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockContentRepo{}, renderer)

		if _, err := uc.Load(ctx, ""); !errors.Is(err, note.ErrNoReference) {
			t.Errorf("expected ErrNoReference, got %v", err)
		}
	})

	t.Run("fetch failure maps to ErrFetchFailed", func(t *testing.T) {
		repo := &mockContentRepo{err: errors.New("host down")}
		uc := usecase.New(&mockLogger{}, repo, renderer)

		if _, err := uc.Load(ctx, "ref"); !errors.Is(err, note.ErrFetchFailed) {
			t.Errorf("expected ErrFetchFailed, got %v", err)
		}
	})
}
