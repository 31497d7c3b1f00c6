package reflow

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/reflow/text"
)

// makePage builds a synthetic page of n single-line paragraphs spaced far
// enough apart that each run stays its own paragraph
func makePage(n int, tag string) []text.TextRun {
	runs := make([]text.TextRun, 0, n)
	for i := 0; i < n; i++ {
		runs = append(runs, text.TextRun{
			Text:       fmt.Sprintf("%s-%d", tag, i),
			X:          72,
			Y:          700 - float64(i)*100,
			Width:      100,
			Height:     12,
			FontFamily: "Helvetica",
			FontSize:   12,
		})
	}
	return runs
}

func newTestProcessor(t *testing.T) *Processor {
	t.Helper()
	proc, err := NewProcessor(NewDefaultConfig())
	require.NoError(t, err)
	return proc
}

func TestProcessor_EmptyDocument(t *testing.T) {
	proc := newTestProcessor(t)

	pages, truncated, err := proc.ReconstructDocument(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, pages)
	assert.False(t, truncated)
}

func TestProcessor_PageOrderPreserved(t *testing.T) {
	proc := newTestProcessor(t)

	var doc [][]text.TextRun
	for page := 0; page < 20; page++ {
		doc = append(doc, makePage(3, fmt.Sprintf("p%d", page)))
	}

	pages, truncated, err := proc.ReconstructDocument(context.Background(), doc)
	require.NoError(t, err)
	assert.False(t, truncated)
	require.Len(t, pages, 20)

	for page, paragraphs := range pages {
		require.Len(t, paragraphs, 3, "page %d", page)
		for i, para := range paragraphs {
			assert.Equal(t, fmt.Sprintf("p%d-%d", page, i), para.Text)
		}
	}
}

func TestProcessor_EmptyPageKeepsPlace(t *testing.T) {
	proc := newTestProcessor(t)

	doc := [][]text.TextRun{
		makePage(2, "p0"),
		nil,
		makePage(1, "p2"),
	}

	pages, _, err := proc.ReconstructDocument(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Len(t, pages[0], 2)
	assert.Empty(t, pages[1])
	assert.Len(t, pages[2], 1)
	assert.Equal(t, "p2-0", pages[2][0].Text)
}

func TestProcessor_ParagraphLimitTruncates(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.MaxTotalParagraphs = 4
	proc, err := NewProcessor(cfg)
	require.NoError(t, err)

	doc := [][]text.TextRun{
		makePage(3, "p0"),
		makePage(3, "p1"),
		makePage(3, "p2"),
	}

	pages, truncated, err := proc.ReconstructDocument(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, truncated)

	total := 0
	for _, paragraphs := range pages {
		total += len(paragraphs)
	}
	assert.Equal(t, 4, total)
}

func TestProcessor_CancelledContext(t *testing.T) {
	proc := newTestProcessor(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := proc.ReconstructDocument(ctx, [][]text.TextRun{makePage(1, "p0")})
	assert.Error(t, err)
}

func TestProcessor_ConcurrentDocuments(t *testing.T) {
	proc := newTestProcessor(t)

	done := make(chan error, 8)
	for d := 0; d < 8; d++ {
		go func(d int) {
			doc := [][]text.TextRun{makePage(2, fmt.Sprintf("d%d", d))}
			pages, _, err := proc.ReconstructDocument(context.Background(), doc)
			if err == nil && len(pages) != 1 {
				err = fmt.Errorf("expected 1 page, got %d", len(pages))
			}
			done <- err
		}(d)
	}

	for d := 0; d < 8; d++ {
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("timed out waiting for concurrent documents")
		}
	}
}

func TestProcessor_Stream(t *testing.T) {
	proc := newTestProcessor(t)

	var doc [][]text.TextRun
	for page := 0; page < 5; page++ {
		doc = append(doc, makePage(2, fmt.Sprintf("p%d", page)))
	}

	ch, err := proc.ReconstructStream(context.Background(), doc)
	require.NoError(t, err)

	next := 0
	for res := range ch {
		assert.Equal(t, next, res.Page)
		assert.Len(t, res.Paragraphs, 2)
		next++
	}
	assert.Equal(t, 5, next)
}

func TestProcessor_StreamTruncation(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.MaxTotalParagraphs = 3
	proc, err := NewProcessor(cfg)
	require.NoError(t, err)

	doc := [][]text.TextRun{
		makePage(2, "p0"),
		makePage(2, "p1"),
		makePage(2, "p2"),
	}

	ch, err := proc.ReconstructStream(context.Background(), doc)
	require.NoError(t, err)

	total := 0
	sawTruncated := false
	for res := range ch {
		total += len(res.Paragraphs)
		if res.Truncated {
			sawTruncated = true
		}
	}
	assert.Equal(t, 3, total)
	assert.True(t, sawTruncated)
}

func TestProcessor_StreamTruncationOnPageBoundary(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.MaxTotalParagraphs = 2
	proc, err := NewProcessor(cfg)
	require.NoError(t, err)

	doc := [][]text.TextRun{
		makePage(2, "p0"),
		makePage(2, "p1"),
		makePage(2, "p2"),
	}

	ch, err := proc.ReconstructStream(context.Background(), doc)
	require.NoError(t, err)

	total := 0
	sawTruncated := false
	var last PageParagraphs
	for res := range ch {
		total += len(res.Paragraphs)
		if res.Truncated {
			sawTruncated = true
		}
		last = res
	}

	// The limit lands exactly after page 0: its paragraphs all arrive,
	// followed by an empty marker page carrying the truncation flag
	assert.Equal(t, 2, total)
	assert.True(t, sawTruncated)
	assert.True(t, last.Truncated)
	assert.Empty(t, last.Paragraphs)
}

func TestProcessor_StreamEmpty(t *testing.T) {
	proc := newTestProcessor(t)

	ch, err := proc.ReconstructStream(context.Background(), nil)
	require.NoError(t, err)

	_, open := <-ch
	assert.False(t, open)
}
