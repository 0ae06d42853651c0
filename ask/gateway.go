// Package ask answers questions over the catalog by splitting recent
// document text into chunks and querying a language model once per chunk.
package ask

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/Maikl76/legislativa"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Defaults applied by NewGateway.
const (
	DefaultRecentDocs = 5
	DefaultMaxTokens  = 500
	DefaultTimeout    = 15 * time.Second
)

// SystemPrompt instructs the model to stay within the supplied text.
const SystemPrompt = "You are an AI expert on legislation. Answer only on the basis of the documents provided below."

// Ensure Gateway implements legislativa.Asker at compile time.
var _ legislativa.Asker = (*Gateway)(nil)

// Gateway implements legislativa.Asker over a catalog and a Completer.
type Gateway struct {
	Catalog   legislativa.CatalogService
	Completer legislativa.Completer
	Cache     *Cache

	// RecentDocs is how many of the latest catalog documents are searched.
	RecentDocs int
	// ChunkSize is the chunk length in runes.
	ChunkSize int
	MaxTokens int
	// Timeout bounds each completion call.
	Timeout time.Duration
	// Concurrency bounds how many chunks are in flight. Values below 1
	// mean one chunk at a time.
	Concurrency int

	Logger *slog.Logger

	group singleflight.Group
}

// NewGateway creates a Gateway with default limits and a fresh cache.
func NewGateway(catalog legislativa.CatalogService, completer legislativa.Completer) *Gateway {
	return &Gateway{
		Catalog:     catalog,
		Completer:   completer,
		Cache:       NewCache(DefaultCacheSize),
		RecentDocs:  DefaultRecentDocs,
		ChunkSize:   legislativa.DefaultChunkSize,
		MaxTokens:   DefaultMaxTokens,
		Timeout:     DefaultTimeout,
		Concurrency: 1,
	}
}

// Ask answers question from the most recent documents. A repeated question
// is answered from the cache until the catalog is reloaded. Failures of individual chunks are reported
// inline in the answer rather than returned.
//
// Once a question is being answered, every chunk is attempted even if ctx
// is canceled.
func (g *Gateway) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", legislativa.Errorf(legislativa.EINVALID, "question required")
	}

	catalog := g.Catalog.Catalog()
	if g.Cache.Bind(catalog.ID) {
		g.logger().Debug("answer cache cleared", "catalog", catalog.ID)
	}

	if answer, ok := g.Cache.Get(question); ok {
		g.logger().Debug("answer cache hit", "question", question)
		return answer, nil
	}

	v, err, _ := g.group.Do(catalog.ID+"\x00"+question, func() (interface{}, error) {
		if answer, ok := g.Cache.Get(question); ok {
			return answer, nil
		}
		answer := g.answer(context.WithoutCancel(ctx), catalog, question)
		g.Cache.AddIfBound(catalog.ID, question, answer)
		return answer, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (g *Gateway) answer(ctx context.Context, catalog *legislativa.Catalog, question string) string {
	text := catalog.RecentContent(g.RecentDocs)
	chunks := legislativa.SplitChunks(text, g.ChunkSize)
	parts := make([]string, len(chunks))

	concurrency := g.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var eg errgroup.Group
	eg.SetLimit(concurrency)
	for i, chunk := range chunks {
		eg.Go(func() error {
			parts[i] = g.answerChunk(ctx, chunk, question)
			return nil
		})
	}
	_ = eg.Wait()

	g.logger().Info("question answered", "chunks", len(chunks), "chars", len(text))
	return strings.TrimRightFunc(strings.Join(parts, ""), unicode.IsSpace)
}

// answerChunk returns the contribution of one chunk to the final answer.
func (g *Gateway) answerChunk(ctx context.Context, chunk, question string) string {
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	reply, err := g.Completer.Complete(ctx, &legislativa.CompletionRequest{
		System:    SystemPrompt,
		User:      BuildUserPrompt(chunk, question),
		MaxTokens: g.MaxTokens,
	})
	if err != nil {
		g.logger().Warn("chunk failed", "err", err)
		return fmt.Sprintf("⚠️ Error processing one part: %v\n", err)
	}
	return reply + "\n\n"
}

// BuildUserPrompt embeds a chunk of document text and the question.
func BuildUserPrompt(chunk, question string) string {
	return fmt.Sprintf("Documents:\n%s\n\nQuestion: %s", chunk, question)
}

func (g *Gateway) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
