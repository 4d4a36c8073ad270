package lang

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/typeset/layout"
)

// globalCache stores parsed syntax trees keyed by source hash. Trees are
// immutable after parsing, so cached entries are shared across callers.
var globalCache sync.Map

// cacheEntry tracks one-time parsing state for a source.
type cacheEntry struct {
	once sync.Once
	root *Syntax
	err  error
}

// parseSyntaxCached parses a source string, reusing the cached tree for
// inputs seen before. Only default-option parses reach this path.
func parseSyntaxCached(
	ctx context.Context,
	source string,
	o options,
) (*Syntax, error) {
	hash := xxh3.Hash([]byte(source))
	key := strconv.FormatUint(hash, 36)

	entry := new(cacheEntry)

	value, hit := globalCache.LoadOrStore(key, entry)

	cached, ok := value.(*cacheEntry)
	if !ok {
		return nil, ErrInternal.
			With(slog.String("issue", "invalid entry type in cache"))
	}

	o.logger.TraceContext(ctx, "cache lookup",
		slog.String("source_hash", strconv.FormatUint(hash, 16)),
		slog.Bool("cache_hit", hit),
	)

	cached.once.Do(func() {
		cached.root, cached.err = parseSyntax(source, o.grammar, o.maxDepth)
		if cached.err != nil {
			cached.err = WrapError(cached.err).With(
				slog.Int("source_length", len(source)),
			)
		}
	})

	return cached.root, cached.err
}

// ParseReader reads a complete DSL expression from r and evaluates it
// like Parse. The reader is prefetched asynchronously while earlier
// chunks are consumed.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	args []*layout.Layout,
	opts ...Option,
) (*layout.Layout, error) {
	o := makeOptions(opts...)

	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	o.logger.TraceContext(ctx, "read input",
		slog.Int("source_bytes", len(data)),
		slog.Bool("read_ahead", true),
	)

	return ParseWith(ctx, string(data), args, opts...)
}

// ClearCache removes all cached syntax trees. This is primarily useful
// for testing or when memory needs to be reclaimed.
func ClearCache() {
	globalCache = sync.Map{}
}
