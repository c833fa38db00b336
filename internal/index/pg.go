package index

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/didi/gendry/builder"
	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/Govind-17/chat-with-syllbus/internal/ai"
	"github.com/Govind-17/chat-with-syllbus/internal/model"
	"github.com/Govind-17/chat-with-syllbus/internal/pkg/dbutil"
)

const (
	taskTypeDocument = "RETRIEVAL_DOCUMENT"
	taskTypeQuery    = "RETRIEVAL_QUERY"
)

type PGArgs struct {
	DB       *sqlx.DB
	Embedder ai.IEmbedder
}

// PGIndex stores chunk vectors in a Postgres table with a pgvector column
// and ranks matches by cosine distance.
type PGIndex struct {
	db       *sqlx.DB
	embedder ai.IEmbedder
}

func init() {
	Register("postgres", createPGIndex)
}

func createPGIndex(args interface{}) (Index, error) {
	pgArgs, ok := args.(PGArgs)
	if !ok || pgArgs.DB == nil || pgArgs.Embedder == nil {
		return nil, fmt.Errorf("postgres index requires a db handle and an embedder")
	}
	return &PGIndex{db: pgArgs.DB, embedder: pgArgs.Embedder}, nil
}

func (x *PGIndex) IndexChunks(ctx context.Context, chunks []model.IndexChunk) error {
	logger := logutil.GetLogger(ctx)
	for _, chunk := range chunks {
		emb, err := x.embedder.Embed(ctx, chunk.Text, taskTypeDocument)
		if err != nil {
			return fmt.Errorf("embed chunk: %w", err)
		}
		var page interface{}
		if chunk.Page > 0 {
			page = chunk.Page
		}
		data := map[string]interface{}{
			"source":    chunk.Source,
			"page":      page,
			"content":   chunk.Text,
			"embedding": pgvector.NewVector(emb),
		}
		sqlStr, sqlArgs, err := builder.BuildInsert("syllabus_chunks", []map[string]interface{}{data})
		if err != nil {
			return err
		}
		sqlStr, sqlArgs = dbutil.Finalize(sqlStr, sqlArgs)
		if _, err := x.db.ExecContext(ctx, sqlStr, sqlArgs...); err != nil {
			return fmt.Errorf("insert chunk: %w", err)
		}
	}
	logger.Info("chunks indexed", zap.Int("count", len(chunks)))
	return nil
}

func (x *PGIndex) SearchWithScore(ctx context.Context, query string, k int) ([]model.RetrievedChunk, error) {
	emb, err := x.embedder.Embed(ctx, query, taskTypeQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	const q = `
		SELECT content, source, page, embedding <=> $1 AS score
		FROM syllabus_chunks
		ORDER BY embedding <=> $1
		LIMIT $2
	`
	rows, err := x.db.QueryContext(ctx, q, pgvector.NewVector(emb), k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanChunks(rows, true)
}

func (x *PGIndex) Search(ctx context.Context, query string, k int) ([]model.RetrievedChunk, error) {
	emb, err := x.embedder.Embed(ctx, query, taskTypeQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	const q = `
		SELECT content, source, page
		FROM syllabus_chunks
		ORDER BY embedding <=> $1
		LIMIT $2
	`
	rows, err := x.db.QueryContext(ctx, q, pgvector.NewVector(emb), k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanChunks(rows, false)
}

func (x *PGIndex) Count(ctx context.Context) (int, error) {
	var count int
	if err := x.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM syllabus_chunks"); err != nil {
		return 0, err
	}
	return count, nil
}

func (x *PGIndex) DeleteBySource(ctx context.Context, source string) error {
	where := map[string]interface{}{
		"source": source,
	}
	sqlStr, sqlArgs, err := builder.BuildDelete("syllabus_chunks", where)
	if err != nil {
		return err
	}
	sqlStr, sqlArgs = dbutil.Finalize(sqlStr, sqlArgs)
	_, err = x.db.ExecContext(ctx, sqlStr, sqlArgs...)
	return err
}

func scanChunks(rows *sql.Rows, withScore bool) ([]model.RetrievedChunk, error) {
	var results []model.RetrievedChunk
	for rows.Next() {
		var (
			content string
			source  string
			page    sql.NullInt64
			score   float64
		)
		var err error
		if withScore {
			err = rows.Scan(&content, &source, &page, &score)
		} else {
			err = rows.Scan(&content, &source, &page)
		}
		if err != nil {
			return nil, err
		}
		meta := map[string]interface{}{"source": source}
		if page.Valid {
			meta["page"] = int(page.Int64)
		}
		results = append(results, model.RetrievedChunk{
			Score:    score,
			Text:     content,
			Metadata: meta,
		})
	}
	return results, rows.Err()
}
