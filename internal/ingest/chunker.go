// Package ingest turns uploaded syllabus documents into index-ready
// chunks and drives the indexing workflow.
package ingest

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	chunkTargetChars  = 1000
	chunkOverlapChars = 200
)

// ChunkMarkdown splits markdown along level-1/2 headings, keeping the
// heading line with every chunk carved from its section. Oversized
// sections are re-split with the plain-text chunker.
func ChunkMarkdown(markdown string) []string {
	md := goldmark.New()
	reader := text.NewReader([]byte(markdown))
	doc := md.Parser().Parse(reader)

	var chunks []string
	var heading string
	var parts []string
	var size int

	flush := func() {
		if len(parts) == 0 {
			return
		}
		body := strings.Join(parts, "\n\n")
		for _, piece := range ChunkText(body) {
			if heading != "" {
				piece = "Heading: " + heading + "\n" + piece
			}
			chunks = append(chunks, piece)
		}
		parts = nil
		size = 0
	}

	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		if h, ok := node.(*ast.Heading); ok && h.Level <= 2 {
			flush()
			heading = string(h.Text(reader.Source()))
			continue
		}
		txt := nodeText(node, reader.Source())
		if txt == "" {
			continue
		}
		if size+len(txt) > chunkTargetChars {
			flush()
		}
		parts = append(parts, txt)
		size += len(txt)
	}
	flush()
	return chunks
}

// ChunkText splits plain text on paragraph boundaries into spans of
// roughly chunkTargetChars, carrying a small overlap between adjacent
// spans so sentences near a boundary stay retrievable from both sides.
func ChunkText(content string) []string {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	if len(content) <= chunkTargetChars {
		return []string{content}
	}

	paragraphs := splitParagraphs(content)
	var chunks []string
	var buf strings.Builder
	for _, para := range paragraphs {
		if buf.Len() > 0 && buf.Len()+len(para) > chunkTargetChars {
			chunk := buf.String()
			chunks = append(chunks, chunk)
			buf.Reset()
			buf.WriteString(tailOverlap(chunk))
		}
		if buf.Len() > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(para)
	}
	if strings.TrimSpace(buf.String()) != "" {
		chunks = append(chunks, buf.String())
	}
	return chunks
}

// splitParagraphs breaks on blank lines; a paragraph longer than the
// chunk target is further broken on sentence ends.
func splitParagraphs(content string) []string {
	var out []string
	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if len(para) <= chunkTargetChars {
			out = append(out, para)
			continue
		}
		var sentence strings.Builder
		for _, r := range para {
			sentence.WriteRune(r)
			if (r == '.' || r == '?' || r == '!') && sentence.Len() >= chunkTargetChars/2 {
				out = append(out, strings.TrimSpace(sentence.String()))
				sentence.Reset()
			}
		}
		if rest := strings.TrimSpace(sentence.String()); rest != "" {
			out = append(out, rest)
		}
	}
	return out
}

func tailOverlap(chunk string) string {
	if len(chunk) <= chunkOverlapChars {
		return chunk
	}
	tail := chunk[len(chunk)-chunkOverlapChars:]
	// do not start mid-word
	if idx := strings.IndexAny(tail, " \n"); idx >= 0 && idx < len(tail)-1 {
		tail = tail[idx+1:]
	}
	return tail
}

func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if node.Kind() == ast.KindText {
			sb.Write(node.(*ast.Text).Segment.Value(source))
			sb.WriteByte(' ')
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
