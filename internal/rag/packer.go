package rag

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/Govind-17/chat-with-syllbus/internal/model"
)

const DefaultMaxContextChars = 6000

const packGuidance = "MCA domain context. Prioritize: course structure (semesters, subjects, modules, credits), " +
	"prerequisites (skills, prior courses), grading (internal assessment, exams, weightage), " +
	"and career guidance (roles aligned to syllabus topics). Extract concise, factual statements. " +
	"Prefer the most relevant and recent syllabus details. Include brief bullet lists for enumerations."

// Pack deduplicates, ranks, filters and greedily packs retrieved chunks
// into a bounded evidence bundle with numbered citations. The bundle text
// never exceeds maxChars.
func Pack(chunks []model.RetrievedChunk, analysis model.QueryAnalysis, maxChars int) model.ContextBundle {
	if maxChars <= 0 {
		maxChars = DefaultMaxContextChars
	}
	if len(chunks) == 0 {
		return model.ContextBundle{}
	}

	ranked := dedupeAndRank(chunks)

	var buf strings.Builder
	var sources []model.SourceRef

	// append counts the joining newline so the final text stays within
	// budget no matter what
	appendPart := func(part string) bool {
		cost := len(part)
		if buf.Len() > 0 {
			cost++
		}
		if buf.Len()+cost > maxChars {
			return false
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(part)
		return true
	}

	semesters := "all"
	if len(analysis.Semesters) > 0 {
		semesters = strings.Join(analysis.Semesters, ", ")
	}
	preamble := fmt.Sprintf("Guidance: %s\nFocus: %s | Semesters: %s\n", packGuidance, analysis.Focus, semesters)
	if !appendPart(preamble) {
		return model.ContextBundle{}
	}

	tryAppend := func(chunk model.RetrievedChunk) bool {
		idx := len(sources) + 1
		name, page := sourceMeta(chunk.Metadata)
		header := fmt.Sprintf("[%d] Source: %s", idx, name)
		if page != nil {
			header += fmt.Sprintf(", page %d", *page)
		}
		header += fmt.Sprintf(" (score: %.4f)", chunk.Score)
		if !appendPart(header + "\n" + chunk.Text + "\n") {
			return false
		}
		sources = append(sources, model.SourceRef{Index: idx, Name: name, Page: page, Score: chunk.Score})
		return true
	}

	// first-fit-stop: the walk ends at the first chunk that would
	// overflow, later chunks are not reconsidered
	packFrom := func(applyFilter bool) {
		for _, chunk := range ranked {
			if applyFilter && !mentionsSemester(chunk.Text, analysis.Semesters) {
				continue
			}
			if !tryAppend(chunk) {
				break
			}
		}
	}

	if len(analysis.Semesters) > 0 {
		packFrom(true)
		// a strict semester filter must not starve the question of
		// evidence that does exist
		if len(sources) == 0 {
			packFrom(false)
		}
	} else {
		packFrom(false)
	}

	if len(sources) == 0 {
		return model.ContextBundle{}
	}

	appendPart(coverageSummary(sources))

	return model.ContextBundle{
		Text:    strings.TrimSpace(buf.String()),
		Sources: sources,
	}
}

// dedupeAndRank collapses identical chunk texts keeping the best (lowest)
// score, then sorts ascending by score. The sort is stable; ties keep
// first-seen order, which carries no meaning of its own.
func dedupeAndRank(chunks []model.RetrievedChunk) []model.RetrievedChunk {
	byHash := make(map[string]model.RetrievedChunk, len(chunks))
	var order []string
	for _, chunk := range chunks {
		h := fingerprint(chunk.Text)
		prev, ok := byHash[h]
		if !ok {
			byHash[h] = chunk
			order = append(order, h)
			continue
		}
		if chunk.Score < prev.Score {
			byHash[h] = chunk
		}
	}
	ranked := make([]model.RetrievedChunk, 0, len(order))
	for _, h := range order {
		ranked = append(ranked, byHash[h])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})
	return ranked
}

// fingerprint is a uniqueness key for chunk text, not a security measure.
func fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// mentionsSemester does a loose digit match: "sem3" matches any text
// containing "3".
func mentionsSemester(text string, semesters []string) bool {
	if len(semesters) == 0 {
		return true
	}
	lower := strings.ToLower(text)
	for _, sem := range semesters {
		digit := strings.TrimPrefix(sem, "sem")
		if strings.Contains(lower, digit) {
			return true
		}
	}
	return false
}

func coverageSummary(sources []model.SourceRef) string {
	counts := map[string]int{}
	var names []string
	for _, src := range sources {
		if _, ok := counts[src.Name]; !ok {
			names = append(names, src.Name)
		}
		counts[src.Name]++
	}
	var b strings.Builder
	b.WriteString("Document coverage:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "- %s: %d context blocks\n", name, counts[name])
	}
	return b.String()
}

func sourceMeta(meta map[string]interface{}) (string, *int) {
	name := metaString(meta, "source")
	if name == "" {
		name = metaString(meta, "file_path")
	}
	if name == "" {
		name = "document"
	}
	for _, key := range []string{"page", "page_number", "page_index"} {
		if page, ok := metaInt(meta, key); ok {
			return name, &page
		}
	}
	return name, nil
}

func metaString(meta map[string]interface{}, key string) string {
	if meta == nil {
		return ""
	}
	if v, ok := meta[key].(string); ok {
		return v
	}
	return ""
}

func metaInt(meta map[string]interface{}, key string) (int, bool) {
	if meta == nil {
		return 0, false
	}
	switch v := meta[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}
