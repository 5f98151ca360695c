package internal

import "sort"

// StreamStats summarizes an event stream for the inspect command
type StreamStats struct {
	Total        int
	ByKind       map[int]int
	ByAuthor     map[string]int
	Unclassified int
	DuplicateIDs []string
	SequenceGaps map[string][]int // author -> missing delta sequences
}

// AnalyzeEvents computes stream statistics over a batch of events
func AnalyzeEvents(events []*Event) *StreamStats {
	stats := &StreamStats{
		ByKind:       make(map[int]int),
		ByAuthor:     make(map[string]int),
		SequenceGaps: make(map[string][]int),
	}

	classifier := KindClassifier{}
	seen := make(map[string]bool)
	dupes := make(map[string]bool)
	deltaSeqs := make(map[string]map[int]bool)

	for _, ev := range events {
		stats.Total++
		stats.ByKind[ev.Kind]++
		stats.ByAuthor[ev.Author]++

		if !classifier.IsFinalMessage(ev) && !classifier.IsStreamDelta(ev) &&
			!classifier.IsTypingStart(ev) && !classifier.IsTypingStop(ev) {
			stats.Unclassified++
		}

		if ev.ID != "" {
			if seen[ev.ID] && !dupes[ev.ID] {
				dupes[ev.ID] = true
				stats.DuplicateIDs = append(stats.DuplicateIDs, ev.ID)
			}
			seen[ev.ID] = true
		}

		if classifier.IsStreamDelta(ev) && ev.Sequence >= 0 {
			if deltaSeqs[ev.Author] == nil {
				deltaSeqs[ev.Author] = make(map[int]bool)
			}
			deltaSeqs[ev.Author][ev.Sequence] = true
		}
	}

	// A gap is a sequence number missing between an author's lowest and
	// highest delivered delta sequences.
	for author, seqs := range deltaSeqs {
		min, max := -1, -1
		for seq := range seqs {
			if min == -1 || seq < min {
				min = seq
			}
			if seq > max {
				max = seq
			}
		}
		for seq := min; seq <= max; seq++ {
			if !seqs[seq] {
				stats.SequenceGaps[author] = append(stats.SequenceGaps[author], seq)
			}
		}
		sort.Ints(stats.SequenceGaps[author])
	}

	sort.Strings(stats.DuplicateIDs)
	return stats
}

// Authors returns the authors seen in the stream, sorted
func (s *StreamStats) Authors() []string {
	authors := make([]string, 0, len(s.ByAuthor))
	for author := range s.ByAuthor {
		authors = append(authors, author)
	}
	sort.Strings(authors)
	return authors
}

// Kinds returns the event kinds seen in the stream, sorted
func (s *StreamStats) Kinds() []int {
	kinds := make([]int, 0, len(s.ByKind))
	for kind := range s.ByKind {
		kinds = append(kinds, kind)
	}
	sort.Ints(kinds)
	return kinds
}
