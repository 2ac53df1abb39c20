// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package officemedia

import (
	"fmt"
	"io"
	"sort"
)

// TypeCount is the number of extracted files with a file extension.
type TypeCount struct {
	Extension string `json:"extension"`
	Count     int    `json:"count"`
}

// Summary is the type-frequency summary of an extraction. It is sorted by
// count in descending order, ties are sorted by extension in ascending order.
type Summary []TypeCount

// newSummary creates a sorted [Summary] from counts.
func newSummary(counts map[string]int) Summary {
	s := make(Summary, 0, len(counts))
	for ext, n := range counts {
		s = append(s, TypeCount{Extension: ext, Count: n})
	}
	sort.Slice(s, func(i, j int) bool {
		if s[i].Count != s[j].Count {
			return s[i].Count > s[j].Count
		}
		return s[i].Extension < s[j].Extension
	})
	return s
}

// Total returns the number of extracted files.
func (s Summary) Total() int {
	var total int
	for _, tc := range s {
		total += tc.Count
	}
	return total
}

// Count returns the number of extracted files with extension ext.
func (s Summary) Count(ext string) int {
	for _, tc := range s {
		if tc.Extension == ext {
			return tc.Count
		}
	}
	return 0
}

// ReportLines renders the summary as human readable lines. The first line holds
// the number of extracted files, followed by one line per file extension.
func (s Summary) ReportLines() []string {
	lines := make([]string, 0, len(s)+1)
	switch total := s.Total(); total {
	case 0:
		return append(lines, "No media files found")
	case 1:
		lines = append(lines, "1 media file found:")
	default:
		lines = append(lines, fmt.Sprintf("%d media files found:", total))
	}
	for _, tc := range s {
		lines = append(lines, fmt.Sprintf("- %d %s", tc.Count, tc.Extension))
	}
	return lines
}

// writeReport writes the report lines of s to w.
func writeReport(w io.Writer, s Summary) error {
	for _, line := range s.ReportLines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
