// Package mention parses the @[Name](id) markup embedded in note content.
package mention

import "regexp"

var mentionRe = regexp.MustCompile(`@\[([^\]]+)\]\(([^)]+)\)`)

// Extract returns the member IDs mentioned in text, in order of appearance.
// Duplicates are kept; a member mentioned twice is mentioned twice.
func Extract(text string) []string {
	var ids []string
	for _, m := range mentionRe.FindAllStringSubmatch(text, -1) {
		ids = append(ids, m[2])
	}
	return ids
}

// ReplaceWithNames rewrites @[Name](id) markup to plain @Name.
func ReplaceWithNames(text string) string {
	return mentionRe.ReplaceAllString(text, "@$1")
}

// Parsed is one mention occurrence with its byte span in the source text.
type Parsed struct {
	TeamMemberID string
	Name         string
	StartIndex   int
	EndIndex     int
}

// Parse returns every mention occurrence with positions, in order of
// appearance.
func Parse(text string) []Parsed {
	idx := mentionRe.FindAllStringSubmatchIndex(text, -1)
	out := make([]Parsed, 0, len(idx))
	for _, m := range idx {
		out = append(out, Parsed{
			Name:         text[m[2]:m[3]],
			TeamMemberID: text[m[4]:m[5]],
			StartIndex:   m[0],
			EndIndex:     m[1],
		})
	}
	return out
}
