package ranking

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrMalformedSkills = errors.New("malformed skills payload")

// ParseSkillsJSON decodes the JSON-encoded skills field stored on a jobseeker
// profile. The field holds either plain strings or objects with a "name" key.
// A malformed payload is the caller's decision to degrade; this function only
// reports it.
func ParseSkillsJSON(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, ErrMalformedSkills
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		var s string
		if err := json.Unmarshal(it, &s); err == nil {
			out = append(out, s)
			continue
		}
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(it, &obj); err == nil {
			out = append(out, obj.Name)
		}
	}
	return out, nil
}

// MergeSkills folds any number of skill lists into one lower-cased,
// deduplicated list, preserving first-seen order.
func MergeSkills(lists ...[]string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, list := range lists {
		for _, s := range list {
			s = strings.ToLower(strings.TrimSpace(s))
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// SplitSkills breaks a delimited skills string on commas, semicolons and
// pipes, the formats the store carries.
func SplitSkills(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// TitleKeywords extracts the comparison keywords from a job title: words of
// at least four characters, lower-cased.
func TitleKeywords(title string) []string {
	words := strings.Fields(strings.ToLower(title))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) >= 4 {
			out = append(out, w)
		}
	}
	return out
}
