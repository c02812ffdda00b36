package parser

import "strings"

// nameRule extracts names from a whole cell text. ok is false when the
// rule does not apply or finds nothing, so the next rule is tried.
type nameRule func(text string) (names []string, ok bool)

// nameRules are tried in order; the first rule that yields names wins.
var nameRules = []nameRule{
	slashNames,
	commaNames,
	wordNames,
}

// ExtractNames returns the instructor names found in text in
// first-seen order.
func ExtractNames(text string) []string {
	for _, rule := range nameRules {
		if names, ok := rule(text); ok {
			return names
		}
	}
	return nil
}

// slashNames handles "황소영/정종현".
func slashNames(text string) ([]string, bool) {
	if !strings.Contains(text, "/") {
		return nil, false
	}
	var names []string
	for _, part := range strings.Split(text, "/") {
		if name, ok := bareNameOf(part); ok {
			names = append(names, name)
		}
	}
	return names, len(names) > 0
}

// commaNames handles "강명호,인선미" and "강명호 강사, 인선미 강사"; only
// the first word of each part is considered.
func commaNames(text string) ([]string, bool) {
	if !strings.Contains(text, ",") {
		return nil, false
	}
	var names []string
	for _, part := range strings.Split(text, ",") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		if name, ok := bareNameOf(fields[0]); ok {
			names = append(names, name)
		}
	}
	return names, len(names) > 0
}

// wordNames scans every whitespace-separated word, skipping stop words.
func wordNames(text string) ([]string, bool) {
	var names []string
	for _, word := range strings.Fields(text) {
		word = strings.TrimSuffix(word, instructorSuffix)
		if isStopWord(word) {
			continue
		}
		if bareName.MatchString(word) {
			names = append(names, word)
		}
	}
	return names, len(names) > 0
}

// bareNameOf trims s and the instructor suffix and checks the name shape.
func bareNameOf(s string) (string, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), instructorSuffix)
	if !bareName.MatchString(s) {
		return "", false
	}
	return s, true
}

// nameList accumulates names in first-seen order without duplicates.
type nameList struct {
	names []string
	seen  map[string]struct{}
}

func (l *nameList) add(names ...string) {
	if l.seen == nil {
		l.seen = make(map[string]struct{})
	}
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, dup := l.seen[n]; dup {
			continue
		}
		l.seen[n] = struct{}{}
		l.names = append(l.names, n)
	}
}

func (l *nameList) String() string {
	return strings.Join(l.names, ",")
}
