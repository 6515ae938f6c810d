package gitrepo

import (
	"fmt"
	"strings"
)

const logSep = "|"

// parseLog parses lines of "hash|subject|author|date". The subject is the
// only free-form field, so hash, author and date are taken from the ends of
// the line and whatever sits between them, separators included, is the
// subject. An author name containing "|" is split wrongly as a result.
// Lines without a separator are skipped.
func parseLog(out string) ([]Commit, error) {
	commits := []Commit{}
	for _, rawLine := range strings.Split(out, "\n") {
		line := strings.TrimRight(rawLine, "\r")
		if !strings.Contains(line, logSep) {
			continue
		}
		fields := strings.Split(line, logSep)
		n := len(fields)
		if n < 4 {
			return nil, fmt.Errorf("unexpected git log line: %q", rawLine)
		}
		commits = append(commits, Commit{
			Hash:    fields[0],
			Message: strings.Join(fields[1:n-2], logSep),
			Author:  fields[n-2],
			Date:    fields[n-1],
		})
	}
	return commits, nil
}
