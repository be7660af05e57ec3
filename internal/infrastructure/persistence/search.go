package persistence

import "strings"

// likeEscape is the ESCAPE character paired with containsPattern.
const likeEscape = `\`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns free-text search into a case-insensitive LIKE pattern.
// Wildcards typed by the user match literally; the clause must declare ESCAPE '\'.
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
}
