// Package launcher cleans desktop entry launch commands and resolves
// the names shown for them in the menu.
package launcher

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"deskmenu/internal/models"
)

// Placeholders are the field codes removed from launch commands.
// "@@" is the file-forwarding marker flatpak writes around them.
var Placeholders = []string{"%f", "%F", "%u", "%U", "@@"}

// flatpakMarker identifies commands run through flatpak
const flatpakMarker = "flatpak"

// ErrNoName is returned when no display name can be resolved for an entry
var ErrNoName = errors.New("no display name")

// Sanitize removes placeholders from a launch command.
//
// The first pass drops a placeholder (bare or double-quoted) preceded by a
// space and followed by whitespace or the end of the command. The second
// pass splits on single spaces and drops any remaining placeholder token,
// such as one at the very start of the command.
func Sanitize(command string) string {
	for _, p := range Placeholders {
		command = removeSpaced(command, ` "`+p+`"`)
		command = removeSpaced(command, " "+p)
	}

	tokens := strings.Split(command, " ")
	kept := tokens[:0]
	for _, tok := range tokens {
		if isPlaceholder(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// removeSpaced removes each occurrence of form that ends at a token boundary
func removeSpaced(command, form string) string {
	var b strings.Builder
	rest := command
	for {
		i := strings.Index(rest, form)
		if i < 0 {
			b.WriteString(rest)
			break
		}
		end := i + len(form)
		if end == len(rest) || unicode.IsSpace(rune(rest[end])) {
			b.WriteString(rest[:i])
		} else {
			b.WriteString(rest[:end])
		}
		rest = rest[end:]
	}
	return b.String()
}

func isPlaceholder(token string) bool {
	token = unquote(token)
	for _, p := range Placeholders {
		if token == p {
			return true
		}
	}
	return false
}

// DeclaredName returns Name, falling back to Name[en_US]. Empty values
// count as missing.
func DeclaredName(entry *models.Entry) string {
	if name, ok := entry.Get(models.KeyName); ok && strings.TrimSpace(name) != "" {
		return name
	}
	if name, ok := entry.Get(models.KeyNameEnUS); ok && strings.TrimSpace(name) != "" {
		return name
	}
	return ""
}

// NameFromCommand derives a name from the executable of a sanitized command.
// One layer of quotes around the whole command is removed; quotes around
// just the first token are kept and left for DisplayName to strip.
func NameFromCommand(command string) string {
	command = unquote(strings.TrimSpace(command))

	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}

	exe := fields[0]
	if i := strings.LastIndex(exe, "/"); i >= 0 {
		exe = exe[i+1:]
	}
	return exe
}

// DisplayName resolves the label of an entry whose command is already sanitized.
// Commands run through flatpak get a " (flatpak)" suffix unless the declared
// name already mentions flatpak.
func DisplayName(entry *models.Entry, command string) string {
	declared := DeclaredName(entry)

	name := declared
	if name == "" {
		name = NameFromCommand(command)
	}
	name = unquote(strings.TrimSpace(name))

	if name != "" && strings.Contains(command, flatpakMarker) &&
		!strings.Contains(strings.ToLower(declared), flatpakMarker) {
		name += " (" + flatpakMarker + ")"
	}
	return name
}

// Resolve sanitizes the entry's command and stores the resolved name on it
func Resolve(entry *models.Entry) error {
	command := Sanitize(entry.Exec())
	name := DisplayName(entry, command)

	entry.Set(models.KeyExec, command)
	if name == "" {
		return fmt.Errorf("%w for %q (%s)", ErrNoName, command, entry.Path)
	}
	entry.Set(models.KeyName, name)
	return nil
}

// unquote strips one layer of surrounding double quotes
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
