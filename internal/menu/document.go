package menu

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"deskmenu/internal/models"
)

const (
	rootElement    = "JWM"
	menuElement    = "Menu"
	programElement = "Program"
	indentUnit     = "  "
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// Render returns the include document for root: a JWM element wrapping the
// root menu, two spaces of indentation per level, one element per line.
func Render(root *models.Menu) []byte {
	var buf bytes.Buffer
	buf.WriteString("<" + rootElement + ">\n")
	writeMenu(&buf, root, 1)
	buf.WriteString("</" + rootElement + ">\n")
	return buf.Bytes()
}

func writeMenu(buf *bytes.Buffer, m *models.Menu, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	open := "<" + menuElement + attr("label", m.Label)

	if len(m.Children) == 0 {
		buf.WriteString(indent + open + "/>\n")
		return
	}

	buf.WriteString(indent + open + ">\n")
	for _, child := range m.Children {
		switch n := child.(type) {
		case *models.Menu:
			writeMenu(buf, n, depth+1)
		case *models.Program:
			writeProgram(buf, n, depth+1)
		}
	}
	buf.WriteString(indent + "</" + menuElement + ">\n")
}

func writeProgram(buf *bytes.Buffer, p *models.Program, depth int) {
	buf.WriteString(strings.Repeat(indentUnit, depth))
	buf.WriteString("<" + programElement)
	if p.Label != "" {
		buf.WriteString(attr("label", p.Label))
	}
	if p.Icon != "" {
		buf.WriteString(attr("icon", p.Icon))
	}
	buf.WriteString(">")
	buf.WriteString(textEscaper.Replace(p.Command))
	buf.WriteString("</" + programElement + ">\n")
}

func attr(name, value string) string {
	return " " + name + `="` + attrEscaper.Replace(value) + `"`
}

// WriteFile overwrites path with the rendered document
func WriteFile(path string, root *models.Menu) error {
	if err := os.WriteFile(path, Render(root), 0644); err != nil {
		return fmt.Errorf("write menu: %w", err)
	}
	return nil
}
