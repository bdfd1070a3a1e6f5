package tui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// previewLimit caps how much of a file the preview pane loads.
const previewLimit = 64 * 1024

func (m Model) rescan() tea.Cmd {
	scan := m.scan
	return func() tea.Msg {
		if scan == nil {
			return scanDoneMsg{err: fmt.Errorf("no scanner configured")}
		}
		reports, err := scan()
		return scanDoneMsg{reports: reports, err: err}
	}
}

func (m Model) applyPaths(paths []string) tea.Cmd {
	apply := m.apply
	return func() tea.Msg {
		if apply == nil {
			return applyDoneMsg{err: fmt.Errorf("no applier configured")}
		}
		reports, err := apply(paths)
		return applyDoneMsg{reports: reports, err: err}
	}
}

// copyPathToClipboard copies the selected file's path to the clipboard.
func (m Model) copyPathToClipboard() tea.Cmd {
	r, ok := m.selected()
	if !ok {
		return func() tea.Msg { return statusMsg("No file selected") }
	}
	if err := clipboard.WriteAll(r.Path); err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Clipboard error: %v", err)) }
	}
	return func() tea.Msg { return statusMsg(fmt.Sprintf("Copied: %s", r.Path)) }
}

func loadPreview(path string) tea.Cmd {
	return func() tea.Msg {
		b, err := os.ReadFile(path)
		if err != nil {
			return previewMsg{path: path, err: err}
		}
		if len(b) > previewLimit {
			b = b[:previewLimit]
		}
		return previewMsg{path: path, content: string(b)}
	}
}

// highlightCode renders source with terminal colors, falling back to the
// plain text on any tokenization problem.
func highlightCode(code, filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		ext := filepath.Ext(filename)
		if ext != "" {
			lexer = lexers.Match("file" + ext)
		}
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}
