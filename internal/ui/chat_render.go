package ui

import (
	"bytes"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"chatdeck/internal/conversation"
)

// chromaStyle is the syntax highlighting style used for all code rendering.
const chromaStyle = "monokai"

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(chromaStyle)
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

// renderCodeMessage renders a code message with a language tag, the
// highlighted source, and a copy hint.
func renderCodeMessage(msg conversation.Message, wrapWidth int) string {
	var sb strings.Builder

	lang := msg.Language
	if lang == "" {
		lang = "text"
	}

	tagStyle := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Background(lipgloss.Color(CurrentTheme().CodeBg)).
		Padding(0, 1)
	sb.WriteString(tagStyle.Render(lang))
	sb.WriteString("\n")

	sb.WriteString(highlightCode(strings.TrimRight(msg.Content, "\n"), lang))
	sb.WriteString("\n")

	hintStyle := lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
	sb.WriteString(hintStyle.Render("ctrl+y to copy • ctrl+e to open in panel"))

	return sb.String()
}

// renderMarkdown renders text content, highlighting fenced code blocks.
// Full markdown is overkill for the simulated replies, so only fences are
// treated specially.
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var result strings.Builder
	lines := strings.Split(content, "\n")
	inCodeBlock := false
	codeBlockLang := ""
	var codeBlockContent strings.Builder

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			if !inCodeBlock {
				inCodeBlock = true
				codeBlockLang = strings.TrimSpace(strings.TrimPrefix(line, "```"))
				codeBlockContent.Reset()
			} else {
				inCodeBlock = false
				result.WriteString(highlightCode(codeBlockContent.String(), codeBlockLang))
				codeBlockLang = ""
			}
			continue
		}

		if inCodeBlock {
			if codeBlockContent.Len() > 0 {
				codeBlockContent.WriteString("\n")
			}
			codeBlockContent.WriteString(line)
		} else {
			result.WriteString(line)
			result.WriteString("\n")
		}
	}

	// Unterminated fence: output whatever we have
	if inCodeBlock {
		result.WriteString(highlightCode(codeBlockContent.String(), codeBlockLang))
	}

	return strings.TrimRight(result.String(), "\n")
}

// numberedCode prefixes each line of code with a right-aligned line number.
// Used by the code panel where the full source is shown.
func numberedCode(code string) string {
	lines := strings.Split(strings.TrimRight(code, "\n"), "\n")
	width := len(fmt.Sprintf("%d", len(lines)))

	numStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(numStyle.Render(fmt.Sprintf("%*d ", width, i+1)))
		sb.WriteString(line)
	}
	return sb.String()
}
