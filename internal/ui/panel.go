package ui

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"chatdeck/internal/layout"
	"chatdeck/internal/sample"
)

// SidePanel renders the right-hand panel: code, knowledge graph, files,
// or AI features, depending on which one the layout controller has active.
// Only one is ever open at a time.
type SidePanel struct {
	id      layout.PanelID
	title   string
	icon    string
	width   int
	height  int
	focused bool

	viewport viewport.Model

	// Code panel state
	code         string
	codeLanguage string

	// AI features panel state
	features *AIFeaturesForm
}

// NewSidePanel creates an empty side panel
func NewSidePanel() *SidePanel {
	vp := viewport.New()
	return &SidePanel{
		viewport: vp,
		features: NewAIFeaturesForm(),
	}
}

// Open activates the panel for the given descriptor and refreshes content
func (p *SidePanel) Open(panel *layout.Panel) {
	p.id = panel.ID
	p.title = panel.Title
	p.icon = panel.Icon
	p.refreshContent()
	p.viewport.GotoTop()
}

// Close deactivates the panel
func (p *SidePanel) Close() {
	p.id = layout.PanelNone
}

// IsOpen returns whether any panel is active
func (p *SidePanel) IsOpen() bool {
	return p.id != layout.PanelNone
}

// ID returns the active panel ID
func (p *SidePanel) ID() layout.PanelID {
	return p.id
}

// SetSize sets the panel dimensions
func (p *SidePanel) SetSize(width, height int) {
	p.width = width
	p.height = height

	ctx := GetViewContext()
	innerWidth := ctx.InnerWidth(width)
	p.viewport.SetWidth(innerWidth)
	p.viewport.SetHeight(ctx.InnerHeight(height) - 2) // Title bar and separator
	p.features.SetWidth(innerWidth - 2)
	if p.IsOpen() {
		p.refreshContent()
	}
}

// SetFocused sets the focus state
func (p *SidePanel) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns the focus state
func (p *SidePanel) IsFocused() bool {
	return p.focused
}

// SetCode sets the source shown by the code panel
func (p *SidePanel) SetCode(code, language string) {
	p.code = code
	p.codeLanguage = language
	if p.id == layout.PanelCode {
		p.refreshContent()
	}
}

// Code returns the source currently shown by the code panel
func (p *SidePanel) Code() (string, string) {
	return p.code, p.codeLanguage
}

// Features returns the AI features form state
func (p *SidePanel) Features() *AIFeaturesForm {
	return p.features
}

// refreshContent re-renders the active panel's body into the viewport
func (p *SidePanel) refreshContent() {
	switch p.id {
	case layout.PanelCode:
		p.viewport.SetContent(p.renderCode())
	case layout.PanelGraph:
		p.viewport.SetContent(renderGraph(sample.Graph(), p.viewport.Width()))
	case layout.PanelFiles:
		p.viewport.SetContent(renderFiles([]sample.File{sample.Document()}, p.viewport.Width()))
	case layout.PanelAIFeatures:
		// The form renders itself in View; nothing to precompute
	}
}

// Update handles messages
func (p *SidePanel) Update(msg tea.Msg) (*SidePanel, tea.Cmd) {
	if !p.IsOpen() {
		return p, nil
	}

	if p.id == layout.PanelAIFeatures {
		if !p.focused {
			return p, nil
		}
		cmd := p.features.Update(msg)
		return p, cmd
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		if !p.focused {
			return p, nil
		}
		switch keyMsg.String() {
		case "up", "k", "down", "j", "pgup", "pgdown", "home", "end":
			var cmd tea.Cmd
			p.viewport, cmd = p.viewport.Update(msg)
			return p, cmd
		}
		return p, nil
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the panel
func (p *SidePanel) View() string {
	if !p.IsOpen() {
		return ""
	}

	style := PanelStyle
	if p.focused {
		style = PanelFocusedStyle
	}

	ctx := GetViewContext()
	innerWidth := ctx.InnerWidth(p.width)

	titleBar := p.renderTitleBar(innerWidth)
	sep := lipgloss.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("─", innerWidth))

	var body string
	if p.id == layout.PanelAIFeatures {
		body = p.features.View()
	} else {
		body = p.viewport.View()
	}

	content := titleBar + "\n" + sep + "\n" + body
	return style.Width(p.width).Height(p.height).Render(content)
}

// renderTitleBar renders the icon, title, and close hint
func (p *SidePanel) renderTitleBar(innerWidth int) string {
	iconStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	titleStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)

	left := iconStyle.Render(p.icon) + " " + titleStyle.Render(p.title)
	hint := "esc to close"

	pad := innerWidth - lipgloss.Width(left) - len(hint)
	if pad < 1 {
		return left
	}
	return left + strings.Repeat(" ", pad) + hintStyle.Render(hint)
}

// renderCode renders the code panel body: language tag plus numbered,
// syntax-highlighted source.
func (p *SidePanel) renderCode() string {
	if p.code == "" {
		return lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No code yet. Ask for some.")
	}

	langStyle := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Background(lipgloss.Color(CurrentTheme().CodeBg)).
		Padding(0, 1)

	lang := p.codeLanguage
	if lang == "" {
		lang = "text"
	}

	highlighted := highlightCode(p.code, p.codeLanguage)
	return langStyle.Render(lang) + "\n\n" + numberedCode(highlighted)
}

// graphNodeMarkers maps node kinds to their list markers.
var graphNodeMarkers = map[string]string{
	"query":    "◆",
	"document": "▤",
	"chunk":    "▣",
	"answer":   "●",
}

// renderGraph renders the retrieval graph as an indented tree: the query at
// the top, retrieved chunks under it ordered by relevance, each chunk's
// source document nested below, and the answer at the bottom.
func renderGraph(g sample.GraphData, width int) string {
	nodes := make(map[string]sample.GraphNode, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes[n.ID] = n
	}

	queryStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	chunkStyle := lipgloss.NewStyle().Foreground(ColorText)
	docStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	answerStyle := lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
	edgeStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	labelStyle := lipgloss.NewStyle().Foreground(ColorSuccess)

	marker := func(kind string) string {
		if m, ok := graphNodeMarkers[kind]; ok {
			return m
		}
		return "•"
	}

	// Index links by source so the tree can be walked top-down
	bySource := make(map[string][]sample.GraphLink)
	for _, l := range g.Links {
		bySource[l.Source] = append(bySource[l.Source], l)
	}
	for _, links := range bySource {
		sort.Slice(links, func(i, j int) bool { return links[i].Value > links[j].Value })
	}

	var sb strings.Builder
	for _, n := range g.Nodes {
		if n.Kind != "query" {
			continue
		}

		sb.WriteString(queryStyle.Render(marker(n.Kind)+" "+n.Content) + "\n")

		retrieved := bySource[n.ID]
		for i, l := range retrieved {
			chunk, ok := nodes[l.Target]
			if !ok {
				continue
			}

			branch := "├─"
			stem := "│ "
			if i == len(retrieved)-1 {
				branch = "└─"
				stem = "  "
			}

			line := edgeStyle.Render(branch) + " " +
				labelStyle.Render(l.Label) + " " +
				chunkStyle.Render(marker(chunk.Kind)+" "+chunk.Content)
			sb.WriteString(line + "\n")

			for _, cl := range bySource[chunk.ID] {
				child, ok := nodes[cl.Target]
				if !ok || child.Kind != "document" {
					continue
				}
				sb.WriteString(edgeStyle.Render(stem+"  └─") + " " +
					docStyle.Render(marker(child.Kind)+" "+child.Content) + "\n")
			}
		}
	}

	for _, n := range g.Nodes {
		if n.Kind != "answer" {
			continue
		}
		sb.WriteString("\n" + answerStyle.Render(marker(n.Kind)+" "+n.Content) + "\n")
	}

	legend := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render("◆ query  ▣ chunk  ▤ document  ● answer")
	sb.WriteString("\n" + legend)

	return lipgloss.NewStyle().Width(width).Render(sb.String())
}

// renderFiles renders the files panel body as a list of attachment cards
func renderFiles(files []sample.File, width int) string {
	if len(files) == 0 {
		return lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No files attached.")
	}

	nameStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1).
		Width(width - 2)

	var cards []string
	for _, f := range files {
		body := nameStyle.Render("▤ "+f.Name) + "\n" +
			metaStyle.Render(fmt.Sprintf("%s · %s", strings.ToUpper(f.Type), humanize.Bytes(uint64(f.Size))))
		cards = append(cards, cardStyle.Render(body))
	}

	return strings.Join(cards, "\n")
}
