package ui

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"chatdeck/internal/keys"
	"chatdeck/internal/logger"
)

// AI model identifiers selectable in the features panel
const (
	ModelBalanced = "balanced"
	ModelFast     = "fast"
	ModelAdvanced = "advanced"
)

// Feature identifiers toggleable in the features panel
const (
	FeatureRAG           = "rag"
	FeatureCAG           = "cag"
	FeatureSummarization = "summarization"
	FeatureContextMemory = "contextMemory"
	FeatureReasoning     = "reasoning"
	FeatureVisualization = "visualization"
)

// AIFeaturesForm holds the model selection and feature toggles shown in the
// AI features panel.
type AIFeaturesForm struct {
	form  *huh.Form
	width int

	model    string
	features []string
}

// NewAIFeaturesForm creates the form with the default model and all
// retrieval features enabled.
func NewAIFeaturesForm() *AIFeaturesForm {
	f := &AIFeaturesForm{
		width:    40,
		model:    ModelBalanced,
		features: []string{FeatureRAG, FeatureCAG, FeatureContextMemory},
	}
	f.buildForm()
	return f
}

// buildForm constructs the huh form bound to the current values
func (f *AIFeaturesForm) buildForm() {
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Model").
				Options(
					huh.NewOption("Balanced", ModelBalanced),
					huh.NewOption("Fast", ModelFast),
					huh.NewOption("Advanced", ModelAdvanced),
				).
				Value(&f.model),
			huh.NewMultiSelect[string]().
				Title("Features").
				Options(
					huh.NewOption("Retrieval (RAG)", FeatureRAG).Selected(f.Enabled(FeatureRAG)),
					huh.NewOption("Cache-augmented (CAG)", FeatureCAG).Selected(f.Enabled(FeatureCAG)),
					huh.NewOption("Summarization", FeatureSummarization).Selected(f.Enabled(FeatureSummarization)),
					huh.NewOption("Context memory", FeatureContextMemory).Selected(f.Enabled(FeatureContextMemory)),
					huh.NewOption("Reasoning", FeatureReasoning).Selected(f.Enabled(FeatureReasoning)),
					huh.NewOption("Visualization", FeatureVisualization).Selected(f.Enabled(FeatureVisualization)),
				).
				Value(&f.features),
		),
	).WithTheme(panelFormTheme()).
		WithShowHelp(false).
		WithWidth(f.width).
		WithLayout(huh.LayoutStack)

	f.form.Init()
}

// SetWidth resizes the form, preserving current selections
func (f *AIFeaturesForm) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	if width == f.width {
		return
	}
	f.width = width
	f.buildForm()
}

// Model returns the selected model
func (f *AIFeaturesForm) Model() string {
	return f.model
}

// Enabled reports whether a feature toggle is on
func (f *AIFeaturesForm) Enabled(feature string) bool {
	for _, v := range f.features {
		if v == feature {
			return true
		}
	}
	return false
}

// Update delegates messages to the huh form. Escape is left for the app
// layer, which closes the panel.
func (f *AIFeaturesForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		if keyMsg.String() == keys.Escape {
			return nil
		}
	}

	m, cmd := f.form.Update(msg)
	if form, ok := m.(*huh.Form); ok {
		f.form = form
	}

	logger.Debug("features form: model=%s features=%v", f.model, f.features)
	return cmd
}

// View renders the form
func (f *AIFeaturesForm) View() string {
	return f.form.View()
}

// panelFormTheme returns a huh theme matching the current color palette.
// Called each time a form is built so theme switches take effect.
func panelFormTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)

		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).SetString("> ")
		t.Focused.NextIndicator = lipgloss.NewStyle().Foreground(ColorPrimary).MarginLeft(1).SetString("→")
		t.Focused.PrevIndicator = lipgloss.NewStyle().Foreground(ColorPrimary).MarginRight(1).SetString("←")
		t.Focused.Option = lipgloss.NewStyle().Foreground(ColorText)

		t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).SetString("> ")
		t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSecondary)
		t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(ColorSecondary).SetString("[x] ")
		t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(ColorText)
		t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(ColorTextMuted).SetString("[ ] ")

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.NextIndicator = lipgloss.NewStyle()
		t.Blurred.PrevIndicator = lipgloss.NewStyle()

		t.Group.Title = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
		t.Group.Description = lipgloss.NewStyle().Foreground(ColorTextMuted)

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles

		return t
	})
}
