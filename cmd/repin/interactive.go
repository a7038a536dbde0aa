package main

import (
	"fmt"
	"strings"

	"github.com/arthurlogilab/certbot/internal/config"
	"github.com/arthurlogilab/certbot/internal/requirements"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// --- inputModel: bubbletea model for text input with validation ---

type inputModel struct {
	textInput textinput.Model
	title     string
	validate  func(string) error
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			val := m.textInput.Value()
			if m.validate != nil {
				if err := m.validate(val); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.textInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// --- confirmModel: bubbletea model for yes/no confirmation ---

type confirmModel struct {
	title   string
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.value = false
			m.done = true
			return m, tea.Quit
		case "left", "right", "tab":
			m.value = !m.value
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yes := " Yes "
	no := " No "
	if m.value {
		yes = selectedStyle.Render(" Yes ")
	} else {
		no = selectedStyle.Render(" No ")
	}
	return fmt.Sprintf("%s %s / %s\n", titleStyle.Render(m.title), yes, no)
}

// --- prompt helpers ---

func promptInput(title, placeholder string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	// Package names and repo-relative paths are all we ever collect.
	ti.CharLimit = 128
	ti.Focus()

	m := inputModel{
		textInput: ti,
		title:     title,
		validate:  validate,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	rm := result.(inputModel)
	if rm.aborted {
		return "", fmt.Errorf("user aborted")
	}
	return rm.textInput.Value(), nil
}

func promptConfirm(title string) (bool, error) {
	m := confirmModel{
		title: title,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, err
	}
	rm := result.(confirmModel)
	if rm.aborted {
		return false, fmt.Errorf("user aborted")
	}
	return rm.value, nil
}

// interactiveInit collects the pinning config from the user: project
// name, output path, then an exclusion loop terminated by an empty
// entry. defaultOutput seeds the output prompt.
func interactiveInit(defaultOutput string) (projName, output string, exclude []string, err error) {
	projName, err = promptInput(
		"Project name",
		"certbot",
		func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("project name is required")
			}
			return nil
		},
	)
	if err != nil {
		return "", "", nil, err
	}
	projName = strings.TrimSpace(projName)

	output, err = promptInput("Output path (relative to repo root)", defaultOutput, nil)
	if err != nil {
		return "", "", nil, err
	}
	output = strings.TrimSpace(output)
	if output == "" {
		output = defaultOutput
	}

	norm := requirements.NormalizeName(projName)
	fmt.Printf("  → excluding %s and %s-* by default\n", norm, norm)

	seen := map[string]bool{}
	for {
		pat, perr := promptInput(
			"Add excluded package or prefix* (empty to finish)",
			"letshelp-*",
			func(s string) error {
				s = strings.TrimSpace(s)
				if s == "" {
					return nil
				}
				if seen[s] {
					return fmt.Errorf("pattern %q is already added", s)
				}
				return config.CheckPattern(s)
			},
		)
		if perr != nil {
			return "", "", nil, perr
		}
		pat = strings.TrimSpace(pat)
		if pat == "" {
			break
		}
		seen[pat] = true
		exclude = append(exclude, pat)
	}

	write, err := promptConfirm("Write pinning.yaml?")
	if err != nil {
		return "", "", nil, err
	}
	if !write {
		return "", "", nil, fmt.Errorf("user aborted")
	}

	return projName, output, mergeExclusions(norm, exclude), nil
}

// mergeExclusions puts the project's own packages first and appends the
// user's patterns, dropping duplicates.
func mergeExclusions(project string, extra []string) []string {
	full := []string{project, project + "-*"}
	seen := map[string]bool{project: true, project + "-*": true}
	for _, pat := range extra {
		if seen[pat] {
			continue
		}
		seen[pat] = true
		full = append(full, pat)
	}
	return full
}
