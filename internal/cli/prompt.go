package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/matzehuels/groundgrid/pkg/errors"
)

// Field is one value the user is asked for.
type Field struct {
	Key   string // flag name, e.g. "wires"
	Label string // prompt text, e.g. "Enter the total number of wires: "
}

// Prompter asks for the given fields in order and returns the raw answers.
type Prompter interface {
	Prompt(ctx context.Context, fields []Field) ([]string, error)
}

// newPrompter returns the interactive form when in is a terminal and a
// plain line reader otherwise (pipes, redirected files, tests).
func newPrompter(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return teaPrompter{in: in, out: out}
	}
	return &linePrompter{in: bufio.NewReader(in), out: out}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// =============================================================================
// linePrompter - one answer per line
// =============================================================================

type linePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *linePrompter) Prompt(ctx context.Context, fields []Field) ([]string, error) {
	answers := make([]string, 0, len(fields))
	for _, f := range fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fmt.Fprint(p.out, f.Label)

		line, err := p.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				fmt.Fprintln(p.out)
				return nil, errors.New(errors.ErrCodeParse, "input ended before %s was entered", f.Key)
			}
			return nil, errors.Wrap(errors.ErrCodeIO, err, "failed to read %s", f.Key)
		}
		answers = append(answers, strings.TrimSpace(line))
	}
	return answers, nil
}

// =============================================================================
// teaPrompter - interactive form
// =============================================================================

type teaPrompter struct {
	in  io.Reader
	out io.Writer
}

func (p teaPrompter) Prompt(ctx context.Context, fields []Field) ([]string, error) {
	prog := tea.NewProgram(NewInputModel(fields),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out))
	final, err := prog.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "prompt failed")
	}

	m, ok := final.(InputModel)
	if !ok || m.Aborted {
		return nil, context.Canceled
	}
	return m.Values, nil
}

// Form styles
var (
	formLabelStyle  = lipgloss.NewStyle().Foreground(colorGray)
	formActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	formDoneStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	formCursor      = lipgloss.NewStyle().Foreground(colorCyan).Render("█")
)

// InputModel is the bubbletea model for entering the grid inputs.
// Enter moves to the next field; the form quits after the last one.
type InputModel struct {
	Fields  []Field
	Values  []string
	Active  int
	Done    bool
	Aborted bool
}

// NewInputModel creates a form for the given fields.
func NewInputModel(fields []Field) InputModel {
	return InputModel{
		Fields: fields,
		Values: make([]string, len(fields)),
	}
}

func (m InputModel) Init() tea.Cmd {
	return nil
}

func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.Done || m.Aborted {
		return m, nil
	}

	// Values is shared with the previous model copy; edit a fresh slice.
	m.Values = append([]string(nil), m.Values...)

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.Aborted = true
		return m, tea.Quit
	case tea.KeyUp, tea.KeyShiftTab:
		if m.Active > 0 {
			m.Active--
		}
	case tea.KeyEnter, tea.KeyTab, tea.KeyDown:
		if strings.TrimSpace(m.Values[m.Active]) == "" {
			return m, nil
		}
		if m.Active == len(m.Fields)-1 {
			if key.Type != tea.KeyEnter {
				return m, nil
			}
			m.Done = true
			return m, tea.Quit
		}
		m.Active++
	case tea.KeyBackspace:
		if v := []rune(m.Values[m.Active]); len(v) > 0 {
			m.Values[m.Active] = string(v[:len(v)-1])
		}
	case tea.KeySpace:
		// Numbers never contain spaces.
	case tea.KeyRunes:
		m.Values[m.Active] += string(key.Runes)
	}
	return m, nil
}

func (m InputModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Ground Grid Mesh Calculator"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("enter: next  up: back  esc: quit"))
	b.WriteString("\n\n")

	for i, f := range m.Fields {
		switch {
		case i == m.Active && !m.Done:
			b.WriteString(formActiveStyle.Render(f.Label))
			b.WriteString(m.Values[i])
			b.WriteString(formCursor)
		case m.Values[i] != "":
			b.WriteString(formLabelStyle.Render(f.Label))
			b.WriteString(formDoneStyle.Render(m.Values[i]))
		default:
			b.WriteString(formLabelStyle.Render(f.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
