package trace

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"mos6502/internal/cpu"
)

// Interpreter is the subset of *cpu.Interpreter the interactive tracer
// needs: stepping, and installing a Tracer to observe each step's result.
type Interpreter interface {
	Step() (uint8, error)
	Trace(cpu.Tracer)
}

// model is the bubbletea model backing Interactive. Each "step" keypress
// advances ip by exactly one instruction; log points at a slice shared
// across every value copy tea.Program makes of model, since the Tracer
// callback Interactive installs appends to *log rather than to a field read
// back from Update.
type model struct {
	ip  Interpreter
	log *[]cpu.TraceEvent
	err error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "n", "j":
		if m.err == nil {
			if _, err := m.ip.Step(); err != nil {
				m.err = err
			}
		}
	}
	return m, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

func (m model) View() string {
	body := headerStyle.Render("mos6502 trace — space/j: step, q: quit") + "\n\n"
	if m.err != nil {
		body += errorStyle.Render(fmt.Sprintf("halted: %v\n\n", m.err))
	}
	history := *m.log
	if len(history) > 0 {
		last := history[len(history)-1]
		body += fmt.Sprintf("%04X  %-4s %-6s  cycle %d\n\n",
			last.PC, last.Instruction.Mnemonic, last.Instruction.Mode, last.TotalCycles)
		body += spew.Sdump(last.Registers)
	}
	return body
}

// Interactive runs a full-screen bubbletea program that single-steps ip one
// instruction per keypress, rendering the register file with go-spew after
// each step. It blocks until the user quits.
func Interactive(ip Interpreter) error {
	log := make([]cpu.TraceEvent, 0, 64)
	ip.Trace(cpu.TracerFunc(func(e cpu.TraceEvent) {
		log = append(log, e)
	}))

	_, err := tea.NewProgram(model{ip: ip, log: &log}).Run()
	return err
}
