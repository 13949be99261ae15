package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
	"github.com/generalelectrix/go-dmx/internal/tui/colors"
)

const (
	pickerColumnIndex = "index"
	pickerColumnPort  = "port"
	pickerColumnType  = "type"
)

// Picker is a focusable table of available output ports. The selected row
// carries the index into the port list it was built from.
type Picker struct {
	table table.Model
	count int
}

func NewPicker(names, types []string) *Picker {
	columns := []table.Column{
		table.NewColumn(pickerColumnIndex, "#", 4),
		table.NewColumn(pickerColumnPort, "Port", 28),
		table.NewColumn(pickerColumnType, "Type", 12),
	}

	rows := make([]table.Row, 0, len(names))
	for i, name := range names {
		rows = append(rows, table.NewRow(table.RowData{
			pickerColumnIndex: i,
			pickerColumnPort:  name,
			pickerColumnType:  types[i],
		}))
	}

	baseStyle := lipgloss.NewStyle().
		BorderForeground(colors.Surface2).
		Align(lipgloss.Left)

	t := table.New(columns).
		WithRows(rows).
		Focused(true).
		WithBaseStyle(baseStyle).
		HighlightStyle(lipgloss.NewStyle().
			Foreground(colors.Base).
			Background(colors.Mauve).
			Bold(true))

	return &Picker{table: t, count: len(names)}
}

func (p *Picker) Update(msg tea.Msg) (*Picker, tea.Cmd) {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

func (p *Picker) View() string {
	return p.table.View()
}

// Selected returns the index of the highlighted port.
func (p *Picker) Selected() (int, error) {
	if p.count == 0 {
		return 0, fmt.Errorf("no ports to select")
	}
	row := p.table.HighlightedRow()
	idx, ok := row.Data[pickerColumnIndex].(int)
	if !ok {
		return 0, fmt.Errorf("no port highlighted")
	}
	return idx, nil
}
