package browse

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/onesocial/cli/pkg/formatter"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	chipStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14")).Padding(0, 1)
	sortStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	authorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	urlStyle      = lipgloss.NewStyle().Faint(true).Underline(true)

	toastStyles = map[formatter.Level]lipgloss.Style{
		formatter.LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		formatter.LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		formatter.LevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		formatter.LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
)
