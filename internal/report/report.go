package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trading-journal/internal/database"
)

var (
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	detailColor  = lipgloss.Color("#3B82F6")
)

// Success prints the bootstrap summary to w. Colours are only emitted when w
// is a terminal.
func Success(w io.Writer, res database.Result) {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Foreground(successColor).Bold(true)
	detail := r.NewStyle().Foreground(detailColor)

	var b strings.Builder
	b.WriteString(title.Render("✅ Database initialized!") + "\n")
	b.WriteString(fmt.Sprintf("📁 Database file: %s\n", detail.Render(res.DSN)))
	b.WriteString("📊 Tables:\n")
	for _, t := range res.Tables {
		b.WriteString(fmt.Sprintf("   - %s (%s)\n", detail.Render(t.Name), t.Description))
	}
	b.WriteString(fmt.Sprintf("📝 Added %d sample trades and %d sample reflections\n", res.Trades, res.Reflections))

	fmt.Fprint(w, b.String())
}

// Failure prints the bootstrap error to w.
func Failure(w io.Writer, err error) {
	r := lipgloss.NewRenderer(w)
	style := r.NewStyle().Foreground(errorColor).Bold(true)
	fmt.Fprintln(w, style.Render(fmt.Sprintf("❌ Database initialization failed: %v", err)))
}
