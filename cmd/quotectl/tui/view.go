package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen/cctv-quotations/cmd/quotectl/output"
	"github.com/jsamuelsen/cctv-quotations/internal/domain"
)

// screen is the non-state input to render: widgets owned by bubbles.
type screen struct {
	quantityView string
	quantityText string
	helpView     string
	width        int
}

// render draws the whole screen from state.
func render(state AppState, sc screen) string {
	t := newTheme(state.DarkMode)

	mode := "dark"
	if !state.DarkMode {
		mode = "light"
	}

	header := t.title.Render("CCTV Quotations") + "  " + t.muted.Render(mode+" mode")

	form := renderForm(state, sc, t)
	list := renderList(state, t)

	body := lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", list)
	if sc.width > 0 && lipgloss.Width(body) > sc.width {
		body = lipgloss.JoinVertical(lipgloss.Left, form, list)
	}

	parts := []string{header, body, renderStatus(state, t), sc.helpView}

	return t.app.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func renderForm(state AppState, sc screen, t theme) string {
	var b strings.Builder

	title := "New quotation"
	if state.Editing != "" {
		title = "Editing " + state.Editing
	}

	b.WriteString(t.title.Render(title))
	b.WriteString("\n")

	chips := make([]string, 0, len(state.Catalog))
	for i, item := range state.Catalog {
		style := t.chip
		if i == state.ProductIndex {
			style = t.activeChip
		}

		chips = append(chips, style.Render(item.Product.String()))
	}

	b.WriteString(t.label.Render("Product") + lipgloss.JoinHorizontal(lipgloss.Top, chips...) + "\n")
	b.WriteString(t.label.Render("Quantity") + sc.quantityView + "\n")
	b.WriteString(t.label.Render("Unit price") + t.value.Render(output.Money(state.UnitPrice())) + "\n\n")

	line, err := state.Preview(sc.quantityText)
	if err != nil {
		b.WriteString(t.err.Render(previewError(err)))
	} else {
		b.WriteString(t.label.Render("Price") + t.value.Render(output.Money(line.Price)) + "\n")
		b.WriteString(t.label.Render("GST (18%)") + t.value.Render(output.Money(line.GST)) + "\n")
		b.WriteString(t.label.Render("Total") + t.total.Render(output.Money(line.Total)))
	}

	box := t.box
	if state.Focus == FocusForm {
		box = t.activeBox
	}

	return box.Render(b.String())
}

// previewError shortens validation failures to their messages.
func previewError(err error) string {
	var many *domain.ValidationErrors
	if errors.As(err, &many) {
		msgs := make([]string, 0, len(many.Errors))
		for _, fe := range many.Errors {
			msgs = append(msgs, fe.Message)
		}

		return strings.Join(msgs, "\n")
	}

	return err.Error()
}

func renderList(state AppState, t theme) string {
	var b strings.Builder

	b.WriteString(t.title.Render(fmt.Sprintf("Quotations (%d)", len(state.Quotations))))
	b.WriteString("\n")

	if len(state.Quotations) == 0 {
		b.WriteString(t.muted.Render("No quotations yet."))
	}

	for i, q := range state.Quotations {
		line := fmt.Sprintf("%-8s ×%-4d %12s", q.Product, q.Quantity, output.Money(q.Total))

		if i == state.Selected && state.Focus == FocusList {
			b.WriteString(t.selected.Render("▸ " + line))
		} else {
			b.WriteString(t.unselected.Render("  " + line))
		}

		if q.ID == state.Editing {
			b.WriteString(t.muted.Render(" (editing)"))
		}

		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.label.Render("Grand total") + t.total.Render(output.Money(state.GrandTotal())))

	box := t.box
	if state.Focus == FocusList {
		box = t.activeBox
	}

	return box.Render(b.String())
}

func renderStatus(state AppState, t theme) string {
	switch {
	case state.Err != nil:
		return t.err.Render("✗ " + state.Err.Error())
	case state.Status != "":
		return t.success.Render("✓ " + state.Status)
	default:
		return ""
	}
}
