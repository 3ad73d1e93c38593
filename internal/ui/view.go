package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/chopsticks/internal/format/table"
)

const (
	selectionMarker = "🥢"
	searchBoxHeight = 3
	statusRows      = 1

	emptyListText    = "Empty ＞︿＜. Press `Ctrl-A` to add a new snippet ヾ(•ω•`)o"
	emptyDetailsText = "There's nothing. Let's select one, and the details will be displayed here OwO."
)

// View renders the current mode. Browse shows the search box and list on the
// left with the details of the selection on the right; Editing gives the
// editor the whole area. The bottom row is the status line in both modes.
func (m *Model) View() string {
	width, height := m.size()
	bodyH := height - statusRows
	if bodyH < 1 {
		bodyH = 1
	}

	var body string
	if m.mode == ModeEditing {
		body = m.viewEditor(width, bodyH)
	} else {
		leftW := width / 2
		rightW := width - leftW
		listH := bodyH - searchBoxHeight
		if listH < 2 {
			listH = 2
		}
		left := lipgloss.JoinVertical(lipgloss.Left,
			m.viewSearchBar(leftW),
			m.viewList(leftW, listH),
		)
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, m.viewDetails(rightW, bodyH))
	}
	return body + "\n" + m.viewStatusLine(width)
}

func (m *Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// layout sizes the text widgets to the boxes they are drawn in.
func (m *Model) layout() {
	width, height := m.size()
	searchInnerW := innerWidth(styles.Pane, width/2) - 4
	promptW := lipgloss.Width(m.search.Prompt)
	if w := searchInnerW - promptW - 1; w > 0 {
		m.search.Width = w
	}
	editorW := innerWidth(styles.Editor, width)
	editorH := innerHeight(styles.Editor, height-statusRows)
	if editorW > 0 {
		m.editor.SetWidth(editorW)
	}
	if editorH > 0 {
		m.editor.SetHeight(editorH)
	}
}

func (m *Model) maxVisibleItems() int {
	_, height := m.size()
	visible := height - statusRows - searchBoxHeight - frameHeight(styles.Pane)
	if visible < 1 {
		return 1
	}
	return visible
}

func (m *Model) viewSearchBar(width int) string {
	style := paneStyle().Padding(0, 2)
	return renderBox(&style, []string{m.search.View()}, width, searchBoxHeight)
}

func (m *Model) viewList(width, height int) string {
	style := paneStyle()
	innerW := innerWidth(&style, width)
	if m.list.Len() == 0 {
		return renderBox(&style, centered(emptyListText, innerW, styles.Empty), width, height)
	}

	start := m.list.ViewportOffset
	if start < 0 || start >= m.list.Len() {
		start = 0
	}
	end := start + m.maxVisibleItems()
	if end > m.list.Len() {
		end = m.list.Len()
	}
	rows := make([][]string, 0, end-start)
	for idx := start; idx < end; idx++ {
		marker := "  "
		if idx == m.list.Cursor {
			marker = selectionMarker
		}
		rows = append(rows, []string{marker, fmt.Sprintf("%02d", idx), m.list.Items[idx].Title()})
	}
	formatted := table.FormatWithGap(rows, []table.Alignment{table.AlignLeft, table.AlignRight}, " ")
	lines := make([]string, len(formatted))
	for i, row := range formatted {
		row = fitWidth(row, innerW)
		lineStyle := styles.Item
		if start+i == m.list.Cursor {
			lineStyle = styles.SelectedItem
		}
		lines[i] = render(lineStyle, row)
	}
	return renderBox(&style, lines, width, height)
}

func (m *Model) viewDetails(width, height int) string {
	style := paneStyle().Padding(0, 2)
	innerW := innerWidth(&style, width)
	selected, ok := m.list.Selected()
	if !ok {
		return renderBox(&style, centered(emptyDetailsText, innerW, styles.Empty), width, height)
	}
	lines := []string{render(styles.DetailsLabel, "[Command]")}
	lines = append(lines, wrapLines(selected.Cmd, innerW, styles.DetailsBody)...)
	lines = append(lines, render(styles.DetailsLabel, "[Description]"))
	lines = append(lines, wrapLines(selected.Description, innerW, styles.DetailsBody)...)
	return renderBox(&style, lines, width, height)
}

func (m *Model) viewEditor(width, height int) string {
	return renderBox(styles.Editor, strings.Split(m.editor.View(), "\n"), width, height)
}

func (m *Model) viewStatusLine(width int) string {
	var line string
	switch {
	case m.errMsg != "":
		line = render(styles.Error, fitWidth(singleLine(m.errMsg), width-1))
	case m.currentInfo() != "":
		line = render(styles.Info, fitWidth(m.infoMsg, width-1))
	default:
		line = m.instructions(width - 1)
	}
	return " " + line
}

// instructions renders the key help from the key map.
func (m *Model) instructions(width int) string {
	var b strings.Builder
	bindings := m.keys.browseHelp()
	if m.mode == ModeEditing {
		bindings = m.keys.editHelp()
	} else {
		help := m.keys.Execute.Help()
		b.WriteString(render(styles.HelpKey, help.Key+" "+help.Desc))
		b.WriteString(" | ")
	}
	b.WriteString(render(styles.HelpModifier, "Ctrl"))
	b.WriteString(" + ")
	for i, binding := range bindings {
		if i > 0 {
			b.WriteString(" ")
		}
		help := binding.Help()
		b.WriteString(render(styles.HelpAction, help.Key+" "+help.Desc))
	}
	return fitWidth(b.String(), width)
}

func paneStyle() lipgloss.Style {
	if styles.Pane == nil {
		return lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	}
	return *styles.Pane
}

// renderBox draws lines inside style's frame so the result is exactly
// width by height cells.
func renderBox(style *lipgloss.Style, lines []string, width, height int) string {
	base := lipgloss.NewStyle()
	if style != nil {
		base = *style
	}
	innerW := innerWidth(&base, width)
	innerH := innerHeight(&base, height)
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	fitted := make([]string, len(lines))
	for i, line := range lines {
		fitted[i] = fitWidth(line, innerW)
	}
	return base.
		Width(innerW + base.GetHorizontalPadding()).
		Height(innerH + base.GetVerticalPadding()).
		Render(strings.Join(fitted, "\n"))
}

func innerWidth(style *lipgloss.Style, width int) int {
	frame := 0
	if style != nil {
		frame = style.GetHorizontalFrameSize()
	}
	if w := width - frame; w > 0 {
		return w
	}
	return 0
}

func innerHeight(style *lipgloss.Style, height int) int {
	if h := height - frameHeight(style); h > 0 {
		return h
	}
	return 0
}

func frameHeight(style *lipgloss.Style) int {
	if style == nil {
		return 0
	}
	return style.GetVerticalFrameSize()
}

// fitWidth truncates text to width cells, keeping escape sequences intact.
func fitWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}

func centered(text string, width int, style *lipgloss.Style) []string {
	if width <= 0 {
		return nil
	}
	block := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if style != nil {
		block = block.Inherit(*style)
	}
	return strings.Split(block.Render(text), "\n")
}

func wrapLines(text string, width int, style *lipgloss.Style) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		wrapped := lipgloss.NewStyle().Width(width).Render(line)
		for _, part := range strings.Split(wrapped, "\n") {
			out = append(out, render(style, strings.TrimRight(part, " ")))
		}
	}
	return out
}

func singleLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}
