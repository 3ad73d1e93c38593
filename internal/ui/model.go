package ui

import (
	"reflect"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chopsticks/internal/snippet"
	"github.com/atomicstack/chopsticks/internal/theme"
	"github.com/atomicstack/chopsticks/internal/tick"
	"github.com/atomicstack/chopsticks/internal/ui/command"
	uistate "github.com/atomicstack/chopsticks/internal/ui/state"
)

type Mode int

const (
	ModeBrowse Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	default:
		return "browse"
	}
}

const (
	defaultWidth  = 80
	defaultHeight = 24
	infoTTL       = 5 * time.Second

	searchPlaceholder = "(type to search)"
	editorPlaceholder = "priority = 0\ncmd = \"echo hello world\"\ndescription = \"this is a example\""
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// textField is the part of a text widget the model relies on. The search bar
// and the editor buffer both satisfy it.
type textField interface {
	Value() string
	SetValue(string)
	Focus() tea.Cmd
	Blur()
	Focused() bool
	View() string
}

var (
	_ textField = (*textinput.Model)(nil)
	_ textField = (*textarea.Model)(nil)
)

// editSession remembers the snippet detached from the list while it is being
// edited, so Cancel can put it back where it was.
type editSession struct {
	original *snippet.Snippet
	index    int
}

// Options configure a Model.
type Options struct {
	Width  int
	Height int
	// Ticks expire transient messages. Nil disables the tick loop.
	Ticks *tick.Source
	// Clipboard receives copied commands. Nil uses the system clipboard.
	Clipboard func(string) error
	// StaticCursor disables cursor blinking in the text widgets.
	StaticCursor bool
}

// Model implements the Bubble Tea model for the snippet launcher.
type Model struct {
	list   *uistate.List
	search textinput.Model
	editor textarea.Model
	mode   Mode
	edit   *editSession

	pending  *snippet.Snippet
	quitting bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time
	now        func() time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	ticks     *tick.Source
	bus       *command.Bus
	clipboard func(string) error
	keys      keyMap
	blink     bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the UI around the loaded snippet list, in Browse mode with
// the first snippet selected.
func NewModel(snippets []snippet.Snippet, opts Options) *Model {
	m := &Model{
		list:      uistate.NewList(snippet.Clone(snippets)),
		mode:      ModeBrowse,
		now:       time.Now,
		ticks:     opts.Ticks,
		bus:       command.New(),
		clipboard: opts.Clipboard,
		keys:      defaultKeyMap(),
		blink:     !opts.StaticCursor,
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.WriteAll
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	m.search = newSearchInput()
	m.editor = newEditor()
	if !m.blink {
		m.search.Cursor.SetMode(cursor.CursorStatic)
		m.editor.Cursor.SetMode(cursor.CursorStatic)
	}
	m.search.Focus()
	m.layout()
	m.registerHandlers()
	return m
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "» "
	ti.Placeholder = searchPlaceholder
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		ti.TextStyle = *styles.Filter
	}
	if styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = *styles.FilterPlaceholder
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = *styles.Cursor
	}
	return ti
}

func newEditor() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = editorPlaceholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	if styles.EditorPlaceholder != nil {
		ta.FocusedStyle.Placeholder = *styles.EditorPlaceholder
		ta.BlurredStyle.Placeholder = *styles.EditorPlaceholder
	}
	return ta
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.ticks != nil {
		cmds = append(cmds, waitForTick(m.ticks))
	}
	if m.blink {
		cmds = append(cmds, textinput.Blink)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if handler := m.handlerFor(msg); handler != nil {
		cmd = handler(msg)
	} else {
		cmd = m.updateActiveField(msg)
	}
	// View only reads the viewport, so it is settled here.
	m.syncViewport()
	return m, cmd
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(tickDoneMsg{}):       m.handleTickDoneMsg,
		reflect.TypeOf(copyResultMsg{}):     m.handleCopyResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	// Any keystroke acknowledges the error line.
	m.errMsg = ""
	switch m.mode {
	case ModeEditing:
		return m.handleEditorKey(keyMsg)
	default:
		return m.handleBrowseKey(keyMsg)
	}
}

func (m *Model) activeField() textField {
	if m.mode == ModeEditing {
		return &m.editor
	}
	return &m.search
}

// focusActive blurs every text widget and focuses the one owned by the
// current mode.
func (m *Model) focusActive() tea.Cmd {
	for _, field := range []textField{&m.search, &m.editor} {
		field.Blur()
	}
	return m.activeField().Focus()
}

// updateActiveField routes msg to the focused text widget.
func (m *Model) updateActiveField(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case ModeEditing:
		m.editor, cmd = m.editor.Update(msg)
	default:
		m.search, cmd = m.search.Update(msg)
	}
	return cmd
}

// Mode reports the active mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Quitting reports whether the model asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Pending returns the snippet chosen for execution, if any.
func (m *Model) Pending() (snippet.Snippet, bool) {
	if m.pending == nil {
		return snippet.Snippet{}, false
	}
	return *m.pending, true
}

// Snippets returns the list to persist. A snippet detached for editing is
// put back at its old position so an interrupted edit loses nothing.
func (m *Model) Snippets() []snippet.Snippet {
	out := snippet.Clone(m.list.Items)
	if m.mode == ModeEditing && m.edit != nil && m.edit.original != nil {
		restored := uistate.NewList(out)
		restored.Insert(m.edit.index, *m.edit.original)
		out = restored.Items
	}
	return out
}

// Query returns the current search text.
func (m *Model) Query() string {
	return m.search.Value()
}

// Selected returns the snippet under the cursor.
func (m *Model) Selected() (snippet.Snippet, bool) {
	return m.list.Selected()
}

// Cursor returns the selection index.
func (m *Model) Cursor() int {
	return m.list.Cursor
}

// Err returns the message shown in the status line, if any.
func (m *Model) Err() string {
	return m.errMsg
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = m.now().Add(infoTTL)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && m.now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

// currentInfo returns the info message unless it has expired. Expired
// messages are dropped on the next tick.
func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && m.now().After(m.infoExpire) {
		return ""
	}
	return m.infoMsg
}
