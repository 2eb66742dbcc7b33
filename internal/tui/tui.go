// ABOUTME: Interactive bubbletea chat interface over the resolution engine
// ABOUTME: Viewport transcript + prompt input, live algorithm toggle, fuzzy question completion

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tanyabot/tanya-go/internal/engine"
	"github.com/tanyabot/tanya-go/internal/log"
	"github.com/tanyabot/tanya-go/internal/match"
	"github.com/tanyabot/tanya-go/internal/qna"
)

// role tags a transcript entry.
type role int

const (
	roleUser role = iota
	roleBot
)

// message is one transcript entry.
type message struct {
	role role
	text string
}

// Model is the bubbletea model for the chat session.
type Model struct {
	store *qna.Store
	algo  match.Algorithm

	viewport viewport.Model
	input    textinput.Model

	messages    []message
	questions   []string // cached stored questions for completion
	completions []string
	err         error

	width  int
	height int
	ready  bool
}

// New builds the initial model. The store must already be opened.
func New(store *qna.Store, algo match.Algorithm) (*Model, error) {
	input := textinput.New()
	input.Placeholder = "Ketik pertanyaan Anda..."
	input.Prompt = "> "
	input.Focus()

	m := &Model{
		store: store,
		algo:  algo,
		input: input,
		messages: []message{
			{role: roleBot, text: "Halo! Tanyakan apa saja, atau ketik \"tambah <pertanyaan> jawab <jawaban>\"."},
		},
	}
	if err := m.refreshQuestions(); err != nil {
		return nil, err
	}
	return m, nil
}

// Run starts the program and blocks until the user quits.
func Run(store *qna.Store, algo match.Algorithm) error {
	m, err := New(store, algo)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running chat: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlA:
			m.toggleAlgorithm()
			return m, nil
		case tea.KeyTab:
			if len(m.completions) > 0 {
				m.input.SetValue(m.completions[0])
				m.input.CursorEnd()
				m.completions = nil
			}
			return m, nil
		case tea.KeyEnter:
			m.submit()
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.completions = m.complete(m.input.Value())
	}
	return m, cmd
}

// toggleAlgorithm flips between KMP and Boyer-Moore for subsequent lookups.
func (m *Model) toggleAlgorithm() {
	if m.algo == match.KMP {
		m.algo = match.BoyerMoore
	} else {
		m.algo = match.KMP
	}
	log.Debug("tui: algorithm switched to %s", m.algo)
}

// submit resolves the typed utterance and applies any storage action.
func (m *Model) submit() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return
	}
	m.input.Reset()
	m.completions = nil
	m.messages = append(m.messages, message{role: roleUser, text: text})

	records, err := m.store.Load()
	if err != nil {
		m.err = err
		m.messages = append(m.messages, message{role: roleBot, text: "Gagal membaca database."})
		m.refreshViewport()
		return
	}

	result := engine.Resolve(text, records, m.algo)
	m.messages = append(m.messages, message{role: roleBot, text: result.DisplayText})

	if err := m.store.Apply(result.Action, result.Record); err != nil {
		m.err = err
		log.Error("apply %s: %v", result.Action, err)
		m.messages = append(m.messages, message{role: roleBot, text: "Gagal menyimpan perubahan."})
	}
	if result.Action == qna.ActionAdd || result.Action == qna.ActionUpdate || result.Action == qna.ActionDelete {
		if err := m.refreshQuestions(); err != nil {
			m.err = err
		}
	}
	m.refreshViewport()
}

// refreshQuestions reloads the completion cache from the store.
func (m *Model) refreshQuestions() error {
	records, err := m.store.Load()
	if err != nil {
		return err
	}
	m.questions = m.questions[:0]
	for _, r := range records {
		m.questions = append(m.questions, r.Question)
	}
	return nil
}

func (m *Model) layout() {
	if !m.ready {
		m.viewport = viewport.New(m.width, m.transcriptHeight())
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = m.transcriptHeight()
	}
	m.input.Width = m.width - 4
	m.refreshViewport()
}

// transcriptHeight leaves room for the status bar, input line, and
// completion hint.
func (m *Model) transcriptHeight() int {
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
