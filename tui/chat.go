// Package tui implements the interactive chat surface as a Bubble Tea
// program. The model wraps an Answerer: each Enter submits one turn, the
// transcript accumulates in a scrollable viewport.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cdpdoc/cdpdoc"
)

// ReloadMsg reports a corpus reload to a running chat program. Senders
// outside the event loop deliver it with (*tea.Program).Send. Only the
// status line changes; queries already read the newly published snapshot.
type ReloadMsg struct {
	Documents int
	Passages  int
	Err       error
}

// answerMsg carries one completed turn back into the event loop.
type answerMsg struct {
	query   string
	answer  *cdpdoc.Answer
	err     error
	elapsed time.Duration
}

// turn is one question and its displayed outcome.
type turn struct {
	query  string
	text   string
	failed bool
}

// Model is the Bubble Tea model for a chat session. Build one with New and
// hand it to tea.NewProgram.
type Model struct {
	answerer cdpdoc.Answerer
	input    textinput.Model
	viewport viewport.Model
	turns    []turn
	status   string
	waiting  bool
	ready    bool
}

// New returns a chat model over answerer.
func New(answerer cdpdoc.Answerer) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "How do I send events to Segment?"
	ti.Focus()
	ti.CharLimit = 0

	vp := viewport.New(0, 0)
	vp.SetContent(welcome)

	return Model{
		answerer: answerer,
		input:    ti,
		viewport: vp,
		status:   "Ready.",
	}
}

// Init starts the text input cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window, and answer events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		fw, fh := transcriptBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		// header + hint + status + input line around the two frames
		reserved := 4 + ih + fh
		m.viewport.Width = max(20, msg.Width-fw)
		m.viewport.Height = max(3, msg.Height-reserved)
		m.input.Width = max(20, msg.Width-fw-len(m.input.Prompt))
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			if m.waiting {
				return m, nil
			}
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				return m, nil
			}
			m.input.Reset()
			m.waiting = true
			m.status = "Thinking..."
			return m, answerCmd(m.answerer, query)
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case answerMsg:
		m.waiting = false
		text, failed := answerText(msg.answer, msg.err)
		m.turns = append(m.turns, turn{query: msg.query, text: text, failed: failed})
		switch {
		case msg.err == nil:
			m.status = fmt.Sprintf("Answered in %s.", msg.elapsed.Round(time.Millisecond))
		case cdpdoc.ErrorCode(msg.err) == cdpdoc.EUNAVAILABLE:
			m.status = "Index not built."
		default:
			m.status = "Query failed."
		}
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil

	case ReloadMsg:
		if msg.Err != nil {
			m.status = "Reload failed: " + cdpdoc.ErrorMessage(msg.Err)
		} else {
			m.status = fmt.Sprintf("Corpus reloaded: %d documents, %d passages.", msg.Documents, msg.Passages)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Starting..."
	}
	header := headerStyle.Render("cdpdoc chat")
	hint := hintStyle.Render("Ask about Segment, mParticle, Lytics, or Zeotap. Enter asks, esc quits.")
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + hint + "\n" + transcript + "\n" + input + "\n" + status
}

func (m Model) renderTranscript() string {
	return renderTranscript(m.turns, m.viewport.Width)
}

// answerCmd runs one turn off the event loop.
func answerCmd(answerer cdpdoc.Answerer, query string) tea.Cmd {
	return func() tea.Msg {
		begin := time.Now()
		answer, err := answerer.AnswerQuery(context.Background(), query)
		return answerMsg{query: query, answer: answer, err: err, elapsed: time.Since(begin)}
	}
}

// answerText maps a turn's outcome to display text. An unbuilt index reads
// as a service notice rather than a failure; other errors surface only
// their user-safe message.
func answerText(answer *cdpdoc.Answer, err error) (text string, failed bool) {
	switch {
	case err == nil:
		return cdpdoc.FormatAnswer(answer), false
	case cdpdoc.ErrorCode(err) == cdpdoc.EUNAVAILABLE:
		return "The documentation index has not been built yet. Run crawl or import a corpus, then ask again.", false
	default:
		return cdpdoc.ErrorMessage(err), true
	}
}

const welcome = "No questions yet. Type one below and press Enter."

func renderTranscript(turns []turn, width int) string {
	if len(turns) == 0 {
		return welcome
	}
	blocks := make([]string, 0, len(turns))
	for _, t := range turns {
		blocks = append(blocks, renderTurn(t, width))
	}
	return strings.Join(blocks, "\n\n")
}

func renderTurn(t turn, width int) string {
	style := answerStyle
	if t.failed {
		style = errorStyle
	}
	if width > 0 {
		style = style.Width(width)
	}
	return questionStyle.Render("You: "+t.query) + "\n" + style.Render(t.text)
}

var (
	headerStyle        = lipgloss.NewStyle().Bold(true)
	hintStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	questionStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	answerStyle        = lipgloss.NewStyle()
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
