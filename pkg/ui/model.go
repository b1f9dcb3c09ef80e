// Package ui is the interactive terminal front end. It edits a composer,
// hands snapshots to a sender and shows the outcome of each exchange.
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/aholstenson/cors-inspector/pkg/catalog"
	"github.com/aholstenson/cors-inspector/pkg/composer"
	"github.com/aholstenson/cors-inspector/pkg/network"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/stopwatch"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const maxActivity = 5

// Sender performs a single exchange. exchange.Executor satisfies it.
type Sender interface {
	Send(ctx context.Context, req *network.Request) network.Result
}

type section int

const (
	sectionMethod section = iota
	sectionURL
	sectionHeaders
	sectionBody
	sectionCatalog
	sectionResponse
	sectionCount
)

type headerRow struct {
	id    string
	name  textinput.Model
	value textinput.Model
}

func newHeaderRow(entry composer.HeaderEntry) *headerRow {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "Header-Name"
	name.Width = 24
	name.SetValue(entry.Name)

	value := textinput.New()
	value.Prompt = ""
	value.Placeholder = "value"
	value.SetValue(entry.Value)

	return &headerRow{id: entry.ID, name: name, value: value}
}

// Model is the tea.Model of the request composer screen.
type Model struct {
	ctx      context.Context
	cancel   context.CancelFunc
	composer *composer.Composer
	sender   Sender
	catalog  catalog.Catalog
	origin   string

	help help.Model

	focus         section
	url           textinput.Model
	body          textarea.Model
	headers       []*headerRow
	headerCursor  int
	editingValue  bool
	catalogCursor int

	pending   bool
	result    network.Result
	spinner   spinner.Model
	stopwatch stopwatch.Model
	response  viewport.Model

	activity        []string
	activityChannel <-chan string
}

func New(ctx context.Context, c *composer.Composer, sender Sender, opts ...Option) *Model {
	options := &modelOptions{
		catalog: catalog.Default,
	}
	for _, opt := range opts {
		opt(options)
	}

	url := textinput.New()
	url.Prompt = ""
	url.Placeholder = catalog.DefaultTarget(options.origin)
	url.SetValue(c.Target())

	body := textarea.New()
	body.ShowLineNumbers = false
	body.Placeholder = "Request body"
	body.SetHeight(5)
	body.SetValue(c.Body())

	ctx, cancel := context.WithCancel(ctx)
	m := &Model{
		ctx:      ctx,
		cancel:   cancel,
		composer: c,
		sender:   sender,
		catalog:  options.catalog,
		origin:   options.origin,

		help: help.New(),

		url:  url,
		body: body,

		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		stopwatch: stopwatch.NewWithInterval(time.Millisecond * 100),
		response:  viewport.New(80, 12),

		activityChannel: options.activity,
	}
	for _, entry := range c.HeaderEntries() {
		m.headers = append(m.headers, newHeaderRow(entry))
	}
	m.focusSection(sectionURL)
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.waitForActivity(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case resultMsg:
		m.pending = false
		m.setResult(msg.result)
		return m, m.stopwatch.Stop()
	case activityMsg:
		if len(m.activity) >= maxActivity {
			m.activity = m.activity[1:]
		}
		m.activity = append(m.activity, string(msg))
		return m, m.waitForActivity()
	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case stopwatch.TickMsg, stopwatch.StartStopMsg, stopwatch.ResetMsg:
		var cmd tea.Cmd
		m.stopwatch, cmd = m.stopwatch.Update(msg)
		return m, cmd
	}

	return m, m.updateFocused(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		// Abandon an exchange still in flight.
		m.cancel()
		return tea.Quit
	case key.Matches(msg, keys.Send):
		return m.send()
	case key.Matches(msg, keys.Clear):
		m.setResult(nil)
		return nil
	case key.Matches(msg, keys.Next):
		return m.focusSection(m.nextSection(1))
	case key.Matches(msg, keys.Prev):
		return m.focusSection(m.nextSection(-1))
	}

	switch m.focus {
	case sectionMethod:
		switch {
		case key.Matches(msg, keys.Left):
			m.cycleMethod(-1)
		case key.Matches(msg, keys.Right):
			m.cycleMethod(1)
		}
		return nil
	case sectionURL:
		if key.Matches(msg, keys.Enter) {
			return m.send()
		}
	case sectionHeaders:
		switch {
		case key.Matches(msg, keys.AddHeader):
			return m.addHeader()
		case key.Matches(msg, keys.RemoveHeader):
			return m.removeHeader()
		case key.Matches(msg, keys.Up):
			return m.moveHeaderCursor(-1)
		case key.Matches(msg, keys.Down):
			return m.moveHeaderCursor(1)
		case key.Matches(msg, keys.Enter):
			m.editingValue = !m.editingValue
			return m.focusSection(sectionHeaders)
		}
	case sectionCatalog:
		switch {
		case key.Matches(msg, keys.Up):
			if m.catalogCursor > 0 {
				m.catalogCursor--
			}
		case key.Matches(msg, keys.Down):
			if m.catalogCursor < len(m.catalog)-1 {
				m.catalogCursor++
			}
		case key.Matches(msg, keys.Enter):
			m.tryEndpoint()
		}
		return nil
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the input that has focus and copies the
// edited value into the composer.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case sectionURL:
		m.url, cmd = m.url.Update(msg)
		m.composer.SetTarget(m.url.Value())
	case sectionHeaders:
		row := m.currentHeader()
		if row == nil {
			return nil
		}
		if m.editingValue {
			row.value, cmd = row.value.Update(msg)
		} else {
			row.name, cmd = row.name.Update(msg)
		}
		// Rows and entries are kept in step, so the id is always known.
		_ = m.composer.UpdateHeaderEntry(row.id, row.name.Value(), row.value.Value())
	case sectionBody:
		m.body, cmd = m.body.Update(msg)
		m.composer.SetBody(m.body.Value())
	case sectionResponse:
		m.response, cmd = m.response.Update(msg)
	}
	return cmd
}

// send starts an exchange for the current composer state unless one is
// already in flight.
func (m *Model) send() tea.Cmd {
	if m.pending {
		return nil
	}

	m.pending = true
	m.setResult(nil)
	req := m.composer.Snapshot()
	return tea.Batch(
		m.sendCmd(req),
		m.spinner.Tick,
		m.stopwatch.Reset(),
		m.stopwatch.Start(),
	)
}

func (m *Model) sendCmd(req *network.Request) tea.Cmd {
	ctx, sender := m.ctx, m.sender
	return func() tea.Msg {
		return resultMsg{result: sender.Send(ctx, req)}
	}
}

func (m *Model) setResult(res network.Result) {
	m.result = res
	if res == nil {
		m.response.SetContent("")
	} else {
		m.response.SetContent(RenderResult(res))
	}
	m.response.GotoTop()
}

func (m *Model) cycleMethod(delta int) {
	current := 0
	for i, method := range network.Methods {
		if method == m.composer.Method() {
			current = i
			break
		}
	}
	next := (current + delta + len(network.Methods)) % len(network.Methods)
	_ = m.composer.SetMethod(string(network.Methods[next]))
}

func (m *Model) tryEndpoint() {
	if m.catalogCursor >= len(m.catalog) {
		return
	}
	m.composer.Load(m.catalog[m.catalogCursor], m.origin)
	m.url.SetValue(m.composer.Target())
	m.body.SetValue(m.composer.Body())
}

func (m *Model) addHeader() tea.Cmd {
	id := m.composer.AddHeaderEntry("", "")
	m.headers = append(m.headers, newHeaderRow(composer.HeaderEntry{ID: id}))
	m.headerCursor = len(m.headers) - 1
	m.editingValue = false
	return m.focusSection(sectionHeaders)
}

func (m *Model) removeHeader() tea.Cmd {
	row := m.currentHeader()
	if row == nil {
		return nil
	}
	_ = m.composer.RemoveHeaderEntry(row.id)
	m.headers = append(m.headers[:m.headerCursor], m.headers[m.headerCursor+1:]...)
	if m.headerCursor >= len(m.headers) && m.headerCursor > 0 {
		m.headerCursor--
	}
	return m.focusSection(sectionHeaders)
}

func (m *Model) moveHeaderCursor(delta int) tea.Cmd {
	next := m.headerCursor + delta
	if next < 0 || next >= len(m.headers) {
		return nil
	}
	m.headerCursor = next
	return m.focusSection(sectionHeaders)
}

func (m *Model) currentHeader() *headerRow {
	if m.headerCursor < 0 || m.headerCursor >= len(m.headers) {
		return nil
	}
	return m.headers[m.headerCursor]
}

// nextSection walks the sections in delta direction, skipping the body
// editor when the method does not send one.
func (m *Model) nextSection(delta int) section {
	s := m.focus
	for {
		s = (s + section(delta) + sectionCount) % sectionCount
		if s == sectionBody && !m.composer.Method().SendsBody() {
			continue
		}
		return s
	}
}

func (m *Model) focusSection(s section) tea.Cmd {
	m.focus = s

	m.url.Blur()
	m.body.Blur()
	for _, row := range m.headers {
		row.name.Blur()
		row.value.Blur()
	}

	switch s {
	case sectionURL:
		return m.url.Focus()
	case sectionBody:
		return m.body.Focus()
	case sectionHeaders:
		row := m.currentHeader()
		if row == nil {
			return nil
		}
		if m.editingValue {
			return row.value.Focus()
		}
		return row.name.Focus()
	}
	return nil
}

func (m *Model) resize(width, height int) {
	m.help.Width = width
	m.url.Width = width - 12
	m.body.SetWidth(width - 12)
	for _, row := range m.headers {
		row.value.Width = width - 40
	}

	m.response.Width = width
	m.response.Height = height - 24 - len(m.headers)
	if m.response.Height < 5 {
		m.response.Height = 5
	}
}

func (m *Model) waitForActivity() tea.Cmd {
	c := m.activityChannel
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-c
		if !ok {
			return nil
		}
		return activityMsg(line)
	}
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styleApp.Render("cors-inspector"))
	if m.origin != "" {
		b.WriteString(styleFaint.Render("  origin " + m.origin))
	}
	b.WriteString("\n\n")

	b.WriteString(m.label(sectionMethod, "Method") + m.viewMethods() + "\n")
	b.WriteString(m.label(sectionURL, "URL") + m.url.View() + "\n")

	b.WriteString(m.label(sectionHeaders, "Headers") + m.viewBaseHeader() + "\n")
	for i, row := range m.headers {
		marker := "  "
		if m.focus == sectionHeaders && i == m.headerCursor {
			marker = "> "
		}
		b.WriteString(styleLabel.Render("") + marker + row.name.View() + " " + row.value.View() + "\n")
	}

	if m.composer.Method().SendsBody() {
		b.WriteString(m.label(sectionBody, "Body") + "\n")
		b.WriteString(m.body.View() + "\n")
	}

	b.WriteString(m.label(sectionCatalog, "Try it") + "\n")
	current, loaded := m.catalog.Match(m.composer.Method(), m.composer.Target(), m.origin)
	for i, e := range m.catalog {
		line := methodStyle(e.Method).Render(string(e.Method)) + " " + e.Name + " " + styleURL.Render(e.URL)
		if loaded && e.Name == current.Name {
			line += " " + style2xx.Render("●")
		}
		if m.focus == sectionCatalog && i == m.catalogCursor {
			line = styleSelected.Render(">") + " " + line
		} else {
			line = "  " + line
		}
		b.WriteString(styleLabel.Render("") + line + "\n")
	}

	b.WriteString(styleDivider.Render(strings.Repeat("─", m.dividerWidth())) + "\n")
	b.WriteString(m.label(sectionResponse, "Response"))
	switch {
	case m.pending:
		b.WriteString(m.spinner.View() + " Sending " + m.stopwatch.View() + "\n")
	case m.result == nil:
		b.WriteString(styleFaint.Render("Send a request to see the response") + "\n")
	default:
		b.WriteString("\n" + m.response.View() + "\n")
	}

	if len(m.activity) > 0 {
		b.WriteString(styleDivider.Render(strings.Repeat("─", m.dividerWidth())) + "\n")
		for _, line := range m.activity {
			b.WriteString(styleFaint.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + m.help.ShortHelpView(keys.helpFor(m.focus)))
	return b.String()
}

// viewBaseHeader shows the Content-Type that will be sent, marking it when a
// header entry replaced the default.
func (m *Model) viewBaseHeader() string {
	base := m.composer.Snapshot().Headers[0]
	line := base.Name + ": " + base.Value
	if base.Name == "Content-Type" && base.Value == composer.ContentTypeJSON {
		return styleFaint.Render(line)
	}
	return line + styleFaint.Render(" (overridden)")
}

func (m *Model) label(s section, text string) string {
	if m.focus == s {
		return styleLabelFocused.Render(text)
	}
	return styleLabel.Render(text)
}

func (m *Model) viewMethods() string {
	parts := make([]string, 0, len(network.Methods))
	for _, method := range network.Methods {
		if method == m.composer.Method() {
			parts = append(parts, styleSelected.Render(string(method)))
		} else {
			parts = append(parts, styleFaint.Render(string(method)))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) dividerWidth() int {
	if m.response.Width > 0 {
		return m.response.Width
	}
	return 80
}

type resultMsg struct {
	result network.Result
}

type activityMsg string
