package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/placelist/internal/clipboard"
	"github.com/jask/placelist/internal/dragdrop"
	"github.com/jask/placelist/internal/place"
	"github.com/jask/placelist/internal/prefs"
	"github.com/jask/placelist/internal/service"
)

// App is the place list UI.
type App struct {
	ctx      context.Context
	lib      *service.Library
	session  *dragdrop.Session
	clip     clipboard.Writer
	title    string
	seedPath string
	keys     keyMap
	help     help.Model
	jump     textinput.Model

	state  appState
	places []place.Place
	cursor int
	status string
	isErr  bool
	width  int
}

// Options configures New.
type Options struct {
	Title     string
	SeedPath  string
	Clipboard clipboard.Writer
}

type appState string

const (
	viewList   appState = "list"
	viewDetail appState = "detail"
	viewJump   appState = "jump"
)

func New(ctx context.Context, lib *service.Library, opts Options) *App {
	if opts.Title == "" {
		opts.Title = "Places"
	}
	if opts.Clipboard == nil {
		opts.Clipboard = &clipboard.Memory{}
	}
	ti := textinput.New()
	ti.Prompt = "jump to: "
	ti.Placeholder = "title"
	ti.CharLimit = 64
	return &App{
		ctx:      ctx,
		lib:      lib,
		session:  lib.Session(ctx),
		clip:     opts.Clipboard,
		title:    opts.Title,
		seedPath: opts.SeedPath,
		keys:     defaultKeys(),
		help:     help.New(),
		jump:     ti,
		state:    viewList,
		places:   lib.Records(),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle(a.title)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
	case tea.KeyMsg:
		if a.state == viewJump {
			return a.handleJumpKey(m)
		}
		if m.Paste {
			return a, a.handlePaste(string(m.Runes))
		}
		if a.state == viewDetail {
			return a.handleDetailKey(m)
		}
		if a.session.State() == dragdrop.Dragging {
			return a.handleDragKey(m)
		}
		return a.handleListKey(m)
	case statusMsg:
		a.setStatus(string(m), false)
	case errMsg:
		a.setStatus("error: "+m.Error(), true)
	}
	return a, nil
}

func (a *App) handleListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(a.places)-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Grab):
		if len(a.places) == 0 {
			a.setStatus("nothing to move", false)
			return a, nil
		}
		if err := a.session.Begin(a.cursor); err != nil {
			a.setStatus("error: "+err.Error(), true)
			return a, nil
		}
		a.setStatus(fmt.Sprintf("moving %s: ↑/↓ to place, enter to drop, esc to cancel", a.places[a.cursor].Title), false)
	case key.Matches(m, a.keys.Open):
		if len(a.places) > 0 {
			a.state = viewDetail
			a.status = ""
		}
	case key.Matches(m, a.keys.Copy):
		return a, a.copyCmd(a.cursor)
	case key.Matches(m, a.keys.Jump):
		if len(a.places) == 0 {
			return a, nil
		}
		a.state = viewJump
		a.jump.SetValue("")
		return a, a.jump.Focus()
	case key.Matches(m, a.keys.Reset):
		if err := a.lib.Reset(a.ctx); err != nil {
			a.refresh()
			return a, func() tea.Msg { return errMsg{err} }
		}
		a.refresh()
		a.cursor = 0
		a.setStatus("order reset", false)
		return a, a.persistCmd()
	case key.Matches(m, a.keys.Export):
		return a, a.exportCmd()
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return a, nil
}

func (a *App) handleDragKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.String() == "ctrl+c":
		a.session.Cancel()
		return a, tea.Quit
	case key.Matches(m, a.keys.Up):
		if over := a.session.Over(); over > 0 {
			_ = a.session.Hover(over - 1)
		}
		a.cursor = a.session.Over()
	case key.Matches(m, a.keys.Down):
		if over := a.session.Over(); over < len(a.places)-1 {
			_ = a.session.Hover(over + 1)
		}
		a.cursor = a.session.Over()
	case key.Matches(m, a.keys.Drop):
		from := a.session.Origin()
		title := a.places[from].Title
		to, err := a.session.End()
		a.refresh()
		a.cursor = to
		if err != nil {
			a.setStatus("error: "+err.Error(), true)
			return a, nil
		}
		if from == to {
			a.setStatus(title+" left in place", false)
			return a, nil
		}
		a.setStatus(fmt.Sprintf("moved %s to position %d", title, to+1), false)
		return a, a.persistCmd()
	case key.Matches(m, a.keys.Cancel):
		a.cursor = a.session.Origin()
		a.session.Cancel()
		a.setStatus("move cancelled", false)
	}
	return a, nil
}

func (a *App) handleDetailKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.String() == "ctrl+c":
		return a, tea.Quit
	case key.Matches(m, a.keys.Cancel), m.String() == "q":
		a.state = viewList
		a.status = ""
	case key.Matches(m, a.keys.Copy):
		return a, a.copyCmd(a.cursor)
	}
	return a, nil
}

func (a *App) handleJumpKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.jump.Blur()
		a.state = viewList
		return a, nil
	case tea.KeyEnter:
		query := a.jump.Value()
		a.jump.Blur()
		a.state = viewList
		if i, ok := a.lib.Store.Find(query); ok {
			a.cursor = i
			a.setStatus("jumped to "+a.places[i].Title, false)
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.jump, cmd = a.jump.Update(m)
	return a, cmd
}

// handlePaste treats pasted text as an item dragged in from another
// application and drops it at the cursor.
func (a *App) handlePaste(text string) tea.Cmd {
	if a.session.State() == dragdrop.Dragging {
		a.setStatus("finish the current move first", true)
		return nil
	}
	index := a.cursor
	if index > len(a.places) {
		index = len(a.places)
	}
	err := a.session.Drop(place.TextItem(text), index)
	if err != nil {
		a.setStatus("error: "+err.Error(), true)
		return nil
	}
	a.refresh()
	a.cursor = index
	a.state = viewList
	a.setStatus("dropped "+a.places[index].Title, false)
	return a.persistCmd()
}

func (a *App) copyCmd(index int) tea.Cmd {
	if len(a.places) == 0 {
		return nil
	}
	item, err := a.lib.Payload(a.ctx, index)
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	text, ok := item.Text()
	if !ok {
		return func() tea.Msg { return errMsg{place.ErrUnsupportedPayloadKind} }
	}
	title := a.places[index].Title
	return func() tea.Msg {
		if err := a.clip.Copy(text); err != nil {
			return errMsg{fmt.Errorf("copy: %w", err)}
		}
		return statusMsg("copied " + title + " to clipboard")
	}
}

func (a *App) persistCmd() tea.Cmd {
	snap := a.lib.Snapshot()
	return func() tea.Msg {
		if err := a.lib.Save(a.ctx, snap); err != nil {
			return errMsg{fmt.Errorf("save order: %w", err)}
		}
		return nil
	}
}

func (a *App) exportCmd() tea.Cmd {
	path := a.seedPath
	places := a.lib.Records()
	return func() tea.Msg {
		if path == "" {
			return errMsg{errors.New("no seed.path configured")}
		}
		if err := prefs.SavePlaces(path, places); err != nil {
			return errMsg{err}
		}
		return statusMsg(fmt.Sprintf("wrote %d places to %s", len(places), path))
	}
}

func (a *App) refresh() {
	a.places = a.lib.Records()
	if a.cursor >= len(a.places) {
		a.cursor = max(len(a.places)-1, 0)
	}
}

func (a *App) setStatus(s string, isErr bool) {
	a.status, a.isErr = s, isErr
}

func (a *App) View() string {
	var body string
	switch a.state {
	case viewDetail:
		body = a.renderDetail()
	default:
		body = a.renderList()
	}
	if a.status != "" {
		style := okStyle
		if a.isErr {
			style = errStyle
		}
		body += "\n" + style.Render(a.status)
	}
	return body
}

// displayOrder previews a live drag without touching the store.
func (a *App) displayOrder() []place.Place {
	if a.session.State() != dragdrop.Dragging {
		return a.places
	}
	from, to := a.session.Origin(), a.session.Over()
	out := slices.Clone(a.places)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) {
		return out
	}
	p := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, p)
}

func (a *App) renderList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.title))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d places", len(a.places))))
	b.WriteString("\n\n")
	if len(a.places) == 0 {
		b.WriteString(dimStyle.Render("  (empty: paste text to add a place)") + "\n")
	}
	dragging := a.session.State() == dragdrop.Dragging
	for i, p := range a.displayOrder() {
		marker, title := "  ", p.Title
		switch {
		case dragging && i == a.session.Over():
			marker, title = "≡ ", draggingStyle.Render(p.Title)
		case i == a.cursor:
			marker, title = "▶ ", cursorStyle.Render(p.Title)
		}
		row := marker + title
		if p.Description != "" {
			row += "  " + descStyle.Render(p.Description)
		}
		if a.width > 0 {
			row = ansi.Truncate(row, a.width-1, "…")
		}
		b.WriteString(row + "\n")
	}
	if a.state == viewJump {
		b.WriteString("\n" + a.jump.View() + "\n")
	}
	b.WriteString("\n" + a.help.View(a.keys))
	return b.String()
}

func (a *App) renderDetail() string {
	if a.cursor >= len(a.places) {
		return ""
	}
	p := a.places[a.cursor]
	image := p.ImageRef
	if image == "" {
		image = "(no image)"
	}
	body := titleStyle.Render(p.Title) + "\n\n" +
		p.Description + "\n\n" +
		dimStyle.Render("image: "+image)
	box := boxStyle
	if a.width > 4 {
		box = box.Width(min(a.width-4, 72))
	}
	return box.Render(body) + "\n" + dimStyle.Render("[y] copy out  [paste] drop here  [esc] back")
}

// messages
type statusMsg string

type errMsg struct{ error }
