package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/insightboard/internal/formatter"
	"github.com/desertthunder/insightboard/internal/models"
	"github.com/desertthunder/insightboard/internal/services"
	"github.com/desertthunder/insightboard/internal/shared"
	"github.com/desertthunder/insightboard/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ListView ViewState = iota
	DetailView
	ConfirmView
	AddView
)

// Library is the saved-video store the TUI browses.
//
// Implemented by repositories.VideoStore.
type Library interface {
	List(userID string) []models.VideoRecord
	Save(userID string, record models.VideoRecord) models.VideoRecord
	Remove(userID, videoID string)
}

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	library  Library
	fetcher  tasks.VideoFetcher
	user     models.User
	width    int
	height   int
	list     list.Model
	videos   []models.VideoRecord
	selected *models.VideoRecord
	input    textinput.Model
	busy     bool
	status   string
	err      error
	help     help.Model
	keys     keyMap
}

// NewModel creates a new TUI model browsing user's saved videos.
//
// A nil fetcher disables adding videos.
func NewModel(ctx context.Context, library Library, fetcher tasks.VideoFetcher, user models.User) *Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("Saved videos for %s", user.Name)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	input := textinput.New()
	input.Placeholder = "https://youtu.be/dQw4w9WgXcQ"
	input.CharLimit = 256

	return &Model{
		ctx:     ctx,
		view:    ListView,
		library: library,
		fetcher: fetcher,
		user:    user,
		list:    l,
		input:   input,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init loads the saved list.
func (m *Model) Init() tea.Cmd {
	return m.loadVideos()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ListView:
			return m.handleListKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case AddView:
			return m.handleAddKeys(msg)
		}

	case Msg:
		return m.handleMsg(msg)
	}

	return m.updateComponents(msg)
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgVideosLoaded:
		m.videos = msg.data.([]models.VideoRecord)
		cmd := m.list.SetItems(videoItems(m.videos))
		return m, cmd

	case MsgVideoFetched:
		res := msg.data.(fetchResult)
		m.busy = false
		if res.err != nil {
			m.err = res.err
			return m, nil
		}
		m.err = nil
		m.input.Reset()
		m.input.Blur()
		m.view = ListView
		m.status = fmt.Sprintf("Saved %s", res.video.Title)
		return m, m.loadVideos()

	case MsgVideoRemoved:
		m.selected = nil
		m.view = ListView
		m.status = fmt.Sprintf("Removed %s", msg.data.(string))
		return m, m.loadVideos()
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case ListView:
		return m.renderList()
	case DetailView:
		return m.renderDetail()
	case ConfirmView:
		return m.renderConfirm()
	case AddView:
		return m.renderAdd()
	default:
		return ""
	}
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.SettingFilter() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.enter):
		if v, ok := m.selectedVideo(); ok {
			m.selected = &v
			m.view = DetailView
		}
		return m, nil
	case key.Matches(msg, m.keys.remove):
		if v, ok := m.selectedVideo(); ok {
			m.selected = &v
			m.view = ConfirmView
		}
		return m, nil
	case key.Matches(msg, m.keys.add):
		m.status = ""
		m.err = nil
		m.view = AddView
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.refresh):
		m.status = ""
		return m, m.loadVideos()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.selected = nil
		m.view = ListView
	case key.Matches(msg, m.keys.remove):
		m.view = ConfirmView
	}
	return m, nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.yes):
		if m.selected == nil {
			m.view = ListView
			return m, nil
		}
		return m, m.removeVideo(m.selected.ID)
	case key.Matches(msg, m.keys.no), key.Matches(msg, m.keys.quit):
		m.view = DetailView
		if m.selected == nil {
			m.view = ListView
		}
	}
	return m, nil
}

func (m *Model) handleAddKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.input.Reset()
		m.input.Blur()
		m.err = nil
		m.view = ListView
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			return m, nil
		}
		m.busy = true
		m.err = nil
		return m, m.fetchVideo(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ListView:
		m.list, cmd = m.list.Update(msg)
	case AddView:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m *Model) selectedVideo() (models.VideoRecord, bool) {
	if item, ok := m.list.SelectedItem().(videoItem); ok {
		return item.video, true
	}
	return models.VideoRecord{}, false
}

func (m *Model) loadVideos() tea.Cmd {
	return func() tea.Msg {
		return videosLoadedMsg(m.library.List(m.user.ID))
	}
}

func (m *Model) removeVideo(id string) tea.Cmd {
	return func() tea.Msg {
		m.library.Remove(m.user.ID, id)
		return videoRemovedMsg(id)
	}
}

func (m *Model) fetchVideo(input string) tea.Cmd {
	return func() tea.Msg {
		id, ok := services.ExtractVideoID(input)
		if !ok {
			return videoFetchedMsg(nil, fmt.Errorf("%w: %q", shared.ErrInvalidVideoID, input))
		}
		if m.fetcher == nil {
			return videoFetchedMsg(nil, shared.ErrNotConfigured)
		}

		record, err := m.fetcher.Fetch(m.ctx, id)
		if err != nil {
			return videoFetchedMsg(nil, err)
		}

		saved := m.library.Save(m.user.ID, *record)
		return videoFetchedMsg(&saved, nil)
	}
}

func (m *Model) renderList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.add, m.keys.remove, m.keys.refresh, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	body := m.list.View()
	if len(m.videos) == 0 {
		body = fmt.Sprintf("%s\n%s", styles.title.Render(m.list.Title), styles.help.Render("No saved videos yet. Press a to add one."))
	}

	if m.status != "" {
		return fmt.Sprintf("%s\n%s\n\n%s", body, styles.ok.Render(m.status), helpView)
	}
	return fmt.Sprintf("%s\n\n%s", body, helpView)
}

func (m *Model) renderDetail() string {
	if m.selected == nil {
		return styles.err.Render("No video selected\n\nPress esc to go back")
	}

	v := m.selected
	eng := v.Engagement()
	rows := [][2]string{
		{"Channel", v.Channel},
		{"Views", formatter.FormatCount(v.Views)},
		{"Likes", formatter.FormatCount(v.Likes)},
		{"Comments", formatter.FormatCount(v.Comments)},
		{"Like rate", formatter.FormatRate(eng.LikeRate)},
		{"Comment rate", formatter.FormatRate(eng.CommentRate)},
		{"Duration", v.Duration},
		{"Uploaded", v.UploadDate},
		{"Watch", formatter.WatchURL(v.ID)},
	}
	if v.SavedAt != nil {
		rows = append(rows, [2]string{"Saved", v.SavedAt.Local().Format("2006-01-02 15:04")})
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, styles.label.Render(row[0]), row[1])
	}

	helpKeys := []key.Binding{m.keys.back, m.keys.remove, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s", styles.title.Render(v.Title), strings.Join(lines, "\n"), helpView)
}

func (m *Model) renderConfirm() string {
	if m.selected == nil {
		return ""
	}
	title := styles.warn.Render(fmt.Sprintf("Remove '%s' from your saved videos?", m.selected.Title))

	helpKeys := []key.Binding{m.keys.yes, m.keys.no}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n\n%s", title, helpView)
}

func (m *Model) renderAdd() string {
	title := styles.title.Render("Add a video")

	var status string
	switch {
	case m.busy:
		status = styles.help.Render("Fetching video statistics...")
	case m.err != nil:
		status = styles.err.Render(services.UserMessage(m.err))
	}

	helpView := m.help.ShortHelpView([]key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "fetch & save")),
		m.keys.back,
	})

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", title, m.input.View(), status, helpView)
}
