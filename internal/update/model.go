package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	progressbar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"trackd/internal/poller"
	"trackd/internal/progress"
)

type View string

const (
	ViewToday    View = "Today"
	ViewUpcoming View = "Upcoming"
	ViewProgress View = "Progress"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Today    string
	Upcoming string
	Progress string
	Help     string
	Quit     string
}

type TodayState struct {
	Items       []progress.TodayItem
	Completed   int
	Cursor      int
	CaptureMode bool
}

type UpcomingState struct {
	Items  []progress.UpcomingEvent
	Cursor int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type Model struct {
	CurrentView    View
	Engine         *progress.Engine
	Poller         *poller.Poller
	TodayDate      string
	Today          TodayState
	Upcoming       UpcomingState
	Heatmap        progress.Heatmap
	Stats          progress.Stats
	State          progress.Gamification
	Palette        CommandPaletteState
	HelpVisible    bool
	Notifications  []Notification
	DesktopEnabled bool
	notifier       DesktopNotifier
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	HeatmapWindow  int

	// Bubble components used for rich TUI controls
	quickAddInput     textinput.Model
	commandInput      textinput.Model
	xpBar             progressbar.Model
	reloadSpinner     spinner.Model
	helpModel         help.Model
	challengeViewport viewport.Model
	spinnerActive     bool

	now func() time.Time
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// StoreChangedMsg arrives when another instance wrote to the shared
// store; the model reloads the engine and re-derives every panel.
type StoreChangedMsg struct{}

// ReminderTickMsg is one pass of the fixed-interval reminder poll.
type ReminderTickMsg struct {
	At time.Time
}

func NewModel(engine *progress.Engine) Model {
	m := Model{
		CurrentView:    ViewToday,
		Engine:         engine,
		HeatmapWindow:  progress.DefaultHeatmapWindow,
		DesktopEnabled: false,
		notifier:       NoopDesktopNotifier{},
		Keys: GlobalKeyMap{
			Today:    "1",
			Upcoming: "2",
			Progress: "3",
			Help:     "?",
			Quit:     "q",
		},
		now: time.Now,
	}
	m.initBubbleComponents()
	m.TodayDate = m.today()
	if m.Engine != nil {
		if _, err := m.Engine.UpdateStreak(m.TodayDate); err != nil {
			m.LastError = err
		}
	}
	m.refreshAll()
	return m
}

func NewModelWithConfig(engine *progress.Engine, pol *poller.Poller, notifier DesktopNotifier, cfg RuntimeConfig) Model {
	m := NewModel(engine)
	m.Poller = pol
	m.DesktopEnabled = cfg.DesktopNotifications
	if notifier != nil {
		m.notifier = notifier
	}
	if cfg.HeatmapWindowDays > 0 {
		m.HeatmapWindow = cfg.HeatmapWindowDays
	}
	m.refreshAll()
	return m
}

func (m Model) today() string {
	return m.now().Format("2006-01-02")
}

func (m *Model) initBubbleComponents() {
	m.quickAddInput = textinput.New()
	m.quickAddInput.Prompt = "add> "
	m.quickAddInput.CharLimit = 256
	m.quickAddInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.xpBar = progressbar.New(progressbar.WithDefaultGradient())

	m.reloadSpinner = spinner.New()
	m.reloadSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.challengeViewport = viewport.New(54, 10)
}

// refreshAll re-derives every panel from the engine's snapshot. It
// runs after each mutation and after a store reload.
func (m *Model) refreshAll() {
	if m.Engine == nil {
		return
	}
	day := m.Engine.GetDay(m.TodayDate)
	m.Today.Items = progress.DisplayOrder(day)
	m.Today.Completed = day.Completed
	if m.Today.Cursor >= len(m.Today.Items) {
		m.Today.Cursor = len(m.Today.Items) - 1
	}
	if m.Today.Cursor < 0 {
		m.Today.Cursor = 0
	}

	m.Upcoming.Items = m.Engine.UpcomingEvents(m.TodayDate)
	if m.Upcoming.Cursor >= len(m.Upcoming.Items) {
		m.Upcoming.Cursor = len(m.Upcoming.Items) - 1
	}
	if m.Upcoming.Cursor < 0 {
		m.Upcoming.Cursor = 0
	}

	m.Heatmap = m.Engine.HeatmapCells(m.TodayDate, m.HeatmapWindow)
	m.Stats = m.Engine.Stats(m.TodayDate)
	m.State = m.Engine.State()
}

// dispatchEvents routes engine events to the status bar and the
// desktop notifier. Dispatch is best-effort; a denied or failing
// notifier never affects the state mutation that produced the events.
func (m *Model) dispatchEvents(events []progress.Event) {
	for _, ev := range events {
		m.notify("Daily Tracker", ev.Message(), "info")
		m.Status = StatusBar{Text: ev.Message(), IsError: false}
	}
}

func (m *Model) notify(title, body, level string) {
	if body == "" {
		return
	}
	n := Notification{Title: title, Body: body, Level: level, At: m.now().UTC()}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		_ = m.notifier.Send(n)
	}
}

func isKnownView(v View) bool {
	switch v {
	case ViewToday, ViewUpcoming, ViewProgress:
		return true
	default:
		return false
	}
}
