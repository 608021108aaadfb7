package quizui

import (
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"knowit/internal/config"
	"knowit/internal/quiz"
	"knowit/internal/stopwatch"
)

// Finish describes a completed attempt. It is passed to Options.OnFinish
// each time the model enters the results screen.
type Finish struct {
	QuizPath  string
	Kind      quiz.Kind
	Shuffled  bool
	Questions []quiz.Question
	Results   quiz.Results
	Elapsed   time.Duration
}

// newFinish snapshots a session so later restarts do not alter it.
func newFinish(quizPath string, session *quiz.Session, results quiz.Results, elapsed time.Duration) Finish {
	return Finish{
		QuizPath:  quizPath,
		Kind:      session.Kind(),
		Shuffled:  session.Shuffled(),
		Questions: session.Questions(),
		Results:   results,
		Elapsed:   elapsed,
	}
}

// NewFinish snapshots a finished session for an OnFinish hook.
func NewFinish(quizPath string, session *quiz.Session, elapsed time.Duration) Finish {
	return newFinish(quizPath, session, session.Results(), elapsed)
}

// Options configures the quiz UI model.
type Options struct {
	Config     config.UserConfig
	SaveConfig func(config.UserConfig) error
	Load       func(path string) (*quiz.Session, error)

	// Session and QuizPath open the model on the summary screen.
	Session  *quiz.Session
	QuizPath string

	AllowBack bool
	Shuffle   bool

	OnFinish     func(Finish)
	Clock        stopwatch.Clock
	Logf         func(format string, args ...any)
	NoColor      bool
	TickInterval time.Duration
}

// Model is the Bubble Tea model driving a quiz through its screens.
type Model struct {
	screen Screen
	status string

	cfg      config.UserConfig
	save     func(config.UserConfig) error
	load     func(path string) (*quiz.Session, error)
	onFinish func(Finish)
	logf     func(format string, args ...any)
	clock    stopwatch.Clock

	session   *quiz.Session
	quizPath  string
	allowBack bool
	shuffle   bool
	watch     *stopwatch.Stopwatch
	finished  bool

	answer         textinput.Model
	folder         textinput.Model
	settingsCursor int
	files          []fileEntry
	fileCursor     int
	optionCursor   int
	incorrect      table.Model
	reviewIndex    int

	tickInterval time.Duration
	noColor      bool
	quitting     bool
}

// NewModel constructs the quiz UI model.
func NewModel(opts Options) Model {
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = time.Second
	}
	clock := opts.Clock
	if clock == nil {
		clock = stopwatch.SystemClock
	}
	load := opts.Load
	if load == nil {
		load = func(path string) (*quiz.Session, error) {
			return quiz.LoadFile(path, quiz.Options{})
		}
	}
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	cfg := opts.Config
	cfg.FileHistory = slices.Clone(cfg.FileHistory)

	answer := textinput.New()
	answer.Placeholder = "Type your answer"
	answer.CharLimit = 512
	answer.Width = 60
	folder := textinput.New()
	folder.Placeholder = config.DefaultQuizFolder
	folder.Width = 60

	incorrect := table.New(
		table.WithColumns(incorrectColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(8),
	)
	incorrect.SetStyles(tableStyles(opts.NoColor))

	m := Model{
		screen:       ScreenHome,
		cfg:          cfg,
		save:         opts.SaveConfig,
		load:         load,
		onFinish:     opts.OnFinish,
		logf:         logf,
		clock:        clock,
		session:      opts.Session,
		quizPath:     opts.QuizPath,
		allowBack:    opts.AllowBack,
		shuffle:      opts.Shuffle,
		watch:        stopwatch.New(clock),
		answer:       answer,
		folder:       folder,
		incorrect:    incorrect,
		tickInterval: tickInterval,
		noColor:      opts.NoColor,
	}
	if m.session != nil {
		m.screen = ScreenSummary
	}
	return m
}

// Init starts the redraw ticker.
func (m Model) Init() tea.Cmd {
	return tick(m.tickInterval)
}

// Update routes key presses to the active screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.incorrect.SetWidth(typed.Width)
		m.incorrect.SetHeight(max(typed.Height-10, 3))
		m.incorrect.SetColumns(columnsForWidth(typed.Width))
		return m, nil
	case tickMsg:
		return m, tick(m.tickInterval)
	case tea.KeyMsg:
		key := typed.String()
		if key == "ctrl+c" {
			return m.quit()
		}
		if key == "esc" && m.screen != ScreenHome && m.screen != ScreenReview {
			return m.goHome(), nil
		}
		switch m.screen {
		case ScreenHome:
			return m.updateHome(key)
		case ScreenSettings:
			return m.updateSettings(typed)
		case ScreenFileSelection:
			return m.updateFileSelection(key)
		case ScreenSummary:
			return m.updateSummary(key)
		case ScreenInProgress:
			return m.updateInProgress(typed)
		case ScreenResults:
			return m.updateResults(typed)
		case ScreenReview:
			return m.updateReview(key)
		}
	}
	return m.updateInputs(msg)
}

// Screen reports the active screen.
func (m Model) Screen() Screen { return m.screen }

// Session returns the loaded session, or nil when none is loaded.
func (m Model) Session() *quiz.Session { return m.session }

// QuizPath returns the path of the loaded quiz.
func (m Model) QuizPath() string { return m.quizPath }

// Config returns the current user configuration.
func (m Model) Config() config.UserConfig { return m.cfg }

// Status returns the last status or error message shown to the user.
func (m Model) Status() string { return m.status }

// Elapsed returns the attempt's elapsed time, excluding pauses.
func (m Model) Elapsed() time.Duration { return m.watch.Elapsed() }

// Quitting reports whether the user asked to exit.
func (m Model) Quitting() bool { return m.quitting }

type tickMsg time.Time

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.watch.Pause()
	return m, tea.Quit
}

// goHome leaves the current screen for Home, discarding any attempt.
func (m Model) goHome() Model {
	if m.screen == ScreenSettings {
		m = m.commitFolder()
	}
	if m.screen == ScreenInProgress || m.screen == ScreenResults {
		m.session = nil
		m.quizPath = ""
	}
	m.watch.Reset()
	m.answer.Blur()
	m.folder.Blur()
	m.screen = ScreenHome
	m.status = ""
	return m
}

func (m Model) updateHome(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter":
		return m.openFileSelection(), nil
	case "s":
		m.screen = ScreenSettings
		m.status = ""
		m.settingsCursor = 0
		m.folder.SetValue(m.cfg.QuizFolder)
		m.folder.CursorEnd()
		cmd := m.folder.Focus()
		return m, cmd
	case "q":
		return m.quit()
	}
	return m, nil
}

const settingsRows = 3

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "shift+tab":
		m.settingsCursor = (m.settingsCursor + settingsRows - 1) % settingsRows
		return m.focusSettings()
	case "down", "tab":
		m.settingsCursor = (m.settingsCursor + 1) % settingsRows
		return m.focusSettings()
	case "enter", " ":
		switch m.settingsCursor {
		case 0:
			if msg.String() == "enter" {
				m = m.commitFolder()
				return m, nil
			}
		case 1:
			m.allowBack = !m.allowBack
			return m, nil
		case 2:
			m.shuffle = !m.shuffle
			return m, nil
		}
	}
	if m.settingsCursor != 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.folder, cmd = m.folder.Update(msg)
	return m, cmd
}

func (m Model) focusSettings() (tea.Model, tea.Cmd) {
	if m.settingsCursor == 0 {
		cmd := m.folder.Focus()
		return m, cmd
	}
	m.folder.Blur()
	return m, nil
}

// commitFolder stores the edited quiz folder and saves the config when it
// changed.
func (m Model) commitFolder() Model {
	folder := normalizeFolder(m.folder.Value())
	if folder == m.cfg.QuizFolder {
		return m
	}
	m.cfg.QuizFolder = folder
	m.folder.SetValue(folder)
	m.logf("quiz folder set to %s", folder)
	m = m.saveConfig()
	if m.status == "" {
		m.status = "Quiz folder saved."
	}
	return m
}

func (m Model) saveConfig() Model {
	if m.save == nil {
		return m
	}
	if err := m.save(m.cfg); err != nil {
		m.status = fmt.Sprintf("Failed to save config: %v", err)
		m.logf("save config: %v", err)
	}
	return m
}

func (m Model) openFileSelection() Model {
	files, err := listQuizFiles(m.cfg.QuizFolder, m.cfg.RecentPaths())
	m.files = files
	m.fileCursor = 0
	m.screen = ScreenFileSelection
	m.status = ""
	if err != nil {
		m.status = fmt.Sprintf("Failed to read quiz folder: %v", err)
		m.logf("list quiz folder %s: %v", m.cfg.QuizFolder, err)
	}
	return m
}

func (m Model) updateFileSelection(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.fileCursor > 0 {
			m.fileCursor--
		}
	case "down", "j":
		if m.fileCursor < len(m.files)-1 {
			m.fileCursor++
		}
	case "enter":
		if m.fileCursor < len(m.files) {
			return m.loadFile(m.files[m.fileCursor].Path), nil
		}
	}
	return m, nil
}

// loadFile loads path; success records it in the history and moves to the
// summary, failure stays on file selection with the error shown.
func (m Model) loadFile(path string) Model {
	session, err := m.load(path)
	if err != nil {
		m.status = fmt.Sprintf("Failed to load %s: %v", path, err)
		m.logf("load %s: %v", path, err)
		return m
	}
	recorded := canonicalPath(path)
	m.session = session
	m.quizPath = recorded
	m.status = ""
	m.logf("loaded %s: %d questions (%s)", recorded, session.Len(), session.Kind())
	m.cfg.FileHistory = slices.Clone(m.cfg.FileHistory)
	m.cfg.RecordFile(recorded, m.clock.Now())
	m = m.saveConfig()
	m.screen = ScreenSummary
	return m
}

func (m Model) updateSummary(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "b":
		m.allowBack = !m.allowBack
	case "s":
		m.shuffle = !m.shuffle
	case "enter":
		shuffle := m.shuffle && m.session != nil && !m.session.Shuffled()
		return m.startAttempt(shuffle)
	}
	return m, nil
}

// restartAttempt clears the finished attempt and returns to the summary,
// where enter starts the next one.
func (m Model) restartAttempt(shuffle bool) (tea.Model, tea.Cmd) {
	m.session.Restart(shuffle)
	m.shuffle = shuffle
	m.finished = false
	m.status = ""
	m.watch.Reset()
	m.screen = ScreenSummary
	return m, nil
}

// startAttempt restarts the session and the stopwatch and shows the first
// question.
func (m Model) startAttempt(shuffle bool) (tea.Model, tea.Cmd) {
	if m.session == nil || m.session.Len() == 0 {
		return m, nil
	}
	m.session.Restart(shuffle)
	m.finished = false
	m.status = ""
	m.watch.Reset()
	m.watch.Start()
	m.screen = ScreenInProgress
	return m.prepareQuestion()
}

// prepareQuestion loads the current question's saved answer into the input
// widgets.
func (m Model) prepareQuestion() (tea.Model, tea.Cmd) {
	question, ok := m.session.CurrentQuestion()
	if !ok {
		return m, nil
	}
	if question.IsMultipleChoice() {
		m.answer.Blur()
		m.optionCursor = 0
		if question.Answered() {
			if idx := slices.Index(question.Options, question.AnswerText()); idx >= 0 {
				m.optionCursor = idx
			}
		}
		return m, nil
	}
	m.answer.SetValue(question.AnswerText())
	m.answer.CursorEnd()
	cmd := m.answer.Focus()
	return m, cmd
}

func (m Model) updateInProgress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+t" {
		m.watch.Toggle()
		return m, nil
	}
	if m.watch.Paused() {
		return m, nil
	}
	question, ok := m.session.CurrentQuestion()
	if !ok {
		return m, nil
	}
	switch key {
	case "ctrl+p":
		if m.allowBack && m.session.Previous() {
			return m.prepareQuestion()
		}
		return m, nil
	case "enter":
		return m.submit(question)
	}
	if !question.IsMultipleChoice() {
		var cmd tea.Cmd
		m.answer, cmd = m.answer.Update(msg)
		return m, cmd
	}
	switch key {
	case "up", "k":
		if m.optionCursor > 0 {
			m.optionCursor--
		}
	case "down", "j":
		if m.optionCursor < len(question.Options)-1 {
			m.optionCursor++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if idx := int(key[0] - '1'); idx < len(question.Options) {
				m.optionCursor = idx
			}
		}
	}
	return m, nil
}

// submit records a non-empty answer and moves to the next question, or to
// the results after the last one.
func (m Model) submit(question quiz.Question) (tea.Model, tea.Cmd) {
	answer := ""
	if question.IsMultipleChoice() {
		if m.optionCursor < len(question.Options) {
			answer = question.Options[m.optionCursor]
		}
	} else {
		answer = m.answer.Value()
	}
	if quiz.NormalizeAnswerText(answer) == "" {
		return m, nil
	}
	m.session.SubmitAnswer(answer)
	if m.session.IsLast() {
		return m.finish(), nil
	}
	m.session.Next()
	return m.prepareQuestion()
}

// finish stops the clock, shows the results and fires the finish hook once
// per attempt.
func (m Model) finish() Model {
	m.watch.Pause()
	m.answer.Blur()
	m.screen = ScreenResults
	results := m.session.Results()
	m.incorrect.SetRows(incorrectRows(m.session, results))
	m.incorrect.SetCursor(0)
	if !m.finished {
		m.finished = true
		m.logf("finished %s: %d/%d correct in %s", m.quizPath, results.Correct, results.Total, stopwatch.Format(m.watch.Elapsed()))
		if m.onFinish != nil {
			m.onFinish(newFinish(m.quizPath, m.session, results, m.watch.Elapsed()))
		}
	}
	return m
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		incorrect := m.session.Results().Incorrect
		if row := m.incorrect.Cursor(); row >= 0 && row < len(incorrect) {
			m.reviewIndex = incorrect[row]
			m.screen = ScreenReview
		}
		return m, nil
	case "r":
		return m.restartAttempt(false)
	case "s":
		return m.restartAttempt(true)
	case "f":
		m.session = nil
		m.quizPath = ""
		m.watch.Reset()
		return m.openFileSelection(), nil
	case "q":
		return m.quit()
	}
	var cmd tea.Cmd
	m.incorrect, cmd = m.incorrect.Update(msg)
	return m, cmd
}

func (m Model) updateReview(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "enter":
		m.screen = ScreenResults
	}
	return m, nil
}

// updateInputs forwards non-key messages such as cursor blinks to the
// focused text input.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case ScreenInProgress:
		m.answer, cmd = m.answer.Update(msg)
	case ScreenSettings:
		m.folder, cmd = m.folder.Update(msg)
	}
	return m, cmd
}

func normalizeFolder(value string) string {
	cfg := config.UserConfig{QuizFolder: value}
	config.Normalize(&cfg)
	return cfg.QuizFolder
}
