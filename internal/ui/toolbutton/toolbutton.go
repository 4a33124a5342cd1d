// Package toolbutton provides the interactive toolbar control: push
// buttons whose click handlers may run asynchronous tasks, and radio
// items that report the pointer device that selected them.
package toolbutton

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/llehouerou/drawbar/internal/action"
)

// ChatTestID marks the radio whose change opens the chat menu.
const ChatTestID = "toolbar-chat"

// chatActionName is the registry name of the action behind ChatTestID.
const chatActionName = "chatMenu"

// DefaultFrame is the delay before a released pointer type is forgotten.
const DefaultFrame = 16 * time.Millisecond

// Executor invokes registered actions.
type Executor interface {
	ExecuteAction(ref action.Ref, source action.Source, formData any) error
}

// Props configure a control. The zero value is an enabled, visible Button.
type Props struct {
	Kind   Kind
	ID     string
	TestID string
	// Name groups radios.
	Name      string
	Label     string
	AriaLabel string
	Title     string
	Icon      string

	KeyBindingLabel  string
	AriaKeyShortcuts string
	ShowAriaLabel    bool

	Size      Size
	Hidden    bool
	Invisible bool
	Selected  bool
	Disabled  bool
	IsLoading bool
	Checked   bool

	OnClick       ClickFunc
	OnChange      func(ChangeEvent) tea.Cmd
	OnPointerDown func(PointerEvent) tea.Cmd
}

// Option configures a Model.
type Option func(*Model)

// WithExecutor sets the action executor used by the chat radio.
func WithExecutor(e Executor) Option {
	return func(m *Model) { m.executor = e }
}

// WithFrame sets the pointer-reset delay.
func WithFrame(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.frame = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// Model is a single toolbar control.
type Model struct {
	props      Props
	instanceID string

	mounted bool
	loading bool
	token   uint64
	cancel  context.CancelFunc

	lastPointerType PointerType
	pointerSeq      uint64

	spinner  spinner.Model
	executor Executor
	frame    time.Duration
	logger   *slog.Logger
	focused  bool
}

// New creates a mounted control.
func New(props Props, opts ...Option) *Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	m := &Model{
		props:      props,
		instanceID: uuid.NewString(),
		mounted:    true,
		spinner:    s,
		frame:      DefaultFrame,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With("component", Source, "control", props.ID)
	return m
}

// Init starts the spinner when the control is created busy.
func (m *Model) Init() tea.Cmd {
	if m.Busy() {
		return m.spinner.Tick
	}
	return nil
}

// Props returns the control props.
func (m *Model) Props() Props { return m.props }

// SetProps replaces the props. Internal state is kept.
func (m *Model) SetProps(p Props) { m.props = p }

// ID returns the control id.
func (m *Model) ID() string { return m.props.ID }

// InstanceID returns the id settle messages are addressed to.
func (m *Model) InstanceID() string { return m.instanceID }

// Loading reports whether an async click is in flight.
func (m *Model) Loading() bool { return m.loading }

// Busy reports whether the control shows a spinner.
func (m *Model) Busy() bool { return m.loading || m.props.IsLoading }

// Disabled reports whether the control ignores activation.
func (m *Model) Disabled() bool {
	return m.loading || m.props.IsLoading || m.props.Disabled
}

// Visible reports whether the control renders.
func (m *Model) Visible() bool { return !m.props.Hidden && !m.props.Invisible }

// Mounted reports whether the control is still part of the tree.
func (m *Model) Mounted() bool { return m.mounted }

// LastPointerType returns the device of the last pointer press, if any.
func (m *Model) LastPointerType() PointerType { return m.lastPointerType }

// SetFocused sets keyboard focus.
func (m *Model) SetFocused(f bool) { m.focused = f }

// IsFocused returns keyboard focus.
func (m *Model) IsFocused() bool { return m.focused }

// Unmount detaches the control. Later settle messages leave it untouched.
func (m *Model) Unmount() {
	m.mounted = false
}

// Cancel aborts the in-flight task, if any, and stops loading.
func (m *Model) Cancel() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.loading = false
}

// Activate triggers the control from the keyboard.
func (m *Model) Activate() tea.Cmd {
	if m.props.Kind == Radio {
		return m.Change()
	}
	return m.Click(PointerNone)
}

// Click runs the push handler.
func (m *Model) Click(pt PointerType) tea.Cmd {
	if !m.props.Kind.pushes() || m.Disabled() || m.props.OnClick == nil {
		return nil
	}
	task, err := m.props.OnClick(ClickEvent{PointerType: pt})
	if err != nil {
		return outcome(m.props.ID, nil, err, m.logger)
	}
	if task == nil {
		return nil
	}
	return m.start(task)
}

func (m *Model) start(task Task) tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.loading = true
	m.token++
	m.cancel = cancel

	settled := SettledMsg{InstanceID: m.instanceID, ControlID: m.props.ID, Token: m.token}
	run := func() tea.Msg {
		defer cancel()
		settled.Msg, settled.Err = task(ctx)
		return settled
	}
	return tea.Batch(run, m.spinner.Tick)
}

// PointerDown records the pressing device on an enabled radio.
func (m *Model) PointerDown(pt PointerType) tea.Cmd {
	if m.props.Kind != Radio || m.Disabled() {
		return nil
	}
	m.lastPointerType = pt
	m.pointerSeq++
	if m.props.OnPointerDown == nil {
		return nil
	}
	return m.props.OnPointerDown(PointerEvent{PointerType: pt})
}

// PointerUp schedules the recorded device to be forgotten on the next frame.
func (m *Model) PointerUp() tea.Cmd {
	if m.props.Kind != Radio {
		return nil
	}
	msg := pointerResetMsg{instanceID: m.instanceID, seq: m.pointerSeq}
	return tea.Tick(m.frame, func(time.Time) tea.Msg { return msg })
}

// Change selects a radio.
func (m *Model) Change() tea.Cmd {
	if m.props.Kind != Radio || m.Disabled() {
		return nil
	}
	if m.props.TestID == ChatTestID {
		return m.openChat()
	}
	if m.props.OnChange == nil {
		return nil
	}
	return m.props.OnChange(ChangeEvent{PointerType: m.lastPointerType})
}

// openChat routes the chat radio to the chat menu action instead of its
// change handler.
func (m *Model) openChat() tea.Cmd {
	if m.executor == nil {
		m.logger.Debug("chat radio has no executor")
		return nil
	}
	err := m.executor.ExecuteAction(action.ByName(chatActionName), action.SourceUI, nil)
	return outcome(m.props.ID, nil, err, m.logger)
}

// Update handles messages addressed to this control.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SettledMsg:
		if msg.InstanceID != m.instanceID {
			return nil
		}
		if m.mounted && msg.Token == m.token {
			m.loading = false
			m.cancel = nil
		}
		return Settle(msg, m.logger)

	case pointerResetMsg:
		if msg.instanceID == m.instanceID && msg.seq == m.pointerSeq {
			m.lastPointerType = PointerNone
		}
		return nil

	case spinner.TickMsg:
		if !m.Busy() || msg.ID != m.spinner.ID() {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	}
	return nil
}
