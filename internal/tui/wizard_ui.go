package tui

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mdcorpranks.dev/review-wizard/internal/guard"
	"mdcorpranks.dev/review-wizard/internal/review"
	"mdcorpranks.dev/review-wizard/internal/tui/components/header"
	"mdcorpranks.dev/review-wizard/internal/tui/components/loader"
	"mdcorpranks.dev/review-wizard/internal/tui/components/stars"
	"mdcorpranks.dev/review-wizard/internal/wizard"
)

// Fixed display strings
const (
	Heading     = "Benvenuto nel questionario di recensione"
	SubmitLabel = "Invia"
	FinalNote   = "Una volta inviata la valutazione per questa domanda, non è più possibile modificarla."
	RetryNote   = "Valutazione non inviata, riprova."
)

// LeaveConfirmer decides whether a quit request may end the session
type LeaveConfirmer interface {
	Confirm() bool
}

type initDoneMsg struct {
	err error
}

type submitDoneMsg struct {
	outcome wizard.Outcome
	err     error
}

type wizardStyles struct {
	card      lipgloss.Style
	progress  lipgloss.Style
	heading   lipgloss.Style
	title     lipgloss.Style
	subtitle  lipgloss.Style
	button    lipgloss.Style
	disabled  lipgloss.Style
	note      lipgloss.Style
	help      lipgloss.Style
	warning   lipgloss.Style
	errorText lipgloss.Style
	done      lipgloss.Style
}

func defaultWizardStyles() wizardStyles {
	return wizardStyles{
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 3),
		progress:  lipgloss.NewStyle().Foreground(ColorOnAccent).Background(ColorAccent).Padding(0, 1).Bold(true),
		heading:   lipgloss.NewStyle().Bold(true),
		title:     lipgloss.NewStyle().Foreground(ColorTitle).Bold(true),
		subtitle:  lipgloss.NewStyle().Foreground(ColorText),
		button:    lipgloss.NewStyle().Foreground(ColorOnAccent).Background(ColorSuccess).Padding(0, 2).Bold(true),
		disabled:  lipgloss.NewStyle().Foreground(ColorDisabled).Background(ColorDisabledBg).Padding(0, 2),
		note:      lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
		help:      lipgloss.NewStyle().Foreground(ColorSubtle),
		warning:   lipgloss.NewStyle().Foreground(ColorWarning),
		errorText: lipgloss.NewStyle().Foreground(ColorError),
		done:      lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
	}
}

// WizardModel is the bubbletea model presenting a wizard.Controller
type WizardModel struct {
	ctx        context.Context
	controller *wizard.Controller
	leave      LeaveConfirmer

	loader     loader.Model
	initErr    error
	submitting bool
	warning    string
	notice     string
	quitting   bool
	width      int

	styles       wizardStyles
	headerStyles header.Styles
	starStyles   stars.Styles
}

// NewWizardModel creates the model. leave may be nil, in which case quitting never asks.
func NewWizardModel(ctx context.Context, controller *wizard.Controller, leave LeaveConfirmer) WizardModel {
	return WizardModel{
		ctx:          ctx,
		controller:   controller,
		leave:        leave,
		loader:       loader.New(),
		styles:       defaultWizardStyles(),
		headerStyles: header.DefaultStyles(),
		starStyles:   stars.DefaultStyles(),
	}
}

func (m WizardModel) Init() tea.Cmd {
	return tea.Batch(m.loader.Tick, m.initialize())
}

func (m WizardModel) initialize() tea.Cmd {
	return func() tea.Msg {
		return initDoneMsg{err: m.controller.Initialize(m.ctx)}
	}
}

func (m WizardModel) submit() tea.Cmd {
	return func() tea.Msg {
		outcome, err := m.controller.Submit(m.ctx)
		return submitDoneMsg{outcome: outcome, err: err}
	}
}

func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		snap := m.controller.Snapshot()
		if !snap.ShowLoader() && !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.loader, cmd = m.loader.Update(msg)
		return m, cmd

	case initDoneMsg:
		m.initErr = msg.err
		if m.controller.Destination().Terminal() {
			return m, tea.Quit
		}
		return m, nil

	case submitDoneMsg:
		m.submitting = false
		if m.controller.Destination().Terminal() {
			return m, tea.Quit
		}
		// Stranded sessions show no error, only the disabled submit control
		if msg.err != nil && msg.outcome != wizard.OutcomeStranded {
			m.notice = RetryNote
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m WizardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q", "esc":
		if m.leave == nil || m.leave.Confirm() {
			m.quitting = true
			return m, tea.Quit
		}
		m.warning = guard.LeaveWarning + " (premi di nuovo per uscire)"
		return m, nil
	}

	m.warning = ""
	if m.submitting {
		return m, nil
	}

	if key == "enter" || key == " " {
		if !m.controller.CanSubmit() {
			return m, nil
		}
		m.submitting = true
		m.notice = ""
		return m, tea.Batch(m.submit(), m.loader.Tick)
	}

	if rating, changed := stars.ForKey(key, m.controller.Rating()); changed {
		// refused outside StateActive, the key is then a no-op
		_ = m.controller.SetRating(rating)
	}
	return m, nil
}

func (m WizardModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.controller.Snapshot()
	if snap.Destination.Terminal() {
		return m.styles.done.Render(snap.Destination.Message()) + "\n"
	}

	var b strings.Builder
	b.WriteString(header.View(m.headerStyles, m.width))
	b.WriteString("\n\n")

	if snap.ShowLoader() {
		b.WriteString(m.loader.View())
		b.WriteString("\n")
		m.writeFooter(&b)
		return b.String()
	}

	var card strings.Builder
	card.WriteString(m.styles.progress.Render(fmt.Sprintf("%d/%d", snap.Number, snap.Total)))
	card.WriteString("\n\n")
	card.WriteString(m.styles.heading.Render(Heading))
	card.WriteString("\n\n")
	card.WriteString(m.styles.title.Render(snap.Question.Title))
	card.WriteString("\n")
	card.WriteString(m.styles.subtitle.Render(snap.Question.Subtitle))
	card.WriteString("\n\n")
	card.WriteString(stars.View(m.starStyles, snap.Rating))
	card.WriteString("    ")
	card.WriteString(m.submitButton(snap))
	card.WriteString("\n\n")
	card.WriteString(m.styles.note.Render(FinalNote))

	b.WriteString(m.styles.card.Render(card.String()))
	b.WriteString("\n")
	m.writeFooter(&b)
	return b.String()
}

// Err returns the error that stopped the initial load, if any
func (m WizardModel) Err() error {
	return m.initErr
}

func (m WizardModel) submitButton(snap wizard.Snapshot) string {
	switch {
	case m.submitting:
		return m.styles.disabled.Render(m.loader.Spinner.View() + " " + SubmitLabel)
	case snap.CanSubmit:
		return m.styles.button.Render(SubmitLabel)
	default:
		return m.styles.disabled.Render(SubmitLabel)
	}
}

func (m WizardModel) writeFooter(b *strings.Builder) {
	if m.notice != "" {
		b.WriteString(m.styles.errorText.Render(m.notice))
		b.WriteString("\n")
	}
	if m.warning != "" {
		b.WriteString(m.styles.warning.Render(m.warning))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.help.Render("1-5/←→: valuta | enter: invia | q: esci"))
	b.WriteString("\n")
}

// newWizardProgram builds the full-screen program. Signals are left to the
// unload guard: the first one warns and the second cancels ctx, which ends
// the program through tea.WithContext.
func newWizardProgram(ctx context.Context, m WizardModel, in io.Reader, out io.Writer, opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithoutSignalHandler(),
	}, opts...)
	return tea.NewProgram(m, opts...)
}

// wizardResult turns the final program model into the session result
func wizardResult(final tea.Model, controller *wizard.Controller) (review.Destination, error) {
	dest := controller.Destination()
	if dest.Terminal() {
		return dest, nil
	}
	if m, ok := final.(WizardModel); ok && m.Err() != nil {
		return review.DestinationNone, m.Err()
	}
	return dest, nil
}

// RunWizardTUI runs the full-screen wizard and returns the destination reached.
// A failed initial load is returned once the user leaves the program.
func RunWizardTUI(ctx context.Context, controller *wizard.Controller, leave LeaveConfirmer, splog *Splog) (review.Destination, error) {
	splog.SetQuiet(true)
	defer splog.SetQuiet(false)

	p := newWizardProgram(ctx, NewWizardModel(ctx, controller, leave), os.Stdin, os.Stdout, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil && !stderrors.Is(err, tea.ErrProgramKilled) {
		return review.DestinationNone, fmt.Errorf("failed to run wizard: %w", err)
	}
	return wizardResult(final, controller)
}
