package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"crimemap/internal/predict"
	"crimemap/internal/risk"
)

const (
	fieldLocation = iota
	fieldState
	fieldCrimeType
	fieldTimeframe
	fieldCount
)

var fieldLabels = [fieldCount]string{"District", "State", "Crime type", "Timeframe"}

// predictForm is the prediction panel: four inputs and the last answer.
type predictForm struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	pending bool
	result  *predict.Prediction
	err     string
}

func newPredictForm() predictForm {
	var f predictForm
	suggestions := [fieldCount][]string{
		predict.Districts(),
		predict.States(),
		predict.CrimeTypes,
		predict.Timeframes,
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = strings.ToLower(fieldLabels[i])
		ti.CharLimit = 64
		ti.Width = 24
		ti.ShowSuggestions = true
		ti.SetSuggestions(suggestions[i])
		f.inputs[i] = ti
	}
	return f
}

func (f *predictForm) focusField(i int) tea.Cmd {
	f.focus = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == f.focus {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

func (f *predictForm) blur() {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
}

func (f predictForm) request() predict.Request {
	v := func(i int) string { return strings.TrimSpace(f.inputs[i].Value()) }
	return predict.Request{
		Location:  v(fieldLocation),
		State:     v(fieldState),
		CrimeType: v(fieldCrimeType),
		Timeframe: v(fieldTimeframe),
	}
}

// autofillState sets the state field from a known district.
func (f *predictForm) autofillState() {
	if s, ok := predict.StateForDistrict(strings.TrimSpace(f.inputs[fieldLocation].Value())); ok {
		f.inputs[fieldState].SetValue(s)
	}
}

type predictionMsg struct {
	req    predict.Request
	result *predict.Prediction
	err    error
}

func predictCmd(c predict.Client, timeout time.Duration, req predict.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		p, err := c.Predict(ctx, req)
		return predictionMsg{req: req, result: p, err: err}
	}
}

func (m *Model) openPredict() tea.Cmd {
	m.showPredict = true
	m.status = "prediction form"
	return m.form.focusField(m.form.focus)
}

func (m *Model) closePredict() {
	m.showPredict = false
	m.form.blur()
	m.status = "view mode"
}

// submitPredict validates the form and starts the request.
func (m *Model) submitPredict() tea.Cmd {
	if m.form.pending {
		return nil
	}
	req := m.form.request()
	if err := req.Validate(); err != nil {
		m.form.err = err.Error()
		return nil
	}
	if m.predictor == nil {
		m.form.err = "prediction service not configured"
		return nil
	}
	m.form.pending, m.form.err = true, ""
	m.log.Info("prediction requested",
		zap.String("location", req.Location),
		zap.String("state", req.State),
		zap.String("crime_type", req.CrimeType),
		zap.String("timeframe", req.Timeframe),
	)
	return predictCmd(m.predictor, m.predictTimeout, req)
}

func (m *Model) handlePrediction(msg predictionMsg) {
	m.form.pending = false
	if msg.err != nil {
		m.log.Warn("prediction failed", zap.Error(msg.err))
		m.form.err = msg.err.Error()
		m.form.result = nil
		return
	}
	m.form.err = ""
	m.form.result = msg.result
	m.status = fmt.Sprintf("prediction for %s ready", msg.req.Location)
}

func (m *Model) updatePredict(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closePredict()
		m.reproject()
		return nil
	case "tab":
		// tab completes a pending suggestion before it moves focus
		in := m.form.inputs[m.form.focus]
		if s := in.CurrentSuggestion(); s == "" || s == in.Value() {
			return m.form.focusField(m.form.focus + 1)
		}
	case "shift+tab":
		return m.form.focusField(m.form.focus - 1)
	case "enter":
		return m.submitPredict()
	}
	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	if m.form.focus == fieldLocation {
		m.form.autofillState()
	}
	return cmd
}

func (f predictForm) View(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Crime Prediction"))
	b.WriteString("\n\n")
	for i, in := range f.inputs {
		label := dimStyle.Render(fieldLabels[i])
		if i == f.focus && in.Focused() {
			label = titleStyle.Render(fieldLabels[i])
		}
		b.WriteString(label + "\n" + in.View() + "\n")
	}
	if f.pending {
		b.WriteString("\n" + dimStyle.Render("predicting…"))
	}
	if f.err != "" {
		b.WriteString("\n" + errorStyle.Width(width).Render(f.err))
	}
	if p := f.result; p != nil {
		b.WriteString("\n" + predictionView(*p))
	}
	return b.String()
}

func predictionView(p predict.Prediction) string {
	tier := risk.Classify(p.RiskLevel)
	lines := []string{
		"Risk Level: " + tierStyle(tier).Bold(true).Render(fmt.Sprintf("%.2f (%s)", p.RiskLevel, tier.Label())),
		"",
		dimStyle.Render("Crime breakdown"),
	}
	for _, c := range p.CrimeBreakdown {
		lines = append(lines, fmt.Sprintf("  %-10s %5.1f%%", c.Type, c.Percentage))
	}
	tp := p.TimePattern
	lines = append(lines, "", dimStyle.Render("Time pattern"),
		fmt.Sprintf("  morning %4.1f%%  afternoon %4.1f%%", tp.Morning, tp.Afternoon),
		fmt.Sprintf("  evening %4.1f%%  night     %4.1f%%", tp.Evening, tp.Night),
	)
	if len(p.SocioeconomicFactors) > 0 {
		lines = append(lines, "", dimStyle.Render("Socioeconomic factors"))
		for _, f := range p.SocioeconomicFactors {
			lines = append(lines, fmt.Sprintf("  %-18s %5.1f", f.Factor, f.Impact))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
