package tui

import (
	"os"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"crimemap/internal/geom"
	"crimemap/internal/interact"
	"crimemap/internal/predict"
	"crimemap/internal/risk"
)

// Options configures the map view.
type Options struct {
	// AssetPath is loaded at start when set.
	AssetPath  string
	LabelAttrs []string
	// Dataset defaults to the built-in table.
	Dataset *risk.Dataset
	// TooltipOffset is how many rows above a region's top edge the tooltip starts.
	TooltipOffset int
	StrictHover   bool
	// Predictor backs the prediction panel; nil disables submission.
	Predictor      predict.Client
	PredictTimeout time.Duration
	// Dir is the asset explorer's directory; defaults to the working directory.
	Dir string
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// asset explorer
	cwd string
	l   list.Model

	// map
	state      *interact.State
	binder     *interact.Binder
	canvas     *canvas
	labelAttrs []string
	assetPath  string
	loadGen    int
	loading    bool

	tooltipOffset int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// dataset table
	showAttrs  bool
	attrByRisk bool
	tbl        table.Model

	// prediction panel
	showPredict    bool
	form           predictForm
	predictor      predict.Client
	predictTimeout time.Duration

	log *zap.Logger
}

func New(opts Options) Model {
	ds := opts.Dataset
	if ds == nil {
		ds = risk.Default()
	}
	attrs := opts.LabelAttrs
	if len(attrs) == 0 {
		attrs = geom.DefaultLabelAttrs
	}
	timeout := opts.PredictTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	log := zap.L().Named("tui")

	var binderOpts []interact.Option
	binderOpts = append(binderOpts, interact.WithLogger(log))
	if opts.StrictHover {
		binderOpts = append(binderOpts, interact.WithStrictHover())
	}
	state := interact.NewState()

	m := Model{
		helpVisible:    true,
		zoom:           1.0,
		status:         "crimemap ready",
		state:          state,
		binder:         interact.NewBinder(ds, state, binderOpts...),
		labelAttrs:     attrs,
		assetPath:      opts.AssetPath,
		tooltipOffset:  max(0, opts.TooltipOffset),
		predictor:      opts.Predictor,
		predictTimeout: timeout,
		log:            log,
	}
	m.cwd = opts.Dir
	if m.cwd == "" {
		m.cwd, _ = os.Getwd()
	}
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Map assets"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "One region per line: Name|POLYGON((...)). Ctrl+S to load; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.form = newPredictForm()
	m.refreshDir()
	if m.assetPath != "" {
		m.loadGen, m.loading = 1, true
	}
	return m
}

// Init starts loading the configured asset, if any.
func (m Model) Init() tea.Cmd {
	if m.assetPath == "" {
		return nil
	}
	return loadAssetCmd(m.loadGen, m.assetPath, m.labelAttrs)
}

// Selected is the selected region label, or "".
func (m Model) Selected() string { return m.state.Selected() }

// Status is the status-line message.
func (m Model) Status() string { return m.status }
