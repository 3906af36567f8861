package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"crimemap/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !geom.Supported(name) {
			continue
		}
		items = append(items, fileItem{title: name, desc: strings.ToLower(filepath.Ext(name)), path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no map assets in " + m.cwd
	}
}

// assetLoadedMsg carries the result of a load started as generation gen.
type assetLoadedMsg struct {
	gen   int
	path  string
	asset *geom.Asset
	err   error
}

func loadAssetCmd(gen int, path string, labelAttrs []string) tea.Cmd {
	return func() tea.Msg {
		a, err := geom.Load(path, labelAttrs)
		return assetLoadedMsg{gen: gen, path: path, asset: a, err: err}
	}
}

// startLoad supersedes any load in flight.
func (m *Model) startLoad(path string) tea.Cmd {
	m.loadGen++
	m.loading = true
	m.assetPath = path
	m.status = "loading " + filepath.Base(path) + "…"
	return loadAssetCmd(m.loadGen, path, m.labelAttrs)
}

// handleLoaded applies a load result unless a newer load has started since.
func (m *Model) handleLoaded(msg assetLoadedMsg) {
	if msg.gen != m.loadGen {
		m.log.Debug("discarding stale asset load", zap.String("path", msg.path), zap.Int("gen", msg.gen))
		return
	}
	m.loading = false
	if msg.err != nil {
		m.log.Error("asset load failed", zap.String("path", msg.path), zap.Error(msg.err))
		m.unmount()
		m.status = "load error: " + msg.err.Error()
		return
	}
	m.mount(msg.asset)
}

// mount replaces the canvas with one for a and binds it.
func (m *Model) mount(a *geom.Asset) {
	m.unmount()
	m.canvas = newCanvas(a)
	m.zoom, m.offsetX, m.offsetY = 1.0, 0, 0
	bd := m.binder.Bind(m.canvas)
	m.reproject()
	m.log.Info("asset mounted",
		zap.String("asset", a.Name),
		zap.Int("regions", len(a.Regions)),
		zap.Int("bound", bd.Bound()),
		zap.Int("inert", bd.Inert()),
	)
	if bd.Bound() == 0 {
		m.log.Warn("no asset region matches the dataset",
			zap.String("asset", a.Name),
			zap.Strings("labels", a.Labels()),
		)
	}
	m.status = fmt.Sprintf("loaded: %s  regions=%d tracked=%d", a.Name, len(a.Regions), bd.Bound())
	if m.showAttrs {
		m.refreshAttrs()
	}
}

// unmount releases the binding and detaches the canvas.
func (m *Model) unmount() {
	if m.canvas == nil {
		return
	}
	m.binder.Unbind()
	m.canvas.unmount()
	m.canvas = nil
}

// pasteAsset mounts regions typed into the paste area.
func (m *Model) pasteAsset(text string) {
	a, err := geom.ParseRegionsWKT(text)
	if err != nil {
		m.status = "wkt error: " + err.Error()
		return
	}
	if len(a.Regions) == 0 {
		m.status = "paste: no regions"
		return
	}
	a.Name = "<pasted>"
	// a pending file load must not replace the pasted asset
	m.loadGen++
	m.loading = false
	m.assetPath = ""
	m.mount(a)
}
