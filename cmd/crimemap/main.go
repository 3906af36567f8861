package main

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"crimemap/internal/config"
	"crimemap/internal/predict"
	"crimemap/internal/risk"
	"crimemap/internal/tui"
)

const defaultLogFile = "crimemap.log"

var (
	v   = config.New()
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "crimemap [asset]",
	Short: "Interactive crime risk map in the terminal",
	Long:  "Renders a region map asset coloured by crime risk tier, with hover tooltips, region selection and a prediction panel.",
	Args:  cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(v)
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c

		// the terminal belongs to the UI
		if cfg.Log.File == "" {
			cfg.Log.File = defaultLogFile
		}
		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	RunE: run,
}

func init() {
	f := rootCmd.Flags()
	f.String("asset", "", "map asset to load (GeoJSON, WKT, KML or shapefile)")
	f.String("dataset", "", "risk dataset file (CSV or YAML); built-in table when empty")
	f.StringSlice("label-attr", nil, "feature attributes tried for region labels")
	f.Int("tooltip-offset", 4, "rows between a region's top edge and its tooltip")
	f.Bool("strict-hover", false, "clear the tooltip only when leaving the hovered region")
	f.String("predict-url", "", "prediction service base URL")
	f.String("log-level", "", "log level")
	f.String("log-file", "", "log file")

	for key, name := range map[string]string{
		"map.asset":           "asset",
		"map.dataset":         "dataset",
		"map.label_attribute": "label-attr",
		"map.tooltip_offset":  "tooltip-offset",
		"map.strict_hover":    "strict-hover",
		"predict.base_url":    "predict-url",
		"log.level":           "log-level",
		"log.file":            "log-file",
	} {
		_ = v.BindPFlag(key, f.Lookup(name))
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := zap.L()
	assetPath := cfg.Map.Asset
	if len(args) == 1 {
		assetPath = args[0]
	}

	ds := risk.Default()
	if cfg.Map.Dataset != "" {
		loaded, err := risk.LoadDataset(cfg.Map.Dataset)
		if err != nil {
			return eris.Wrap(err, "load dataset")
		}
		ds = loaded
	}
	log.Debug("dataset loaded", zap.Strings("regions", ds.Names()))
	log.Info("starting map view",
		zap.String("asset", assetPath),
		zap.Int("regions", ds.Len()),
		zap.String("predict_url", cfg.Predict.BaseURL),
	)

	timeout := time.Duration(cfg.Predict.TimeoutSecs) * time.Second
	m := tui.New(tui.Options{
		AssetPath:      assetPath,
		LabelAttrs:     cfg.Map.LabelAttribute,
		Dataset:        ds,
		TooltipOffset:  cfg.Map.TooltipOffset,
		StrictHover:    cfg.Map.StrictHover,
		Predictor:      predict.NewClient(cfg.Predict.BaseURL, predict.WithTimeout(timeout)),
		PredictTimeout: timeout,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		return eris.Wrap(err, "run map view")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
