package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AnalysisConfig configures the Analysis Service and the transpiler
// registry it drives, loaded the way the teacher's LoadConfig loads
// Config: os.Getenv plus strconv plus a hard-coded fallback for each
// field, with an optional YAML file layered on top for the
// multi-field settings (per-target transpiler options) that don't fit
// a flat env var shape.
type AnalysisConfig struct {
	RunSemantic    bool
	RunOptimizer   bool
	FoldConstants  bool
	StrictFolding  bool
	JSONLDBaseURI  string
	LaTeXTitle     string
	LaTeXAuthor    string
	LaTeXMargins   bool
	JSONIndent     int
	JSONLocations  bool
}

// LoadAnalysisConfig loads AnalysisConfig from environment variables,
// first loading a .env file if present (godotenv, already a teacher
// dependency used by db/sqlite_integration_test.go) so local
// development and test fixtures can set these without exporting shell
// variables.
func LoadAnalysisConfig() *AnalysisConfig {
	_ = godotenv.Load()

	cfg := &AnalysisConfig{
		RunSemantic:   true,
		RunOptimizer:  false,
		FoldConstants: true,
		StrictFolding: false,
		JSONLDBaseURI: "https://yuho.dev/id/",
		LaTeXTitle:    "Yuho Statute Compendium",
		LaTeXAuthor:   "Generated by yuhoc",
		LaTeXMargins:  true,
		JSONIndent:    2,
		JSONLocations: false,
	}

	if v := os.Getenv("YUHO_RUN_SEMANTIC"); v != "" {
		cfg.RunSemantic = parseBool(v, cfg.RunSemantic)
	}
	if v := os.Getenv("YUHO_RUN_OPTIMIZER"); v != "" {
		cfg.RunOptimizer = parseBool(v, cfg.RunOptimizer)
	}
	if v := os.Getenv("YUHO_FOLD_CONSTANTS"); v != "" {
		cfg.FoldConstants = parseBool(v, cfg.FoldConstants)
	}
	if v := os.Getenv("YUHO_STRICT_FOLDING"); v != "" {
		cfg.StrictFolding = parseBool(v, cfg.StrictFolding)
	}
	if v := os.Getenv("YUHO_JSONLD_BASE_URI"); v != "" {
		cfg.JSONLDBaseURI = v
	}
	if v := os.Getenv("YUHO_LATEX_TITLE"); v != "" {
		cfg.LaTeXTitle = v
	}
	if v := os.Getenv("YUHO_LATEX_AUTHOR"); v != "" {
		cfg.LaTeXAuthor = v
	}
	if v := os.Getenv("YUHO_LATEX_MARGINS"); v != "" {
		cfg.LaTeXMargins = parseBool(v, cfg.LaTeXMargins)
	}
	if v := os.Getenv("YUHO_JSON_INDENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.JSONIndent = n
		}
	}
	if v := os.Getenv("YUHO_JSON_LOCATIONS"); v != "" {
		cfg.JSONLocations = parseBool(v, cfg.JSONLocations)
	}

	if path := os.Getenv("YUHO_CONFIG_FILE"); path != "" {
		_ = cfg.mergeYAMLFile(path)
	}

	return cfg
}

// yamlOverlay names only the fields a YAML file is expected to carry;
// keys absent from the file leave the env/default value untouched, while
// a key present with a zero value (e.g. `json_indent: 0`) overrides it.
type yamlOverlay struct {
	JSONLDBaseURI *string `yaml:"jsonld_base_uri"`
	LaTeXTitle    *string `yaml:"latex_title"`
	LaTeXAuthor   *string `yaml:"latex_author"`
	LaTeXMargins  *bool   `yaml:"latex_margins"`
	JSONIndent    *int    `yaml:"json_indent"`
	JSONLocations *bool   `yaml:"json_locations"`
}

func (c *AnalysisConfig) mergeYAMLFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var overlay yamlOverlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return err
	}
	if overlay.JSONLDBaseURI != nil {
		c.JSONLDBaseURI = *overlay.JSONLDBaseURI
	}
	if overlay.LaTeXTitle != nil {
		c.LaTeXTitle = *overlay.LaTeXTitle
	}
	if overlay.LaTeXAuthor != nil {
		c.LaTeXAuthor = *overlay.LaTeXAuthor
	}
	if overlay.LaTeXMargins != nil {
		c.LaTeXMargins = *overlay.LaTeXMargins
	}
	if overlay.JSONIndent != nil {
		c.JSONIndent = *overlay.JSONIndent
	}
	if overlay.JSONLocations != nil {
		c.JSONLocations = *overlay.JSONLocations
	}
	return nil
}

func parseBool(v string, fallback bool) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
