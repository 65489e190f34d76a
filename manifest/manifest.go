package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/vcrobe/nojs-shell/page"
)

// Format is the encoding of a manifest file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

const (
	defaultFlexDirection = "column"
	defaultLogLevel      = "warn"
)

// ErrUnsupportedFormat is returned for manifest files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported manifest format")

// ErrNoPages is returned for manifests that declare no page.
var ErrNoPages = errors.New("manifest declares no pages")

// Manifest describes the pages of an application.
type Manifest struct {
	EntryPagePath string       `toml:"entry_page_path" yaml:"entry_page_path"`
	FlexDirection string       `toml:"flex_direction" yaml:"flex_direction"`
	LogLevel      string       `toml:"log_level" yaml:"log_level"`
	TabBar        TabBar       `toml:"tab_bar" yaml:"tab_bar"`
	Pages         []PageConfig `toml:"pages" yaml:"pages"`
}

// TabBar lists the tab-bar pages.
type TabBar struct {
	List []TabItem `toml:"list" yaml:"list"`
}

// TabItem is one tab.
type TabItem struct {
	PagePath string `toml:"page_path" yaml:"page_path"`
	Text     string `toml:"text" yaml:"text"`
}

// PageConfig is the static configuration of one page.
type PageConfig struct {
	Path                   string `toml:"path" yaml:"path"`
	NavigationBarTitleText string `toml:"navigation_bar_title_text" yaml:"navigation_bar_title_text"`
	NavigationBarColor     string `toml:"navigation_bar_background_color" yaml:"navigation_bar_background_color"`
	NavigationBarTextStyle string `toml:"navigation_bar_text_style" yaml:"navigation_bar_text_style"`
	NavigationStyle        string `toml:"navigation_style" yaml:"navigation_style"`
	TransparentTitle       bool   `toml:"transparent_title" yaml:"transparent_title"`
	DisableScroll          bool   `toml:"disable_scroll" yaml:"disable_scroll"`
	EnablePullDownRefresh  bool   `toml:"enable_pull_down_refresh" yaml:"enable_pull_down_refresh"`
	OnReachBottomDistance  int    `toml:"on_reach_bottom_distance" yaml:"on_reach_bottom_distance"`
	BackgroundColorContent string `toml:"background_color_content" yaml:"background_color_content"`
	NativeRender           bool   `toml:"native_render" yaml:"native_render"`
}

// Load reads and parses the manifest at path. The format follows the file extension.
func Load(path string) (*Manifest, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes a manifest and applies defaults.
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse manifest: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if len(m.Pages) == 0 {
		return nil, ErrNoPages
	}
	for i := range m.Pages {
		m.Pages[i].Path = NormalizePath(m.Pages[i].Path)
	}
	for i := range m.TabBar.List {
		m.TabBar.List[i].PagePath = NormalizePath(m.TabBar.List[i].PagePath)
	}

	m.EntryPagePath = strings.TrimSpace(m.EntryPagePath)
	if m.EntryPagePath == "" {
		m.EntryPagePath = m.Pages[0].Path
	}
	m.EntryPagePath = NormalizePath(m.EntryPagePath)
	if _, ok := m.Page(m.EntryPagePath); !ok {
		return nil, fmt.Errorf("parse manifest: entry page %s is not declared", m.EntryPagePath)
	}

	m.FlexDirection = strings.TrimSpace(m.FlexDirection)
	if m.FlexDirection == "" {
		m.FlexDirection = defaultFlexDirection
	}
	m.LogLevel = strings.TrimSpace(m.LogLevel)
	if m.LogLevel == "" {
		m.LogLevel = defaultLogLevel
	}
	return &m, nil
}

// Page returns the configuration of the page at path.
func (m *Manifest) Page(path string) (PageConfig, bool) {
	path = NormalizePath(path)
	for _, p := range m.Pages {
		if p.Path == path {
			return p, true
		}
	}
	return PageConfig{}, false
}

// IsTabBar reports whether path is one of the tab-bar pages.
func (m *Manifest) IsTabBar(path string) bool {
	path = NormalizePath(path)
	for _, t := range m.TabBar.List {
		if t.PagePath == path {
			return true
		}
	}
	return false
}

// Meta builds the route metadata of the page at path. Each call returns a new
// Meta; pages never share live fields.
func (m *Manifest) Meta(path string) *page.Meta {
	path = NormalizePath(path)
	var meta *page.Meta
	if cfg, ok := m.Page(path); ok {
		meta = cfg.Meta()
	} else {
		meta = page.NewMeta(path)
	}
	meta.IsTabBar = m.IsTabBar(path)
	meta.IsEntry = path == m.EntryPagePath
	return meta
}

// Meta converts the page configuration to route metadata. Tab-bar and entry
// flags are left to Manifest.Meta.
func (c PageConfig) Meta() *page.Meta {
	meta := page.NewMeta(NormalizePath(c.Path))
	meta.NavigationBar.TitleText = c.NavigationBarTitleText
	meta.NavigationBar.BackgroundColor = c.NavigationBarColor
	switch c.NavigationBarTextStyle {
	case "":
	case "black", "white":
		meta.NavigationBar.TitleColor = page.NormalizeTitleColor(c.NavigationBarTextStyle)
	default:
		meta.NavigationBar.TitleColor = c.NavigationBarTextStyle
	}
	if c.NavigationStyle != "" {
		meta.NavigationBar.Style = c.NavigationStyle
	}
	if c.TransparentTitle {
		meta.NavigationBar.Type = page.NavigationBarTransparent
	}
	meta.EnablePullDownRefresh = c.EnablePullDownRefresh
	meta.BackgroundColorContent = c.BackgroundColorContent
	meta.NativeRender = c.NativeRender
	meta.DisableScroll.Set(c.DisableScroll)
	meta.ReachBottomDistance.Set(c.OnReachBottomDistance)
	return meta
}

// NormalizePath returns path with a single leading slash and no trailing slash.
func NormalizePath(path string) string {
	path = strings.Trim(strings.TrimSpace(path), "/")
	return "/" + path
}

func formatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
