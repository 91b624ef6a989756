package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Editor        string `mapstructure:"editor"`
	Watch         bool   `mapstructure:"watch"`
	DebounceMs    int    `mapstructure:"debounce_ms"`
	Indent        int    `mapstructure:"indent"`
	PreviewLines  int    `mapstructure:"preview_lines"`
	ColorHeading  string `mapstructure:"color_heading"`
	ColorDim      string `mapstructure:"color_dim"`
	ColorBorder   string `mapstructure:"color_border"`
	ColorCursor   string `mapstructure:"color_cursor"`
	ColorSelected string `mapstructure:"color_selected"`
	ColorActive   string `mapstructure:"color_active"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("editor", "")
	viper.SetDefault("watch", true)
	viper.SetDefault("debounce_ms", 400) // document-change debounce window
	viper.SetDefault("indent", 2)        // spaces per heading level
	viper.SetDefault("preview_lines", 8) // preview pane height
	viper.SetDefault("color_heading", "6")
	viper.SetDefault("color_dim", "241")
	viper.SetDefault("color_border", "240")
	viper.SetDefault("color_cursor", "212")
	viper.SetDefault("color_selected", "236")
	viper.SetDefault("color_active", "3")

	viper.SetConfigName("mdoutline")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "mdoutline"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("MDOUTLINE")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetEditor returns the configured editor command
func GetEditor() string {
	return viper.GetString("editor")
}

// GetWatch returns whether the document is watched for changes
func GetWatch() bool {
	return viper.GetBool("watch")
}

// GetDebounce returns the document-change debounce window
func GetDebounce() time.Duration {
	ms := viper.GetInt("debounce_ms")
	if ms < 0 {
		ms = 0
	}
	return time.Duration(ms) * time.Millisecond
}

// GetIndent returns spaces of indentation per heading level
func GetIndent() int {
	return viper.GetInt("indent")
}

// GetPreviewLines returns the preview pane height in lines
func GetPreviewLines() int {
	return viper.GetInt("preview_lines")
}

// GetColorHeading returns the heading text color
func GetColorHeading() string {
	return viper.GetString("color_heading")
}

// GetColorDim returns the secondary text color
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// GetColorBorder returns the divider color
func GetColorBorder() string {
	return viper.GetString("color_border")
}

// GetColorCursor returns the cursor marker color
func GetColorCursor() string {
	return viper.GetString("color_cursor")
}

// GetColorSelected returns the selected-row background color
func GetColorSelected() string {
	return viper.GetString("color_selected")
}

// GetColorActive returns the active-heading marker color
func GetColorActive() string {
	return viper.GetString("color_active")
}

// SetEditor sets the editor at runtime
func SetEditor(editor string) {
	viper.Set("editor", editor)
	C.Editor = editor
}

// SetWatch sets document watching at runtime
func SetWatch(watch bool) {
	viper.Set("watch", watch)
	C.Watch = watch
}
