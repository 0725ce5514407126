package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/geoshort/internal/model"
)

// Version is the released version of geoshort
const Version = "0.1.0"

var (
	cfgFile string
	verbose bool
	noCache bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "geoshort",
	Short: "geoshort - translate geometry shorthand into English",
	Long: `geoshort translates a compact geometry shorthand into plain English.

Statements are separated by '/', and a whole block may be wrapped in \\...\\.
Each statement becomes one English sentence describing a construction,
measurement, assertion or proof step:

  P:A,B,C          Construct points A, B, C.
  C:O;5            Construct a circle with center O and radius 5.
  AB;BC*PR?        Are AB and BC perpendicular?
  \p:AB=BC         We will prove: Let AB equal BC.

Run 'geoshort reference' for the full notation.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("geoshort v%s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.geoshort/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "disable the translation cache")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	registerDefaults(model.DefaultConfig())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(filepath.Join(home, ".geoshort"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// GEOSHORT_CACHE_ENABLED=false maps to cache.enabled
	viper.SetEnvPrefix("GEOSHORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// registerDefaults makes every config key known to viper so environment
// variables can override keys the config file never mentions
func registerDefaults(cfg *model.Config) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}

	var sections map[string]map[string]interface{}
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return
	}

	for section, keys := range sections {
		for key, val := range keys {
			viper.SetDefault(section+"."+key, val)
		}
	}
}

// loadConfig layers config file and environment over the defaults, then
// applies the global flags
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if noCache {
		cfg.Cache.Enabled = false
	}
	if verbose {
		cfg.Output.Verbose = true
	}

	return cfg, nil
}
