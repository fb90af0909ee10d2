package eal

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/wippyai/ethdev/errors"
)

// Load reads Options from a config file; the extension picks the format.
// Keys match the mapstructure tags on Options. ETHDEV_* environment
// variables override file values, with dots and dashes mapped to
// underscores (ETHDEV_MEM_CHANNELS overrides mem-channels).
func Load(path string) (Options, error) {
	v := viper.New()

	dir := filepath.Dir(path)
	filename := filepath.Base(path)
	ext := filepath.Ext(filename)

	v.SetConfigName(strings.TrimSuffix(filename, ext))
	v.SetConfigType(strings.TrimPrefix(ext, "."))
	v.AddConfigPath(dir)

	v.SetEnvPrefix("ETHDEV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := v.ReadInConfig(); err != nil {
		return Options{}, errors.Wrap("eal.Load", errors.KindBadArgument, err, "read config")
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, errors.Wrap("eal.Load", errors.KindBadArgument, err, "unmarshal config")
	}
	applyDefaults(&opts)

	return opts, nil
}

func applyDefaults(opts *Options) {
	if opts.FilePrefix == "" {
		opts.FilePrefix = "ethdev"
	}
}
