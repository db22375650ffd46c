package configloader

import (
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the prefix for all tsblank environment variables.
const envPrefix = "TSBLANK"

// bindEnv makes every known key overridable by an environment variable
// named TSBLANK_ followed by the upper-cased key with dots replaced by
// underscores. List values are comma-separated.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// EnvVarName returns the environment variable that overrides a config key.
func EnvVarName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// ListEnvVars returns every supported environment variable with its
// description.
func ListEnvVars() map[string]string {
	return map[string]string{
		EnvVarName("out_dir"):                "Directory for generated JavaScript",
		EnvVarName("extensions"):             "Comma-separated source extensions to transform",
		EnvVarName("ignore"):                 "Comma-separated list of ignore patterns",
		EnvVarName("markdown"):               "Rewrite TypeScript fences in Markdown: true or false",
		EnvVarName("detect_untagged_fences"): "Detect the language of untagged fences: true or false",
		EnvVarName("skip_declaration_files"): "Skip .d.ts files: true or false",
		EnvVarName("strict"):                 "Fail on syntax without a transform rule: true or false",
		EnvVarName("jobs"):                   "Number of parallel workers (0 = auto)",
		EnvVarName("backups.enabled"):        "Back up overwritten files: true or false",
		EnvVarName("backups.mode"):           "Backup mode: sidecar, xdg or none",
	}
}
