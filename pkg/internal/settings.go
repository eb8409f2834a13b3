package pkg

import (
	"time"

	"github.com/spf13/viper"
)

// ApplyDefaults registers the fallback value of every known setting.
func ApplyDefaults() {
	viper.SetDefault("bind", "0.0.0.0:8000")
	viper.SetDefault("debug.database", false)
	viper.SetDefault("database.dialect", "postgres")
	viper.SetDefault("database.prefix", "")
	viper.SetDefault("posts.page_size", 10)
	viper.SetDefault("security.session_ttl", 24*time.Hour)
	viper.SetDefault("security.cookie_secure", false)
	viper.SetDefault("security.administrators", []string{})
}
