package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config carries all process configuration. It is constructed once at startup
// and passed explicitly into each component; nothing reads the environment
// after LoadConfig returns.
type Config struct {
	AppPort  int    `mapstructure:"APP_PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	VisionEndpoint string `mapstructure:"VISION_ENDPOINT"`
	VisionKey      string `mapstructure:"VISION_KEY"`

	SearchEndpoint string `mapstructure:"SEARCH_ENDPOINT"`
	SearchKey      string `mapstructure:"SEARCH_KEY"`
	SearchIndex    string `mapstructure:"SEARCH_INDEX"`

	OpenAIEndpoint   string `mapstructure:"OPENAI_ENDPOINT"`
	OpenAIKey        string `mapstructure:"OPENAI_KEY"`
	OpenAIDeployment string `mapstructure:"OPENAI_DEPLOYMENT"`
	OpenAIAPIVersion string `mapstructure:"OPENAI_API_VERSION"`

	// GenericKeywords is a comma-separated list of lowercase phrases that mark
	// a query as a broad "list everything" request. The classifier is a plain
	// substring heuristic, so the list is deployment-specific configuration
	// rather than code.
	GenericKeywords string `mapstructure:"GENERIC_KEYWORDS"`
}

const defaultGenericKeywords = "all,list,show all,view all,everything," +
	"what certificates,which certificates,certifications,degrees,education,training"

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("VISION_ENDPOINT", "")
	viper.SetDefault("VISION_KEY", "")
	viper.SetDefault("SEARCH_ENDPOINT", "")
	viper.SetDefault("SEARCH_KEY", "")
	viper.SetDefault("SEARCH_INDEX", "knowledge-index")
	viper.SetDefault("OPENAI_ENDPOINT", "")
	viper.SetDefault("OPENAI_KEY", "")
	viper.SetDefault("OPENAI_DEPLOYMENT", "gpt-4.1-mini")
	viper.SetDefault("OPENAI_API_VERSION", "2024-08-01-preview")
	viper.SetDefault("GENERIC_KEYWORDS", defaultGenericKeywords)

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// GenericKeywordList splits the configured keyword string, trimming blanks.
func (c *Config) GenericKeywordList() []string {
	var out []string
	for _, kw := range strings.Split(c.GenericKeywords, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, strings.ToLower(kw))
		}
	}
	return out
}
