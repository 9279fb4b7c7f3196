package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load("config.env")
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyOllamaURL, "http://localhost:11434")
	viper.SetDefault(KeyPoeticModel, "llama3")
	viper.SetDefault(KeyLLMTimeout, "120s")
	viper.SetDefault(KeyLLMKeepAlive, "5m")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyMCPHost, "0.0.0.0")
	viper.SetDefault(KeyMCPPort, 8000)
}

func OllamaURL() string             { return viper.GetString(KeyOllamaURL) }
func PoeticModel() string           { return viper.GetString(KeyPoeticModel) }
func LLMCallTimeout() time.Duration { return viper.GetDuration(KeyLLMTimeout) }
func LLMKeepAlive() string          { return viper.GetString(KeyLLMKeepAlive) }
func LogLevel() string              { return viper.GetString(KeyLogLevel) }
func MCPHost() string               { return viper.GetString(KeyMCPHost) }
func MCPPort() int                  { return viper.GetInt(KeyMCPPort) }
