package config

const (
	KeyOllamaURL    = "ollama_url"
	KeyPoeticModel  = "poetic_model_name"
	KeyLLMTimeout   = "llm_call_timeout"
	KeyLLMKeepAlive = "llm_keep_alive"
	KeyLogLevel     = "log_level"
	KeyMCPHost      = "mcp_host"
	KeyMCPPort      = "mcp_port"
)
