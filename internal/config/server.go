package config

type ServerConfig struct {
	HTTP        HTTPConfig `mapstructure:"http"`
	GRPC        GRPCConfig `mapstructure:"grpc"`
	CORSOrigins []string   `mapstructure:"cors_origins"`
}

type HTTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type GRPCConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}
