package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Prettify bool   `mapstructure:"prettify"`
}

type RPCConfig struct {
	URL     string `mapstructure:"url"`
	ChainID string
}

type ContractConfig struct {
	Bin    string `mapstructure:"bin"`
	ABI    string `mapstructure:"abi"`
	Method string `mapstructure:"method"`
	// Sender is either a hex address or the index into eth_accounts.
	Sender  string `mapstructure:"sender"`
	Address string `mapstructure:"address"`
}

type DeployConfig struct {
	GasLimit      uint64 `mapstructure:"gasLimit"`
	Confirmations uint64 `mapstructure:"confirmations"`
	PollInterval  int    `mapstructure:"pollInterval"`
	Timeout       int    `mapstructure:"timeout"`
}

type WatcherConfig struct {
	Signature    string `mapstructure:"signature"`
	Event        string `mapstructure:"event"`
	PollInterval int    `mapstructure:"pollInterval"`
}

type CallConfig struct {
	GasLimit    uint64 `mapstructure:"gasLimit"`
	WaitReceipt bool   `mapstructure:"waitReceipt"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

type PublisherConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Brokers  string `mapstructure:"brokers"`
	Topic    string `mapstructure:"topic"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type Config struct {
	RPC       RPCConfig       `mapstructure:"rpc"`
	Log       LogConfig       `mapstructure:"log"`
	Contract  ContractConfig  `mapstructure:"contract"`
	Deploy    DeployConfig    `mapstructure:"deploy"`
	Watcher   WatcherConfig   `mapstructure:"watcher"`
	Call      CallConfig      `mapstructure:"call"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Publisher PublisherConfig `mapstructure:"publisher"`
}

var Cfg Config

func LoadConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file, %s", err)
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./configs")

		// flags and env are enough to run without a config file
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error reading config file, %s", err)
			}
		}

		viper.SetConfigName("secrets")
		if err := viper.MergeInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error loading secrets file: %v", err)
			}
		}
	}

	// sets e.g. RPC_URL to rpc.url
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv()

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		return fmt.Errorf("error unmarshalling config: %v", err)
	}

	return nil
}
