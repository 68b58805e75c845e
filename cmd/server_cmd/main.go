package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/crosslock/bridge-go/cmd"
	"github.com/crosslock/bridge-go/logconfig"
)

const (
	ENV_CONFIG_FILE_PATH = "BRIDGE_CONFIG"
)

func main() {
	logconfig.ConfigInfoLogger()

	// Tool to read environment variables
	viper.AutomaticEnv()

	// Accessing an environment variable of configuration file location.
	_config_file := viper.GetString(ENV_CONFIG_FILE_PATH)
	fmt.Printf("Bridge server configuration file = %s\n", _config_file)

	// See if file exists
	if !cmd.FileExists(_config_file) {
		fmt.Printf("Bridge server configuration file not found: %s\n", _config_file)
		return
	}

	// Read from config file.
	success := initializeViper(_config_file)
	if !success {
		return
	}

	// Make the configuration
	bsc := PrepareBridgeServerConfig()
	if bsc == nil {
		fmt.Printf("Error loading bridge server configuration\n")
		return
	}

	fmt.Println("Starting bridge server... press Ctrl+C to kill the server")
	// Start server and block.
	cmd.StartBridgeServerAndWait(bsc)
}

func initializeViper(filePath string) bool {
	viper.SetConfigFile(filePath)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Printf("Error reading configuration file, %s", err)
		return false
	}
	return true
}

// PrepareBridgeServerConfig reads configuration variables and returns a
// BridgeServerConfig.
func PrepareBridgeServerConfig() *cmd.BridgeServerConfig {
	owner := viper.GetString("OWNER_ADDRESS")
	if owner == "" {
		fmt.Println("OWNER_ADDRESS is required")
		return nil
	}

	dbPath := viper.GetString("DB_FILE_PATH")
	if dbPath == "" {
		dbPath = "bridge.db"
	}

	httpIp := viper.GetString("HTTP_IP")
	if httpIp == "" {
		httpIp = "0.0.0.0"
	}
	httpPort := viper.GetString("HTTP_PORT")
	if httpPort == "" {
		httpPort = "8080"
	}

	return &cmd.BridgeServerConfig{
		DbFilePath:   dbPath,
		OwnerAddress: owner,
		HomeChain:    viper.GetString("HOME_CHAIN"),
		BlocksPerDay: viper.GetUint64("BLOCKS_PER_DAY"),
		StartHeight:  viper.GetUint64("START_HEIGHT"),
		BlockSeconds: viper.GetUint64("BLOCK_SECONDS"),
		HttpIp:       httpIp,
		HttpPort:     httpPort,
	}
}
