package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server base address, e.g. http://localhost:4000
//	-web-url public web application base URL used for share links
//	-download-dir directory downloaded files are written to
//	-credentials session-token file path (":memory:" for volatile)
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var webBaseURL string
	var downloadDir string
	var credentialsPath string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&serverAddress, "a", "", "Server base address, e.g. http://localhost:4000")
	flag.StringVar(&webBaseURL, "web-url", "", "Web application base URL for share links")
	flag.StringVar(&downloadDir, "download-dir", "", "Download directory")
	flag.StringVar(&credentialsPath, "credentials", "", "Session-token file path")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			WebBaseURL:  webBaseURL,
			DownloadDir: downloadDir,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Credentials: Credentials{
				Path: credentialsPath,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
