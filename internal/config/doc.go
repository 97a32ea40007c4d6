// Package config provides user configuration management for quotedesk.
//
// This package manages a YAML configuration file holding the default
// product type, an optional price book path, the blank quote size, the
// settings for `quotedesk serve`, and the editor servers last found on the
// LAN.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/quotedesk/config.yaml or $HOME/.config/quotedesk/config.yaml
//   - macOS: $HOME/.config/quotedesk/config.yaml
//   - Windows: %LOCALAPPDATA%\quotedesk\config.yaml
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.ProductType = "venetian"
//	if err := cfg.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// File writes are protected by a mutex and go through a temporary file and
// rename so a crash never leaves a half-written config.
package config
