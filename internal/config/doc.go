// Package config holds runtime configuration for ScrapeSearch.
//
// Configuration comes from three layers, weakest first: compiled-in
// defaults (NewConfig), an optional YAML configuration file (LoadConfigFile
// and File.Apply), and CLI flags applied by the cmd package. The merged
// Config is validated once with Validate before anything runs and is then
// passed through the application by dependency injection; there is no
// global configuration state.
package config
