// Package config holds the two configuration files launchpad works with.
//
// [Settings] are user preferences loaded with viper from
// $HOME/.launchpad.yaml, a --config path and LAUNCHPAD_* environment
// variables. [DeployConfig] is the deployment the wizard produces; it is
// written to and read from launchpad.yaml with yaml.v3.
package config
