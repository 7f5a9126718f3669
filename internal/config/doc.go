// Package config handles loading and saving the phpdbg tool
// configuration.
//
// The configuration holds the user's default debugger settings (client
// host and port, IDE key, xdebug mode, an optional php.ini override) and
// is stored as YAML in ~/.config/phpdbg/config.yaml. A missing file is
// not an error; defaults are returned instead.
package config
