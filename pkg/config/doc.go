// Package config holds the backend settings of the bridge.
//
// The defaults are compiled in. A YAML file may overlay them; the result is
// validated using struct tags before anything is built from it.
package config
