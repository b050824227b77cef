//go:build tinygo || !cgo

package daynightaux

import "errors"

func run(app App, cfg WindowConfig) error {
	return errors.New("require cgo for window rendering")
}
