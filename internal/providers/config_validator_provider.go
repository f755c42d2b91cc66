package providers

import (
	"errors"

	"github.com/gookit/validate"

	"localjournal/internal/structures"
)

type CnfValidatorInterface interface {
	Validate() error
}

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) CnfValidatorInterface {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	sections := []interface{}{
		&cv.conf.WebServer,
		&cv.conf.Storage,
		&cv.conf.Logger,
	}
	for _, section := range sections {
		v := validate.Struct(section)
		if !v.Validate() {
			return errors.New(v.Errors.String())
		}
	}
	if cv.conf.Storage.PrimaryPath == cv.conf.Storage.FallbackPath {
		return errors.New("storage.primaryPath and storage.fallbackPath must differ")
	}
	// The save confirmation shown after a submit lives in the cache.
	if !cv.conf.Cache.Enabled {
		return errors.New("cache.enabled must be true, flash messages are stored in the cache")
	}
	if cv.conf.Cache.Size <= 0 {
		return errors.New("cache.size must be positive")
	}
	return nil
}
