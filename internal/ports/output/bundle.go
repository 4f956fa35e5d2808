package output

import "demolocales/internal/domain/entities"

// Bundle provides the demo content to merge into each locale file.
type Bundle interface {
	Demo(lang string) (entities.Demo, bool)
}
