package output

import "demolocales/internal/domain/entities"

// Reporter receives the outcome of each locale update as soon as it is known.
type Reporter interface {
	Report(result entities.UpdateResult)
}
