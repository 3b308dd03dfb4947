// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractionRecord is the predicate function for extractionrecord builders.
type ExtractionRecord func(*sql.Selector)
