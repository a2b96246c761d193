package model

import "time"

// Metadata holds the bookkeeping columns shared by every submission table.
type Metadata struct {
	CreatedDate  time.Time `db:"created_date"`
	ModifiedDate time.Time `db:"modified_date"`
}
