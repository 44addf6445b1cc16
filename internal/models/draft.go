// Package models defines the domain types for the draft scaffolder.
package models

import "time"

// Draft describes a dated draft directory and its README stub.
type Draft struct {
	Name          string
	Date          time.Time
	Dir           string // as printed: <parent>/<YYYYMMDD>_<name>
	Rel           string // relative to the drafts parent
	Readme        string // relative to the drafts parent
	ReadmeCreated bool
}
