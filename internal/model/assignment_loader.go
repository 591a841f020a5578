package model

import (
	"time"

	"github.com/uptrace/bun"
)

// AssignmentLoader joins a warehouse loader onto a daily assignment's crew.
type AssignmentLoader struct {
	bun.BaseModel `bun:"assignment_loaders,alias:al"`

	AssignmentLoaderID int       `bun:",pk,autoincrement" json:"id"`
	AssignmentID       int       `json:"dailyAssignmentId"`
	LoaderID           int       `json:"loaderId"`
	CreatedAt          time.Time `bun:",nullzero,default:now()" json:"createdAt"`

	Loader *Loader `bun:"rel:belongs-to,join:loader_id=loader_id" json:"loader,omitempty"`
}
