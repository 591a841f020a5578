package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Reference entities are shared master data referenced by id from the
// schedule tables; they are never owned by them. Identity is immutable,
// status is not.

type Driver struct {
	bun.BaseModel `bun:"drivers,alias:dv"`

	DriverID  int       `bun:",pk,autoincrement" json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `bun:",nullzero,default:now()" json:"createdAt"`
}

type Truck struct {
	bun.BaseModel `bun:"trucks,alias:tk"`

	TruckID   int         `bun:",pk,autoincrement" json:"id"`
	Number    string      `json:"number"`
	Type      string      `json:"type"`
	Status    string      `json:"status"`
	Notes     null.String `json:"notes"`
	CreatedAt time.Time   `bun:",nullzero,default:now()" json:"createdAt"`
}

type Trailer struct {
	bun.BaseModel `bun:"trailers,alias:tl"`

	TrailerID int         `bun:",pk,autoincrement" json:"id"`
	Number    string      `json:"number"`
	Type      string      `json:"type"`
	Status    string      `json:"status"`
	Notes     null.String `json:"notes"`
	CreatedAt time.Time   `bun:",nullzero,default:now()" json:"createdAt"`
}

type Loader struct {
	bun.BaseModel `bun:"loaders,alias:ld"`

	LoaderID  int       `bun:",pk,autoincrement" json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `bun:",nullzero,default:now()" json:"createdAt"`
}

type Route struct {
	bun.BaseModel `bun:"routes,alias:rt"`

	RouteID     int         `bun:",pk,autoincrement" json:"id"`
	Code        string      `json:"code"`
	Description null.String `json:"description"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `bun:",nullzero,default:now()" json:"createdAt"`
}
