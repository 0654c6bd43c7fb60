package db_models

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// IDList is an ordered list of string ids stored as text[] on postgres.
type IDList []string

func (l IDList) Value() (driver.Value, error) {
	return pq.StringArray(l).Value()
}

func (l *IDList) Scan(src interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*l = IDList(arr)
	return nil
}

func (IDList) GormDataType() string { return "text" }

func (IDList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}
