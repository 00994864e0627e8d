package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Slot table columns.
const (
	slotTable       = "slots"
	columnID        = "id"
	columnKey       = "key"
	columnValue     = "value"
	columnUpdatedAt = "updated_at"
)

var (
	slotColumns = []*schema.Column{
		{Name: columnID, Type: field.TypeInt, Increment: true},
		{Name: columnKey, Type: field.TypeString, Unique: true},
		{Name: columnValue, Type: field.TypeBytes},
		{Name: columnUpdatedAt, Type: field.TypeTime},
	}
	slotsTable = &schema.Table{
		Name:       slotTable,
		Columns:    slotColumns,
		PrimaryKey: []*schema.Column{slotColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "slot_updated_at",
				Unique:  false,
				Columns: []*schema.Column{slotColumns[3]},
			},
		},
	}

	tables = []*schema.Table{slotsTable}
)
