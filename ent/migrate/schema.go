// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LedgersColumns holds the columns for the "ledgers" table.
	LedgersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "profile_id", Type: field.TypeString, Unique: true},
		{Name: "flags", Type: field.TypeJSON},
	}
	// LedgersTable holds the schema information for the "ledgers" table.
	LedgersTable = &schema.Table{
		Name:       "ledgers",
		Columns:    LedgersColumns,
		PrimaryKey: []*schema.Column{LedgersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ledger_profile_id",
				Unique:  false,
				Columns: []*schema.Column{LedgersColumns[1]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "profile_id", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "variant", Type: field.TypeString},
		{Name: "start_date", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "grade", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_profile_id",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[1]},
			},
			{
				Name:    "profile_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[6]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// TickEventsColumns holds the columns for the "tick_events" table.
	TickEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "profile_id", Type: field.TypeString},
		{Name: "ordinal", Type: field.TypeInt},
		{Name: "flag", Type: field.TypeString},
		{Name: "value", Type: field.TypeBool},
		{Name: "occurred_at", Type: field.TypeTime},
	}
	// TickEventsTable holds the schema information for the "tick_events" table.
	TickEventsTable = &schema.Table{
		Name:       "tick_events",
		Columns:    TickEventsColumns,
		PrimaryKey: []*schema.Column{TickEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tickevent_profile_id",
				Unique:  false,
				Columns: []*schema.Column{TickEventsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LedgersTable,
		ProfilesTable,
		SettingsTable,
		TickEventsTable,
	}
)

func init() {
}
