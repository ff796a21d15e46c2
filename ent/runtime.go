// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/youngtekkie/tekkie/ent/profile"
	"github.com/youngtekkie/tekkie/ent/schema"
	"github.com/youngtekkie/tekkie/ent/tickevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescDisplayName is the schema descriptor for display_name field.
	profileDescDisplayName := profileFields[1].Descriptor()
	// profile.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	profile.DisplayNameValidator = profileDescDisplayName.Validators[0].(func(string) error)
	// profileDescStartDate is the schema descriptor for start_date field.
	profileDescStartDate := profileFields[3].Descriptor()
	// profile.DefaultStartDate holds the default value on creation for the start_date field.
	profile.DefaultStartDate = profileDescStartDate.Default.(string)
	// profileDescGrade is the schema descriptor for grade field.
	profileDescGrade := profileFields[4].Descriptor()
	// profile.DefaultGrade holds the default value on creation for the grade field.
	profile.DefaultGrade = profileDescGrade.Default.(int)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[5].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	tickeventFields := schema.TickEvent{}.Fields()
	_ = tickeventFields
	// tickeventDescProfileID is the schema descriptor for profile_id field.
	tickeventDescProfileID := tickeventFields[0].Descriptor()
	// tickevent.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	tickevent.ProfileIDValidator = tickeventDescProfileID.Validators[0].(func(string) error)
	// tickeventDescOrdinal is the schema descriptor for ordinal field.
	tickeventDescOrdinal := tickeventFields[1].Descriptor()
	// tickevent.OrdinalValidator is a validator for the "ordinal" field. It is called by the builders before save.
	tickevent.OrdinalValidator = tickeventDescOrdinal.Validators[0].(func(int) error)
	// tickeventDescFlag is the schema descriptor for flag field.
	tickeventDescFlag := tickeventFields[2].Descriptor()
	// tickevent.FlagValidator is a validator for the "flag" field. It is called by the builders before save.
	tickevent.FlagValidator = tickeventDescFlag.Validators[0].(func(string) error)
	// tickeventDescOccurredAt is the schema descriptor for occurred_at field.
	tickeventDescOccurredAt := tickeventFields[4].Descriptor()
	// tickevent.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	tickevent.DefaultOccurredAt = tickeventDescOccurredAt.Default.(func() time.Time)
}
