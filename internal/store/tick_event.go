package store

import (
	"context"
	"fmt"

	"github.com/youngtekkie/tekkie/ent"
	"github.com/youngtekkie/tekkie/ent/tickevent"
)

// tickEventRepo implements TickEventRepo using the ent client.
type tickEventRepo struct {
	client *ent.Client
}

func (r *tickEventRepo) Append(ctx context.Context, ev TickEvent) error {
	create := r.client.TickEvent.Create().
		SetProfileID(ev.ProfileID).
		SetOrdinal(ev.Ordinal).
		SetFlag(ev.Flag).
		SetValue(ev.Value)
	if !ev.At.IsZero() {
		create.SetOccurredAt(ev.At)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("append tick event: %w", err)
	}
	return nil
}

func (r *tickEventRepo) Recent(ctx context.Context, profileID string, limit int) ([]TickEvent, error) {
	q := r.client.TickEvent.Query().
		Where(tickevent.ProfileIDEQ(profileID)).
		Order(ent.Desc(tickevent.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query tick events: %w", err)
	}

	out := make([]TickEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, TickEvent{
			ProfileID: row.ProfileID,
			Ordinal:   row.Ordinal,
			Flag:      row.Flag,
			Value:     row.Value,
			At:        row.OccurredAt,
		})
	}
	return out, nil
}

func (r *tickEventRepo) DeleteFor(ctx context.Context, profileID string) error {
	_, err := r.client.TickEvent.Delete().
		Where(tickevent.ProfileIDEQ(profileID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete tick events: %w", err)
	}
	return nil
}
