package reaction

import (
	"context"
	"fmt"
)

// Kinds is the closed set of reaction kinds accepted from the public site.
var Kinds = []string{
	"🥺", "🤧", "😭", "🤡", "😎", "☺️", "😖", "😏", "🥹", "🤪",
	"🤓", "😈", "😼", "🫶🏻", "♥️", "🫀", "💞", "✌🏻", "💋", "👀",
}

var kindSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Kinds))
	for _, k := range Kinds {
		set[k] = struct{}{}
	}
	return set
}()

func IsValidKind(value string) bool {
	_, ok := kindSet[value]
	return ok
}

// Reaction is an aggregate counter per (target, kind) pair. Individual
// reactors are not tracked.
type Reaction struct {
	targetKey string
	kind      string
	count     int64
}

func ReconstructReaction(targetKey, kind string, count int64) (*Reaction, error) {
	if targetKey == "" {
		return nil, fmt.Errorf("target key is required")
	}
	if !IsValidKind(kind) {
		return nil, fmt.Errorf("unknown reaction kind %q", kind)
	}
	return &Reaction{targetKey: targetKey, kind: kind, count: count}, nil
}

func (r *Reaction) TargetKey() string { return r.targetKey }
func (r *Reaction) Kind() string      { return r.kind }
func (r *Reaction) Count() int64      { return r.count }

type Repository interface {
	// Increment bumps the counter for (targetKey, kind), creating the row on
	// first use.
	Increment(ctx context.Context, targetKey, kind string) error
	ListByTarget(ctx context.Context, targetKey string) ([]*Reaction, error)
}
