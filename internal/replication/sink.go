// Package replication publishes freshly stored records to an optional remote
// sink. Delivery is fire-and-forget, at-most-once, best-effort: the store
// never awaits a publish and a failed publish never fails the local write.
package replication

import "context"

// Sink is the capability the store invokes after a successful local write to
// the vehicle, pedestrian or directory collections. A nil Sink means
// replication is disabled, which is a normal, fully supported configuration.
type Sink interface {
	// Publish sends one record, already carrying its assigned identity key,
	// to the named remote collection.
	Publish(ctx context.Context, collection string, record any) error
}
