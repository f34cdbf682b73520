// Package cli provides the interactive checkpoint terminal.
//
// It wires configuration, the local store, and the domain services into a
// command loop. Typical flow: prompt for guard credentials, then accept
// commands for visit registration, the shift log, the resident directory,
// and data export/import.
//
// Key features:
//   - Vehicle and pedestrian registration with autocomplete prefill from
//     prior visits
//   - Shift log notes
//   - Resident directory lookup and upsert
//   - Snapshot export/import, with optional S3 upload
//   - Administrator-only guard account management
//
// The loop is started via App.Root(ctx), which blocks until the user exits.
package cli
