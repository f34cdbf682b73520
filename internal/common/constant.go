package common

// Collection names. They double as the top-level keys of the backup
// document and as the path segment on replication publishes.
const (
	CollectionVehicles    = "vehiculos"
	CollectionPedestrians = "peatones"
	CollectionLogbook     = "bitacora"
	CollectionGuards      = "guardias"
	CollectionDirectory   = "directorios"
)

// Collections lists every collection in the order bulk import processes them.
var Collections = []string{
	CollectionVehicles,
	CollectionPedestrians,
	CollectionLogbook,
	CollectionGuards,
	CollectionDirectory,
}
