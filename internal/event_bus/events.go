package event_bus

const (
	// SnapshotImportedType is published after a backup snapshot has been
	// written to storage, replacing the stored classes and settings.
	SnapshotImportedType EventType = "backup.snapshot.imported"
	// DataWipedType is published after a factory reset removed every stored
	// record.
	DataWipedType EventType = "storage.data.wiped"
)

type SnapshotImported struct {
	ClassCount  int
	UserChanged bool
}

type DataWiped struct{}
