package backup

import (
	"github.com/rooster-app/rooster/pkg/schedule"
	"github.com/rooster-app/rooster/pkg/settings"
	"github.com/rooster-app/rooster/pkg/user"
)

// Snapshot is the full exportable bundle of user, classes and settings. It is
// also the wire format of the export file: one JSON document with the three
// records. Import is a full overwrite, not a merge.
type Snapshot struct {
	User     *user.Profile     `json:"user"`
	Classes  []schedule.Class  `json:"classes"`
	Settings settings.Settings `json:"settings"`
}
