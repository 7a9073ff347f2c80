package composer

// Event is a package manager lifecycle event
type Event string

const (
	EventPostPackageInstall  Event = "post-package-install"
	EventPostPackageUpdate   Event = "post-package-update"
	EventPrePackageUninstall Event = "pre-package-uninstall"
	EventPostAutoloadDump    Event = "post-autoload-dump"
)

// Events lists every event modsync subscribes to
var Events = []Event{
	EventPostPackageInstall,
	EventPostPackageUpdate,
	EventPrePackageUninstall,
	EventPostAutoloadDump,
}

// ParseEvent returns the event with the given name
func ParseEvent(name string) (Event, bool) {
	for _, e := range Events {
		if string(e) == name {
			return e, true
		}
	}
	return "", false
}

// Operation is one lifecycle event for one package. For updates, Package is
// the target (new) package and Initial the package being replaced.
type Operation struct {
	Event   Event
	Package Package
	Initial *Package
}
