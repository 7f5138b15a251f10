package domain

// Lifecycle hooks the plugin binds to.
const (
	HookBeforeOfflineStart      = "before:offline:start"
	HookBeforeWebpackBuild      = "before:webpack:build:compile"
	HookBeforePackageArtifacts  = "before:package:createDeploymentArtifacts"
	EventWebpackBuildCompile    = "compile"
	EventPackageCreateArtifacts = "createDeploymentArtifacts"
	EventOfflineStart           = "start"
)

// Command is a command exposed by the host and the lifecycle events it walks through.
type Command struct {
	// Path is the command words, e.g. ["webpack", "build"].
	Path            []string
	Usage           string
	LifecycleEvents []string
}

// UnitState is the lifecycle of one build unit.
type UnitState string

const (
	// UnitIdle means the unit has not been built yet.
	UnitIdle UnitState = "idle"
	// UnitRunning means a build of the unit is in progress.
	UnitRunning UnitState = "running"
	// UnitSucceeded means the latest build of the unit succeeded.
	UnitSucceeded UnitState = "success"
	// UnitFailed means the latest build of the unit failed.
	UnitFailed UnitState = "failed"
)

// IsTerminal reports whether the state ends a single build.
func (s UnitState) IsTerminal() bool {
	return s == UnitSucceeded || s == UnitFailed
}
